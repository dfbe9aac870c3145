package persistence

import (
	"fmt"

	"gorm.io/gorm"
)

// Sequence scopes for human-readable numbers
const (
	sequenceScopeOrder  = "order"
	sequenceScopeRepair = "repair"
)

// nextSequence increments and returns the counter for a scope and year. The
// upsert takes a row lock, so concurrent creation transactions serialize here
// and each one gets a unique, gapless value. Must run inside the caller's
// transaction so a rollback releases the number with everything else.
func nextSequence(tx *gorm.DB, scope string, year int) (int64, error) {
	var value int64
	err := tx.Raw(`
		INSERT INTO number_sequences (scope, year, value)
		VALUES (?, ?, 1)
		ON CONFLICT (scope, year)
		DO UPDATE SET value = number_sequences.value + 1
		RETURNING value`,
		scope, year,
	).Scan(&value).Error
	if err != nil {
		return 0, fmt.Errorf("failed to allocate %s number: %w", scope, err)
	}
	return value, nil
}
