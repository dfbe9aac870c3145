package models

// NumberSequenceModel is the per-scope, per-year counter row behind order and
// repair number allocation. The row is incremented with an upsert inside the
// aggregate creation transaction, which serializes concurrent allocations and
// keeps the sequence gapless.
type NumberSequenceModel struct {
	Scope string `gorm:"type:varchar(20);primaryKey"`
	Year  int    `gorm:"primaryKey"`
	Value int64  `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (NumberSequenceModel) TableName() string {
	return "number_sequences"
}
