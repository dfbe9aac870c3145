package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/ordering"
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testOrder(t *testing.T) *ordering.Order {
	t.Helper()
	addr, err := valueobject.NewAddress("Arber Hoxha", "Rruga e Kavajës 1", "Tirana", "1001", "AL", "+355691234567")
	require.NoError(t, err)
	order, err := ordering.NewOrder(uuid.New(), ordering.OrderTypeProduct, addr, "", shared.LanguageAlbanian)
	require.NoError(t, err)
	return order
}

func TestGormOrderRepository_FindByNumber(t *testing.T) {
	t.Run("returns not found for unknown number", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE order_number = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("PB-2026-999", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		order, err := repo.FindByNumber(context.Background(), "PB-2026-999")

		assert.Nil(t, order)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_UpdateStatus(t *testing.T) {
	t.Run("rejects stale version", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(db)

		order := testOrder(t)
		require.NoError(t, order.AssignNumber("PB-2026-001"))
		require.NoError(t, order.TransitionTo(ordering.StatusConfirmed))
		entry, err := ordering.TimelineEntryFor(order, ordering.StatusConfirmed)
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "orders" SET .* WHERE id = \$\d+ AND version = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err = repo.UpdateStatus(context.Background(), order, entry)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONCURRENT_MODIFICATION", domainErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_Sorting(t *testing.T) {
	t.Run("unknown sort field falls back to created_at", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "orders" ORDER BY created_at DESC`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		filter := shared.Filter{OrderBy: "(SELECT pg_sleep(10))--", OrderDir: "desc"}
		_, err := repo.FindAll(context.Background(), filter)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("whitelisted sort field is honoured", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "orders" ORDER BY total ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		filter := shared.Filter{OrderBy: "total", OrderDir: "asc"}
		_, err := repo.FindAll(context.Background(), filter)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
