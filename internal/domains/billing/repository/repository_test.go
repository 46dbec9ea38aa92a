package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteloncall/infras/otel/mocks"
	"hoteloncall/infras/postgres"
	"hoteloncall/internal/domains/billing/repository"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	return &postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mock
}

func TestBillingRepository_FoodCharge(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := repository.New(conn, mocks.NewOtel())

	t.Run("sums order totals", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(total_price\\), 0\\) FROM orders").
			WithArgs("guest@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(40.0))

		total, err := repo.FoodCharge(context.Background(), "guest@example.com")
		require.NoError(t, err)
		assert.Equal(t, 40.0, total)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("guest with no orders sums to zero", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(total_price\\), 0\\) FROM orders").
			WithArgs("guest@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))

		total, err := repo.FoodCharge(context.Background(), "guest@example.com")
		require.NoError(t, err)
		assert.Equal(t, 0.0, total)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(total_price\\), 0\\) FROM orders").
			WithArgs("guest@example.com").
			WillReturnError(errors.New("database error"))

		_, err := repo.FoodCharge(context.Background(), "guest@example.com")
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBillingRepository_CleaningCount(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := repository.New(conn, mocks.NewOtel())

	t.Run("counts guest requests", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(id\\) FROM cleaning_requests").
			WithArgs("guest@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		count, err := repo.CleaningCount(context.Background(), "guest@example.com")
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(id\\) FROM cleaning_requests").
			WithArgs("guest@example.com").
			WillReturnError(errors.New("database error"))

		_, err := repo.CleaningCount(context.Background(), "guest@example.com")
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBillingRepository_MaintenanceCount(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := repository.New(conn, mocks.NewOtel())

	t.Run("counts guest requests", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(id\\) FROM maintenance_requests").
			WithArgs("guest@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		count, err := repo.MaintenanceCount(context.Background(), "guest@example.com")
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
