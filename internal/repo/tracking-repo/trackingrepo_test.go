package trackingrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/gocardi/boost-api/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_UpsertMonthly(t *testing.T) {
	repo, mock := NewMock(t)

	month := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("INSERT INTO min_monthly_buys (affiliate_id, month, quantity, achieved)")

	t.Run("Overwrites the month record", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "affiliate_id", "month", "quantity", "achieved"}).
			AddRow(1, 1, month, 3, true)
		mock.ExpectQuery(query).
			WithArgs(1, month, 3, true).
			WillReturnRows(rows)

		saved, err := repo.UpsertMonthly(context.Background(), &domain.MinMonthlyBuy{
			AffiliateID: 1, Month: month, Quantity: 3, Achieved: true,
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, saved.Quantity)
		assert.True(t, saved.Achieved)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(1, month, 0, false).
			WillReturnError(errors.New("database error"))

		saved, err := repo.UpsertMonthly(context.Background(), &domain.MinMonthlyBuy{
			AffiliateID: 1, Month: month,
		})
		assert.Nil(t, saved)
		assert.Error(t, err)
	})
}

func TestRepository_TryMarkSweep(t *testing.T) {
	repo, mock := NewMock(t)

	month := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("INSERT INTO monthly_sweeps (month) VALUES ($1) ON CONFLICT (month) DO NOTHING")

	t.Run("First claim wins", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(month).WillReturnResult(pgxmock.NewResult("INSERT", 1))

		acquired, err := repo.TryMarkSweep(context.Background(), month)
		assert.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("Second claim is rejected", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(month).WillReturnResult(pgxmock.NewResult("INSERT", 0))

		acquired, err := repo.TryMarkSweep(context.Background(), month)
		assert.NoError(t, err)
		assert.False(t, acquired)
	})
}

func TestRepository_History(t *testing.T) {
	repo, mock := NewMock(t)

	march := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	february := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "affiliate_id", "month", "quantity", "achieved"}).
		AddRow(2, 1, march, 3, true).
		AddRow(1, 1, february, 0, false)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, affiliate_id, month, quantity, achieved")).
		WithArgs(1, 12).
		WillReturnRows(rows)

	records, err := repo.History(context.Background(), 1, 12)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, march, records[0].Month)
	assert.False(t, records[1].Achieved)
}
