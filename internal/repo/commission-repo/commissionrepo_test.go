package commissionrepo

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

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	commission := &domain.Commission{
		AffiliateID: 1,
		OrderItemID: 100,
		Type:        domain.CommissionTypeDirect,
		Amount:      20,
		Percentage:  20,
		Status:      domain.CommissionStatusPending,
	}
	insert := regexp.QuoteMeta("INSERT INTO commissions (affiliate_id, order_item_id, type, amount, percentage, status)")

	tests := []struct {
		name      string
		mockSetup func()
		created   bool
		expectErr bool
	}{
		{
			name: "Row inserted",
			mockSetup: func() {
				mock.ExpectExec(insert).
					WithArgs(1, 100, domain.CommissionTypeDirect, 20.0, 20.0, domain.CommissionStatusPending).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			created: true,
		},
		{
			name: "Duplicate is a no-op",
			mockSetup: func() {
				mock.ExpectExec(insert).
					WithArgs(1, 100, domain.CommissionTypeDirect, 20.0, 20.0, domain.CommissionStatusPending).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			created: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(insert).
					WithArgs(1, 100, domain.CommissionTypeDirect, 20.0, 20.0, domain.CommissionStatusPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), commission)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.created, created)
			}
		})
	}
}

func TestRepository_MarkPaid(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta("UPDATE commissions SET status = $1 WHERE id = ANY($2) AND status = $3")

	t.Run("Only approved rows move", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(domain.CommissionStatusPaid, []int{1, 2, 3}, domain.CommissionStatusApproved).
			WillReturnResult(pgxmock.NewResult("UPDATE", 2))

		updated, err := repo.MarkPaid(context.Background(), []int{1, 2, 3})
		assert.NoError(t, err)
		assert.Equal(t, 2, updated)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(domain.CommissionStatusPaid, []int{1}, domain.CommissionStatusApproved).
			WillReturnError(errors.New("database error"))

		_, err := repo.MarkPaid(context.Background(), []int{1})
		assert.Error(t, err)
	})
}

func TestRepository_Approve(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta("UPDATE commissions\n        SET status = $1, approved_at = now()")

	t.Run("Approves and returns the row", func(t *testing.T) {
		now := time.Now()
		rows := pgxmock.NewRows([]string{
			"id", "affiliate_id", "order_item_id", "type", "amount",
			"percentage", "status", "created_at", "approved_at",
		}).AddRow(1, 2, 100, domain.CommissionTypeDirect, 20.0, 20.0, domain.CommissionStatusApproved, now, &now)
		mock.ExpectQuery(query).
			WithArgs(domain.CommissionStatusApproved, 1).
			WillReturnRows(rows)

		commission, err := repo.Approve(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.CommissionStatusApproved, commission.Status)
	})
}

func TestRepository_SumByTypeStatus(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"type", "status", "coalesce"}).
		AddRow(domain.CommissionTypeDirect, domain.CommissionStatusPending, 26.0).
		AddRow(domain.CommissionTypeReferral, domain.CommissionStatusPaid, 13.0)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT type, status, COALESCE(SUM(amount), 0)")).
		WithArgs(1).
		WillReturnRows(rows)

	sums, err := repo.SumByTypeStatus(context.Background(), 1, nil, nil)
	assert.NoError(t, err)
	assert.Len(t, sums, 2)
	assert.Equal(t, 26.0, sums[0].Amount)
}
