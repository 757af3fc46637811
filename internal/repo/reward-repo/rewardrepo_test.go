package rewardrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
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

func TestRepository_DecrementStock(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta("UPDATE rewards SET stock = stock - 1 WHERE id = $1 AND stock > 0")

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
	}{
		{
			name: "Stock available",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(2).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Out of stock",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(2).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: ErrRewardOutOfStock,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(2).WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.DecrementStock(context.Background(), 2)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_IncrementPoints(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta("UPDATE affiliates SET points = points + $1 WHERE id = $2 AND points + $1 >= 0")

	t.Run("Credits points", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(15, 1).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.IncrementPoints(context.Background(), 1, 15))
	})

	t.Run("Spend within balance", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(-50, 1).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.IncrementPoints(context.Background(), 1, -50))
	})

	t.Run("Overspend is rejected", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(-500, 1).WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.IncrementPoints(context.Background(), 1, -500)
		assert.ErrorIs(t, err, ErrInsufficientPoints)
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta("SELECT id, name, description, points_required, stock, image_url, is_active FROM rewards WHERE id = $1")

	t.Run("Reward found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "name", "description", "points_required", "stock", "image_url", "is_active"}).
			AddRow(2, "Blender", "Kitchen blender", 50, 3, "", true)
		mock.ExpectQuery(query).WithArgs(2).WillReturnRows(rows)

		reward, err := repo.FindByID(context.Background(), 2)
		assert.NoError(t, err)
		assert.Equal(t, "Blender", reward.Name)
		assert.Equal(t, 50, reward.PointsRequired)
	})

	t.Run("Reward not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(9).WillReturnError(pgx.ErrNoRows)

		reward, err := repo.FindByID(context.Background(), 9)
		assert.NoError(t, err)
		assert.Nil(t, reward)
	})
}

func TestRepository_ApproveClaim(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta("UPDATE reward_claims\n        SET status = $1, delivered_at = now()")

	t.Run("Approves pending claim", func(t *testing.T) {
		now := time.Now()
		rows := pgxmock.NewRows([]string{"id", "affiliate_id", "reward_id", "points_used", "status", "claimed_at", "delivered_at"}).
			AddRow(7, 1, 2, 50, domain.ClaimStatusApproved, now, &now)
		mock.ExpectQuery(query).
			WithArgs(domain.ClaimStatusApproved, 7, domain.ClaimStatusPending).
			WillReturnRows(rows)

		claim, err := repo.ApproveClaim(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.ClaimStatusApproved, claim.Status)
		assert.NotNil(t, claim.DeliveredAt)
	})

	t.Run("Already approved claim", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(domain.ClaimStatusApproved, 7, domain.ClaimStatusPending).
			WillReturnError(pgx.ErrNoRows)

		claim, err := repo.ApproveClaim(context.Background(), 7)
		assert.NoError(t, err)
		assert.Nil(t, claim)
	})
}
