package userrepo

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

func userRow(id int, dni, role string, active bool) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "dni", "full_name", "email", "password_hash", "role",
		"is_active", "max_referrals", "created_by", "last_login", "created_at",
	}).AddRow(id, dni, "Maria Lopez", "maria@example.com", "hashedpassword", role,
		active, 10, nil, nil, time.Now())
}

func TestRepository_FindByDNI(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE dni = $1`)

	tests := []struct {
		name      string
		mockSetup func()
		found     bool
		expectErr bool
	}{
		{
			name: "User found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("12345678").
					WillReturnRows(userRow(1, "12345678", domain.RoleAffiliate, true))
			},
			found: true,
		},
		{
			name: "User not found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("12345678").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("12345678").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.FindByDNI(context.Background(), "12345678")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, "12345678", user.DNI)
			} else {
				assert.Nil(t, user)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta("INSERT INTO users (dni, full_name, email, password_hash, role, max_referrals, created_by)")

	t.Run("Creates the user", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("12345678", "Maria Lopez", "maria@example.com", "hashedpassword", domain.RoleVisitor, 10, (*int)(nil)).
			WillReturnRows(userRow(1, "12345678", domain.RoleVisitor, true))

		created, err := repo.Create(context.Background(), &domain.User{
			DNI:          "12345678",
			FullName:     "Maria Lopez",
			Email:        "maria@example.com",
			PasswordHash: "hashedpassword",
			Role:         domain.RoleVisitor,
			MaxReferrals: 10,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, created.ID)
	})

	t.Run("Duplicate dni", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("12345678", "Maria Lopez", "maria@example.com", "hashedpassword", domain.RoleVisitor, 10, (*int)(nil)).
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		created, err := repo.Create(context.Background(), &domain.User{
			DNI:          "12345678",
			FullName:     "Maria Lopez",
			Email:        "maria@example.com",
			PasswordHash: "hashedpassword",
			Role:         domain.RoleVisitor,
			MaxReferrals: 10,
		})
		assert.Nil(t, created)
		assert.Error(t, err)
	})
}

func TestRepository_SetActive(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`UPDATE users SET is_active = $1 WHERE id = $2`)

	t.Run("Deactivates the user", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(false, 1).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.SetActive(context.Background(), 1, false))
	})

	t.Run("Unknown user", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(false, 99).WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.SetActive(context.Background(), 99, false)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestRepository_GetReferrer(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta("FROM referrals r\n        JOIN users u ON u.id = r.referrer_id")

	t.Run("Referrer found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(5).
			WillReturnRows(userRow(2, "87654321", domain.RoleAffiliate, true))

		referrer, err := repo.GetReferrer(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, 2, referrer.ID)
	})

	t.Run("No referral edge", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(5).WillReturnError(pgx.ErrNoRows)

		referrer, err := repo.GetReferrer(context.Background(), 5)
		assert.NoError(t, err)
		assert.Nil(t, referrer)
	})
}

func TestRepository_ActiveAffiliateIDs(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"id"}).AddRow(1).AddRow(5).AddRow(9)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM users WHERE role = $1 AND is_active = TRUE ORDER BY id`)).
		WithArgs(domain.RoleAffiliate).
		WillReturnRows(rows)

	ids, err := repo.ActiveAffiliateIDs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 5, 9}, ids)
}
