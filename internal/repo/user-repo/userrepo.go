package userrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/gocardi/boost-api/internal/domain"
	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const userColumns = `id, dni, full_name, email, password_hash, role, is_active, max_referrals, created_by, last_login, created_at`

func scanUser(row pg.RowScanner, user *domain.User) error {
	return row.Scan(
		&user.ID, &user.DNI, &user.FullName, &user.Email, &user.PasswordHash,
		&user.Role, &user.IsActive, &user.MaxReferrals, &user.CreatedBy,
		&user.LastLogin, &user.CreatedAt,
	)
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	var user domain.User
	err := scanUser(r.db.QueryRow(ctx, query, id), &user)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByDNI(ctx context.Context, dni string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE dni = $1`
	var user domain.User
	err := scanUser(r.db.QueryRow(ctx, query, dni), &user)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by dni", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByDNIOrEmail(ctx context.Context, dni, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE dni = $1 OR email = $2 LIMIT 1`
	var user domain.User
	err := scanUser(r.db.QueryRow(ctx, query, dni, email), &user)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by dni or email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (dni, full_name, email, password_hash, role, max_referrals, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + userColumns
	var created domain.User
	err := scanUser(r.db.QueryRow(ctx, query,
		user.DNI, user.FullName, user.Email, user.PasswordHash,
		user.Role, user.MaxReferrals, user.CreatedBy,
	), &created)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) UpdateLastLogin(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login = now() WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't update last login", zap.Error(err))
	}
	return err
}

func (r *Repository) SetActive(ctx context.Context, id int, active bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		zap.L().Error("can't update user active flag", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) List(ctx context.Context, filters dto.UserFiltersDTO) ([]domain.User, int, error) {
	where := []string{"TRUE"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filters.Search != "" {
		p := arg("%" + filters.Search + "%")
		where = append(where, fmt.Sprintf("(full_name ILIKE %s OR dni ILIKE %s)", p, p))
	}
	if filters.Role != "" {
		where = append(where, "role = "+arg(filters.Role))
	}
	if filters.Active != nil {
		where = append(where, "is_active = "+arg(*filters.Active))
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM users WHERE `+cond, args...).Scan(&total); err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return nil, 0, err
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE ` + cond +
		` ORDER BY created_at DESC LIMIT ` + arg(filters.Limit) + ` OFFSET ` + arg((filters.Page-1)*filters.Limit)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := scanUser(rows, &user); err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, 0, err
		}
		users = append(users, user)
	}
	return users, total, nil
}

func (r *Repository) CountUsers(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&total)
	return total, err
}

func (r *Repository) GetAffiliate(ctx context.Context, id int) (*domain.Affiliate, error) {
	query := `
        SELECT id, sponsor_id, phone, region, city, address, reference, status, points, created_at
        FROM affiliates
        WHERE id = $1
    `
	var a domain.Affiliate
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.SponsorID, &a.Phone, &a.Region, &a.City, &a.Address,
		&a.Reference, &a.Status, &a.Points, &a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find affiliate", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func (r *Repository) CreateAffiliate(ctx context.Context, a *domain.Affiliate) error {
	query := `
        INSERT INTO affiliates (id, sponsor_id, phone, region, city, address, reference)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query, a.ID, a.SponsorID, a.Phone, a.Region, a.City, a.Address, a.Reference)
	if err != nil {
		zap.L().Error("can't create affiliate", zap.Error(err))
	}
	return err
}

func (r *Repository) UpdateAffiliateStatus(ctx context.Context, id int, status string) error {
	tag, err := r.db.Exec(ctx, `UPDATE affiliates SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		zap.L().Error("can't update affiliate status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) CreateReferral(ctx context.Context, referrerID, referredID int) error {
	query := `INSERT INTO referrals (referrer_id, referred_id) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, query, referrerID, referredID)
	if err != nil {
		zap.L().Error("can't create referral edge", zap.Error(err))
	}
	return err
}

// GetReferrer returns the user who referred referredID, or nil when the user
// has no referral edge. Only the direct (first-level) referrer exists by model.
func (r *Repository) GetReferrer(ctx context.Context, referredID int) (*domain.User, error) {
	query := `
        SELECT u.id, u.dni, u.full_name, u.email, u.password_hash, u.role, u.is_active, u.max_referrals, u.created_by, u.last_login, u.created_at
        FROM referrals r
        JOIN users u ON u.id = r.referrer_id
        WHERE r.referred_id = $1
    `
	var user domain.User
	err := scanUser(r.db.QueryRow(ctx, query, referredID), &user)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find referrer", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) CountReferrals(ctx context.Context, sponsorID int) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM affiliates WHERE sponsor_id = $1`, sponsorID).Scan(&total)
	if err != nil {
		zap.L().Error("can't count referrals", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) ListNetwork(ctx context.Context, sponsorID int, filters dto.NetworkFiltersDTO) ([]domain.NetworkMember, int, error) {
	where := []string{"a.sponsor_id = $1"}
	args := []any{sponsorID}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filters.Status != "" {
		where = append(where, "a.status = "+arg(filters.Status))
	}
	if filters.Search != "" {
		p := arg("%" + filters.Search + "%")
		where = append(where, fmt.Sprintf("(u.full_name ILIKE %s OR u.dni ILIKE %s)", p, p))
	}
	cond := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT count(*) FROM affiliates a JOIN users u ON u.id = a.id WHERE ` + cond
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		zap.L().Error("can't count network members", zap.Error(err))
		return nil, 0, err
	}

	query := `
        SELECT a.id, a.sponsor_id, a.phone, a.region, a.city, a.address, a.reference, a.status, a.points, a.created_at,
               u.full_name, u.dni, u.is_active, u.created_at
        FROM affiliates a
        JOIN users u ON u.id = a.id
        WHERE ` + cond + `
        ORDER BY a.created_at DESC
        LIMIT ` + arg(filters.Limit) + ` OFFSET ` + arg((filters.Page-1)*filters.Limit)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list network members", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var members []domain.NetworkMember
	for rows.Next() {
		var m domain.NetworkMember
		err := rows.Scan(
			&m.ID, &m.SponsorID, &m.Phone, &m.Region, &m.City, &m.Address,
			&m.Reference, &m.Status, &m.Points, &m.CreatedAt,
			&m.FullName, &m.DNI, &m.UserIsActive, &m.UserCreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan network member row", zap.Error(err))
			return nil, 0, err
		}
		members = append(members, m)
	}
	return members, total, nil
}

// ActiveAffiliateIDs lists ids of affiliates whose account is still active.
func (r *Repository) ActiveAffiliateIDs(ctx context.Context) ([]int, error) {
	query := `SELECT id FROM users WHERE role = $1 AND is_active = TRUE ORDER BY id`
	rows, err := r.db.Query(ctx, query, domain.RoleAffiliate)
	if err != nil {
		zap.L().Error("can't list active affiliates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *Repository) CountActiveAffiliates(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM users WHERE role = $1 AND is_active = TRUE`, domain.RoleAffiliate,
	).Scan(&total)
	return total, err
}

func (r *Repository) ListAdminRegions(ctx context.Context, adminID int) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT region FROM admin_regions WHERE admin_id = $1 ORDER BY region`, adminID)
	if err != nil {
		zap.L().Error("can't list admin regions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var regions []string
	for rows.Next() {
		var region string
		if err := rows.Scan(&region); err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}
	return regions, nil
}
