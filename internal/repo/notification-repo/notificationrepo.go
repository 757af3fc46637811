package notificationrepo

import (
	"context"
	"fmt"
	"strings"

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

func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	query := `
        INSERT INTO notifications (user_id, type, title, message)
        VALUES ($1, $2, $3, $4)
        RETURNING id, user_id, type, title, message, read_flag, created_at
    `
	var created domain.Notification
	err := r.db.QueryRow(ctx, query, n.UserID, n.Type, n.Title, n.Message).
		Scan(&created.ID, &created.UserID, &created.Type, &created.Title,
			&created.Message, &created.ReadFlag, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't create notification", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int, filters dto.NotificationFiltersDTO) ([]domain.Notification, int, int, error) {
	var unread int
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM notifications WHERE user_id = $1 AND NOT read_flag`, userID).Scan(&unread)
	if err != nil {
		zap.L().Error("can't count unread notifications", zap.Error(err))
		return nil, 0, 0, err
	}

	where := []string{"user_id = $1"}
	args := []any{userID}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filters.Unread != nil {
		if *filters.Unread {
			where = append(where, "NOT read_flag")
		} else {
			where = append(where, "read_flag")
		}
	}
	if filters.Type != "" {
		where = append(where, "type = "+arg(filters.Type))
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM notifications WHERE `+cond, args...).Scan(&total); err != nil {
		zap.L().Error("can't count notifications", zap.Error(err))
		return nil, 0, 0, err
	}

	query := `
        SELECT id, user_id, type, title, message, read_flag, created_at
        FROM notifications
        WHERE ` + cond + `
        ORDER BY created_at DESC
        LIMIT ` + arg(filters.Limit) + ` OFFSET ` + arg((filters.Page-1)*filters.Limit)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list notifications", zap.Error(err))
		return nil, 0, 0, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.ReadFlag, &n.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan notification row", zap.Error(err))
			return nil, 0, 0, err
		}
		notifications = append(notifications, n)
	}
	return notifications, total, unread, nil
}

// MarkRead flips the flag only for the owner's notification; it reports
// whether a row was updated.
func (r *Repository) MarkRead(ctx context.Context, userID, notificationID int) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE notifications SET read_flag = TRUE WHERE id = $1 AND user_id = $2`, notificationID, userID)
	if err != nil {
		zap.L().Error("can't mark notification read", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) MarkAllRead(ctx context.Context, userID int) (int, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE notifications SET read_flag = TRUE WHERE user_id = $1 AND NOT read_flag`, userID)
	if err != nil {
		zap.L().Error("can't mark notifications read", zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
