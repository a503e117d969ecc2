package postgres

import (
	"context"

	"log/slog"

	"roadassist/internal/domain"
	"roadassist/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewNotificationRepo(pool *pgxpool.Pool, logger *slog.Logger) *NotificationRepo {
	return &NotificationRepo{pool: pool, logger: logger}
}

func (p *NotificationRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Notification, error) {
	const op = "postgres.Notification.ListByAccount"

	const query = `
		SELECT id, account_id, type, title, message, action_url, created_at
		FROM notifications
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT 100
	`

	rows, err := p.pool.Query(ctx, query, accountID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	notifications := make([]domain.Notification, 0, 8)
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(
			&n.ID,
			&n.AccountID,
			&n.Type,
			&n.Title,
			&n.Message,
			&n.ActionURL,
			&n.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return notifications, nil
}
