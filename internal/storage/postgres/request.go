package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"roadassist/internal/domain"
	"roadassist/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewRequestRepo(pool *pgxpool.Pool, logger *slog.Logger) *RequestRepo {
	return &RequestRepo{pool: pool, logger: logger}
}

// Create writes the service request and its assignment notifications in one
// transaction. A request must never become visible assigned-but-unnotified or
// notified-but-absent, so everything commits or everything rolls back.
func (p *RequestRepo) Create(ctx context.Context, r *domain.ServiceRequest, notifications []*domain.Notification) error {
	const op = "postgres.Request.Create"

	if r == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if r.Lat < -90 || r.Lat > 90 || r.Lng < -180 || r.Lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
		r.UpdatedAt = r.CreatedAt
	}
	if r.Status == "" {
		r.Status = domain.RequestPending
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Error("tx begin failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	const insertRequest = `
		INSERT INTO service_requests (id, customer_id, mechanic_id, status, lat, lng, issue, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = tx.Exec(ctx, insertRequest,
		r.ID,
		r.CustomerID,
		r.MechanicID,
		r.Status,
		r.Lat,
		r.Lng,
		r.Issue,
		r.CreatedAt,
		r.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if err := insertNotifications(ctx, tx, notifications); err != nil {
		p.logger.Error("notification insert failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("tx commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// Assign updates a pending request to its matched mechanic and writes the
// notifications in the same transaction. The status guard in the WHERE clause
// keeps a concurrent assignment from being overwritten.
func (p *RequestRepo) Assign(ctx context.Context, r *domain.ServiceRequest, notifications []*domain.Notification) error {
	const op = "postgres.Request.Assign"

	if r == nil || r.MechanicID == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Error("tx begin failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	const updateRequest = `
		UPDATE service_requests
		SET mechanic_id = $2,
			status      = $3,
			updated_at  = $4
		WHERE id = $1 AND status = 'pending' AND mechanic_id IS NULL
	`

	cmd, err := tx.Exec(ctx, updateRequest,
		r.ID,
		r.MechanicID,
		r.Status,
		r.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrConflict)
	}

	if err := insertNotifications(ctx, tx, notifications); err != nil {
		p.logger.Error("notification insert failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("tx commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func insertNotifications(ctx context.Context, tx pgx.Tx, notifications []*domain.Notification) error {
	const query = `
		INSERT INTO notifications (id, account_id, type, title, message, action_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, n := range notifications {
		if n.ID == uuid.Nil {
			n.ID = uuid.New()
		}
		if n.CreatedAt.IsZero() {
			n.CreatedAt = time.Now().UTC()
		}
		if _, err := tx.Exec(ctx, query,
			n.ID,
			n.AccountID,
			n.Type,
			n.Title,
			n.Message,
			n.ActionURL,
			n.CreatedAt,
		); err != nil {
			return err
		}
	}
	return nil
}

func (p *RequestRepo) Get(ctx context.Context, id uuid.UUID) (*domain.ServiceRequest, error) {
	const op = "postgres.Request.Get"

	const query = `
		SELECT id, customer_id, mechanic_id, status, lat, lng, issue, created_at, updated_at
		FROM service_requests
		WHERE id = $1
	`

	var r domain.ServiceRequest
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&r.ID,
		&r.CustomerID,
		&r.MechanicID,
		&r.Status,
		&r.Lat,
		&r.Lng,
		&r.Issue,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &r, nil
}
