package postgres

import (
	"context"

	"log/slog"

	"roadassist/internal/domain"
	"roadassist/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsRepo(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (p *StatsRepo) CountByStatus(ctx context.Context, status domain.RequestStatus) (int64, error) {
	const op = "postgres.Stats.CountByStatus"

	const query = `SELECT COUNT(*) FROM service_requests WHERE status = $1`

	var count int64
	if err := p.pool.QueryRow(ctx, query, status).Scan(&count); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return count, nil
}

func (p *StatsRepo) CountUniqueCustomers(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.Stats.CountUniqueCustomers"

	const query = `
		SELECT COUNT(DISTINCT customer_id)
		FROM service_requests
		WHERE created_at > now() - ($1 * interval '1 minute')
	`

	var count int64
	if err := p.pool.QueryRow(ctx, query, minutes).Scan(&count); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return count, nil
}
