package postgres

import (
	"context"
	"errors"
	"fmt"

	"log/slog"

	"roadassist/internal/domain"
	"roadassist/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MechanicRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewMechanicRepo(pool *pgxpool.Pool, logger *slog.Logger) *MechanicRepo {
	return &MechanicRepo{pool: pool, logger: logger}
}

const mechanicColumns = `id, account_id, lat, lng, is_available, is_approved, account_active, service_radius_km, created_at`

func (p *MechanicRepo) Create(ctx context.Context, m *domain.Mechanic) error {
	const op = "postgres.Mechanic.Create"

	const query = `
		INSERT INTO mechanics (id, account_id, lat, lng, is_available, is_approved, account_active, service_radius_km, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if m.ServiceRadiusKm <= 0 {
		m.ServiceRadiusKm = domain.DefaultServiceRadiusKm
	}

	_, err := p.pool.Exec(ctx, query,
		m.ID,
		m.AccountID,
		m.Position.Lat,
		m.Position.Lng,
		m.IsAvailable,
		m.IsApproved,
		m.AccountActive,
		m.ServiceRadiusKm,
		m.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *MechanicRepo) List(ctx context.Context, page, limit int) ([]*domain.Mechanic, int64, error) {
	const op = "postgres.Mechanic.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `SELECT COUNT(*) FROM mechanics`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := `
		SELECT ` + mechanicColumns + `
		FROM mechanics
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.pool.Query(ctx, listQuery, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	mechanics, err := p.scanMechanics(rows, op)
	if err != nil {
		return nil, 0, err
	}

	return mechanics, total, nil
}

func (p *MechanicRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Mechanic, error) {
	const op = "postgres.Mechanic.Get"

	query := `
		SELECT ` + mechanicColumns + `
		FROM mechanics
		WHERE id = $1
	`

	var m domain.Mechanic
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.AccountID,
		&m.Position.Lat,
		&m.Position.Lng,
		&m.IsAvailable,
		&m.IsApproved,
		&m.AccountActive,
		&m.ServiceRadiusKm,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &m, nil
}

func (p *MechanicRepo) Update(ctx context.Context, m *domain.Mechanic) error {
	const op = "postgres.Mechanic.Update"

	const query = `
		UPDATE mechanics
		SET lat               = $2,
			lng               = $3,
			is_available      = $4,
			is_approved       = $5,
			account_active    = $6,
			service_radius_km = $7
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		m.ID,
		m.Position.Lat,
		m.Position.Lng,
		m.IsAvailable,
		m.IsApproved,
		m.AccountActive,
		m.ServiceRadiusKm,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", m.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *MechanicRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Mechanic.Deactivate"

	const query = `
		UPDATE mechanics
		SET account_active = false
		WHERE id = $1 AND account_active = true
	`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// ListEligible returns the candidate snapshot for the selector: available,
// approved, active account, known position. Range filtering happens in the
// selector because it depends on each mechanic's own radius.
func (p *MechanicRepo) ListEligible(ctx context.Context) ([]*domain.Mechanic, error) {
	const op = "postgres.Mechanic.ListEligible"

	query := `
		SELECT ` + mechanicColumns + `
		FROM mechanics
		WHERE is_available = true
		  AND is_approved = true
		  AND account_active = true
		  AND lat IS NOT NULL
		  AND lng IS NOT NULL
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return p.scanMechanics(rows, op)
}

func (p *MechanicRepo) scanMechanics(rows pgx.Rows, op string) ([]*domain.Mechanic, error) {
	var mechanics []*domain.Mechanic
	for rows.Next() {
		var m domain.Mechanic
		if err := rows.Scan(
			&m.ID,
			&m.AccountID,
			&m.Position.Lat,
			&m.Position.Lng,
			&m.IsAvailable,
			&m.IsApproved,
			&m.AccountActive,
			&m.ServiceRadiusKm,
			&m.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(context.Background(), op, err)
		}
		mechanics = append(mechanics, &m)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(context.Background(), op, err)
	}

	return mechanics, nil
}
