package postgres

import (
	"context"

	"roadassist/internal/domain"

	"github.com/google/uuid"
)

type MechanicRepository interface {
	Create(ctx context.Context, m *domain.Mechanic) error
	List(ctx context.Context, page, limit int) ([]*domain.Mechanic, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Mechanic, error)
	Update(ctx context.Context, m *domain.Mechanic) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	ListEligible(ctx context.Context) ([]*domain.Mechanic, error)
}

type RequestRepository interface {
	Create(ctx context.Context, r *domain.ServiceRequest, notifications []*domain.Notification) error
	Assign(ctx context.Context, r *domain.ServiceRequest, notifications []*domain.Notification) error
	Get(ctx context.Context, id uuid.UUID) (*domain.ServiceRequest, error)
}

type NotificationRepository interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Notification, error)
}

type StatsRepository interface {
	CountByStatus(ctx context.Context, status domain.RequestStatus) (int64, error)
	CountUniqueCustomers(ctx context.Context, minutes int) (int64, error)
}

func (p *Postgres) Mechanics() MechanicRepository         { return p.Mechanic }
func (p *Postgres) Requests() RequestRepository           { return p.Request }
func (p *Postgres) Notifications() NotificationRepository { return p.Notification }
func (p *Postgres) Stats() StatsRepository                { return p.Stat }
