package service

import (
	"context"
	"time"

	"roadassist/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// RequestService owns the create-request use case and the assignment trigger
// that runs inside it.
type RequestService interface {
	Create(ctx context.Context, req domain.CreateServiceRequestRequest) (*domain.ServiceRequest, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.ServiceRequest, error)
	AssignPending(ctx context.Context, id uuid.UUID) (*domain.ServiceRequest, error)
}

// MechanicRegistryService manages the registry the assignment engine reads.
type MechanicRegistryService interface {
	Register(ctx context.Context, req domain.RegisterMechanicRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.Mechanic, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Mechanic, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateMechanicRequest) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type NotificationService interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Notification, error)
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.AssignmentStats, error)
}

type MechanicRepository interface {
	Create(ctx context.Context, m *domain.Mechanic) error
	List(ctx context.Context, page, limit int) ([]*domain.Mechanic, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Mechanic, error)
	Update(ctx context.Context, m *domain.Mechanic) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	ListEligible(ctx context.Context) ([]*domain.Mechanic, error)
}

// RequestRepository persists service requests. Create and Assign must write
// the request row and all notification rows as one atomic unit: either
// everything commits or nothing does.
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

// RosterCache holds the eligible-mechanic snapshot the selector reads first;
// Postgres is the fallback on a miss.
type RosterCache interface {
	GetEligible(ctx context.Context) ([]*domain.Mechanic, error)
	SetEligible(ctx context.Context, mechanics []*domain.Mechanic, ttl time.Duration) error
}

type PushQueue interface {
	Enqueue(ctx context.Context, payload domain.PushPayload) error
}

type Service struct {
	RequestService          RequestService
	MechanicRegistryService MechanicRegistryService
	NotificationService     NotificationService
	StatsService            StatsService
}

func NewService(
	requestService RequestService,
	mechanicRegistryService MechanicRegistryService,
	notificationService NotificationService,
	statsService StatsService,
) *Service {
	return &Service{
		RequestService:          requestService,
		MechanicRegistryService: mechanicRegistryService,
		NotificationService:     notificationService,
		StatsService:            statsService,
	}
}
