package service

import (
	"context"
	"time"

	"log/slog"

	"roadassist/internal/domain"
	"roadassist/pkg/e"

	"github.com/google/uuid"
)

type registryService struct {
	repo            MechanicRepository
	roster          RosterCache
	logger          *slog.Logger
	defaultRadiusKm float64
	cacheTTL        time.Duration
}

func NewMechanicRegistryService(
	repo MechanicRepository,
	roster RosterCache,
	logger *slog.Logger,
	defaultRadiusKm float64,
	cacheTTL time.Duration,
) MechanicRegistryService {
	if defaultRadiusKm <= 0 {
		defaultRadiusKm = domain.DefaultServiceRadiusKm
	}
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &registryService{
		repo:            repo,
		roster:          roster,
		logger:          logger,
		defaultRadiusKm: defaultRadiusKm,
		cacheTTL:        cacheTTL,
	}
}

func (s *registryService) Register(ctx context.Context, req domain.RegisterMechanicRequest) (uuid.UUID, error) {
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return uuid.Nil, e.ErrInvalidInput
	}

	m := &domain.Mechanic{
		ID:              uuid.New(),
		AccountID:       accountID,
		Position:        domain.Coordinate{Lat: req.Lat, Lng: req.Lng},
		IsAvailable:     false,
		IsApproved:      false,
		AccountActive:   true,
		ServiceRadiusKm: s.defaultRadiusKm,
		CreatedAt:       time.Now().UTC(),
	}
	if req.ServiceRadiusKm != nil {
		m.ServiceRadiusKm = *req.ServiceRadiusKm
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return uuid.Nil, err
	}

	s.refreshRoster(ctx)
	return m.ID, nil
}

func (s *registryService) List(ctx context.Context, page, limit int) ([]*domain.Mechanic, int64, error) {
	return s.repo.List(ctx, page, limit)
}

func (s *registryService) Get(ctx context.Context, id uuid.UUID) (*domain.Mechanic, error) {
	return s.repo.Get(ctx, id)
}

func (s *registryService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateMechanicRequest) error {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Lat != nil {
		m.Position.Lat = req.Lat
	}
	if req.Lng != nil {
		m.Position.Lng = req.Lng
	}
	if req.IsAvailable != nil {
		m.IsAvailable = *req.IsAvailable
	}
	if req.IsApproved != nil {
		m.IsApproved = *req.IsApproved
	}
	if req.AccountActive != nil {
		m.AccountActive = *req.AccountActive
	}
	if req.ServiceRadiusKm != nil {
		m.ServiceRadiusKm = *req.ServiceRadiusKm
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return err
	}

	s.refreshRoster(ctx)
	return nil
}

func (s *registryService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.refreshRoster(ctx)
	return nil
}

// refreshRoster rebuilds the eligible snapshot after a registry mutation.
// Best-effort: the selector falls back to Postgres on a stale or empty cache.
func (s *registryService) refreshRoster(ctx context.Context) {
	if s.roster == nil {
		return
	}
	mechanics, err := s.repo.ListEligible(ctx)
	if err != nil {
		s.logger.Warn("roster refresh list failed", slog.Any("error", err))
		return
	}
	if err := s.roster.SetEligible(ctx, mechanics, s.cacheTTL); err != nil {
		s.logger.Warn("roster refresh write failed", slog.Any("error", err))
	}
}
