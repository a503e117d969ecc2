package service

import (
	"context"

	"roadassist/internal/domain"
)

type statsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.AssignmentStats, error) {
	minutes := req.Minutes
	if minutes == 0 {
		minutes = 60
	}

	pending, err := s.repo.CountByStatus(ctx, domain.RequestPending)
	if err != nil {
		return nil, err
	}

	assigned, err := s.repo.CountByStatus(ctx, domain.RequestAssigned)
	if err != nil {
		return nil, err
	}

	unique, err := s.repo.CountUniqueCustomers(ctx, minutes)
	if err != nil {
		return nil, err
	}

	return &domain.AssignmentStats{
		Pending:         pending,
		Assigned:        assigned,
		UniqueCustomers: unique,
		Minutes:         minutes,
	}, nil
}
