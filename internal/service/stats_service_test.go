package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"roadassist/internal/domain"
	"roadassist/internal/service"
	mock_service "roadassist/internal/service/mocks"
)

func TestStatsService_GetStats(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockStatsRepository(ctrl)
	svc := service.NewStatsService(repo)

	repo.EXPECT().CountByStatus(gomock.Any(), domain.RequestPending).Return(int64(4), nil)
	repo.EXPECT().CountByStatus(gomock.Any(), domain.RequestAssigned).Return(int64(9), nil)
	repo.EXPECT().CountUniqueCustomers(gomock.Any(), 30).Return(int64(7), nil)

	got, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.AssignmentStats{Pending: 4, Assigned: 9, UniqueCustomers: 7, Minutes: 30}
	if *got != want {
		t.Errorf("got %+v, want %+v", *got, want)
	}
}

func TestStatsService_GetStats_DefaultWindow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockStatsRepository(ctrl)
	svc := service.NewStatsService(repo)

	repo.EXPECT().CountByStatus(gomock.Any(), domain.RequestPending).Return(int64(0), nil)
	repo.EXPECT().CountByStatus(gomock.Any(), domain.RequestAssigned).Return(int64(0), nil)
	repo.EXPECT().CountUniqueCustomers(gomock.Any(), 60).Return(int64(0), nil)

	got, err := svc.GetStats(context.Background(), domain.StatsRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Minutes != 60 {
		t.Errorf("expected default window of 60 minutes, got %d", got.Minutes)
	}
}

func TestStatsService_GetStats_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockStatsRepository(ctrl)
	svc := service.NewStatsService(repo)

	repoErr := errors.New("pg down")
	repo.EXPECT().CountByStatus(gomock.Any(), domain.RequestPending).Return(int64(0), repoErr)

	if _, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 15}); !errors.Is(err, repoErr) {
		t.Errorf("expected repo error to propagate, got %v", err)
	}
}
