package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"roadassist/internal/domain"
	"roadassist/internal/service"
	mock_service "roadassist/internal/service/mocks"
	"roadassist/pkg/e"
)

func newRegistryService(t *testing.T) (service.MechanicRegistryService, *mock_service.MockMechanicRepository, *mock_service.MockRosterCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockMechanicRepository(ctrl)
	roster := mock_service.NewMockRosterCache(ctrl)

	svc := service.NewMechanicRegistryService(repo, roster, discardLogger(), 10, 30*time.Second)
	return svc, repo, roster
}

func TestRegistryService_Register_Defaults(t *testing.T) {
	t.Parallel()

	svc, repo, roster := newRegistryService(t)
	ctx := context.Background()

	accountID := uuid.New()

	var created *domain.Mechanic
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *domain.Mechanic) error {
			created = m
			return nil
		})
	repo.EXPECT().ListEligible(gomock.Any()).Return(nil, nil)
	roster.EXPECT().SetEligible(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	id, err := svc.Register(ctx, domain.RegisterMechanicRequest{
		AccountID: accountID.String(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("expected a mechanic id")
	}

	if created.AccountID != accountID {
		t.Errorf("expected account %v, got %v", accountID, created.AccountID)
	}
	if created.IsAvailable || created.IsApproved {
		t.Error("a new mechanic must start unavailable and unapproved")
	}
	if !created.AccountActive {
		t.Error("a new mechanic must start with an active account")
	}
	if created.ServiceRadiusKm != 10 {
		t.Errorf("expected default radius 10, got %f", created.ServiceRadiusKm)
	}
	if created.Position.Known() {
		t.Error("position must stay unknown until provided")
	}
}

func TestRegistryService_Register_RadiusOverride(t *testing.T) {
	t.Parallel()

	svc, repo, roster := newRegistryService(t)
	ctx := context.Background()

	radius := 25.0

	var created *domain.Mechanic
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *domain.Mechanic) error {
			created = m
			return nil
		})
	repo.EXPECT().ListEligible(gomock.Any()).Return(nil, nil)
	roster.EXPECT().SetEligible(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	if _, err := svc.Register(ctx, domain.RegisterMechanicRequest{
		AccountID:       uuid.New().String(),
		ServiceRadiusKm: &radius,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ServiceRadiusKm != radius {
		t.Errorf("expected radius %f, got %f", radius, created.ServiceRadiusKm)
	}
}

func TestRegistryService_Register_InvalidAccount(t *testing.T) {
	t.Parallel()

	svc, _, _ := newRegistryService(t)

	_, err := svc.Register(context.Background(), domain.RegisterMechanicRequest{
		AccountID: "nope",
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegistryService_Update_PatchSemantics(t *testing.T) {
	t.Parallel()

	svc, repo, roster := newRegistryService(t)
	ctx := context.Background()

	existing := mechanicAt(12.9716, 77.5946, 10)
	existing.IsAvailable = false

	repo.EXPECT().Get(gomock.Any(), existing.ID).Return(existing, nil)

	var updated *domain.Mechanic
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *domain.Mechanic) error {
			updated = m
			return nil
		})
	repo.EXPECT().ListEligible(gomock.Any()).Return(nil, nil)
	roster.EXPECT().SetEligible(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	available := true
	if err := svc.Update(ctx, existing.ID, domain.UpdateMechanicRequest{
		IsAvailable: &available,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !updated.IsAvailable {
		t.Error("expected availability to be set")
	}
	// untouched fields keep their values
	if !updated.IsApproved || !updated.AccountActive {
		t.Error("unset fields must not be modified")
	}
	if updated.ServiceRadiusKm != 10 {
		t.Errorf("expected radius untouched, got %f", updated.ServiceRadiusKm)
	}
	if !updated.Position.Known() {
		t.Error("expected position untouched")
	}
}

func TestRegistryService_Update_NotFound(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newRegistryService(t)

	id := uuid.New()
	repo.EXPECT().Get(gomock.Any(), id).Return(nil, e.ErrNotFound)

	err := svc.Update(context.Background(), id, domain.UpdateMechanicRequest{})
	if !errors.Is(err, e.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRegistryService_Deactivate_RefreshesRoster(t *testing.T) {
	t.Parallel()

	svc, repo, roster := newRegistryService(t)
	ctx := context.Background()

	id := uuid.New()
	repo.EXPECT().Deactivate(gomock.Any(), id).Return(nil)
	repo.EXPECT().ListEligible(gomock.Any()).Return([]*domain.Mechanic{}, nil)
	roster.EXPECT().SetEligible(gomock.Any(), gomock.Any(), 30*time.Second).Return(nil)

	if err := svc.Deactivate(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegistryService_Deactivate_RosterFailureIsBestEffort(t *testing.T) {
	t.Parallel()

	svc, repo, roster := newRegistryService(t)
	ctx := context.Background()

	id := uuid.New()
	repo.EXPECT().Deactivate(gomock.Any(), id).Return(nil)
	repo.EXPECT().ListEligible(gomock.Any()).Return(nil, errors.New("pg down"))
	_ = roster // SetEligible must not be called after a failed listing

	if err := svc.Deactivate(ctx, id); err != nil {
		t.Fatalf("roster refresh failure must not surface, got: %v", err)
	}
}
