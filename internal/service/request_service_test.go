package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"log/slog"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"roadassist/internal/domain"
	"roadassist/internal/service"
	mock_service "roadassist/internal/service/mocks"
	"roadassist/pkg/e"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func f64(v float64) *float64 {
	return &v
}

type requestServiceMocks struct {
	requests  *mock_service.MockRequestRepository
	mechanics *mock_service.MockMechanicRepository
	roster    *mock_service.MockRosterCache
	pushQueue *mock_service.MockPushQueue
}

func newRequestService(t *testing.T) (service.RequestService, requestServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := requestServiceMocks{
		requests:  mock_service.NewMockRequestRepository(ctrl),
		mechanics: mock_service.NewMockMechanicRepository(ctrl),
		roster:    mock_service.NewMockRosterCache(ctrl),
		pushQueue: mock_service.NewMockPushQueue(ctrl),
	}

	svc := service.NewRequestService(
		m.requests,
		m.mechanics,
		m.roster,
		m.pushQueue,
		discardLogger(),
		30*time.Second,
	)
	return svc, m
}

func TestRequestService_Create_AssignsNearestMechanic(t *testing.T) {
	t.Parallel()

	svc, m := newRequestService(t)
	ctx := context.Background()

	customerID := uuid.New()
	mechanic := mechanicAt(12.9816, 77.6046, 15)

	m.roster.EXPECT().GetEligible(gomock.Any()).Return(nil, nil)
	m.mechanics.EXPECT().ListEligible(gomock.Any()).Return([]*domain.Mechanic{mechanic}, nil)
	m.roster.EXPECT().SetEligible(gomock.Any(), gomock.Any(), 30*time.Second).Return(nil)

	var stored *domain.ServiceRequest
	var storedNotifications []*domain.Notification
	m.requests.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sr *domain.ServiceRequest, ns []*domain.Notification) error {
			stored = sr
			storedNotifications = ns
			return nil
		})
	m.pushQueue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	sr, err := svc.Create(ctx, domain.CreateServiceRequestRequest{
		CustomerID: customerID.String(),
		Lat:        f64(12.9716),
		Lng:        f64(77.5946),
		Issue:      "flat tyre",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sr.Status != domain.RequestAssigned {
		t.Errorf("expected status %q, got %q", domain.RequestAssigned, sr.Status)
	}
	if sr.MechanicID == nil || *sr.MechanicID != mechanic.ID {
		t.Errorf("expected mechanic %v to be assigned", mechanic.ID)
	}
	if stored != sr {
		t.Error("expected the same request to be persisted")
	}

	if len(storedNotifications) != 2 {
		t.Fatalf("expected exactly 2 notifications, got %d", len(storedNotifications))
	}

	byType := map[domain.NotificationType]*domain.Notification{}
	for _, n := range storedNotifications {
		byType[n.Type] = n
	}

	toMechanic, ok := byType[domain.NotificationServiceAssigned]
	if !ok {
		t.Fatal("expected a service_assigned notification")
	}
	if toMechanic.AccountID != mechanic.AccountID {
		t.Errorf("service_assigned should target the mechanic account, got %v", toMechanic.AccountID)
	}
	if !strings.Contains(toMechanic.ActionURL, sr.ID.String()) {
		t.Errorf("action URL %q should reference the request id", toMechanic.ActionURL)
	}

	toCustomer, ok := byType[domain.NotificationMechanicAssigned]
	if !ok {
		t.Fatal("expected a mechanic_assigned notification")
	}
	if toCustomer.AccountID != customerID {
		t.Errorf("mechanic_assigned should target the customer account, got %v", toCustomer.AccountID)
	}
	if !strings.Contains(toCustomer.ActionURL, sr.ID.String()) {
		t.Errorf("action URL %q should reference the request id", toCustomer.ActionURL)
	}
}

func TestRequestService_Create_NoMechanicStaysPending(t *testing.T) {
	t.Parallel()

	svc, m := newRequestService(t)
	ctx := context.Background()

	m.roster.EXPECT().GetEligible(gomock.Any()).Return(nil, nil)
	m.mechanics.EXPECT().ListEligible(gomock.Any()).Return([]*domain.Mechanic{}, nil)
	m.roster.EXPECT().SetEligible(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	var storedNotifications []*domain.Notification
	m.requests.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.ServiceRequest, ns []*domain.Notification) error {
			storedNotifications = ns
			return nil
		})

	sr, err := svc.Create(ctx, domain.CreateServiceRequestRequest{
		CustomerID: uuid.New().String(),
		Lat:        f64(12.9716),
		Lng:        f64(77.5946),
		Issue:      "dead battery",
	})
	if err != nil {
		t.Fatalf("no match must not be an error, got: %v", err)
	}

	if sr.Status != domain.RequestPending {
		t.Errorf("expected status %q, got %q", domain.RequestPending, sr.Status)
	}
	if sr.MechanicID != nil {
		t.Errorf("expected nil mechanic, got %v", *sr.MechanicID)
	}
	if len(storedNotifications) != 0 {
		t.Errorf("expected no notifications, got %d", len(storedNotifications))
	}
}

func TestRequestService_Create_UsesCachedRoster(t *testing.T) {
	t.Parallel()

	svc, m := newRequestService(t)
	ctx := context.Background()

	mechanic := mechanicAt(12.9816, 77.6046, 15)

	// cache hit: Postgres roster listing must not be touched
	m.roster.EXPECT().GetEligible(gomock.Any()).Return([]*domain.Mechanic{mechanic}, nil)
	m.requests.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.pushQueue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	sr, err := svc.Create(ctx, domain.CreateServiceRequestRequest{
		CustomerID: uuid.New().String(),
		Lat:        f64(12.9716),
		Lng:        f64(77.5946),
		Issue:      "engine overheating",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sr.MechanicID == nil || *sr.MechanicID != mechanic.ID {
		t.Error("expected the cached mechanic to be assigned")
	}
}

func TestRequestService_Create_InvalidInput(t *testing.T) {
	t.Parallel()

	svc, _ := newRequestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateServiceRequestRequest{
		CustomerID: "not-a-uuid",
		Lat:        f64(12.9716),
		Lng:        f64(77.5946),
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	_, err = svc.Create(ctx, domain.CreateServiceRequestRequest{
		CustomerID: uuid.New().String(),
		Lat:        f64(91.0),
		Lng:        f64(77.5946),
	})
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Errorf("expected ErrInvalidCoordinates, got %v", err)
	}

	_, err = svc.Create(ctx, domain.CreateServiceRequestRequest{
		CustomerID: uuid.New().String(),
		Lat:        f64(12.9716),
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for missing lng, got %v", err)
	}
}

func TestRequestService_Create_ZeroCoordinatesAreValid(t *testing.T) {
	t.Parallel()

	svc, m := newRequestService(t)
	ctx := context.Background()

	// Greenwich meridian: lng is exactly 0 and must not be treated as absent
	mechanic := mechanicAt(51.4879, 0.01, 15)

	m.roster.EXPECT().GetEligible(gomock.Any()).Return([]*domain.Mechanic{mechanic}, nil)
	m.requests.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.pushQueue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	sr, err := svc.Create(ctx, domain.CreateServiceRequestRequest{
		CustomerID: uuid.New().String(),
		Lat:        f64(51.4779),
		Lng:        f64(0),
		Issue:      "flat tyre",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sr.Lng != 0 {
		t.Errorf("expected lng 0 to survive, got %f", sr.Lng)
	}
	if sr.MechanicID == nil || *sr.MechanicID != mechanic.ID {
		t.Error("expected the mechanic to be assigned")
	}
}

func TestRequestService_Create_StoreError(t *testing.T) {
	t.Parallel()

	svc, m := newRequestService(t)
	ctx := context.Background()

	m.roster.EXPECT().GetEligible(gomock.Any()).Return(nil, nil)
	m.mechanics.EXPECT().ListEligible(gomock.Any()).Return(nil, nil)
	m.roster.EXPECT().SetEligible(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	storeErr := errors.New("connection reset")
	m.requests.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(storeErr)

	_, err := svc.Create(ctx, domain.CreateServiceRequestRequest{
		CustomerID: uuid.New().String(),
		Lat:        f64(12.9716),
		Lng:        f64(77.5946),
	})
	if !errors.Is(err, storeErr) {
		t.Errorf("expected store error to propagate, got %v", err)
	}
}

func TestRequestService_AssignPending_AlreadyAssignedIsNoop(t *testing.T) {
	t.Parallel()

	svc, m := newRequestService(t)
	ctx := context.Background()

	mechanicID := uuid.New()
	assigned := &domain.ServiceRequest{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		MechanicID: &mechanicID,
		Status:     domain.RequestAssigned,
		Lat:        12.9716,
		Lng:        77.5946,
	}

	// only the read happens, no selector run, no store write, no push
	m.requests.EXPECT().Get(gomock.Any(), assigned.ID).Return(assigned, nil)

	sr, err := svc.AssignPending(ctx, assigned.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sr.MechanicID == nil || *sr.MechanicID != mechanicID {
		t.Error("existing assignment must not be overridden")
	}
}

func TestRequestService_AssignPending_MatchFound(t *testing.T) {
	t.Parallel()

	svc, m := newRequestService(t)
	ctx := context.Background()

	pending := &domain.ServiceRequest{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Status:     domain.RequestPending,
		Lat:        12.9716,
		Lng:        77.5946,
	}
	mechanic := mechanicAt(12.9816, 77.6046, 15)

	m.requests.EXPECT().Get(gomock.Any(), pending.ID).Return(pending, nil)
	m.roster.EXPECT().GetEligible(gomock.Any()).Return([]*domain.Mechanic{mechanic}, nil)

	m.requests.EXPECT().
		Assign(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sr *domain.ServiceRequest, ns []*domain.Notification) error {
			if sr.Status != domain.RequestAssigned {
				t.Errorf("expected status %q at store time, got %q", domain.RequestAssigned, sr.Status)
			}
			if len(ns) != 2 {
				t.Errorf("expected 2 notifications, got %d", len(ns))
			}
			return nil
		})
	m.pushQueue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	sr, err := svc.AssignPending(ctx, pending.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sr.MechanicID == nil || *sr.MechanicID != mechanic.ID {
		t.Error("expected the mechanic to be assigned")
	}
}

func TestRequestService_AssignPending_NoMatchLeavesPending(t *testing.T) {
	t.Parallel()

	svc, m := newRequestService(t)
	ctx := context.Background()

	pending := &domain.ServiceRequest{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Status:     domain.RequestPending,
		Lat:        12.9716,
		Lng:        77.5946,
	}

	m.requests.EXPECT().Get(gomock.Any(), pending.ID).Return(pending, nil)
	m.roster.EXPECT().GetEligible(gomock.Any()).Return(nil, nil)
	m.mechanics.EXPECT().ListEligible(gomock.Any()).Return(nil, nil)
	m.roster.EXPECT().SetEligible(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	sr, err := svc.AssignPending(ctx, pending.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sr.Status != domain.RequestPending {
		t.Errorf("expected status %q, got %q", domain.RequestPending, sr.Status)
	}
}
