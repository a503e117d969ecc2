package service

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"roadassist/internal/domain"
	"roadassist/pkg/e"

	"github.com/google/uuid"
)

type requestService struct {
	requests  RequestRepository
	mechanics MechanicRepository
	roster    RosterCache
	pushQueue PushQueue
	logger    *slog.Logger
	cacheTTL  time.Duration
}

func NewRequestService(
	requests RequestRepository,
	mechanics MechanicRepository,
	roster RosterCache,
	pushQueue PushQueue,
	logger *slog.Logger,
	cacheTTL time.Duration,
) RequestService {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &requestService{
		requests:  requests,
		mechanics: mechanics,
		roster:    roster,
		pushQueue: pushQueue,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// Create inserts a new service request and runs the assignment trigger as
// part of the same unit of work. The request row, its possible mutation to
// assigned, and the notification rows commit together or not at all.
func (s *requestService) Create(ctx context.Context, req domain.CreateServiceRequestRequest) (*domain.ServiceRequest, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, e.ErrInvalidInput
	}

	if req.Lat == nil || req.Lng == nil {
		return nil, e.ErrInvalidInput
	}
	lat, lng := *req.Lat, *req.Lng

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		s.logger.Warn("invalid request coordinates",
			slog.String("customer_id", req.CustomerID),
			slog.Float64("lat", lat),
			slog.Float64("lng", lng),
		)
		return nil, e.ErrInvalidCoordinates
	}

	sr := &domain.ServiceRequest{
		ID:         uuid.New(),
		CustomerID: customerID,
		Status:     domain.RequestPending,
		Lat:        lat,
		Lng:        lng,
		Issue:      req.Issue,
		CreatedAt:  time.Now().UTC(),
	}
	sr.UpdatedAt = sr.CreatedAt

	notifications, err := s.assign(ctx, sr)
	if err != nil {
		return nil, err
	}

	if err := s.requests.Create(ctx, sr, notifications); err != nil {
		s.logger.Error("request create failed",
			slog.String("request_id", sr.ID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.Info("service request created",
		slog.String("request_id", sr.ID.String()),
		slog.String("status", string(sr.Status)),
	)

	s.enqueuePush(ctx, notifications)

	return sr, nil
}

func (s *requestService) Get(ctx context.Context, id uuid.UUID) (*domain.ServiceRequest, error) {
	return s.requests.Get(ctx, id)
}

// AssignPending re-runs the selector for a request that was left pending at
// creation time. It is a strict no-op for anything already assigned or in a
// later status.
func (s *requestService) AssignPending(ctx context.Context, id uuid.UUID) (*domain.ServiceRequest, error) {
	sr, err := s.requests.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !sr.Unassigned() {
		s.logger.Debug("assign skipped, request not pending",
			slog.String("request_id", sr.ID.String()),
			slog.String("status", string(sr.Status)),
		)
		return sr, nil
	}

	notifications, err := s.assign(ctx, sr)
	if err != nil {
		return nil, err
	}
	if sr.MechanicID == nil {
		return sr, nil
	}

	sr.UpdatedAt = time.Now().UTC()
	if err := s.requests.Assign(ctx, sr, notifications); err != nil {
		return nil, err
	}

	s.enqueuePush(ctx, notifications)

	return sr, nil
}

// assign mutates sr in place when a mechanic is found and returns the
// notifications that belong to the same unit of work. No match is not an
// error: sr simply stays pending and no notifications are produced.
func (s *requestService) assign(ctx context.Context, sr *domain.ServiceRequest) ([]*domain.Notification, error) {
	if !sr.Unassigned() {
		return nil, nil
	}

	loc := sr.Location()
	if !loc.Valid() {
		// should not happen, location is required upstream; treat as
		// "no eligible mechanics" rather than failing the create
		return nil, nil
	}

	candidates, err := s.eligibleSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	winner := NearestMechanic(candidates, loc)
	if winner == nil {
		s.logger.Info("no eligible mechanic in range",
			slog.String("request_id", sr.ID.String()),
			slog.Int("candidates", len(candidates)),
		)
		return nil, nil
	}

	sr.MechanicID = &winner.ID
	sr.Status = domain.RequestAssigned

	s.logger.Info("mechanic assigned",
		slog.String("request_id", sr.ID.String()),
		slog.String("mechanic_id", winner.ID.String()),
	)

	return buildAssignmentNotifications(sr, winner), nil
}

func (s *requestService) eligibleSnapshot(ctx context.Context) ([]*domain.Mechanic, error) {
	if s.roster != nil {
		cached, err := s.roster.GetEligible(ctx)
		if err != nil {
			s.logger.Warn("roster cache read failed", slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	mechanics, err := s.mechanics.ListEligible(ctx)
	if err != nil {
		return nil, err
	}

	if s.roster != nil {
		if err := s.roster.SetEligible(ctx, mechanics, s.cacheTTL); err != nil {
			s.logger.Warn("roster cache write failed", slog.Any("error", err))
		}
	}

	return mechanics, nil
}

func buildAssignmentNotifications(sr *domain.ServiceRequest, winner *domain.Mechanic) []*domain.Notification {
	now := time.Now().UTC()

	return []*domain.Notification{
		{
			ID:        uuid.New(),
			AccountID: winner.AccountID,
			Type:      domain.NotificationServiceAssigned,
			Title:     "New service request",
			Message:   fmt.Sprintf("You have been assigned a service request: %s", sr.Issue),
			ActionURL: "/mechanic/requests/" + sr.ID.String(),
			CreatedAt: now,
		},
		{
			ID:        uuid.New(),
			AccountID: sr.CustomerID,
			Type:      domain.NotificationMechanicAssigned,
			Title:     "Mechanic assigned",
			Message:   "A mechanic has been assigned to your request and will contact you shortly.",
			ActionURL: "/customer/requests/" + sr.ID.String(),
			CreatedAt: now,
		},
	}
}

// enqueuePush hands committed notifications to the push dispatcher. Delivery
// is best-effort: the rows are already durable, so a failed enqueue is logged
// and never fails the request.
func (s *requestService) enqueuePush(ctx context.Context, notifications []*domain.Notification) {
	if s.pushQueue == nil {
		return
	}
	for _, n := range notifications {
		payload := domain.PushPayload{
			NotificationID: n.ID,
			AccountID:      n.AccountID,
			Type:           n.Type,
			Title:          n.Title,
			Message:        n.Message,
			ActionURL:      n.ActionURL,
			QueuedAt:       time.Now().UTC(),
		}
		if err := s.pushQueue.Enqueue(ctx, payload); err != nil {
			s.logger.Error("push enqueue failed",
				slog.String("notification_id", n.ID.String()),
				slog.Any("error", err),
			)
		}
	}
}
