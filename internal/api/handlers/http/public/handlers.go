package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"roadassist/internal/domain"
	"roadassist/pkg/validator"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type RequestHandler interface {
	Create(ctx context.Context, req domain.CreateServiceRequestRequest) (*domain.ServiceRequest, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.ServiceRequest, error)
}

type NotificationLister interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Notification, error)
}

type Handler struct {
	logger        *slog.Logger
	Requests      RequestHandler
	Notifications NotificationLister
}

func NewHandler(logger *slog.Logger, requests RequestHandler, notifications NotificationLister) *Handler {
	return &Handler{
		logger:        logger,
		Requests:      requests,
		Notifications: notifications,
	}
}

// PublicRequestCreate is the single entry point that fires the assignment
// trigger: the request insert, its possible pending->assigned transition and
// both notifications happen inside this call.
func (h *Handler) PublicRequestCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateServiceRequestRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("create request validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	l.Info("creating service request",
		slog.String("customer_id", req.CustomerID),
		slog.Float64("lat", *req.Lat),
		slog.Float64("lng", *req.Lng),
	)

	sr, err := h.Requests.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, sr)
}

func (h *Handler) PublicRequestGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request id"})
		return
	}

	sr, err := h.Requests.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, sr)
}

func (h *Handler) PublicNotificationList(w http.ResponseWriter, r *http.Request) {
	accountID, err := uuid.Parse(chi.URLParam(r, "accountID"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid account id"})
		return
	}

	notifications, err := h.Notifications.ListByAccount(r.Context(), accountID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if notifications == nil {
		notifications = []domain.Notification{}
	}

	h.writeJSON(w, http.StatusOK, domain.ListNotificationsResponse{
		Notifications: notifications,
		AccountID:     accountID,
	})
}
