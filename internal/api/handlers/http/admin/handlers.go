package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"log/slog"

	"roadassist/internal/domain"
	"roadassist/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type MechanicRegistry interface {
	Register(ctx context.Context, req domain.RegisterMechanicRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.Mechanic, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Mechanic, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateMechanicRequest) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type RequestAssigner interface {
	AssignPending(ctx context.Context, id uuid.UUID) (*domain.ServiceRequest, error)
}

type StatsGetter interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.AssignmentStats, error)
}

type Handler struct {
	logger   *slog.Logger
	Registry MechanicRegistry
	Assigner RequestAssigner
	Stats    StatsGetter
}

func NewHandler(logger *slog.Logger, registry MechanicRegistry, assigner RequestAssigner, stats StatsGetter) *Handler {
	return &Handler{
		logger:   logger,
		Registry: registry,
		Assigner: assigner,
		Stats:    stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminMechanicCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.RegisterMechanicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	l.Info("registering mechanic", slog.String("account_id", req.AccountID))

	id, err := h.Registry.Register(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) AdminMechanicList(w http.ResponseWriter, r *http.Request) {
	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)

	mechanics, total, err := h.Registry.List(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, err)
		return
	}

	resp := domain.ListMechanicsResponse{
		Mechanics: make([]domain.Mechanic, 0, len(mechanics)),
		Page:      page,
		Limit:     limit,
		Total:     total,
	}
	for _, m := range mechanics {
		resp.Mechanics = append(resp.Mechanics, *m)
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) AdminMechanicGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid mechanic id"})
		return
	}

	m, err := h.Registry.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, m)
}

func (h *Handler) AdminMechanicUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid mechanic id"})
		return
	}

	var req domain.UpdateMechanicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	l.Info("updating mechanic", slog.String("id", id.String()))

	if err := h.Registry.Update(r.Context(), id, req); err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) AdminMechanicDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid mechanic id"})
		return
	}

	if err := h.Registry.Deactivate(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

// AdminRequestAssign retries matching for a request that stayed pending at
// creation. No-op for anything already assigned.
func (h *Handler) AdminRequestAssign(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request id"})
		return
	}

	sr, err := h.Assigner.AssignPending(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, sr)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	minutes := parseInt(r.URL.Query().Get("minutes"), 60)
	// window is capped at one day, garbage values fall back to the default
	if minutes < 1 || minutes > 1440 {
		minutes = 60
	}

	req := domain.StatsRequest{Minutes: minutes}

	stats, err := h.Stats.GetStats(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
