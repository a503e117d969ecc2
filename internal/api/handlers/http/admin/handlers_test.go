package admin_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"roadassist/internal/api/handlers/http/admin"
	mock_admin "roadassist/internal/api/handlers/http/admin/mocks"
	"roadassist/internal/domain"
	"roadassist/pkg/e"
)

type adminMocks struct {
	registry *mock_admin.MockMechanicRegistry
	assigner *mock_admin.MockRequestAssigner
	stats    *mock_admin.MockStatsGetter
}

func newTestServer(t *testing.T) (*httptest.Server, adminMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := adminMocks{
		registry: mock_admin.NewMockMechanicRegistry(ctrl),
		assigner: mock_admin.NewMockRequestAssigner(ctrl),
		stats:    mock_admin.NewMockStatsGetter(ctrl),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := admin.NewHandler(logger, m.registry, m.assigner, m.stats)

	r := chi.NewRouter()
	r.Post("/mechanics", h.AdminMechanicCreate)
	r.Get("/mechanics", h.AdminMechanicList)
	r.Get("/mechanics/{id}", h.AdminMechanicGet)
	r.Put("/mechanics/{id}", h.AdminMechanicUpdate)
	r.Delete("/mechanics/{id}", h.AdminMechanicDelete)
	r.Post("/requests/{id}/assign", h.AdminRequestAssign)
	r.Get("/stats", h.AdminStats)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv, m
}

func TestAdminMechanicCreate(t *testing.T) {
	t.Parallel()

	srv, m := newTestServer(t)

	accountID := uuid.New()
	mechanicID := uuid.New()

	m.registry.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req domain.RegisterMechanicRequest) (uuid.UUID, error) {
			if req.AccountID != accountID.String() {
				t.Errorf("expected account %s, got %s", accountID, req.AccountID)
			}
			return mechanicID, nil
		})

	body := fmt.Sprintf(`{"account_id":%q,"lat":12.9716,"lng":77.5946,"service_radius_km":15}`, accountID)
	resp, err := http.Post(srv.URL+"/mechanics", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got["id"] != mechanicID.String() {
		t.Errorf("expected id %s, got %s", mechanicID, got["id"])
	}
}

func TestAdminMechanicCreate_Validation(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{`},
		{"missing account", `{"lat":1,"lng":1}`},
		{"negative radius", fmt.Sprintf(`{"account_id":%q,"service_radius_km":-5}`, uuid.New())},
		{"lat out of range", fmt.Sprintf(`{"account_id":%q,"lat":95,"lng":1}`, uuid.New())},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp, err := http.Post(srv.URL+"/mechanics", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestAdminMechanicList(t *testing.T) {
	t.Parallel()

	srv, m := newTestServer(t)

	m.registry.EXPECT().
		List(gomock.Any(), 2, 5).
		Return([]*domain.Mechanic{
			{ID: uuid.New()},
			{ID: uuid.New()},
		}, int64(12), nil)

	resp, err := http.Get(srv.URL + "/mechanics?page=2&limit=5")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var got domain.ListMechanicsResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(got.Mechanics) != 2 || got.Total != 12 || got.Page != 2 || got.Limit != 5 {
		t.Errorf("unexpected listing: %+v", got)
	}
}

func TestAdminMechanicUpdate(t *testing.T) {
	t.Parallel()

	srv, m := newTestServer(t)

	id := uuid.New()
	m.registry.EXPECT().
		Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req domain.UpdateMechanicRequest) error {
			if req.IsAvailable == nil || !*req.IsAvailable {
				t.Error("expected is_available=true in the patch")
			}
			if req.Lat != nil {
				t.Error("lat must stay unset when omitted")
			}
			return nil
		})

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/mechanics/"+id.String(), strings.NewReader(`{"is_available":true}`))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAdminMechanicDelete_NotFound(t *testing.T) {
	t.Parallel()

	srv, m := newTestServer(t)

	id := uuid.New()
	m.registry.EXPECT().Deactivate(gomock.Any(), id).Return(e.ErrNotFound)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/mechanics/"+id.String(), nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestAdminRequestAssign(t *testing.T) {
	t.Parallel()

	srv, m := newTestServer(t)

	id := uuid.New()
	mechanicID := uuid.New()
	m.assigner.EXPECT().
		AssignPending(gomock.Any(), id).
		Return(&domain.ServiceRequest{
			ID:         id,
			MechanicID: &mechanicID,
			Status:     domain.RequestAssigned,
		}, nil)

	resp, err := http.Post(srv.URL+"/requests/"+id.String()+"/assign", "application/json", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var got domain.ServiceRequest
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.Status != domain.RequestAssigned {
		t.Errorf("expected status %q, got %q", domain.RequestAssigned, got.Status)
	}
}

func TestAdminRequestAssign_BadID(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/requests/garbage/assign", "application/json", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

func TestAdminStats_WindowClamped(t *testing.T) {
	t.Parallel()

	srv, m := newTestServer(t)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"negative window", "?minutes=-5", 60},
		{"zero window", "?minutes=0", 60},
		{"over one day", "?minutes=99999", 60},
		{"garbage", "?minutes=abc", 60},
		{"in range", "?minutes=1440", 1440},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m.stats.EXPECT().
				GetStats(gomock.Any(), domain.StatsRequest{Minutes: tt.want}).
				Return(&domain.AssignmentStats{Minutes: tt.want}, nil)

			resp, err := http.Get(srv.URL + "/stats" + tt.query)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Errorf("expected 200, got %d", resp.StatusCode)
			}
		})
	}
}

func TestAdminStats(t *testing.T) {
	t.Parallel()

	srv, m := newTestServer(t)

	m.stats.EXPECT().
		GetStats(gomock.Any(), domain.StatsRequest{Minutes: 30}).
		Return(&domain.AssignmentStats{
			Pending:         3,
			Assigned:        7,
			UniqueCustomers: 5,
			Minutes:         30,
		}, nil)

	resp, err := http.Get(srv.URL + "/stats?minutes=30")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var got domain.AssignmentStats
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.Assigned != 7 || got.Pending != 3 {
		t.Errorf("unexpected stats: %+v", got)
	}
}
