package ginserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"venuedesk/internal/app/auth"
	"venuedesk/internal/app/borrowings"
	"venuedesk/internal/app/reservations"
	"venuedesk/internal/domain/catalog"
	"venuedesk/internal/infra/config"
	"venuedesk/internal/infra/obs"
	"venuedesk/internal/infra/security"
	"venuedesk/internal/infra/storage/memory"
)

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "s3cret"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	catalogRepo := memory.NewCatalogRepository()
	catalogRepo.Seed(
		[]catalog.Venue{{ID: "venue-1", Name: "Main Auditorium", Capacity: 300}},
		[]catalog.Item{
			{ID: "item-proj", Name: "Projector A", Status: catalog.ItemAvailable},
			{ID: "item-amp", Name: "Amplifier", Status: catalog.ItemMaintenance},
		},
		[]catalog.StaffMember{{ID: "staff-1", Name: "Ms. Dela Cruz", Role: "Facilities"}},
	)

	verifier := security.BcryptVerifier{Cost: bcrypt.MinCost}
	hash, err := verifier.Hash(testAdminPassword)
	require.NoError(t, err)

	authService := &auth.Service{
		AdminEmail:        testAdminEmail,
		AdminPasswordHash: hash,
		Passwords:         verifier,
		Tokens:            security.SessionTokenGenerator{},
		Sessions:          memory.NewSessionStore(),
	}

	handlers := Handlers{
		Auth: AuthHandler{Service: authService},
		Reservations: ReservationHandler{Service: &reservations.Service{
			Reservations: memory.NewReservationRepository(),
			Catalog:      catalogRepo,
		}},
		Borrowings: BorrowingHandler{Service: &borrowings.Service{
			Borrowings: memory.NewBorrowingRepository(),
			Catalog:    catalogRepo,
		}},
		Catalog:        CatalogHandler{Catalog: catalogRepo},
		AuthMiddleware: AuthMiddleware{Service: authService}.Handle,
	}

	cfg := config.Config{Env: "test", HTTPAddr: ":0"}
	server := NewServer(cfg, obs.Middleware{}, obs.HealthHandlers{}, handlers)
	return server.Handler
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, handler http.Handler) string {
	t.Helper()
	rec := doJSON(t, handler, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthProbes(t *testing.T) {
	handler := newTestServer(t)
	assert.Equal(t, http.StatusOK, doJSON(t, handler, http.MethodGet, "/livez", "", nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(t, handler, http.MethodGet, "/readyz", "", nil).Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	handler := newTestServer(t)
	rec := doJSON(t, handler, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    testAdminEmail,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	handler := newTestServer(t)
	for _, path := range []string{
		"/api/v1/reservations",
		"/api/v1/borrowings",
		"/api/v1/venues",
		"/api/v1/items",
		"/api/v1/staff",
	} {
		rec := doJSON(t, handler, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/reservations", "forged-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func validReservationBody() map[string]any {
	return map[string]any{
		"venue_id":    "venue-1",
		"event_title": "Graduation Rehearsal",
		"reserved_by": "M. Cruz",
		"start_date":  "2026-03-10",
		"end_date":    "2026-03-10",
		"start_time":  "09:00",
		"end_time":    "11:00",
	}
}

func TestReservationLifecycle(t *testing.T) {
	handler := newTestServer(t)
	token := login(t, handler)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/reservations", token, validReservationBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID        string `json:"id"`
		VenueName string `json:"venue_name"`
		Status    string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Main Auditorium", created.VenueName)
	assert.Equal(t, "Processing", created.Status)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/reservations/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodPatch, "/api/v1/reservations/"+created.ID, token, map[string]any{
		"status": "Confirmed",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, handler, http.MethodDelete, "/api/v1/reservations/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/reservations/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReservationConflictResponse(t *testing.T) {
	handler := newTestServer(t)
	token := login(t, handler)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/reservations", token, validReservationBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	body := validReservationBody()
	body["start_time"], body["end_time"] = "10:00", "12:00"
	rec = doJSON(t, handler, http.MethodPost, "/api/v1/reservations", token, body)
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp struct {
		Error                string   `json:"error"`
		ConflictingResources []string `json:"conflicting_resources"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Main Auditorium"}, resp.ConflictingResources)
	assert.Contains(t, resp.Error, "Main Auditorium")
}

func TestReservationValidationResponse(t *testing.T) {
	handler := newTestServer(t)
	token := login(t, handler)

	body := validReservationBody()
	body["start_time"], body["end_time"] = "12:00", "10:00"
	rec := doJSON(t, handler, http.MethodPost, "/api/v1/reservations", token, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body = validReservationBody()
	body["venue_id"] = "venue-404"
	rec = doJSON(t, handler, http.MethodPost, "/api/v1/reservations", token, body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReservationCheckEndpoint(t *testing.T) {
	handler := newTestServer(t)
	token := login(t, handler)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/reservations", token, validReservationBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/reservations/check", token, map[string]any{
		"venue_id":   "venue-1",
		"start_date": "2026-03-10",
		"end_date":   "2026-03-10",
		"start_time": "10:00",
		"end_time":   "12:00",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		OK                       bool     `json:"ok"`
		ConflictingResourceNames []string `json:"conflicting_resource_names"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.OK)
	assert.Equal(t, []string{"Main Auditorium"}, result.ConflictingResourceNames)
}

func TestBorrowingLifecycle(t *testing.T) {
	handler := newTestServer(t)
	token := login(t, handler)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/borrowings", token, map[string]any{
		"borrower_name": "A. Lim",
		"item_ids":      []string{"item-proj"},
		"date":          "2026-03-10",
		"start_time":    "13:00",
		"end_time":      "15:00",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Reserved", created.Status)

	// The projector is taken during the window.
	rec = doJSON(t, handler, http.MethodGet, "/api/v1/items/available?date=2026-03-10&start_time=14:00&end_time=16:00", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var avail struct {
		Items []struct {
			Name string `json:"name"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &avail))
	assert.Empty(t, avail.Items, "projector booked, amplifier in maintenance")

	rec = doJSON(t, handler, http.MethodPatch, "/api/v1/borrowings/"+created.ID, token, map[string]any{
		"status": "Cancelled",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/items/available?date=2026-03-10&start_time=14:00&end_time=16:00", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &avail))
	require.Len(t, avail.Items, 1)
	assert.Equal(t, "Projector A", avail.Items[0].Name)
}

func TestCatalogEndpoints(t *testing.T) {
	handler := newTestServer(t)
	token := login(t, handler)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/venues", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var venues struct {
		Venues []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"venues"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &venues))
	require.Len(t, venues.Venues, 1)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/venues/venue-1", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/venues/venue-404", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/items", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/staff", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogout(t *testing.T) {
	handler := newTestServer(t)
	token := login(t, handler)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/reservations", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "token is dead after logout")
}
