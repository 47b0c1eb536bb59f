package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lacpaorocelyn/cpsunav/internal/auth"
	"github.com/lacpaorocelyn/cpsunav/internal/models"
	"github.com/lacpaorocelyn/cpsunav/internal/repositories"
	"github.com/lacpaorocelyn/cpsunav/internal/routing"
	"github.com/lacpaorocelyn/cpsunav/internal/services"
	"github.com/lacpaorocelyn/cpsunav/internal/utils"
)

const testSecret = "test-secret"

// Fake services backing the handler tests.

type fakeAuthService struct {
	user *models.PublicUser
	resp *services.AuthResponse
	err  error
}

func (f *fakeAuthService) Register(ctx context.Context, req *services.RegisterRequest) (*models.PublicUser, error) {
	return f.user, f.err
}

func (f *fakeAuthService) Login(ctx context.Context, req *services.LoginRequest) (*services.AuthResponse, error) {
	return f.resp, f.err
}

type fakeUserService struct {
	updated *models.PublicUser
	err     error

	gotID     uint
	gotCaller uint
}

func (f *fakeUserService) GetByID(ctx context.Context, id uint) (*models.PublicUser, error) {
	return f.updated, f.err
}

func (f *fakeUserService) Update(ctx context.Context, id, callerID uint, req *services.UserUpdateRequest) (*models.PublicUser, error) {
	f.gotID, f.gotCaller = id, callerID
	if f.err != nil {
		return nil, f.err
	}
	return f.updated, nil
}

type fakeBuildingService struct {
	buildings []*models.Building
	err       error
}

func (f *fakeBuildingService) List(ctx context.Context) ([]*models.Building, error) {
	return f.buildings, f.err
}

func (f *fakeBuildingService) GetByID(ctx context.Context, id uint) (*models.Building, error) {
	for _, b := range f.buildings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, services.ErrBuildingNotFound
}

type fakeReportService struct {
	reports    []*models.Report
	gotOwnerID *uint
	deleted    []uint
	err        error
}

func (f *fakeReportService) Create(ctx context.Context, req *services.ReportCreateRequest, ownerID *uint) (*models.Report, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.gotOwnerID = ownerID
	report := &models.Report{ID: 1, Title: req.Title, UserID: ownerID}
	f.reports = append(f.reports, report)
	return report, nil
}

func (f *fakeReportService) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	for _, r := range f.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, services.ErrReportNotFound
}

func (f *fakeReportService) List(ctx context.Context, filters repositories.ReportFilters) ([]*models.Report, error) {
	return f.reports, f.err
}

func (f *fakeReportService) Update(ctx context.Context, id uint, req *services.ReportUpdateRequest) (*models.Report, error) {
	if f.err != nil {
		return nil, f.err
	}
	report, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		report.Title = *req.Title
	}
	return report, nil
}

func (f *fakeReportService) Delete(ctx context.Context, id uint) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

type fakeExportService struct {
	data []byte
	err  error
}

func (f *fakeExportService) ExportReports(ctx context.Context, filters repositories.ReportFilters) ([]byte, error) {
	return f.data, f.err
}

type fakeServiceManager struct {
	auth     *fakeAuthService
	user     *fakeUserService
	building *fakeBuildingService
	report   *fakeReportService
	export   *fakeExportService
}

func newFakeServiceManager() *fakeServiceManager {
	return &fakeServiceManager{
		auth:     &fakeAuthService{},
		user:     &fakeUserService{},
		building: &fakeBuildingService{},
		report:   &fakeReportService{},
		export:   &fakeExportService{data: []byte("xlsx")},
	}
}

func (f *fakeServiceManager) Auth() services.AuthService         { return f.auth }
func (f *fakeServiceManager) User() services.UserService         { return f.user }
func (f *fakeServiceManager) Building() services.BuildingService { return f.building }
func (f *fakeServiceManager) Report() services.ReportService     { return f.report }
func (f *fakeServiceManager) Export() services.ExportService     { return f.export }
func (f *fakeServiceManager) Initialize(ctx context.Context) error {
	return nil
}
func (f *fakeServiceManager) HealthCheck(ctx context.Context) error { return nil }
func (f *fakeServiceManager) Shutdown(ctx context.Context) error    { return nil }

func newTestRouter(t *testing.T, sm *fakeServiceManager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := utils.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	manager := NewHandlerManager(sm, routing.NewClient("http://127.0.0.1:0"), logger, testSecret)
	router := gin.New()
	manager.SetupRoutes(router)
	return router
}

func bearerFor(t *testing.T, userID uint, studentID string) string {
	t.Helper()
	token, err := auth.NewAccessToken(testSecret, "campusnav-test", time.Hour, userID, studentID)
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return "Bearer " + token
}

func doJSON(router *gin.Engine, method, path, authHeader string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthEndpoints(t *testing.T) {
	sm := newFakeServiceManager()
	sm.auth.user = &models.PublicUser{ID: 1, StudentID: "2026-1234"}
	sm.auth.resp = &services.AuthResponse{
		AccessToken: "signed",
		User:        &models.PublicUser{ID: 1, StudentID: "2026-1234"},
	}
	router := newTestRouter(t, sm)

	t.Run("Register", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/auth/register", "", gin.H{"pin": "4321"})
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var user models.PublicUser
		if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
			t.Fatalf("Bad response body: %v", err)
		}
		if user.StudentID != "2026-1234" {
			t.Errorf("Unexpected response: %+v", user)
		}
		if strings.Contains(w.Body.String(), "access_token") {
			t.Error("Register response must not carry a token")
		}
	})

	t.Run("LoginInvalidCredentials", func(t *testing.T) {
		sm.auth.resp = nil
		sm.auth.err = services.ErrInvalidCredentials
		w := doJSON(router, http.MethodPost, "/api/auth/login", "", gin.H{"studentId": "2026-1234", "pin": "0000"})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("Expected 401, got %d", w.Code)
		}
		var resp ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Bad response body: %v", err)
		}
		if resp.Message != "Invalid credentials" {
			t.Errorf("Unexpected message: %q", resp.Message)
		}
	})
}

func TestBuildingEndpoints(t *testing.T) {
	sm := newFakeServiceManager()
	sm.building.buildings = []*models.Building{
		{ID: 1, Name: "Admin Building"},
		{ID: 2, Name: "Library"},
	}
	router := newTestRouter(t, sm)

	w := doJSON(router, http.MethodGet, "/api/buildings", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var buildings []models.Building
	if err := json.Unmarshal(w.Body.Bytes(), &buildings); err != nil {
		t.Fatalf("Bad response body: %v", err)
	}
	if len(buildings) != 2 {
		t.Errorf("Expected 2 buildings, got %d", len(buildings))
	}

	w = doJSON(router, http.MethodGet, "/api/buildings/99", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for missing building, got %d", w.Code)
	}
}

func TestReportCreate_OptionalAuth(t *testing.T) {
	body := gin.H{
		"title":       "Broken faucet",
		"description": "Leaking",
		"latitude":    9.8512,
		"longitude":   122.8902,
	}

	t.Run("Anonymous", func(t *testing.T) {
		sm := newFakeServiceManager()
		router := newTestRouter(t, sm)

		w := doJSON(router, http.MethodPost, "/api/reports", "", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if sm.report.gotOwnerID != nil {
			t.Error("Anonymous create must not carry an owner")
		}
	})

	t.Run("Authenticated", func(t *testing.T) {
		sm := newFakeServiceManager()
		router := newTestRouter(t, sm)

		w := doJSON(router, http.MethodPost, "/api/reports", bearerFor(t, 7, "2026-1234"), body)
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if sm.report.gotOwnerID == nil || *sm.report.gotOwnerID != 7 {
			t.Errorf("Expected owner 7, got %v", sm.report.gotOwnerID)
		}
	})

	t.Run("GarbageTokenStillAccepted", func(t *testing.T) {
		sm := newFakeServiceManager()
		router := newTestRouter(t, sm)

		w := doJSON(router, http.MethodPost, "/api/reports", "Bearer not-a-token", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d", w.Code)
		}
		if sm.report.gotOwnerID != nil {
			t.Error("Invalid token must not attach an owner")
		}
	})
}

func TestReportDelete_Returns204(t *testing.T) {
	sm := newFakeServiceManager()
	router := newTestRouter(t, sm)

	w := doJSON(router, http.MethodDelete, "/api/reports/42", "", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", w.Code)
	}
	if len(sm.report.deleted) != 1 || sm.report.deleted[0] != 42 {
		t.Errorf("Expected delete of 42, got %v", sm.report.deleted)
	}
}

func TestUserUpdate_RequiresAuth(t *testing.T) {
	sm := newFakeServiceManager()
	sm.user.updated = &models.PublicUser{ID: 7, StudentID: "2026-1234"}
	router := newTestRouter(t, sm)

	t.Run("NoToken", func(t *testing.T) {
		w := doJSON(router, http.MethodPatch, "/api/users/7", "", gin.H{"fullName": "Maria"})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("Expected 401, got %d", w.Code)
		}
	})

	t.Run("WithToken", func(t *testing.T) {
		w := doJSON(router, http.MethodPatch, "/api/users/7", bearerFor(t, 7, "2026-1234"), gin.H{"fullName": "Maria"})
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if sm.user.gotID != 7 || sm.user.gotCaller != 7 {
			t.Errorf("Expected id=7 caller=7, got id=%d caller=%d", sm.user.gotID, sm.user.gotCaller)
		}
	})

	t.Run("OtherUsersRecord", func(t *testing.T) {
		sm.user.err = services.ErrForbidden
		defer func() { sm.user.err = nil }()

		w := doJSON(router, http.MethodPatch, "/api/users/8", bearerFor(t, 7, "2026-1234"), gin.H{"fullName": "Maria"})
		if w.Code != http.StatusForbidden {
			t.Fatalf("Expected 403, got %d", w.Code)
		}
	})
}

func TestReportExport_RequiresAuth(t *testing.T) {
	sm := newFakeServiceManager()
	router := newTestRouter(t, sm)

	w := doJSON(router, http.MethodGet, "/api/reports/export", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", w.Code)
	}

	w = doJSON(router, http.MethodGet, "/api/reports/export", bearerFor(t, 1, "2026-1234"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Unexpected content type: %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Error("Expected a Content-Disposition header")
	}
}

func TestDirectionsProxy(t *testing.T) {
	osrm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":"Ok","routes":[{"distance":500,"duration":360,"geometry":{"coordinates":[[122.8890,9.8500],[122.8902,9.8512]]}}]}`)
	}))
	defer osrm.Close()

	gin.SetMode(gin.TestMode)
	logger := utils.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	manager := NewHandlerManager(newFakeServiceManager(), routing.NewClient(osrm.URL), logger, testSecret)
	router := gin.New()
	manager.SetupRoutes(router)

	w := doJSON(router, http.MethodGet, "/api/directions?from_lat=9.8500&from_lng=122.8890&to_lat=9.8512&to_lng=122.8902", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp DirectionsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Bad response body: %v", err)
	}
	if resp.Distance != 500 || resp.Duration != 360 {
		t.Errorf("Unexpected metrics: %+v", resp)
	}
	if len(resp.Polyline) != 2 || resp.Polyline[0].Lat != 9.8500 {
		t.Errorf("Polyline not in lat,lng order: %+v", resp.Polyline)
	}

	t.Run("BadCoordinates", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/directions?from_lat=999&from_lng=0&to_lat=0&to_lng=0", "", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", w.Code)
		}
	})
}
