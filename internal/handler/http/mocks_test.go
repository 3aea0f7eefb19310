package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-shipment-tracker/internal/config"
	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/service"
	"github.com/MKhiriev/go-shipment-tracker/internal/utils"
	"github.com/MKhiriev/go-shipment-tracker/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn           func(ctx context.Context, req models.RegisterRequest, clientIP string) (models.AuthResponse, error)
	loginFn              func(ctx context.Context, req models.LoginRequest, clientIP string) (models.AuthResponse, error)
	logoutFn             func(ctx context.Context, userID int64) error
	authenticateFn       func(ctx context.Context, tokenString string) (models.Token, models.User, error)
	pruneExpiredTokensFn func(ctx context.Context) (int64, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest, clientIP string) (models.AuthResponse, error) {
	return m.registerFn(ctx, req, clientIP)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest, clientIP string) (models.AuthResponse, error) {
	return m.loginFn(ctx, req, clientIP)
}

func (m *mockAuthService) Logout(ctx context.Context, userID int64) error {
	return m.logoutFn(ctx, userID)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.Token, models.User, error) {
	return m.authenticateFn(ctx, tokenString)
}

func (m *mockAuthService) PruneExpiredTokens(ctx context.Context) (int64, error) {
	return m.pruneExpiredTokensFn(ctx)
}

type mockShipmentService struct {
	createFn       func(ctx context.Context, req models.CreateShipmentRequest, actor models.Actor) (models.Shipment, error)
	updateStatusFn func(ctx context.Context, shipmentID int64, req models.UpdateShipmentStatusRequest, actor models.Actor) (models.Shipment, error)
	getShipmentsFn func(ctx context.Context, query models.ListQuery, scope models.ShipmentScope) (models.ShipmentPage, error)
	trackFn        func(ctx context.Context, trackingNumber string) (models.Shipment, error)
}

func (m *mockShipmentService) CreateShipment(ctx context.Context, req models.CreateShipmentRequest, actor models.Actor) (models.Shipment, error) {
	return m.createFn(ctx, req, actor)
}

func (m *mockShipmentService) UpdateShipmentStatus(ctx context.Context, shipmentID int64, req models.UpdateShipmentStatusRequest, actor models.Actor) (models.Shipment, error) {
	return m.updateStatusFn(ctx, shipmentID, req, actor)
}

func (m *mockShipmentService) GetShipments(ctx context.Context, query models.ListQuery, scope models.ShipmentScope) (models.ShipmentPage, error) {
	return m.getShipmentsFn(ctx, query, scope)
}

func (m *mockShipmentService) TrackShipment(ctx context.Context, trackingNumber string) (models.Shipment, error) {
	return m.trackFn(ctx, trackingNumber)
}

type mockAuditService struct {
	getSystemLogsFn func(ctx context.Context, query models.ListQuery) (models.SystemLogPage, error)
}

func (m *mockAuditService) Record(context.Context, models.AuditEntry, time.Duration) error {
	return nil
}

func (m *mockAuditService) DispatchDue(context.Context) (models.DispatchReport, error) {
	return models.DispatchReport{}, nil
}

func (m *mockAuditService) GetSystemLogs(ctx context.Context, query models.ListQuery) (models.SystemLogPage, error) {
	return m.getSystemLogsFn(ctx, query)
}

type mockRateLimitService struct {
	allowFn func(ctx context.Context, key string) (models.RateLimit, error)
}

func (m *mockRateLimitService) Allow(ctx context.Context, key string) (models.RateLimit, error) {
	if m.allowFn == nil {
		return models.RateLimit{Allowed: true}, nil
	}
	return m.allowFn(ctx, key)
}

type mockAppInfoService struct {
	version   string
	buildInfo models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(context.Context) models.AppBuildInfo {
	return m.buildInfo
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a development-mode Handler. Nil services are
// replaced with permissive defaults.
func newTestHandler(t *testing.T, services service.Services) *Handler {
	t.Helper()

	if services.RateLimitService == nil {
		services.RateLimitService = &mockRateLimitService{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test"}
	}

	return NewHandler(&services, config.App{Environment: config.EnvironmentDevelopment, PageSize: 10}, logger.Nop())
}

func newProductionHandler(t *testing.T, services service.Services) *Handler {
	t.Helper()

	h := newTestHandler(t, services)
	h.production = true
	return h
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withUser returns r as if it had passed the auth middleware.
func withUser(r *http.Request, user models.User) *http.Request {
	ctx := context.WithValue(r.Context(), utils.TokenCtxKey, models.Token{
		ID:        "token-id",
		UserID:    user.UserID,
		Abilities: []models.Ability{user.Ability()},
	})
	ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.UserID)
	ctx = context.WithValue(ctx, utils.UserCtxKey, user)
	return r.WithContext(ctx)
}

// envelope decodes a response body written by respond or respondError.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), "body: %s", rr.Body.String())
	return env
}

var (
	testUser  = models.User{UserID: 7, Name: "Ada", Email: "ada@example.com", Role: models.RoleUser}
	testAdmin = models.User{UserID: 1, Name: "Root", Email: "root@example.com", Role: models.RoleAdmin}
)
