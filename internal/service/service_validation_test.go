package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/mock"
	"github.com/MKhiriev/go-shipment-tracker/internal/store"
	"github.com/MKhiriev/go-shipment-tracker/internal/validators"
	"github.com/MKhiriev/go-shipment-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// AuthValidationService
// ─────────────────────────────────────────────

func newValidatedAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository, *mock.MockTokenRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	tokens := mock.NewMockTokenRepository(ctrl)

	inner := NewAuthService(users, tokens, &fakeAuditService{}, testConfig(), logger.Nop())
	return NewAuthValidationService().Wrap(inner), users, tokens
}

func TestAuthValidationService_RejectsBeforeStorage(t *testing.T) {
	svc, _, _ := newValidatedAuthSvc(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{Name: "Jane", Email: "not-an-email", Role: models.RoleUser, Password: "Secret123", PasswordConfirmation: "Secret123"}, testIP)
	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, validators.FieldEmail, vErr.Field)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "jane@example.com"}, testIP)
	require.ErrorIs(t, err, validators.ErrValidation)

	_, _, err = svc.Authenticate(ctx, "")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthValidationService_PassesValidRequests(t *testing.T) {
	svc, users, tokens := newValidatedAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(models.User{}, store.ErrNoUserWasFound)
	_, err := svc.Login(ctx, models.LoginRequest{Email: "jane@example.com", Password: "Secret123"}, testIP)
	require.ErrorIs(t, err, ErrUserNotFound)

	tokens.EXPECT().RevokeUserTokens(ctx, int64(3)).Return(int64(1), nil)
	require.NoError(t, svc.Logout(ctx, 3))
}

// ─────────────────────────────────────────────
// ShipmentValidationService
// ─────────────────────────────────────────────

func newValidatedShipmentSvc(t *testing.T) (ShipmentService, *mock.MockShipmentRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	shipments := mock.NewMockShipmentRepository(ctrl)
	geocoder := mock.NewMockGeocoder(ctrl)

	inner := NewShipmentService(shipments, geocoder, &fakeAuditService{}, testConfig(), logger.Nop())
	return NewShipmentValidationService().Wrap(inner), shipments
}

func TestShipmentValidationService_CreateShipment_RequiresFields(t *testing.T) {
	svc, _ := newValidatedShipmentSvc(t)

	req := testCreateRequest()
	req.ReceiverName = "   "

	_, err := svc.CreateShipment(context.Background(), req, testActor())

	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, validators.FieldReceiverName, vErr.Field)
}

func TestShipmentValidationService_UpdateShipmentStatus(t *testing.T) {
	svc, _ := newValidatedShipmentSvc(t)
	ctx := context.Background()

	_, err := svc.UpdateShipmentStatus(ctx, 0, models.UpdateShipmentStatusRequest{Status: models.StatusDelivered}, testActor())
	require.ErrorIs(t, err, validators.ErrValidation)

	_, err = svc.UpdateShipmentStatus(ctx, 21, models.UpdateShipmentStatusRequest{Status: "lost"}, testActor())
	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, validators.FieldStatus, vErr.Field)
}

func TestShipmentValidationService_GetShipments(t *testing.T) {
	svc, shipments := newValidatedShipmentSvc(t)
	ctx := context.Background()

	_, err := svc.GetShipments(ctx, models.ListQuery{Status: "lost"}, models.ScopeAll())
	require.ErrorIs(t, err, validators.ErrValidation)

	shipments.EXPECT().ListShipments(ctx, models.ShipmentFilter{Page: 1, Limit: 10, WithOwner: true}).Return(nil, uint64(0), nil)
	_, err = svc.GetShipments(ctx, models.ListQuery{}, models.ScopeAll())
	require.ErrorIs(t, err, ErrNoRecords)
}

func TestShipmentValidationService_TrackShipment(t *testing.T) {
	svc, shipments := newValidatedShipmentSvc(t)
	ctx := context.Background()

	shipments.EXPECT().FindShipmentByTrackingNumber(ctx, "unknown").Return(models.Shipment{}, store.ErrShipmentNotFound)

	_, err := svc.TrackShipment(ctx, "unknown")

	require.ErrorIs(t, err, ErrShipmentNotFound)
}
