// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/mock"
	"github.com/MKhiriev/go-shipment-tracker/internal/store"
	"github.com/MKhiriev/go-shipment-tracker/internal/utils"
	"github.com/MKhiriev/go-shipment-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthSvc builds an authService over gomock repositories.
func newTestAuthSvc(t *testing.T) (*authService, *mock.MockUserRepository, *mock.MockTokenRepository, *fakeAuditService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	tokens := mock.NewMockTokenRepository(ctrl)
	audit := &fakeAuditService{}

	svc := NewAuthService(users, tokens, audit, testConfig(), logger.Nop()).(*authService)
	return svc, users, tokens, audit
}

func hashedUser(t *testing.T, id int64, role models.Role, password string) models.User {
	t.Helper()

	hash, err := utils.HashPassword(password, 4)
	require.NoError(t, err)

	return models.User{UserID: id, Name: "Jane Doe", Email: "jane@example.com", Role: role, PasswordHash: hash}
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	svc, users, tokens, audit := newTestAuthSvc(t)
	ctx := context.Background()

	req := models.RegisterRequest{Name: " Jane Doe ", Email: " Jane@Example.com ", Role: models.RoleUser, Password: "Secret123"}

	users.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(models.User{}, store.ErrNoUserWasFound)
	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		assert.Equal(t, "Jane Doe", u.Name)
		assert.Equal(t, "jane@example.com", u.Email)
		assert.NotEqual(t, req.Password, u.PasswordHash)
		ok, err := utils.CheckPassword(u.PasswordHash, req.Password)
		assert.NoError(t, err)
		assert.True(t, ok)

		u.UserID = 7
		return u, nil
	})
	tokens.EXPECT().ReplaceUserTokens(ctx, gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, token models.Token, at time.Time) error {
		assert.Equal(t, int64(7), token.UserID)
		assert.Equal(t, []models.Ability{models.AbilityUserAccess}, token.Abilities)
		assert.Equal(t, 60*time.Minute, token.ExpiresAt.Sub(token.CreatedAt))
		assert.Equal(t, token.CreatedAt, at)
		return nil
	})

	resp, err := svc.Register(ctx, req, testIP)

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(7), resp.User.UserID)
	require.NotNil(t, resp.User.LastLoginAt)
	assert.Empty(t, audit.entries())
}

func TestAuthService_Register_EmailTaken_CreatesNothing(t *testing.T) {
	svc, users, _, _ := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(models.User{UserID: 1}, nil)

	resp, err := svc.Register(ctx, models.RegisterRequest{Email: "jane@example.com", Password: "Secret123"}, testIP)

	require.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Empty(t, resp.Token)
}

func TestAuthService_Register_EmailTakenConcurrently(t *testing.T) {
	svc, users, _, _ := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(models.User{}, store.ErrNoUserWasFound)
	users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "jane@example.com", Password: "Secret123"}, testIP)

	require.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthService_Register_LookupFails(t *testing.T) {
	svc, users, _, _ := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(models.User{}, errors.New("connection reset"))

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "jane@example.com", Password: "Secret123"}, testIP)

	require.ErrorIs(t, err, ErrUserNotCreated)
}

func TestAuthService_Register_TokenNotStored(t *testing.T) {
	svc, users, tokens, _ := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(models.User{}, store.ErrNoUserWasFound)
	users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{UserID: 7, Role: models.RoleUser}, nil)
	tokens.EXPECT().ReplaceUserTokens(ctx, gomock.Any(), gomock.Any()).Return(store.ErrCommitingTransaction)
	users.EXPECT().DeleteUser(gomock.Any(), int64(7)).Return(nil)

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "jane@example.com", Password: "Secret123"}, testIP)

	require.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_Register_TokenNotStored_EmailCanRegisterAgain(t *testing.T) {
	svc, users, tokens, _ := newTestAuthSvc(t)
	ctx := context.Background()
	req := models.RegisterRequest{Email: "jane@example.com", Role: models.RoleUser, Password: "Secret123"}

	gomock.InOrder(
		users.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(models.User{}, store.ErrNoUserWasFound),
		users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{UserID: 7, Role: models.RoleUser}, nil),
		tokens.EXPECT().ReplaceUserTokens(ctx, gomock.Any(), gomock.Any()).Return(store.ErrCommitingTransaction),
		users.EXPECT().DeleteUser(gomock.Any(), int64(7)).Return(nil),

		users.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(models.User{}, store.ErrNoUserWasFound),
		users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{UserID: 8, Role: models.RoleUser}, nil),
		tokens.EXPECT().ReplaceUserTokens(ctx, gomock.Any(), gomock.Any()).Return(nil),
	)

	_, err := svc.Register(ctx, req, testIP)
	require.ErrorIs(t, err, ErrTokenCreationFailed)

	resp, err := svc.Register(ctx, req, testIP)
	require.NoError(t, err)
	assert.Equal(t, int64(8), resp.User.UserID)
}

func TestAuthService_Register_TokenNotStored_CleanupFails(t *testing.T) {
	svc, users, tokens, _ := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(models.User{}, store.ErrNoUserWasFound)
	users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{UserID: 7, Role: models.RoleUser}, nil)
	tokens.EXPECT().ReplaceUserTokens(ctx, gomock.Any(), gomock.Any()).Return(store.ErrCommitingTransaction)
	users.EXPECT().DeleteUser(gomock.Any(), int64(7)).Return(store.ErrExecutingStatement)

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "jane@example.com", Password: "Secret123"}, testIP)

	require.ErrorIs(t, err, ErrTokenCreationFailed)
	require.ErrorIs(t, err, store.ErrExecutingStatement)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_AdminSuccess(t *testing.T) {
	svc, users, tokens, audit := newTestAuthSvc(t)
	ctx := context.Background()
	admin := hashedUser(t, 3, models.RoleAdmin, "Secret123")

	users.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(admin, nil)
	tokens.EXPECT().ReplaceUserTokens(ctx, gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, token models.Token, _ time.Time) error {
		assert.Equal(t, []models.Ability{models.AbilityAdminAccess}, token.Abilities)
		assert.Equal(t, 30*time.Minute, token.ExpiresAt.Sub(token.CreatedAt))
		return nil
	})

	resp, err := svc.Login(ctx, models.LoginRequest{Email: "jane@example.com", Password: "Secret123"}, testIP)

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	recorded := audit.entries()
	require.Len(t, recorded, 1)
	assert.Equal(t, ActionUserLogin, recorded[0].entry.Action)
	assert.Equal(t, int64(3), recorded[0].entry.UserID)
	assert.Equal(t, testIP, recorded[0].entry.IPAddress)
	assert.Equal(t, map[string]string{"email": "jane@example.com"}, recorded[0].entry.Metadata)
	assert.Equal(t, 2*time.Second, recorded[0].delay)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, users, _, audit := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "Secret123"}, testIP)

	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, audit.entries())
}

func TestAuthService_Login_WrongPassword_IssuesNoToken(t *testing.T) {
	svc, users, _, audit := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(hashedUser(t, 3, models.RoleUser, "Secret123"), nil)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "jane@example.com", Password: "Wrong1234"}, testIP)

	require.ErrorIs(t, err, ErrWrongPassword)
	assert.Empty(t, audit.entries())
}

func TestAuthService_Login_AuditFailureDoesNotFailLogin(t *testing.T) {
	svc, users, tokens, audit := newTestAuthSvc(t)
	audit.recordErr = ErrAuditEntryNotQueued
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "jane@example.com").Return(hashedUser(t, 3, models.RoleUser, "Secret123"), nil)
	tokens.EXPECT().ReplaceUserTokens(ctx, gomock.Any(), gomock.Any()).Return(nil)

	resp, err := svc.Login(ctx, models.LoginRequest{Email: "jane@example.com", Password: "Secret123"}, testIP)

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthService_Login_ReplacesPreviousToken(t *testing.T) {
	svc, users, tokens, _ := newTestAuthSvc(t)
	ctx := context.Background()
	user := hashedUser(t, 3, models.RoleUser, "Secret123")

	// in-memory token table keyed by token id
	stored := map[string]models.Token{}
	tokens.EXPECT().ReplaceUserTokens(ctx, gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, token models.Token, _ time.Time) error {
			for id, existing := range stored {
				if existing.UserID == token.UserID {
					delete(stored, id)
				}
			}
			token.SignedString = ""
			stored[token.ID] = token
			return nil
		})
	tokens.EXPECT().FindToken(ctx, gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, id string) (models.Token, error) {
			token, ok := stored[id]
			if !ok {
				return models.Token{}, store.ErrTokenNotFound
			}
			return token, nil
		})
	users.EXPECT().FindUserByEmail(ctx, "jane@example.com").Times(2).Return(user, nil)
	users.EXPECT().FindUserByID(ctx, int64(3)).Return(user, nil)

	login := models.LoginRequest{Email: "jane@example.com", Password: "Secret123"}
	first, err := svc.Login(ctx, login, testIP)
	require.NoError(t, err)
	second, err := svc.Login(ctx, login, testIP)
	require.NoError(t, err)
	require.NotEqual(t, first.Token, second.Token)

	_, _, err = svc.Authenticate(ctx, first.Token)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	token, authenticated, err := svc.Authenticate(ctx, second.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), authenticated.UserID)
	assert.Equal(t, second.Token, token.SignedString)
	assert.Len(t, stored, 1)
}

// ─────────────────────────────────────────────
// Authenticate
// ─────────────────────────────────────────────

func issueTestToken(t *testing.T, userID int64, ttl time.Duration) models.Token {
	t.Helper()

	token, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:    testIssuer,
		SignKey:   testSignKey,
		TokenID:   utils.NewUUIDGenerator().Generate(),
		UserID:    userID,
		Abilities: []models.Ability{models.AbilityUserAccess},
		IssuedAt:  time.Now(),
		TTL:       ttl,
	})
	require.NoError(t, err)
	return token
}

func TestAuthService_Authenticate_Malformed(t *testing.T) {
	svc, _, _, _ := newTestAuthSvc(t)

	_, _, err := svc.Authenticate(context.Background(), "not-a-jwt")

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Authenticate_Revoked(t *testing.T) {
	svc, _, tokens, _ := newTestAuthSvc(t)
	ctx := context.Background()
	token := issueTestToken(t, 3, time.Hour)

	tokens.EXPECT().FindToken(ctx, token.ID).Return(models.Token{}, store.ErrTokenNotFound)

	_, _, err := svc.Authenticate(ctx, token.SignedString)

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Authenticate_StoredRowExpired(t *testing.T) {
	svc, _, tokens, _ := newTestAuthSvc(t)
	ctx := context.Background()
	token := issueTestToken(t, 3, time.Hour)

	stored := token
	stored.ExpiresAt = time.Now().Add(-time.Minute)
	tokens.EXPECT().FindToken(ctx, token.ID).Return(stored, nil)

	_, _, err := svc.Authenticate(ctx, token.SignedString)

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Authenticate_OwnerMismatch(t *testing.T) {
	svc, _, tokens, _ := newTestAuthSvc(t)
	ctx := context.Background()
	token := issueTestToken(t, 3, time.Hour)

	stored := token
	stored.UserID = 4
	tokens.EXPECT().FindToken(ctx, token.ID).Return(stored, nil)

	_, _, err := svc.Authenticate(ctx, token.SignedString)

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Authenticate_OwnerDeleted(t *testing.T) {
	svc, users, tokens, _ := newTestAuthSvc(t)
	ctx := context.Background()
	token := issueTestToken(t, 3, time.Hour)

	tokens.EXPECT().FindToken(ctx, token.ID).Return(token, nil)
	users.EXPECT().FindUserByID(ctx, int64(3)).Return(models.User{}, store.ErrNoUserWasFound)

	_, _, err := svc.Authenticate(ctx, token.SignedString)

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Authenticate_StorageError(t *testing.T) {
	svc, _, tokens, _ := newTestAuthSvc(t)
	ctx := context.Background()
	token := issueTestToken(t, 3, time.Hour)

	tokens.EXPECT().FindToken(ctx, token.ID).Return(models.Token{}, store.ErrExecutingQuery)

	_, _, err := svc.Authenticate(ctx, token.SignedString)

	require.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ─────────────────────────────────────────────
// Logout / PruneExpiredTokens
// ─────────────────────────────────────────────

func TestAuthService_Logout(t *testing.T) {
	svc, _, tokens, _ := newTestAuthSvc(t)
	ctx := context.Background()

	tokens.EXPECT().RevokeUserTokens(ctx, int64(3)).Return(int64(1), nil)
	require.NoError(t, svc.Logout(ctx, 3))

	tokens.EXPECT().RevokeUserTokens(ctx, int64(3)).Return(int64(0), store.ErrExecutingStatement)
	require.ErrorIs(t, svc.Logout(ctx, 3), ErrLogoutFailed)
}

func TestAuthService_PruneExpiredTokens(t *testing.T) {
	svc, _, tokens, _ := newTestAuthSvc(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	tokens.EXPECT().DeleteExpiredTokens(gomock.Any(), now).Return(int64(5), nil)

	pruned, err := svc.PruneExpiredTokens(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(5), pruned)
}
