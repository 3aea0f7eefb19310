package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-shipment-tracker/internal/config"
	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/store"
	"github.com/MKhiriev/go-shipment-tracker/internal/utils"
	"github.com/MKhiriev/go-shipment-tracker/models"
)

// ActionUserLogin is the audit action recorded after a successful login.
const ActionUserLogin = "User login"

// idGenerator produces unique string identifiers.
type idGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// It stores bcrypt password hashes and issues HMAC-SHA256 signed tokens whose
// "jti" claim references a persisted token row, so a token stops working as
// soon as its row is removed.
type authService struct {
	userRepository  store.UserRepository
	tokenRepository store.TokenRepository
	audit           AuditService

	tokenIDs idGenerator
	now      func() time.Time

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	userTokenTTL    time.Duration
	adminTokenTTL   time.Duration
	bcryptCost      int
	loginAuditDelay time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. Login audit entries are queued
// through audit with the configured login delay.
func NewAuthService(
	userRepository store.UserRepository,
	tokenRepository store.TokenRepository,
	audit AuditService,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		audit:           audit,
		tokenIDs:        utils.NewUUIDGenerator(),
		now:             time.Now,
		tokenSignKey:    cfg.App.TokenSignKey,
		tokenIssuer:     cfg.App.TokenIssuer,
		userTokenTTL:    cfg.App.UserTokenTTL,
		adminTokenTTL:   cfg.App.AdminTokenTTL,
		bcryptCost:      cfg.App.BcryptCost,
		loginAuditDelay: cfg.Workers.LoginAuditDelay,
		logger:          logger,
	}
}

// Register creates a user account and signs the new user in.
//
// Returns ErrEmailAlreadyExists when the email is taken. Nothing is created
// in that case. When the token cannot be issued the new account is deleted
// again and the sign-in error is returned.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest, clientIP string) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(req.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return models.AuthResponse{}, ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "*authService.Register").Msg("email lookup failed")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrUserNotCreated, err)
	}

	passwordHash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrUserNotCreated, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Role:         req.Role,
		PasswordHash: passwordHash,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.AuthResponse{}, ErrEmailAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("email", email).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrUserNotCreated, err)
	}

	resp, err := a.signIn(ctx, user)
	if err != nil {
		// the account is removed so that the same email can register again
		if delErr := a.userRepository.DeleteUser(context.WithoutCancel(ctx), user.UserID); delErr != nil {
			log.Err(delErr).Str("func", "*authService.Register").Int64("user_id", user.UserID).Msg("failed to remove user after sign in failure")
			return models.AuthResponse{}, errors.Join(err, delErr)
		}
		return models.AuthResponse{}, err
	}

	return resp, nil
}

// Login checks the credentials, revokes every previous token of the user and
// issues a new one. A "User login" audit entry is queued on success; failing
// to queue it does not fail the login.
func (a *authService) Login(ctx context.Context, req models.LoginRequest, clientIP string) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(req.Email)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.AuthResponse{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	ok, err := utils.CheckPassword(user.PasswordHash, req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("user_id", user.UserID).Msg("stored password hash is unusable")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
	if !ok {
		log.Info().Int64("user_id", user.UserID).Msg("wrong password")
		return models.AuthResponse{}, ErrWrongPassword
	}

	resp, err := a.signIn(ctx, user)
	if err != nil {
		return models.AuthResponse{}, err
	}

	entry := models.AuditEntry{
		Action:    ActionUserLogin,
		UserID:    user.UserID,
		IPAddress: clientIP,
		Metadata:  map[string]string{"email": user.Email},
	}
	if err = a.audit.Record(ctx, entry, a.loginAuditDelay); err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("user_id", user.UserID).Msg("login audit entry was not queued")
	}

	return resp, nil
}

// Logout revokes every token of the user.
func (a *authService) Logout(ctx context.Context, userID int64) error {
	revoked, err := a.tokenRepository.RevokeUserTokens(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Logout").Int64("user_id", userID).Msg("token revocation failed")
		return fmt.Errorf("%w: %w", ErrLogoutFailed, err)
	}

	logger.FromContext(ctx).Debug().Int64("user_id", userID).Int64("revoked", revoked).Msg("user logged out")
	return nil
}

// Authenticate verifies the signature, issuer and expiry of tokenString and
// checks that the token was not revoked since it was issued.
//
// Every rejection is normalised to ErrTokenIsExpiredOrInvalid so that callers
// do not need to inspect low-level JWT errors.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Token, models.User, error) {
	log := logger.FromContext(ctx)

	parsed, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.Token{}, models.User{}, ErrTokenIsExpiredOrInvalid
	}

	stored, err := a.tokenRepository.FindToken(ctx, parsed.ID)
	if errors.Is(err, store.ErrTokenNotFound) {
		return models.Token{}, models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("token lookup failed")
		return models.Token{}, models.User{}, fmt.Errorf("token lookup failed: %w", err)
	}
	if stored.UserID != parsed.UserID || stored.IsExpired(a.now()) {
		return models.Token{}, models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, stored.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.Token{}, models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Int64("user_id", stored.UserID).Msg("token owner lookup failed")
		return models.Token{}, models.User{}, fmt.Errorf("token owner lookup failed: %w", err)
	}

	stored.SignedString = tokenString
	return stored, user, nil
}

// PruneExpiredTokens deletes tokens that expired before now.
func (a *authService) PruneExpiredTokens(ctx context.Context) (int64, error) {
	return a.tokenRepository.DeleteExpiredTokens(ctx, a.now())
}

// signIn issues a token for user and atomically makes it the user's only
// valid token.
func (a *authService) signIn(ctx context.Context, user models.User) (models.AuthResponse, error) {
	now := a.now()

	token, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:    a.tokenIssuer,
		SignKey:   a.tokenSignKey,
		TokenID:   a.tokenIDs.Generate(),
		UserID:    user.UserID,
		Name:      "auth_token",
		Abilities: []models.Ability{user.Ability()},
		IssuedAt:  now,
		TTL:       a.tokenTTL(user),
	})
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.tokenRepository.ReplaceUserTokens(ctx, token, now); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.signIn").Int64("user_id", user.UserID).Msg("token was not stored")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	user.LastLoginAt = &now
	return models.AuthResponse{Token: token.SignedString, User: user}, nil
}

func (a *authService) tokenTTL(user models.User) time.Duration {
	if user.IsAdmin() {
		return a.adminTokenTTL
	}
	return a.userTokenTTL
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
