package service

import (
	"context"

	"github.com/MKhiriev/go-shipment-tracker/internal/validators"
	"github.com/MKhiriev/go-shipment-tracker/models"
)

// AuthValidationService rejects malformed registration and login requests
// before they reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest, clientIP string) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, err
	}

	return v.inner.Register(ctx, req, clientIP)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest, clientIP string) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, err
	}

	return v.inner.Login(ctx, req, clientIP)
}

func (v *AuthValidationService) Logout(ctx context.Context, userID int64) error {
	return v.inner.Logout(ctx, userID)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, tokenString string) (models.Token, models.User, error) {
	if tokenString == "" {
		return models.Token{}, models.User{}, ErrTokenIsExpiredOrInvalid
	}

	return v.inner.Authenticate(ctx, tokenString)
}

func (v *AuthValidationService) PruneExpiredTokens(ctx context.Context) (int64, error) {
	return v.inner.PruneExpiredTokens(ctx)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
