package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-shipment-tracker/internal/config"
	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/mock"
	"github.com/MKhiriev/go-shipment-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRateLimitService_Allow(t *testing.T) {
	tests := []struct {
		name    string
		count   int64
		want    models.RateLimit
		wantErr error
	}{
		{
			name:  "first request",
			count: 1,
			want:  models.RateLimit{Allowed: true, Limit: 2, Remaining: 1, ResetIn: 30 * time.Second},
		},
		{
			name:  "last request of the window",
			count: 2,
			want:  models.RateLimit{Allowed: true, Limit: 2, Remaining: 0, ResetIn: 30 * time.Second},
		},
		{
			name:    "over budget",
			count:   3,
			want:    models.RateLimit{Allowed: false, Limit: 2, Remaining: 0, ResetIn: 30 * time.Second},
			wantErr: ErrRateLimitExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			limiter := mock.NewMockRateLimitStore(ctrl)
			svc := NewRateLimitService(limiter, testConfig().Server, logger.Nop())

			limiter.EXPECT().Hit(gomock.Any(), "203.0.113.7", time.Minute).Return(tt.count, 30*time.Second, nil)

			got, err := svc.Allow(context.Background(), "203.0.113.7")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRateLimitService_Allow_StoreDownFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mock.NewMockRateLimitStore(ctrl)
	svc := NewRateLimitService(limiter, testConfig().Server, logger.Nop())

	limiter.EXPECT().Hit(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), time.Duration(0), errors.New("dial tcp: connection refused"))

	got, err := svc.Allow(context.Background(), "203.0.113.7")

	require.NoError(t, err)
	assert.True(t, got.Allowed)
}

func TestRateLimitService_Allow_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mock.NewMockRateLimitStore(ctrl)
	svc := NewRateLimitService(limiter, config.Server{RateLimit: 0, RateLimitWindow: time.Minute}, logger.Nop())

	limiter.EXPECT().Hit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := svc.Allow(context.Background(), "203.0.113.7")

	require.NoError(t, err)
	assert.True(t, got.Allowed)
}
