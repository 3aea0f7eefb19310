package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-shipment-tracker/internal/config"
	"github.com/MKhiriev/go-shipment-tracker/models"
)

// ─────────────────────────────────────────────
// Shared fixtures
// ─────────────────────────────────────────────

const (
	testSignKey = "test-sign-key"
	testIssuer  = "shipment-tracker-test"
	testIP      = "203.0.113.7"
)

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			Version:       "1.0.0",
			TokenSignKey:  testSignKey,
			TokenIssuer:   testIssuer,
			UserTokenTTL:  60 * time.Minute,
			AdminTokenTTL: 30 * time.Minute,
			BcryptCost:    4,
			PageSize:      10,
		},
		Server: config.Server{
			RateLimit:       2,
			RateLimitWindow: time.Minute,
		},
		Workers: config.Workers{
			AuditBatchSize:   50,
			AuditMaxAttempts: 3,
			AuditDelay:       5 * time.Second,
			LoginAuditDelay:  2 * time.Second,
		},
	}
}

// ─────────────────────────────────────────────
// Fake: AuditService
// ─────────────────────────────────────────────

type recordedAudit struct {
	entry models.AuditEntry
	delay time.Duration
}

// fakeAuditService collects queued entries instead of storing them.
type fakeAuditService struct {
	mu        sync.Mutex
	recorded  []recordedAudit
	recordErr error
}

func (f *fakeAuditService) Record(_ context.Context, entry models.AuditEntry, delay time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.recordErr != nil {
		return f.recordErr
	}
	f.recorded = append(f.recorded, recordedAudit{entry: entry, delay: delay})
	return nil
}

func (f *fakeAuditService) DispatchDue(context.Context) (models.DispatchReport, error) {
	return models.DispatchReport{}, nil
}

func (f *fakeAuditService) GetSystemLogs(context.Context, models.ListQuery) (models.SystemLogPage, error) {
	return models.SystemLogPage{}, nil
}

func (f *fakeAuditService) entries() []recordedAudit {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedAudit(nil), f.recorded...)
}
