package workers

import (
	"context"

	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/service"
)

// auditDispatcher moves due audit jobs into the system log.
type auditDispatcher struct {
	audit    service.AuditService
	schedule string
	logger   *logger.Logger
}

func NewAuditDispatcher(audit service.AuditService, schedule string, logger *logger.Logger) Worker {
	return &auditDispatcher{audit: audit, schedule: schedule, logger: logger}
}

func (d *auditDispatcher) Name() string {
	return "audit-dispatcher"
}

func (d *auditDispatcher) Schedule() string {
	return d.schedule
}

func (d *auditDispatcher) Run(ctx context.Context) {
	report, err := d.audit.DispatchDue(ctx)
	if err != nil {
		d.logger.Err(err).Str("func", "*auditDispatcher.Run").Msg("audit dispatch failed")
		return
	}
	if report.Due == 0 {
		return
	}

	d.logger.Info().
		Int("due", report.Due).
		Int("delivered", report.Delivered).
		Int("rescheduled", report.Rescheduled).
		Int("dropped", report.Dropped).
		Msg("audit jobs dispatched")
}
