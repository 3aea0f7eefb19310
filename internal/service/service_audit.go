// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shipment-tracker/internal/config"
	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/metrics"
	"github.com/MKhiriev/go-shipment-tracker/internal/store"
	"github.com/MKhiriev/go-shipment-tracker/models"
)

const (
	auditBaseBackoff = time.Second
	auditMaxBackoff  = time.Minute
)

// auditService queues audit entries in the durable audit_jobs table and
// moves due jobs into system_logs. Delivery never blocks or rolls back the
// operation that produced the entry.
type auditService struct {
	auditJobRepository  store.AuditJobRepository
	systemLogRepository store.SystemLogRepository

	// retryable reports whether a failed delivery may succeed later.
	retryable func(error) bool
	now       func() time.Time

	batchSize   uint64
	maxAttempts int
	pageSize    uint64

	logger *logger.Logger
}

// NewAuditService constructs an AuditService. retryable classifies delivery
// errors; a nil func treats every error as permanent.
func NewAuditService(
	auditJobRepository store.AuditJobRepository,
	systemLogRepository store.SystemLogRepository,
	retryable func(error) bool,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) AuditService {
	if retryable == nil {
		retryable = func(error) bool { return false }
	}

	batchSize := cfg.Workers.AuditBatchSize
	if batchSize < 1 {
		batchSize = 1
	}

	return &auditService{
		auditJobRepository:  auditJobRepository,
		systemLogRepository: systemLogRepository,
		retryable:           retryable,
		now:                 time.Now,
		batchSize:           uint64(batchSize),
		maxAttempts:         max(cfg.Workers.AuditMaxAttempts, 1),
		pageSize:            cfg.App.PageSize,
		logger:              logger,
	}
}

// Record queues entry for delivery no earlier than delay from now.
func (s *auditService) Record(ctx context.Context, entry models.AuditEntry, delay time.Duration) error {
	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAuditEntryNotQueued, err)
	}

	job := models.AuditJob{
		Action:    entry.Action,
		IPAddress: entry.IPAddress,
		Metadata:  metadata,
		NotBefore: s.now().Add(max(delay, 0)),
	}
	if entry.UserID > 0 {
		userID := entry.UserID
		job.UserID = &userID
	}

	jobID, err := s.auditJobRepository.EnqueueAuditJob(ctx, job)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAuditEntryNotQueued, err)
	}

	logger.FromContext(ctx).Debug().
		Int64("job_id", jobID).
		Str("action", entry.Action).
		Time("not_before", job.NotBefore).
		Msg("audit entry queued")

	return nil
}

// DispatchDue delivers every job whose delay has passed, up to one batch.
//
// A job that fails with a retryable error is rescheduled with exponential
// back-off. It is dropped once it has used up its attempts or when the error
// is permanent.
func (s *auditService) DispatchDue(ctx context.Context) (models.DispatchReport, error) {
	jobs, err := s.auditJobRepository.FindDueAuditJobs(ctx, s.now(), s.batchSize)
	if err != nil {
		s.logger.Err(err).Str("func", "*auditService.DispatchDue").Msg("error loading due audit jobs")
		return models.DispatchReport{}, err
	}

	report := models.DispatchReport{Due: len(jobs)}
	for _, job := range jobs {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		s.dispatch(ctx, job, &report)
	}

	return report, nil
}

func (s *auditService) dispatch(ctx context.Context, job models.AuditJob, report *models.DispatchReport) {
	_, err := s.auditJobRepository.DeliverAuditJob(ctx, job)
	if err == nil {
		report.Delivered++
		metrics.ObserveAuditJob(metrics.AuditDelivered)
		return
	}
	if errors.Is(err, store.ErrAuditJobNotFound) {
		return
	}

	attempts := job.Attempts + 1
	if !s.retryable(err) || attempts >= s.maxAttempts {
		s.drop(ctx, job, attempts, err, report)
		return
	}

	notBefore := s.now().Add(auditBackoff(attempts))
	if rescheduleErr := s.auditJobRepository.RescheduleAuditJob(ctx, job.ID, notBefore, err.Error()); rescheduleErr != nil {
		s.logger.Err(rescheduleErr).Str("func", "*auditService.dispatch").Int64("job_id", job.ID).Msg("error rescheduling audit job")
		return
	}

	report.Rescheduled++
	metrics.ObserveAuditJob(metrics.AuditRescheduled)
	s.logger.Warn().Err(err).
		Int64("job_id", job.ID).
		Int("attempts", attempts).
		Time("not_before", notBefore).
		Msg("audit job delivery failed, rescheduled")
}

func (s *auditService) drop(ctx context.Context, job models.AuditJob, attempts int, cause error, report *models.DispatchReport) {
	s.logger.Error().Err(cause).
		Str("func", "*auditService.drop").
		Int64("job_id", job.ID).
		Str("action", job.Action).
		Int("attempts", attempts).
		RawJSON("metadata", nonEmptyJSON(job.Metadata)).
		Msg("audit job dropped")

	if err := s.auditJobRepository.DeleteAuditJob(ctx, job.ID); err != nil {
		s.logger.Err(err).Str("func", "*auditService.drop").Int64("job_id", job.ID).Msg("error deleting audit job")
		return
	}

	report.Dropped++
	metrics.ObserveAuditJob(metrics.AuditDropped)
}

// GetSystemLogs returns one page of the system log, newest first.
func (s *auditService) GetSystemLogs(ctx context.Context, query models.ListQuery) (models.SystemLogPage, error) {
	filter := models.LogFilter{Page: max(query.Page, 1), Limit: query.Limit}
	if filter.Limit == 0 {
		filter.Limit = s.pageSize
	}

	logs, total, err := s.systemLogRepository.ListSystemLogs(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*auditService.GetSystemLogs").Msg("error listing system logs")
		return models.SystemLogPage{}, fmt.Errorf("%w: %w", ErrSystemLogsNotRetrieved, err)
	}
	if len(logs) == 0 {
		return models.SystemLogPage{}, ErrNoRecords
	}

	return models.SystemLogPage{
		Logs:       logs,
		Pagination: models.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// auditBackoff doubles the wait after every failed attempt.
func auditBackoff(attempts int) time.Duration {
	backoff := auditBaseBackoff
	for i := 1; i < attempts && backoff < auditMaxBackoff; i++ {
		backoff *= 2
	}
	return min(backoff, auditMaxBackoff)
}

func nonEmptyJSON(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return raw
}
