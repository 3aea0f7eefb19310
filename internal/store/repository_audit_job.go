package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/models"
)

// auditJobRepository is the PostgreSQL-backed audit outbox. Jobs survive
// restarts in the "audit_jobs" table until they are delivered into
// "system_logs" or dropped.
type auditJobRepository struct {
	*DB
	logger *logger.Logger
}

// NewAuditJobRepository constructs an [AuditJobRepository] backed by db.
func NewAuditJobRepository(db *DB, logger *logger.Logger) AuditJobRepository {
	logger.Debug().Msg("creating audit job repository")
	return &auditJobRepository{
		DB:     db,
		logger: logger,
	}
}

// EnqueueAuditJob stores job and returns its ID.
func (a *auditJobRepository) EnqueueAuditJob(ctx context.Context, job models.AuditJob) (int64, error) {
	var jobID int64

	err := a.DB.QueryRowContext(ctx, enqueueAuditJob,
		job.Action,
		job.UserID,
		job.IPAddress,
		nullableJSON(job.Metadata),
		job.NotBefore,
	).Scan(&jobID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*auditJobRepository.EnqueueAuditJob").
			Str("action", job.Action).
			Msg("failed to enqueue audit job")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return jobID, nil
}

// FindDueAuditJobs returns at most limit jobs whose NotBefore is not after
// now, oldest first.
func (a *auditJobRepository) FindDueAuditJobs(ctx context.Context, now time.Time, limit uint64) ([]models.AuditJob, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDueAuditJobsQuery(now, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*auditJobRepository.FindDueAuditJobs").Msg("failed to query due audit jobs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	jobs := make([]models.AuditJob, 0, limit)
	for rows.Next() {
		var job models.AuditJob
		var metadata []byte

		scanErr := rows.Scan(
			&job.ID,
			&job.Action,
			&job.UserID,
			&job.IPAddress,
			&metadata,
			&job.NotBefore,
			&job.Attempts,
			&job.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*auditJobRepository.FindDueAuditJobs").Msg("failed to scan audit job row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		job.Metadata = metadata
		jobs = append(jobs, job)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return jobs, nil
}

// DeliverAuditJob inserts the system log built from job and deletes the job
// in the same transaction. When the job is already gone (delivered by a
// concurrent dispatcher) nothing is written and [ErrAuditJobNotFound] is
// returned.
func (a *auditJobRepository) DeliverAuditJob(ctx context.Context, job models.AuditJob) (models.SystemLog, error) {
	log := logger.FromContext(ctx)

	tx, err := a.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*auditJobRepository.DeliverAuditJob").Int64("job_id", job.ID).Msg("failed to begin transaction")
		return models.SystemLog{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, deleteAuditJob, job.ID)
	if err != nil {
		log.Err(err).Str("func", "*auditJobRepository.DeliverAuditJob").Int64("job_id", job.ID).Msg("failed to dequeue audit job")
		return models.SystemLog{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if deleted, _ := result.RowsAffected(); deleted == 0 {
		return models.SystemLog{}, ErrAuditJobNotFound
	}

	// the log keeps the time the action happened, not the delivery time
	entry := job.SystemLog()
	entry.CreatedAt = job.CreatedAt
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	entry.UpdatedAt = entry.CreatedAt

	err = tx.QueryRowContext(ctx, insertSystemLog,
		entry.Action,
		entry.UserID,
		entry.IPAddress,
		nullableJSON(entry.Metadata),
		entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		log.Err(err).Str("func", "*auditJobRepository.DeliverAuditJob").Int64("job_id", job.ID).Msg("failed to insert system log")
		return models.SystemLog{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*auditJobRepository.DeliverAuditJob").Int64("job_id", job.ID).Msg("failed to commit transaction")
		return models.SystemLog{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return entry, nil
}

// RescheduleAuditJob bumps the attempt counter of jobID and postpones it
// until notBefore.
func (a *auditJobRepository) RescheduleAuditJob(ctx context.Context, jobID int64, notBefore time.Time, lastErr string) error {
	if _, err := a.DB.ExecContext(ctx, rescheduleAuditJob, notBefore, lastErr, jobID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*auditJobRepository.RescheduleAuditJob").Int64("job_id", jobID).Msg("failed to reschedule audit job")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteAuditJob drops jobID from the queue without delivering it.
func (a *auditJobRepository) DeleteAuditJob(ctx context.Context, jobID int64) error {
	if _, err := a.DB.ExecContext(ctx, deleteAuditJob, jobID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*auditJobRepository.DeleteAuditJob").Int64("job_id", jobID).Msg("failed to delete audit job")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// nullableJSON maps an empty JSON document to SQL NULL.
func nullableJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
