package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/models"
)

type systemLogRepository struct {
	*DB
	logger *logger.Logger
}

func NewSystemLogRepository(db *DB, logger *logger.Logger) SystemLogRepository {
	logger.Debug().Msg("creating system log repository")
	return &systemLogRepository{
		DB:     db,
		logger: logger,
	}
}

// ListSystemLogs returns one page of logs, newest first, with the acting
// user attached when the log has one.
func (r *systemLogRepository) ListSystemLogs(ctx context.Context, filter models.LogFilter) ([]models.SystemLog, uint64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountSystemLogsQuery()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total uint64
	if err = r.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*systemLogRepository.ListSystemLogs").Msg("failed to count system logs")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if total == 0 {
		return []models.SystemLog{}, 0, nil
	}

	query, args, err := buildListSystemLogsQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*systemLogRepository.ListSystemLogs").Msg("failed to list system logs")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	logs := make([]models.SystemLog, 0, filter.Limit)
	for rows.Next() {
		var (
			entry    models.SystemLog
			metadata []byte
			userID   sql.NullInt64
			name     sql.NullString
			email    sql.NullString
			role     sql.NullString
			lastSeen sql.NullTime
			joinedAt sql.NullTime
		)

		scanErr := rows.Scan(
			&entry.ID,
			&entry.Action,
			&entry.UserID,
			&entry.IPAddress,
			&metadata,
			&entry.CreatedAt,
			&entry.UpdatedAt,
			&userID,
			&name,
			&email,
			&role,
			&lastSeen,
			&joinedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*systemLogRepository.ListSystemLogs").Msg("failed to scan system log row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entry.Metadata = metadata
		if userID.Valid {
			entry.User = &models.User{
				UserID:    userID.Int64,
				Name:      name.String,
				Email:     email.String,
				Role:      models.Role(role.String),
				CreatedAt: joinedAt.Time,
			}
			if lastSeen.Valid {
				entry.User.LastLoginAt = &lastSeen.Time
			}
		}

		logs = append(logs, entry)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*systemLogRepository.ListSystemLogs").Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return logs, total, nil
}
