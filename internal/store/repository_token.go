package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/models"
)

// tokenRepository is the PostgreSQL-backed implementation of
// [TokenRepository] over the "personal_access_tokens" table.
type tokenRepository struct {
	*DB
	logger *logger.Logger
}

// NewTokenRepository constructs a [TokenRepository] backed by db.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceUserTokens locks the user row, deletes all of the user's tokens,
// inserts token and updates last_login_at, all in one transaction. Two
// concurrent logins of the same user serialize on the row lock, so at most
// one token survives.
func (r *tokenRepository) ReplaceUserTokens(ctx context.Context, token models.Token, loggedInAt time.Time) error {
	log := logger.FromContext(ctx)

	abilities, err := json.Marshal(token.Abilities)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.ReplaceUserTokens").Int64("user_id", token.UserID).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var lockedID int64
	if err = tx.QueryRowContext(ctx, lockUserForUpdate, token.UserID).Scan(&lockedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*tokenRepository.ReplaceUserTokens").Int64("user_id", token.UserID).Msg("failed to lock user row")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err = tx.ExecContext(ctx, deleteUserTokens, token.UserID); err != nil {
		log.Err(err).Str("func", "*tokenRepository.ReplaceUserTokens").Int64("user_id", token.UserID).Msg("failed to revoke previous tokens")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, insertToken, token.ID, token.UserID, token.Name, abilities, token.ExpiresAt, token.CreatedAt); err != nil {
		log.Err(err).Str("func", "*tokenRepository.ReplaceUserTokens").Int64("user_id", token.UserID).Msg("failed to insert token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, updateUserLastLogin, loggedInAt, token.UserID); err != nil {
		log.Err(err).Str("func", "*tokenRepository.ReplaceUserTokens").Int64("user_id", token.UserID).Msg("failed to update last login")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*tokenRepository.ReplaceUserTokens").Int64("user_id", token.UserID).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// FindToken returns the persisted token with tokenID, or [ErrTokenNotFound]
// when it was revoked or never existed.
func (r *tokenRepository) FindToken(ctx context.Context, tokenID string) (models.Token, error) {
	var token models.Token
	var abilities []byte

	err := r.QueryRowContext(ctx, findToken, tokenID).Scan(
		&token.ID,
		&token.UserID,
		&token.Name,
		&abilities,
		&token.ExpiresAt,
		&token.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Token{}, ErrTokenNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenRepository.FindToken").Msg("failed to find token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal(abilities, &token.Abilities); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	return token, nil
}

// RevokeUserTokens deletes every token of userID and returns how many were
// removed.
func (r *tokenRepository) RevokeUserTokens(ctx context.Context, userID int64) (int64, error) {
	result, err := r.ExecContext(ctx, deleteUserTokens, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenRepository.RevokeUserTokens").Int64("user_id", userID).Msg("failed to revoke tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	revoked, _ := result.RowsAffected()
	return revoked, nil
}

// DeleteExpiredTokens removes tokens that expired at or before now.
func (r *tokenRepository) DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.ExecContext(ctx, deleteExpiredTokens, now)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenRepository.DeleteExpiredTokens").Msg("failed to delete expired tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, _ := result.RowsAffected()
	return deleted, nil
}
