package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser persists a new user and returns it with the server-assigned
// UserID, CreatedAt and UpdatedAt.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.QueryRowContext(ctx, createUser, user.Name, user.Email, string(user.Role), user.PasswordHash)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan server-assigned fields
	if err := row.Scan(&user.UserID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// FindUserByEmail retrieves the active user registered with email.
// A missing row yields [ErrNoUserWasFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := r.findUser(ctx, findUserByEmail, email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user by email")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByID retrieves the active user with userID.
// A missing row yields [ErrNoUserWasFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	user, err := r.findUser(ctx, findUserByID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", userID).Msg("error finding user by id")
		return models.User{}, err
	}

	return user, nil
}

// DeleteUser hard-deletes the user with userID. Its tokens go with it.
// A missing row yields [ErrNoUserWasFound].
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	result, err := r.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("failed to delete user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if deleted, _ := result.RowsAffected(); deleted == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	var user models.User

	err := r.QueryRowContext(ctx, query, arg).Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.PasswordHash,
		&user.LastLoginAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}
