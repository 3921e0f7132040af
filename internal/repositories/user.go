package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social-content/internal/models"
)

const userColumns = `user_id, username, email, password_hash, first_name, middle_name, last_name,
	profile_picture, created_at, last_updated_at, is_deleted, version`

// UserRepository stores users. Every read excludes soft-deleted rows.
type UserRepository struct {
	base
}

func NewUserRepository(db *sqlx.DB, txGetter TxGetter) *UserRepository {
	return &UserRepository{base{db: db, txGetter: txGetter}}
}

func (r *UserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND is_deleted = false`
	return r.getOne(ctx, query, userID)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND is_deleted = false`
	return r.getOne(ctx, query, username)
}

func (r *UserRepository) getOne(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)
	logQuery(query, args, user.UserID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// ExistsByUsername reports whether a live user other than excludeID holds username.
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string, excludeID *uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE username = $1 AND is_deleted = false
			  AND ($2::UUID IS NULL OR user_id <> $2)
		)
	`
	return r.exists(ctx, query, username, excludeID)
}

// ExistsByEmail reports whether a live user other than excludeID holds email.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE email = $1 AND is_deleted = false
			  AND ($2::UUID IS NULL OR user_id <> $2)
		)
	`
	return r.exists(ctx, query, email, excludeID)
}

func (r *UserRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var found bool
	err := sqlx.GetContext(ctx, r.executor(ctx), &found, query, args...)
	logQuery(query, args, found, err)
	return found, mapError(err)
}

func (r *UserRepository) Insert(ctx context.Context, user *models.UserDB) (*models.UserDB, error) {
	query := `
		INSERT INTO users (user_id, username, email, password_hash, first_name, middle_name,
			last_name, profile_picture, created_at, last_updated_at, is_deleted, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW(), false, 1)
		RETURNING ` + userColumns

	if user.UserID == uuid.Nil {
		user.UserID = uuid.New()
	}
	args := []any{user.UserID, user.Username, user.Email, user.PasswordHash,
		user.FirstName, user.MiddleName, user.LastName, user.ProfilePicture}

	var saved models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)
	// never log the password hash
	logQuery(query, []any{user.UserID, user.Username, user.Email}, saved.UserID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &saved, nil
}

// Update writes the mutable profile fields if the stored version still equals expectedVersion.
func (r *UserRepository) Update(ctx context.Context, user *models.UserDB, expectedVersion int64) (*models.UserDB, error) {
	query := `
		UPDATE users
		SET username = $2, email = $3, first_name = $4, middle_name = $5, last_name = $6,
		    profile_picture = $7, last_updated_at = NOW(), version = version + 1
		WHERE user_id = $1 AND version = $8 AND is_deleted = false
		RETURNING ` + userColumns
	args := []any{user.UserID, user.Username, user.Email, user.FirstName, user.MiddleName,
		user.LastName, user.ProfilePicture, expectedVersion}

	var saved models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)
	logQuery(query, args, saved.Version, err)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return &saved, nil
}

func (r *UserRepository) SoftDelete(ctx context.Context, userID uuid.UUID) error {
	const query = `
		UPDATE users
		SET is_deleted = true, last_updated_at = NOW(), version = version + 1
		WHERE user_id = $1 AND is_deleted = false
	`
	return execAffecting(ctx, r.executor(ctx), query, userID)
}

// HardDelete removes the row whether or not it is soft-deleted. Posts,
// comments and likes of the user go with it through ON DELETE CASCADE.
func (r *UserRepository) HardDelete(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM users WHERE user_id = $1`
	return execAffecting(ctx, r.executor(ctx), query, userID)
}
