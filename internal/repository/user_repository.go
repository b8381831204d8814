package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"collegeblog/internal/database"
	"collegeblog/internal/models"
)

const userColumns = `id, email, username, hashed_password, is_active, is_verified,
	verification_token, verification_token_expires, created_at`

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser inserts the account and fills ID, IsActive and CreatedAt.
// It joins the transaction in ctx, if any.
func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, username, hashed_password, is_verified, verification_token, verification_token_expires)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_active, created_at
	`
	args := []any{
		user.Email,
		user.Username,
		user.PasswordHash,
		user.IsVerified,
		user.VerificationToken,
		user.VerificationTokenExpires,
	}

	err := database.Executor(ctx, r.db).
		QueryRowxContext(ctx, query, args...).
		Scan(&user.ID, &user.IsActive, &user.CreatedAt)
	logQuery(query, []any{user.Email, user.Username}, err)
	if err != nil {
		return classify("create user", err)
	}

	return nil
}

func (r *userRepository) getUserBy(ctx context.Context, column string, value any) (*models.User, error) {
	var user models.User

	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, column)

	err := sqlx.GetContext(ctx, database.Executor(ctx, r.db), &user, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user with %s %v: %w", column, value, ErrNotFound)
		}
		return nil, fmt.Errorf("get user by %s: %w", column, err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	return r.getUserBy(ctx, "id", userID)
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserBy(ctx, "email", email)
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getUserBy(ctx, "username", username)
}

func (r *userRepository) GetUserByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	return r.getUserBy(ctx, "verification_token", token)
}

// MarkVerified redeems token for userID. The token must still be stored on the
// row, so of two concurrent redemptions only one updates it.
func (r *userRepository) MarkVerified(ctx context.Context, userID int64, token string) (*models.User, error) {
	var user models.User

	query := fmt.Sprintf(`
		UPDATE users SET
			is_verified = TRUE,
			verification_token = NULL,
			verification_token_expires = NULL
		WHERE id = $1 AND verification_token = $2
		RETURNING %s
	`, userColumns)

	err := sqlx.GetContext(ctx, database.Executor(ctx, r.db), &user, query, userID, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("verification token for user %d: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("mark user verified: %w", err)
	}

	return &user, nil
}

func (r *userRepository) ClearVerificationToken(ctx context.Context, userID int64) error {
	query := `
		UPDATE users SET
			verification_token = NULL,
			verification_token_expires = NULL
		WHERE id = $1
	`

	result, err := database.Executor(ctx, r.db).ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("clear verification token: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("clear verification token: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}

	return nil
}

func (r *userRepository) UpdateUsername(ctx context.Context, userID int64, username string) (*models.User, error) {
	var user models.User

	query := fmt.Sprintf(`UPDATE users SET username = $1 WHERE id = $2 RETURNING %s`, userColumns)

	err := sqlx.GetContext(ctx, database.Executor(ctx, r.db), &user, query, username, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return nil, classify("update username", err)
	}

	return &user, nil
}
