package users

import (
	"context"
	"errors"
	"fmt"

	"time"

	"gymspot/internal/dbx"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) Store {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, user *User) error {
	if user.Role == "" {
		user.Role = RoleUser
	}

	query := `
	  INSERT INTO users (name, email, password, role) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRow(
		ctx, query, user.Name, user.Email, user.Password.hash, user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *Repository) getBy(ctx context.Context, column string, value any) (*User, error) {
	query := `
		SELECT id, name, email, password, role, created_at, updated_at
		FROM users
		WHERE ` + column + ` = $1
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	user := &User{}
	err := r.db.QueryRow(ctx, query, value).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password.hash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetByID(ctx context.Context, userID int64) (*User, error) {
	return r.getBy(ctx, "id", userID)
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *Repository) Delete(ctx context.Context, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	return err
}

func (r *Repository) UpdateRole(ctx context.Context, userID int64, role Role) error {
	if !role.Valid() {
		return fmt.Errorf("invalid role %q", role)
	}

	tag, err := r.db.Exec(ctx, `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`, role, userID)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) SaveRefreshToken(ctx context.Context, userID int64, refreshToken string) error {
	query := `UPDATE users SET refresh_token = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, refreshToken, userID)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

func (r *Repository) DeleteRefreshToken(ctx context.Context, userID int64) error {
	query := `UPDATE users SET refresh_token = NULL, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

// GetRefreshToken retrieves the stored refresh token of a user.
func (r *Repository) GetRefreshToken(ctx context.Context, userID int64) (string, error) {
	var refreshToken *string

	err := r.db.QueryRow(ctx, `SELECT refresh_token FROM users WHERE id = $1`, userID).Scan(&refreshToken)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to retrieve refresh token: %w", err)
	}
	if refreshToken == nil {
		return "", fmt.Errorf("no refresh token found for user %d", userID)
	}
	return *refreshToken, nil
}

// UpdateResetToken stores the hashed reset token. Unknown emails are a no-op
// so callers do not leak which addresses are registered.
func (r *Repository) UpdateResetToken(ctx context.Context, email, resetToken string, expires time.Time) error {
	query := `
		UPDATE users
		SET reset_password_token = $1, reset_password_expires = $2, updated_at = NOW()
		WHERE email = $3
	`
	_, err := r.db.Exec(ctx, query, resetToken, expires, email)
	if err != nil {
		return fmt.Errorf("failed to update reset token: %w", err)
	}
	return nil
}

func (r *Repository) ResetPassword(ctx context.Context, resetToken string, newPassword string) error {
	var pw password
	if err := pw.Set(newPassword); err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET password = $1, reset_password_token = NULL, reset_password_expires = NULL,
		    refresh_token = NULL, updated_at = NOW()
		WHERE reset_password_token = $2 AND reset_password_expires > NOW()
	`, pw.hash, resetToken)
	if err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrInvalidResetToken
	}
	return nil
}

func (r *Repository) CountByRole(ctx context.Context) (map[Role]int, error) {
	rows, err := r.db.Query(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role`)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	defer rows.Close()

	counts := map[Role]int{}
	for rows.Next() {
		var (
			role Role
			n    int
		)
		if err := rows.Scan(&role, &n); err != nil {
			return nil, err
		}
		counts[role] = n
	}
	return counts, rows.Err()
}
