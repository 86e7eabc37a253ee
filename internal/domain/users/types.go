package users

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrDuplicateEmail    = errors.New("a user with that email already exists")
	ErrInvalidResetToken = errors.New("reset token is invalid or expired")
	QueryTimeoutDuration = time.Second * 5
)

type Role string

const (
	RoleUser     Role = "USER"
	RoleGymOwner Role = "GYM_OWNER"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleGymOwner, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  password  `json:"-"` // Hide password
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Password struct to store plain text and hash
type password struct {
	text *string
	hash []byte
}

func (p *password) Set(text string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(text), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	p.text = &text
	p.hash = hash

	return nil
}

func (p *password) Compare(text string) error {
	return bcrypt.CompareHashAndPassword(p.hash, []byte(text))
}

// Hash exposes the bcrypt hash for batch inserts.
func (p *password) Hash() []byte {
	return p.hash
}

type Store interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Delete(ctx context.Context, userID int64) error
	UpdateRole(ctx context.Context, userID int64, role Role) error
	SaveRefreshToken(ctx context.Context, userID int64, refreshToken string) error
	DeleteRefreshToken(ctx context.Context, userID int64) error
	GetRefreshToken(ctx context.Context, userID int64) (string, error)
	UpdateResetToken(ctx context.Context, email, resetToken string, expires time.Time) error
	ResetPassword(ctx context.Context, resetToken string, newPassword string) error
	CountByRole(ctx context.Context) (map[Role]int, error)
}
