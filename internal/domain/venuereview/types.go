package venuereviews

import (
	"context"
	"errors"
	"time"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrAlreadyReviewed = errors.New("you have already reviewed this venue")
)

type Status string

const (
	StatusPublished Status = "PUBLISHED"
	StatusHidden    Status = "HIDDEN"
	StatusDeleted   Status = "DELETED"
)

type Review struct {
	ID           int64     `json:"id"`
	VenueID      int64     `json:"venue_id"`
	UserID       int64     `json:"user_id"`
	Rating       int       `json:"rating"` // 1-5
	Comment      string    `json:"comment"`
	HelpfulCount int       `json:"helpful_count"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Joined fields
	UserName string `json:"user_name,omitempty"`
}

type Store interface {
	CreateReview(ctx context.Context, review *Review) error
	GetByID(ctx context.Context, reviewID int64) (*Review, error)
	// GetReviews lists published reviews of a venue, newest first.
	GetReviews(ctx context.Context, venueID int64) ([]Review, error)
	// ListForVenue lists every non-deleted review, for the owner dashboard.
	ListForVenue(ctx context.Context, venueID int64) ([]Review, error)
	UpdateReview(ctx context.Context, reviewID int64, rating int, comment string) error
	DeleteReview(ctx context.Context, reviewID int64) error
	MarkHelpful(ctx context.Context, reviewID int64) (int, error)
	SetStatus(ctx context.Context, reviewID int64, status Status) error
	GetReviewStats(ctx context.Context, venueID int64) (int, float64, error)
	RecomputeRating(ctx context.Context, venueID int64) (float64, error)
	RecomputeAll(ctx context.Context) (int64, error)
}
