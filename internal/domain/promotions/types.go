package promotions

import (
	"context"
	"errors"
	"time"
)

var (
	ErrPromotionNotFound = errors.New("promotion not found")
	// ErrNotRedeemable is returned for inactive promotions and outside the
	// validity window.
	ErrNotRedeemable = errors.New("promotion is not currently redeemable")
	ErrInvalidCode   = errors.New("invalid redemption code")
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountOffer      DiscountType = "OFFER"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusExpired  Status = "EXPIRED"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive || s == StatusExpired
}

type Promotion struct {
	ID              int64        `json:"id"`
	VenueID         int64        `json:"venue_id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	DiscountType    DiscountType `json:"discount_type"`
	DiscountPercent *int         `json:"discount_percent,omitempty"`
	OfferText       string       `json:"offer_text,omitempty"`
	StartsAt        time.Time    `json:"starts_at"`
	EndsAt          time.Time    `json:"ends_at"`
	RedemptionCount int64        `json:"redemption_count"`
	Status          Status       `json:"status"`
	Code            string       `json:"code,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`

	// Joined fields
	VenueName string `json:"venue_name,omitempty"`
	City      string `json:"city,omitempty"`
}

// ValidAt reports whether the promotion can be redeemed at t.
func (p *Promotion) ValidAt(t time.Time) bool {
	return p.Status == StatusActive && !t.Before(p.StartsAt) && t.Before(p.EndsAt)
}

type Store interface {
	Create(ctx context.Context, p *Promotion) error
	GetByID(ctx context.Context, id int64) (*Promotion, error)
	Update(ctx context.Context, p *Promotion) error
	Delete(ctx context.Context, id int64) error
	ListByVenue(ctx context.Context, venueID int64) ([]Promotion, error)
	// ListCurrent returns active promotions of active venues valid at now,
	// optionally narrowed to a city.
	ListCurrent(ctx context.Context, city string, now time.Time) ([]Promotion, error)
	Redeem(ctx context.Context, id int64, now time.Time) (*Promotion, error)
}
