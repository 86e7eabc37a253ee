package venues

import (
	"context"
	"errors"
	"time"

	"gymspot/internal/params"
)

var (
	ErrVenueNotFound = errors.New("venue not found")
	ErrDuplicateSlug = errors.New("a venue with this name already exists in this city")
)

// Kind discriminates gyms from clubs. Both live in the venues table.
type Kind string

const (
	KindGym  Kind = "gym"
	KindClub Kind = "club"
)

func (k Kind) Valid() bool {
	return k == KindGym || k == KindClub
}

type Status string

const (
	StatusActive          Status = "ACTIVE"
	StatusInactive        Status = "INACTIVE"
	StatusPendingApproval Status = "PENDING_APPROVAL"
	StatusClosed          Status = "CLOSED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPendingApproval, StatusClosed:
		return true
	}
	return false
}

type PriceTier string

const (
	PriceLow     PriceTier = "LOW"
	PriceMedium  PriceTier = "MEDIUM"
	PriceHigh    PriceTier = "HIGH"
	PricePremium PriceTier = "PREMIUM"
)

func (p PriceTier) Valid() bool {
	switch p {
	case PriceLow, PriceMedium, PriceHigh, PricePremium:
		return true
	}
	return false
}

// Venue represents a gym or club in the database
type Venue struct {
	ID          int64     `json:"id"`
	Kind        Kind      `json:"kind"`
	OwnerID     int64     `json:"owner_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	CitySlug    string    `json:"city_slug"`
	PostalCode  string    `json:"postal_code"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Phone       string    `json:"phone"`
	Website     string    `json:"website"`
	Rating      float64   `json:"rating"`
	PriceTier   PriceTier `json:"price_tier"`
	Facilities  []string  `json:"facilities"`
	ImageURLs   []string  `json:"image_urls"`
	Status      Status    `json:"status"`
	Verified    bool      `json:"verified"`
	ViewCount   int64     `json:"view_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Listing is the card-sized projection used by search and admin lists.
type Listing struct {
	ID          int64     `json:"id"`
	Kind        Kind      `json:"kind"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	CitySlug    string    `json:"city_slug"`
	ImageURLs   []string  `json:"image_urls"`
	Rating      float64   `json:"rating"`
	PriceTier   PriceTier `json:"price_tier"`
	Facilities  []string  `json:"facilities"`
	Status      Status    `json:"status"`
	ReviewCount int       `json:"review_count"`
}

type Suggestion struct {
	Kind     Kind   `json:"kind"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Slug     string `json:"slug"`
	CitySlug string `json:"city_slug"`
}

type AdminFilter struct {
	Status     *Status
	Kind       *Kind
	Pagination params.Pagination
}

type AdminListResult struct {
	Venues []Listing
	Total  int
}

// OwnerStats backs the owner dashboard.
type OwnerStats struct {
	VenueID       int64   `json:"venue_id"`
	Views         int64   `json:"views"`
	Reviews       int     `json:"reviews"`
	AverageRating float64 `json:"average_rating"`
	Favorites     int     `json:"favorites"`
	Promotions    int     `json:"promotions"`
	Redemptions   int64   `json:"redemptions"`
}

type Store interface {
	Create(ctx context.Context, v *Venue) error
	GetByID(ctx context.Context, venueID int64) (*Venue, error)
	GetBySlug(ctx context.Context, citySlug, slug string) (*Venue, error)
	Update(ctx context.Context, venueID int64, updateData map[string]interface{}) error
	UpdateStatus(ctx context.Context, venueID int64, status Status) error
	Delete(ctx context.Context, venueID int64) error
	ListByOwner(ctx context.Context, ownerID int64) ([]Venue, error)
	AdminList(ctx context.Context, filter AdminFilter) (*AdminListResult, error)
	IncrementViews(ctx context.Context, venueID int64) error
	AddPhotoURL(ctx context.Context, venueID int64, photoURL string) error
	RemovePhotoURL(ctx context.Context, venueID int64, photoURL string) error
	OwnerStats(ctx context.Context, venueID int64) (*OwnerStats, error)

	// Search
	FindListings(ctx context.Context, p Predicate, limit, offset int) ([]Listing, int, error)
	Suggest(ctx context.Context, prefix string, limit int) ([]Suggestion, error)

	// Favorites
	ToggleFavorite(ctx context.Context, userID, venueID int64) (bool, error)
	ListFavorites(ctx context.Context, userID int64) ([]Listing, error)
	FavoriteIDs(ctx context.Context, userID int64) (map[int64]struct{}, error)
	FavoritedBy(ctx context.Context, venueID int64) ([]int64, error)
}
