package admindashboard

import (
	"context"

	"github.com/shopspring/decimal"
)

type Overview struct {
	// Users
	TotalUsers     int64 `json:"total_users"`
	TotalGymOwners int64 `json:"total_gym_owners"`
	TotalAdmins    int64 `json:"total_admins"`

	// Venues
	TotalVenues         int64 `json:"total_venues"`
	TotalGyms           int64 `json:"total_gyms"`
	TotalClubs          int64 `json:"total_clubs"`
	TotalActiveVenues   int64 `json:"total_active_venues"`
	TotalPendingVenues  int64 `json:"total_pending_venues"`
	TotalInactiveVenues int64 `json:"total_inactive_venues"`
	TotalClosedVenues   int64 `json:"total_closed_venues"`

	// Reviews
	TotalReviews       int64 `json:"total_reviews"`
	TotalHiddenReviews int64 `json:"total_hidden_reviews"`

	// Promotions
	TotalActivePromotions int64 `json:"total_active_promotions"`

	// Subscriptions
	TotalActiveSubscriptions int64           `json:"total_active_subscriptions"`
	TotalRevenue             decimal.Decimal `json:"total_revenue" swaggertype:"string"`
}

type Store interface {
	GetOverview(ctx context.Context) (*Overview, error)
}
