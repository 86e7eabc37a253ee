package admindashboard

import (
	"context"
	"fmt"

	"gymspot/internal/dbx"

	"github.com/shopspring/decimal"
)

type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) Store {
	return &Repository{db: db}
}

func (r *Repository) GetOverview(ctx context.Context) (*Overview, error) {
	const q = `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE role = 'GYM_OWNER'),
			(SELECT COUNT(*) FROM users WHERE role = 'ADMIN'),

			(SELECT COUNT(*) FROM venues),
			(SELECT COUNT(*) FROM venues WHERE kind = 'gym'),
			(SELECT COUNT(*) FROM venues WHERE kind = 'club'),
			(SELECT COUNT(*) FROM venues WHERE status = 'ACTIVE'),
			(SELECT COUNT(*) FROM venues WHERE status = 'PENDING_APPROVAL'),
			(SELECT COUNT(*) FROM venues WHERE status = 'INACTIVE'),
			(SELECT COUNT(*) FROM venues WHERE status = 'CLOSED'),

			(SELECT COUNT(*) FROM reviews WHERE status <> 'DELETED'),
			(SELECT COUNT(*) FROM reviews WHERE status = 'HIDDEN'),

			(SELECT COUNT(*) FROM promotions WHERE status = 'ACTIVE' AND NOW() BETWEEN starts_at AND ends_at),

			(SELECT COUNT(*) FROM subscriptions WHERE status IN ('ACTIVE', 'TRIALING')),
			(SELECT COALESCE(SUM(amount), 0)::text FROM payment_records WHERE status = 'PAID')
	`

	var (
		o       Overview
		revenue string
	)
	err := r.db.QueryRow(ctx, q).Scan(
		&o.TotalUsers,
		&o.TotalGymOwners,
		&o.TotalAdmins,

		&o.TotalVenues,
		&o.TotalGyms,
		&o.TotalClubs,
		&o.TotalActiveVenues,
		&o.TotalPendingVenues,
		&o.TotalInactiveVenues,
		&o.TotalClosedVenues,

		&o.TotalReviews,
		&o.TotalHiddenReviews,

		&o.TotalActivePromotions,

		&o.TotalActiveSubscriptions,
		&revenue,
	)
	if err != nil {
		return nil, fmt.Errorf("admin overview: %w", err)
	}

	o.TotalRevenue, err = decimal.NewFromString(revenue)
	if err != nil {
		return nil, fmt.Errorf("parse revenue %q: %w", revenue, err)
	}

	return &o, nil
}
