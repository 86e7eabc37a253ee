package storage

import (
	"context"
	"fmt"

	"gymspot/internal/dbx"
	"gymspot/internal/domain/admindashboard"
	"gymspot/internal/domain/promotions"
	"gymspot/internal/domain/pushtokens"
	"gymspot/internal/domain/subscriptions"
	"gymspot/internal/domain/users"
	venuereviews "gymspot/internal/domain/venuereview"
	"gymspot/internal/domain/venues"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Container struct {
	pool          *pgxpool.Pool // required by WithTx
	Users         users.Store
	Venues        venues.Store
	VenuesReviews venuereviews.Store
	Promotions    promotions.Store
	Subscriptions subscriptions.Store
	PushTokens    pushtokens.Store
	Dashboard     admindashboard.Store
}

func NewContainer(db *pgxpool.Pool) *Container {
	c := newRepos(db)
	c.pool = db
	return c
}

func newRepos(db dbx.Querier) *Container {
	return &Container{
		Users:         users.NewRepository(db),
		Venues:        venues.NewRepository(db),
		VenuesReviews: venuereviews.NewRepository(db),
		Promotions:    promotions.NewRepository(db),
		Subscriptions: subscriptions.NewRepository(db),
		PushTokens:    pushtokens.NewRepository(db),
		Dashboard:     admindashboard.NewRepository(db),
	}
}

// WithTx runs fn with every repository bound to one transaction. The
// transaction commits when fn returns nil.
func (c *Container) WithTx(ctx context.Context, fn func(tx *Container) error) error {
	if c.pool == nil {
		return fmt.Errorf("storage container pool is nil (did you forget to set pool in NewContainer?)")
	}

	return dbx.WithTx(ctx, c.pool, func(tx pgx.Tx) error {
		return fn(newRepos(tx))
	})
}
