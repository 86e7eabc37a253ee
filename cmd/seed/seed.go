package main

import (
	"context"
	"database/sql"
	"fmt"

	venuereviews "gymspot/internal/domain/venuereview"
	"gymspot/internal/slug"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const seedPassword = "gymspot-demo"

type seeder struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

type summary struct {
	Users, Venues, Reviews, Plans int
	Rated                         int64
}

func (s *seeder) reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		TRUNCATE payment_records, subscriptions, subscription_plans, user_push_tokens,
			promotions, reviews, favorite_venues, venues, users
		RESTART IDENTITY CASCADE`)
	if err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	s.logger.Info("tables truncated")
	return nil
}

// run inserts every fixture in one transaction and recomputes venue ratings
// once the reviews are in.
func (s *seeder) run(ctx context.Context) (*summary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var out summary

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	ownerID, err := insertUser(ctx, tx, "GymSpot Owner", "owner@gymspot.ma", "GYM_OWNER", hash)
	if err != nil {
		return nil, err
	}
	if _, err := insertUser(ctx, tx, "GymSpot Admin", "admin@gymspot.ma", "ADMIN", hash); err != nil {
		return nil, err
	}
	out.Users = 2

	reviewerIDs := make([]int64, 0, len(reviewers))
	for _, name := range reviewers {
		id, err := insertUser(ctx, tx, name, slug.Make(name)+"@example.com", "USER", hash)
		if err != nil {
			return nil, err
		}
		reviewerIDs = append(reviewerIDs, id)
	}
	out.Users += len(reviewerIDs)

	venueIdx := 0
	for _, c := range cities {
		for _, v := range append(append([]venueSeed{}, gyms...), clubs...) {
			venueID, err := insertVenue(ctx, tx, ownerID, v, c)
			if err != nil {
				return nil, err
			}
			out.Venues++

			for i, userID := range reviewerIDs {
				// every other venue gets a partial set of reviews
				if venueIdx%2 == 1 && i%2 == 1 {
					continue
				}
				_, err := tx.ExecContext(ctx, `
					INSERT INTO reviews (venue_id, user_id, rating, comment)
					VALUES ($1, $2, $3, $4)`,
					venueID, userID, reviewRating(venueIdx, i), reviewComments[(venueIdx+i)%len(reviewComments)],
				)
				if err != nil {
					return nil, fmt.Errorf("insert review: %w", err)
				}
				out.Reviews++
			}
			venueIdx++
		}
	}

	for _, p := range plans {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO subscription_plans (name, description, price, currency, billing_cycle, features)
			VALUES ($1, $2, $3, 'MAD', $4, $5)`,
			p.Name, p.Description, p.Price, p.BillingCycle, pq.Array(p.Features),
		)
		if err != nil {
			return nil, fmt.Errorf("insert plan %s: %w", p.Name, err)
		}
		out.Plans++
	}

	if out.Rated, err = rateVenues(ctx, tx); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &out, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// rateVenues runs the same recompute the API uses after review changes.
func rateVenues(ctx context.Context, db execer) (int64, error) {
	res, err := db.ExecContext(ctx, venuereviews.RecomputeAllQuery)
	if err != nil {
		return 0, fmt.Errorf("recompute ratings: %w", err)
	}
	return res.RowsAffected()
}

func insertUser(ctx context.Context, tx *sql.Tx, name, email, role string, hash []byte) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `
		INSERT INTO users (name, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`, name, email, hash, role,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert user %s: %w", email, err)
	}
	return id, nil
}

func insertVenue(ctx context.Context, tx *sql.Tx, ownerID int64, v venueSeed, c city) (int64, error) {
	name := venueName(v, c)

	var id int64
	err := tx.QueryRowContext(ctx, `
		INSERT INTO venues (kind, owner_id, name, slug, description, address, city, city_slug,
			postal_code, latitude, longitude, price_tier, facilities, image_urls, status, verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, 'ACTIVE', $15)
		RETURNING id`,
		v.Kind, ownerID, name, venueSlug(v, c), v.Description, v.Street+", "+c.Name, c.Name, slug.Make(c.Name),
		c.PostalCode, c.Lat, c.Lng, v.PriceTier, pq.Array(v.Facilities), pq.Array(nonNil(v.Images)), v.Verified,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert venue %s: %w", name, err)
	}
	return id, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
