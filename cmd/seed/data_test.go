package main

import (
	"context"
	"database/sql"
	"testing"

	venuereviews "gymspot/internal/domain/venuereview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueSlugsAreUniquePerCity(t *testing.T) {
	for _, c := range cities {
		seen := map[string]bool{}
		for _, v := range append(append([]venueSeed{}, gyms...), clubs...) {
			s := venueSlug(v, c)
			assert.False(t, seen[s], "duplicate slug %q in %s", s, c.Name)
			seen[s] = true
		}
	}
}

func TestVenueName(t *testing.T) {
	assert.Equal(t, "Fitness Zone", venueName(gyms[0], cities[0]))
	assert.Equal(t, "Fitness Zone Rabat", venueName(gyms[0], cities[1]))
	assert.Equal(t, "fitness-zone-rabat", venueSlug(gyms[0], cities[1]))
}

func TestReviewRatingsStayInSeedRange(t *testing.T) {
	for v := 0; v < 40; v++ {
		for r := range reviewers {
			rating := reviewRating(v, r)
			assert.GreaterOrEqual(t, rating, 3)
			assert.LessOrEqual(t, rating, 5)
		}
	}
}

func TestFixturesMatchSchemaEnums(t *testing.T) {
	tiers := map[string]bool{"LOW": true, "MEDIUM": true, "HIGH": true, "PREMIUM": true}
	for _, v := range append(append([]venueSeed{}, gyms...), clubs...) {
		assert.True(t, tiers[v.PriceTier], v.Name)
		assert.Contains(t, []string{"gym", "club"}, v.Kind)
	}
	for _, p := range plans {
		assert.Contains(t, []string{"MONTHLY", "QUARTERLY", "ANNUALLY"}, p.BillingCycle)
	}
}

type recordingExecer struct {
	queries []string
}

func (r *recordingExecer) ExecContext(_ context.Context, query string, _ ...any) (sql.Result, error) {
	r.queries = append(r.queries, query)
	return driverResult(12), nil
}

type driverResult int64

func (r driverResult) LastInsertId() (int64, error) { return 0, nil }
func (r driverResult) RowsAffected() (int64, error) { return int64(r), nil }

func TestRateVenuesUsesTheAPIRecompute(t *testing.T) {
	db := &recordingExecer{}

	n, err := rateVenues(context.Background(), db)
	require.NoError(t, err)
	assert.EqualValues(t, 12, n)
	assert.Equal(t, []string{venuereviews.RecomputeAllQuery}, db.queries)
}
