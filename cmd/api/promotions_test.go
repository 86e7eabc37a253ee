package main

import (
	"net/http"
	"testing"
	"time"

	"gymspot/internal/domain/promotions"
	"gymspot/internal/domain/storage"
	"gymspot/internal/domain/users"
	"gymspot/internal/domain/venues"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedeemPromotion(t *testing.T) {
	member := &users.User{ID: 2, Role: users.RoleUser}

	current := &promotions.Promotion{
		ID:           7,
		VenueID:      10,
		Title:        "Summer deal",
		DiscountType: promotions.DiscountOffer,
		OfferText:    "First month free",
		StartsAt:     testNow.Add(-24 * time.Hour),
		EndsAt:       testNow.Add(24 * time.Hour),
		Status:       promotions.StatusActive,
	}
	ended := &promotions.Promotion{
		ID:       8,
		VenueID:  10,
		Title:    "Spring deal",
		StartsAt: testNow.Add(-72 * time.Hour),
		EndsAt:   testNow.Add(-time.Hour),
		Status:   promotions.StatusActive,
	}

	fp := &fakePromotions{byID: map[int64]*promotions.Promotion{current.ID: current, ended.ID: ended}}
	app := newTestApplication(t, &storage.Container{Users: newFakeUsers(member), Promotions: fp})
	mux := app.mount()

	redeem := func(code string) *http.Request {
		return newJSONRequest(http.MethodPost, "/v1/promotions/redeem/"+code, "")
	}

	t.Run("a valid code is counted", func(t *testing.T) {
		code, err := app.codes.Encode(current.ID)
		require.NoError(t, err)

		rr := executeRequest(bearer(t, app, member, redeem(code)), mux)
		require.Equal(t, http.StatusOK, rr.Code)

		var got promotions.Promotion
		decodeData(t, rr, &got)
		assert.Equal(t, code, got.Code)
		assert.EqualValues(t, 1, got.RedemptionCount)
		assert.Equal(t, 1, fp.redeemed)
	})

	t.Run("unknown codes are not found", func(t *testing.T) {
		rr := executeRequest(bearer(t, app, member, redeem("not-a-code")), mux)
		assert.Equal(t, http.StatusNotFound, rr.Code)

		code, err := app.codes.Encode(999)
		require.NoError(t, err)
		rr = executeRequest(bearer(t, app, member, redeem(code)), mux)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("ended promotions conflict", func(t *testing.T) {
		code, err := app.codes.Encode(ended.ID)
		require.NoError(t, err)

		rr := executeRequest(bearer(t, app, member, redeem(code)), mux)
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.EqualValues(t, 0, ended.RedemptionCount)
	})

	t.Run("redeeming requires a login", func(t *testing.T) {
		code, err := app.codes.Encode(current.ID)
		require.NoError(t, err)

		rr := executeRequest(redeem(code), mux)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestCreatePromotionValidation(t *testing.T) {
	owner := &users.User{ID: 1, Role: users.RoleGymOwner}
	stranger := &users.User{ID: 4, Role: users.RoleGymOwner}
	venue := &venues.Venue{ID: 10, OwnerID: owner.ID, Name: "Fitness Zone", Status: venues.StatusActive}

	app := newTestApplication(t, &storage.Container{
		Users:      newFakeUsers(owner, stranger),
		Venues:     newFakeVenues(venue),
		Promotions: &fakePromotions{byID: map[int64]*promotions.Promotion{}},
	})
	mux := app.mount()

	body := `{
		"title": "Summer deal",
		"description": "Half price for new members",
		"discount_type": "PERCENTAGE",
		"discount_percent": 150,
		"starts_at": "2026-07-01T00:00:00Z",
		"ends_at": "2026-06-01T00:00:00Z"
	}`

	t.Run("window and discount are checked", func(t *testing.T) {
		rr := executeRequest(bearer(t, app, owner, newJSONRequest(http.MethodPost, "/v1/venues/10/promotions", body)), mux)
		require.Equal(t, http.StatusBadRequest, rr.Code)

		got := decodeError(t, rr)
		assert.Equal(t, "End date must be after start date", got.Errors["ends_at"])
		assert.Equal(t, "Discount must be between 1 and 100 percent", got.Errors["discount_percent"])
	})

	t.Run("only the owner may add promotions", func(t *testing.T) {
		rr := executeRequest(bearer(t, app, stranger, newJSONRequest(http.MethodPost, "/v1/venues/10/promotions", body)), mux)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("unknown venues are not found", func(t *testing.T) {
		rr := executeRequest(bearer(t, app, owner, newJSONRequest(http.MethodPost, "/v1/venues/99/promotions", body)), mux)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
