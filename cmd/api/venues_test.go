package main

import (
	"net/http"
	"testing"

	"gymspot/internal/domain/storage"
	"gymspot/internal/domain/users"
	venuereviews "gymspot/internal/domain/venuereview"
	"gymspot/internal/domain/venues"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVenueVisibility(t *testing.T) {
	owner := &users.User{ID: 1, Role: users.RoleGymOwner}
	member := &users.User{ID: 2, Role: users.RoleUser}
	admin := &users.User{ID: 3, Role: users.RoleAdmin}

	active := &venues.Venue{ID: 10, OwnerID: owner.ID, Name: "Fitness Zone", Status: venues.StatusActive}
	pending := &venues.Venue{ID: 11, OwnerID: owner.ID, Name: "Iron Temple", Status: venues.StatusPendingApproval}

	fv := newFakeVenues(active, pending)
	fv.favorites[[2]int64{member.ID, active.ID}] = true

	app := newTestApplication(t, &storage.Container{Users: newFakeUsers(owner, member, admin), Venues: fv})
	mux := app.mount()

	t.Run("anonymous users see active venues", func(t *testing.T) {
		rr := executeRequest(newJSONRequest(http.MethodGet, "/v1/venues/10", ""), mux)
		require.Equal(t, http.StatusOK, rr.Code)

		var got venueResponse
		decodeData(t, rr, &got)
		assert.Equal(t, "Fitness Zone", got.Name)
		assert.False(t, got.IsFavorite)
	})

	t.Run("pending venues are hidden from the public", func(t *testing.T) {
		rr := executeRequest(newJSONRequest(http.MethodGet, "/v1/venues/11", ""), mux)
		assert.Equal(t, http.StatusNotFound, rr.Code)

		rr = executeRequest(bearer(t, app, member, newJSONRequest(http.MethodGet, "/v1/venues/11", "")), mux)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("owners and admins see pending venues", func(t *testing.T) {
		rr := executeRequest(bearer(t, app, owner, newJSONRequest(http.MethodGet, "/v1/venues/11", "")), mux)
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = executeRequest(bearer(t, app, admin, newJSONRequest(http.MethodGet, "/v1/venues/11", "")), mux)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("favorite flag follows the caller", func(t *testing.T) {
		rr := executeRequest(bearer(t, app, member, newJSONRequest(http.MethodGet, "/v1/venues/10", "")), mux)
		require.Equal(t, http.StatusOK, rr.Code)

		var got venueResponse
		decodeData(t, rr, &got)
		assert.True(t, got.IsFavorite)
	})

	t.Run("malformed ids are rejected", func(t *testing.T) {
		rr := executeRequest(newJSONRequest(http.MethodGet, "/v1/venues/abc", ""), mux)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestVenueSubresourcesFollowVisibility(t *testing.T) {
	owner := &users.User{ID: 1, Role: users.RoleGymOwner}
	member := &users.User{ID: 2, Role: users.RoleUser}

	active := &venues.Venue{ID: 10, OwnerID: owner.ID, Name: "Fitness Zone", Status: venues.StatusActive}
	pending := &venues.Venue{ID: 11, OwnerID: owner.ID, Name: "Iron Temple", Status: venues.StatusPendingApproval}

	fv := newFakeVenues(active, pending)
	fr := &fakeReviews{byVenue: map[int64][]venuereviews.Review{
		active.ID:  {{ID: 1, VenueID: active.ID, Rating: 4, Comment: "great"}},
		pending.ID: {{ID: 2, VenueID: pending.ID, Rating: 5, Comment: "not open yet"}},
	}}

	app := newTestApplication(t, &storage.Container{Users: newFakeUsers(owner, member), Venues: fv, VenuesReviews: fr})
	mux := app.mount()

	t.Run("reviews of active venues are public", func(t *testing.T) {
		rr := executeRequest(newJSONRequest(http.MethodGet, "/v1/venues/10/reviews", ""), mux)
		require.Equal(t, http.StatusOK, rr.Code)

		var got reviewsResponse
		decodeData(t, rr, &got)
		require.Len(t, got.Reviews, 1)
		assert.Equal(t, 1, got.TotalReviews)
		assert.Equal(t, 4.0, got.Average)
	})

	t.Run("reviews of hidden or missing venues are not found", func(t *testing.T) {
		rr := executeRequest(newJSONRequest(http.MethodGet, "/v1/venues/11/reviews", ""), mux)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.NotContains(t, rr.Body.String(), "not open yet")

		rr = executeRequest(bearer(t, app, member, newJSONRequest(http.MethodGet, "/v1/venues/11/reviews", "")), mux)
		assert.Equal(t, http.StatusNotFound, rr.Code)

		rr = executeRequest(newJSONRequest(http.MethodGet, "/v1/venues/999/reviews", ""), mux)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("owners read reviews of their pending venue", func(t *testing.T) {
		rr := executeRequest(bearer(t, app, owner, newJSONRequest(http.MethodGet, "/v1/venues/11/reviews", "")), mux)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("hidden venues cannot be favorited", func(t *testing.T) {
		rr := executeRequest(bearer(t, app, member, newJSONRequest(http.MethodPost, "/v1/venues/11/favorite", "")), mux)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.False(t, fv.favorites[[2]int64{member.ID, pending.ID}])
	})

	t.Run("promotions of hidden venues are not found", func(t *testing.T) {
		rr := executeRequest(newJSONRequest(http.MethodGet, "/v1/venues/11/promotions", ""), mux)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCreateVenueValidation(t *testing.T) {
	owner := &users.User{ID: 1, Role: users.RoleGymOwner}
	app := newTestApplication(t, &storage.Container{Users: newFakeUsers(owner), Venues: newFakeVenues()})

	body := `{"kind":"spa","name":"X","price_tier":"CHEAP","website":"not a url"}`
	rr := executeRequest(bearer(t, app, owner, newJSONRequest(http.MethodPost, "/v1/venues", body)), app.mount())

	require.Equal(t, http.StatusBadRequest, rr.Code)
	got := decodeError(t, rr)
	assert.Equal(t, "validation failed", got.Message)
	assert.Equal(t, "must be gym or club", got.Errors["kind"])
	assert.Equal(t, "must be at least 2 characters", got.Errors["name"])
	assert.Equal(t, "is required", got.Errors["address"])
	assert.Equal(t, "is required", got.Errors["city"])
	assert.Equal(t, "must be one of: LOW MEDIUM HIGH PREMIUM", got.Errors["price_tier"])
	assert.Equal(t, "must be a valid url", got.Errors["website"])
}

func TestCreateVenueRejectsUnknownFields(t *testing.T) {
	owner := &users.User{ID: 1, Role: users.RoleGymOwner}
	app := newTestApplication(t, &storage.Container{Users: newFakeUsers(owner), Venues: newFakeVenues()})

	body := `{"kind":"gym","name":"Fitness Zone","address":"1 Rue","city":"Rabat","owner_id":99}`
	rr := executeRequest(bearer(t, app, owner, newJSONRequest(http.MethodPost, "/v1/venues", body)), app.mount())

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestToggleFavorite(t *testing.T) {
	member := &users.User{ID: 2, Role: users.RoleUser}
	venue := &venues.Venue{ID: 10, OwnerID: 1, Status: venues.StatusActive}
	fv := newFakeVenues(venue)
	app := newTestApplication(t, &storage.Container{Users: newFakeUsers(member), Venues: fv})
	mux := app.mount()

	toggle := func() favoriteResponse {
		rr := executeRequest(bearer(t, app, member, newJSONRequest(http.MethodPost, "/v1/venues/10/favorite", "")), mux)
		require.Equal(t, http.StatusOK, rr.Code)
		var got favoriteResponse
		decodeData(t, rr, &got)
		return got
	}

	assert.Equal(t, favoriteResponse{VenueID: 10, Favorited: true}, toggle())
	assert.Equal(t, favoriteResponse{VenueID: 10, Favorited: false}, toggle())
	assert.Equal(t, favoriteResponse{VenueID: 10, Favorited: true}, toggle())

	rr := executeRequest(bearer(t, app, member, newJSONRequest(http.MethodPost, "/v1/venues/77/favorite", "")), mux)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = executeRequest(newJSONRequest(http.MethodPost, "/v1/venues/10/favorite", ""), mux)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
