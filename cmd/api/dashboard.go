package main

import (
	"net/http"

	venuereviews "gymspot/internal/domain/venuereview"
	"gymspot/internal/domain/venues"
)

// OwnerVenues godoc
//
//	@Summary		List my venues
//	@Description	Every venue owned by the caller, in any status.
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{array}		venues.Venue
//	@Failure		403	{object}	error
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/dashboard/venues [get]
func (app *application) ownerVenuesHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	list, err := app.store.Venues.ListByOwner(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if list == nil {
		list = []venues.Venue{}
	}

	app.jsonResponse(w, http.StatusOK, list)
}

// OwnerVenueReviews godoc
//
//	@Summary		List reviews of my venue
//	@Description	Includes hidden reviews so owners can follow moderation.
//	@Tags			dashboard
//	@Produce		json
//	@Param			venueID	path		int	true	"Venue ID"
//	@Success		200		{array}		venuereviews.Review
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/dashboard/venues/{venueID}/reviews [get]
func (app *application) ownerVenueReviewsHandler(w http.ResponseWriter, r *http.Request) {
	venue := app.loadManagedVenue(w, r)
	if venue == nil {
		return
	}

	reviews, err := app.store.VenuesReviews.ListForVenue(r.Context(), venue.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if reviews == nil {
		reviews = []venuereviews.Review{}
	}

	app.jsonResponse(w, http.StatusOK, reviews)
}

// OwnerVenueStats godoc
//
//	@Summary		Stats for my venue
//	@Tags			dashboard
//	@Produce		json
//	@Param			venueID	path		int	true	"Venue ID"
//	@Success		200		{object}	venues.OwnerStats
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/dashboard/venues/{venueID}/stats [get]
func (app *application) ownerVenueStatsHandler(w http.ResponseWriter, r *http.Request) {
	venue := app.loadManagedVenue(w, r)
	if venue == nil {
		return
	}

	stats, err := app.store.Venues.OwnerStats(r.Context(), venue.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, stats)
}
