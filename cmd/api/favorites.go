package main

import (
	"errors"
	"net/http"

	"gymspot/internal/domain/venues"
)

type favoriteResponse struct {
	VenueID   int64 `json:"venue_id"`
	Favorited bool  `json:"favorited"`
}

// ToggleFavoriteVenue godoc
//
//	@Summary		Toggle a favorite venue
//	@Description	Adds the venue to the caller's favorites, or removes it when it is already there.
//	@Tags			Favorite_Venues
//	@Produce		json
//	@Param			venueID	path		int					true	"Venue ID"
//	@Success		200		{object}	favoriteResponse	"New favorite state"
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		404		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID}/favorite [post]
func (app *application) toggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	venue := app.loadVisibleVenue(w, r)
	if venue == nil {
		return
	}

	user := getUserFromContext(r)

	favorited, err := app.store.Venues.ToggleFavorite(r.Context(), user.ID, venue.ID)
	if err != nil {
		if errors.Is(err, venues.ErrVenueNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, favoriteResponse{VenueID: venue.ID, Favorited: favorited})
}

// ListFavoriteVenues godoc
//
//	@Summary		Retrieve user's favorite venues
//	@Description	Returns the venues the authenticated user has marked as favorites, most recent first.
//	@Tags			Favorite_Venues
//	@Produce		json
//	@Success		200	{array}		venues.Listing	"List of favorite venues"
//	@Failure		401	{object}	error
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/venues/favorites [get]
func (app *application) listFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	favorites, err := app.store.Venues.ListFavorites(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if favorites == nil {
		favorites = []venues.Listing{}
	}

	app.jsonResponse(w, http.StatusOK, favorites)
}
