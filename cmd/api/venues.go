package main

import (
	"errors"
	"net/http"

	"gymspot/internal/domain/accesscontrol"
	"gymspot/internal/domain/venues"

	"github.com/go-chi/chi/v5"
)

type createVenuePayload struct {
	Kind        venues.Kind      `json:"kind" validate:"required,venuekind"`
	Name        string           `json:"name" validate:"required,min=2,max=100"`
	Description string           `json:"description" validate:"max=2000"`
	Address     string           `json:"address" validate:"required,max=255"`
	City        string           `json:"city" validate:"required,max=100"`
	PostalCode  string           `json:"postal_code" validate:"max=20"`
	Latitude    float64          `json:"latitude" validate:"omitempty,latitude"`
	Longitude   float64          `json:"longitude" validate:"omitempty,longitude"`
	Phone       string           `json:"phone" validate:"max=30"`
	Website     string           `json:"website" validate:"omitempty,url"`
	PriceTier   venues.PriceTier `json:"price_tier" validate:"omitempty,pricetier"`
	Facilities  []string         `json:"facilities" validate:"max=30,dive,required,max=50"`
}

// CreateVenue godoc
//
//	@Summary		Create a venue
//	@Description	Lists a new gym or club owned by the caller. New venues wait in PENDING_APPROVAL until an admin activates them.
//	@Tags			Venue
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		createVenuePayload	true	"Venue details"
//	@Success		201		{object}	venues.Venue
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		403		{object}	error	"Caller is not a gym owner"
//	@Failure		409		{object}	error	"Name already used in this city"
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/venues [post]
func (app *application) createVenueHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if !accesscontrol.CanCreateVenue(principal(r)) {
		app.forbiddenResponse(w, r)
		return
	}

	var payload createVenuePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	venue := &venues.Venue{
		Kind:        payload.Kind,
		OwnerID:     user.ID,
		Name:        payload.Name,
		Description: payload.Description,
		Address:     payload.Address,
		City:        payload.City,
		PostalCode:  payload.PostalCode,
		Latitude:    payload.Latitude,
		Longitude:   payload.Longitude,
		Phone:       payload.Phone,
		Website:     payload.Website,
		PriceTier:   payload.PriceTier,
		Facilities:  payload.Facilities,
		Status:      venues.StatusPendingApproval,
	}

	if err := app.store.Venues.Create(r.Context(), venue); err != nil {
		if errors.Is(err, venues.ErrDuplicateSlug) {
			app.conflictResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, venue); err != nil {
		app.internalServerError(w, r, err)
	}
}

type venueResponse struct {
	*venues.Venue
	IsFavorite bool `json:"is_favorite"`
}

// venueView answers a public venue lookup: hidden venues are 404 to anyone
// who cannot manage them, and visitors bump the view counter.
func (app *application) venueView(w http.ResponseWriter, r *http.Request, venue *venues.Venue) {
	p := principal(r)
	if !accesscontrol.CanViewVenue(p, venue) {
		app.notFoundResponse(w, r, venues.ErrVenueNotFound)
		return
	}

	ctx := r.Context()
	resp := venueResponse{Venue: venue}

	if !accesscontrol.CanManageVenue(p, venue) {
		if err := app.store.Venues.IncrementViews(ctx, venue.ID); err != nil {
			app.logger.Warnw("failed to count venue view", "venue_id", venue.ID, "error", err)
		}
	}

	if !p.Anonymous() {
		favs, err := app.store.Venues.FavoriteIDs(ctx, p.UserID)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		_, resp.IsFavorite = favs[venue.ID]
	}

	app.jsonResponse(w, http.StatusOK, resp)
}

// GetVenue godoc
//
//	@Summary		Get a venue
//	@Tags			Venue
//	@Produce		json
//	@Param			venueID	path		int	true	"Venue ID"
//	@Success		200		{object}	venueResponse
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		404		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/venues/{venueID} [get]
func (app *application) getVenueHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := readIDParam(r, "venueID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	venue, err := app.store.Venues.GetByID(r.Context(), venueID)
	if err != nil {
		if errors.Is(err, venues.ErrVenueNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.venueView(w, r, venue)
}

// GetVenueBySlug godoc
//
//	@Summary		Get a venue by its public URL
//	@Tags			Venue
//	@Produce		json
//	@Param			citySlug	path		string	true	"City slug"
//	@Param			venueSlug	path		string	true	"Venue slug"
//	@Success		200			{object}	venueResponse
//	@Failure		404			{object}	error
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Router			/venues/city/{citySlug}/{venueSlug} [get]
func (app *application) getVenueBySlugHandler(w http.ResponseWriter, r *http.Request) {
	venue, err := app.store.Venues.GetBySlug(r.Context(), chi.URLParam(r, "citySlug"), chi.URLParam(r, "venueSlug"))
	if err != nil {
		if errors.Is(err, venues.ErrVenueNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.venueView(w, r, venue)
}

type updateVenuePayload struct {
	Name        *string           `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string           `json:"description" validate:"omitempty,max=2000"`
	Address     *string           `json:"address" validate:"omitempty,max=255"`
	City        *string           `json:"city" validate:"omitempty,max=100"`
	PostalCode  *string           `json:"postal_code" validate:"omitempty,max=20"`
	Latitude    *float64          `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64          `json:"longitude" validate:"omitempty,longitude"`
	Phone       *string           `json:"phone" validate:"omitempty,max=30"`
	Website     *string           `json:"website" validate:"omitempty,url"`
	PriceTier   *venues.PriceTier `json:"price_tier" validate:"omitempty,pricetier"`
	Facilities  []string          `json:"facilities" validate:"omitempty,max=30,dive,required,max=50"`
}

// fields maps the set payload fields to venue columns.
func (p updateVenuePayload) fields() map[string]interface{} {
	updateData := make(map[string]interface{})
	for key, v := range map[string]*string{
		"name":        p.Name,
		"description": p.Description,
		"address":     p.Address,
		"city":        p.City,
		"postal_code": p.PostalCode,
		"phone":       p.Phone,
		"website":     p.Website,
	} {
		if v != nil {
			updateData[key] = *v
		}
	}
	if p.Latitude != nil {
		updateData["latitude"] = *p.Latitude
	}
	if p.Longitude != nil {
		updateData["longitude"] = *p.Longitude
	}
	if p.PriceTier != nil {
		updateData["price_tier"] = string(*p.PriceTier)
	}
	if p.Facilities != nil {
		updateData["facilities"] = p.Facilities
	}
	return updateData
}

// UpdateVenue godoc
//
//	@Summary		Update venue information
//	@Description	Partially updates a venue. Only the owner or an admin may do this. Renaming also changes the slug.
//	@Tags			Venue
//	@Accept			json
//	@Produce		json
//	@Param			venueID	path		int					true	"Venue ID"
//	@Param			payload	body		updateVenuePayload	true	"Fields to change"
//	@Success		200		{object}	venues.Venue
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Failure		409		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID} [patch]
func (app *application) updateVenueHandler(w http.ResponseWriter, r *http.Request) {
	venue := app.loadManagedVenue(w, r)
	if venue == nil {
		return
	}

	var payload updateVenuePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()
	if err := app.store.Venues.Update(ctx, venue.ID, payload.fields()); err != nil {
		switch {
		case errors.Is(err, venues.ErrDuplicateSlug):
			app.conflictResponse(w, r, err)
		case errors.Is(err, venues.ErrVenueNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	updated, err := app.store.Venues.GetByID(ctx, venue.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, updated)
}

// DeleteVenue godoc
//
//	@Summary		Delete a venue
//	@Description	Deletes the venue with its reviews, favorites and promotions.
//	@Tags			Venue
//	@Param			venueID	path	int	true	"Venue ID"
//	@Success		204
//	@Failure		403	{object}	error
//	@Failure		404	{object}	error
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID} [delete]
func (app *application) deleteVenueHandler(w http.ResponseWriter, r *http.Request) {
	venue := app.loadManagedVenue(w, r)
	if venue == nil {
		return
	}

	if err := app.store.Venues.Delete(r.Context(), venue.ID); err != nil {
		if errors.Is(err, venues.ErrVenueNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if app.cld != nil {
		for _, photoURL := range venue.ImageURLs {
			if err := app.deletePhotoFromCloudinary(photoURL); err != nil {
				app.logger.Warnw("orphaned venue photo", "venue_id", venue.ID, "url", photoURL, "error", err)
			}
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecomputeVenueRating godoc
//
//	@Summary		Recompute a venue rating
//	@Description	Sets the venue rating to the mean of its non-deleted reviews. Ratings are not updated when reviews change, only by this call.
//	@Tags			Venue
//	@Produce		json
//	@Param			venueID	path		int	true	"Venue ID"
//	@Success		200		{object}	map[string]float64
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID}/rating/recompute [post]
func (app *application) recomputeVenueRatingHandler(w http.ResponseWriter, r *http.Request) {
	venue := app.loadManagedVenue(w, r)
	if venue == nil {
		return
	}

	rating, err := app.store.VenuesReviews.RecomputeRating(r.Context(), venue.ID)
	if err != nil {
		if errors.Is(err, venues.ErrVenueNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]float64{"rating": rating})
}
