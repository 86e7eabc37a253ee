package main

import (
	"errors"
	"fmt"
	"net/http"
	"slices"

	"gymspot/internal/domain/venues"
)

const (
	maxPhotoBytes   = 15 * 1024 * 1024 // 15MB
	maxVenuesPhotos = 10
)

// UploadVenuePhoto godoc
//
//	@Summary		Upload a venue photo
//	@Description	Uploads one image (form field "photo") and appends its URL to the venue's images.
//	@Tags			Venue
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			venueID	path		int		true	"Venue ID"
//	@Param			photo	formData	file	true	"Image file"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID}/photos [post]
func (app *application) uploadVenuePhotoHandler(w http.ResponseWriter, r *http.Request) {
	venue := app.loadManagedVenue(w, r)
	if venue == nil {
		return
	}

	if len(venue.ImageURLs) >= maxVenuesPhotos {
		app.badRequestResponse(w, r, fmt.Errorf("maximum %d photos allowed", maxVenuesPhotos))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoBytes)
	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("failed to parse form: %w", err))
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("failed to get photo from form: %w", err))
		return
	}
	defer file.Close()

	ctx := r.Context()
	photoURL, err := app.uploadVenuePhoto(ctx, file, venue.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Venues.AddPhotoURL(ctx, venue.ID, photoURL); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, map[string]string{"photo_url": photoURL})
}

// DeleteVenuePhoto godoc
//
//	@Summary		Delete a venue photo
//	@Tags			Venue
//	@Param			venueID		path	int		true	"Venue ID"
//	@Param			photo_url	query	string	true	"URL of the photo to remove"
//	@Success		204
//	@Failure		400	{object}	ErrorBadRequestResponse
//	@Failure		403	{object}	error
//	@Failure		404	{object}	error
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID}/photos [delete]
func (app *application) deleteVenuePhotoHandler(w http.ResponseWriter, r *http.Request) {
	venue := app.loadManagedVenue(w, r)
	if venue == nil {
		return
	}

	photoURL := r.URL.Query().Get("photo_url")
	if photoURL == "" {
		app.badRequestResponse(w, r, errors.New("photo_url is required"))
		return
	}
	if !slices.Contains(venue.ImageURLs, photoURL) {
		app.notFoundResponse(w, r, fmt.Errorf("photo not attached to venue %d", venue.ID))
		return
	}

	if err := app.store.Venues.RemovePhotoURL(r.Context(), venue.ID, photoURL); err != nil {
		if errors.Is(err, venues.ErrVenueNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.deletePhotoFromCloudinary(photoURL); err != nil {
		app.logger.Warnw("orphaned venue photo", "venue_id", venue.ID, "url", photoURL, "error", err)
	}

	w.WriteHeader(http.StatusNoContent)
}
