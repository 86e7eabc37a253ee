package main

import (
	"errors"
	"math"
	"net/http"

	"gymspot/internal/domain/accesscontrol"
	venuereviews "gymspot/internal/domain/venuereview"
	"gymspot/internal/domain/venues"
)

type createReviewPayload struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,max=500"`
}

// CreateReview godoc
//
//	@Summary		Review a venue
//	@Description	Each user may review a venue once. The venue rating is not updated until it is recomputed.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			venueID	path		int					true	"Venue ID"
//	@Param			payload	body		createReviewPayload	true	"Review"
//	@Success		201		{object}	venuereviews.Review
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		403		{object}	error	"Owners cannot review their own venue"
//	@Failure		404		{object}	error
//	@Failure		409		{object}	error	"Already reviewed"
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID}/reviews [post]
func (app *application) createVenueReviewHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := readIDParam(r, "venueID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload createReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()
	user := getUserFromContext(r)

	venue, err := app.store.Venues.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, venues.ErrVenueNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}
	if venue.Status != venues.StatusActive {
		app.notFoundResponse(w, r, venues.ErrVenueNotFound)
		return
	}
	if venue.OwnerID == user.ID {
		app.forbiddenResponse(w, r)
		return
	}

	review := &venuereviews.Review{
		VenueID: venueID,
		UserID:  user.ID,
		Rating:  payload.Rating,
		Comment: payload.Comment,
	}

	if err := app.store.VenuesReviews.CreateReview(ctx, review); err != nil {
		switch {
		case errors.Is(err, venuereviews.ErrAlreadyReviewed):
			app.conflictResponse(w, r, err)
		case errors.Is(err, venues.ErrVenueNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}
	review.UserName = user.Name

	app.jsonResponse(w, http.StatusCreated, review)
}

type reviewsResponse struct {
	Reviews      []venuereviews.Review `json:"reviews"`
	TotalReviews int                   `json:"total_reviews"`
	Average      float64               `json:"average"`
}

// GetReviews godoc
//
//	@Summary		List venue reviews
//	@Description	Lists published reviews, newest first, with the live review count and average.
//	@Tags			Reviews
//	@Produce		json
//	@Param			venueID	path		int	true	"Venue ID"
//	@Success		200		{object}	reviewsResponse
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		404		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/venues/{venueID}/reviews [get]
func (app *application) getVenueReviewsHandler(w http.ResponseWriter, r *http.Request) {
	venue := app.loadVisibleVenue(w, r)
	if venue == nil {
		return
	}

	reviews, err := app.store.VenuesReviews.GetReviews(r.Context(), venue.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	// Get review stats
	total, average, err := app.store.VenuesReviews.GetReviewStats(r.Context(), venue.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, reviewsResponse{
		Reviews:      reviews,
		TotalReviews: total,
		Average:      math.Round(average*10) / 10,
	})
}

// loadModifiableReview fetches {reviewID} of {venueID} and checks the caller
// authored it or is an admin.
func (app *application) loadModifiableReview(w http.ResponseWriter, r *http.Request) *venuereviews.Review {
	venueID, err := readIDParam(r, "venueID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return nil
	}
	reviewID, err := readIDParam(r, "reviewID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return nil
	}

	review, err := app.store.VenuesReviews.GetByID(r.Context(), reviewID)
	if err != nil {
		if errors.Is(err, venuereviews.ErrReviewNotFound) {
			app.notFoundResponse(w, r, err)
			return nil
		}
		app.internalServerError(w, r, err)
		return nil
	}
	if review.VenueID != venueID {
		app.notFoundResponse(w, r, venuereviews.ErrReviewNotFound)
		return nil
	}

	if !accesscontrol.CanModifyReview(principal(r), review) {
		app.forbiddenResponse(w, r)
		return nil
	}
	return review
}

// UpdateReview godoc
//
//	@Summary		Edit a review
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			venueID		path		int					true	"Venue ID"
//	@Param			reviewID	path		int					true	"Review ID"
//	@Param			payload		body		createReviewPayload	true	"Review"
//	@Success		200			{object}	venuereviews.Review
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID}/reviews/{reviewID} [patch]
func (app *application) updateVenueReviewHandler(w http.ResponseWriter, r *http.Request) {
	review := app.loadModifiableReview(w, r)
	if review == nil {
		return
	}

	var payload createReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.VenuesReviews.UpdateReview(r.Context(), review.ID, payload.Rating, payload.Comment); err != nil {
		if errors.Is(err, venuereviews.ErrReviewNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	review.Rating = payload.Rating
	review.Comment = payload.Comment

	app.jsonResponse(w, http.StatusOK, review)
}

// DeleteReview godoc
//
//	@Summary		Delete a review
//	@Description	Soft deletes the review. The author or an admin may do this.
//	@Tags			Reviews
//	@Param			venueID		path	int	true	"Venue ID"
//	@Param			reviewID	path	int	true	"Review ID"
//	@Success		204
//	@Failure		403	{object}	error
//	@Failure		404	{object}	error
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID}/reviews/{reviewID} [delete]
func (app *application) deleteVenueReviewHandler(w http.ResponseWriter, r *http.Request) {
	review := app.loadModifiableReview(w, r)
	if review == nil {
		return
	}

	if err := app.store.VenuesReviews.DeleteReview(r.Context(), review.ID); err != nil {
		if errors.Is(err, venuereviews.ErrReviewNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkReviewHelpful godoc
//
//	@Summary		Mark a review as helpful
//	@Tags			Reviews
//	@Produce		json
//	@Param			venueID		path		int	true	"Venue ID"
//	@Param			reviewID	path		int	true	"Review ID"
//	@Success		200			{object}	map[string]int
//	@Failure		404			{object}	error
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID}/reviews/{reviewID}/helpful [post]
func (app *application) markReviewHelpfulHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := readIDParam(r, "reviewID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	count, err := app.store.VenuesReviews.MarkHelpful(r.Context(), reviewID)
	if err != nil {
		if errors.Is(err, venuereviews.ErrReviewNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]int{"helpful_count": count})
}
