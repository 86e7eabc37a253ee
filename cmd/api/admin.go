package main

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"gymspot/internal/domain/users"
	venuereviews "gymspot/internal/domain/venuereview"
	"gymspot/internal/domain/venues"
	"gymspot/internal/params"
)

// AdminStats godoc
//
//	@Summary		Admin overview totals
//	@Description	Returns totals for the admin dashboard: users by role, venues by status, reviews, promotions, subscriptions and revenue.
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	admindashboard.Overview
//	@Failure		401	{object}	error
//	@Failure		403	{object}	error
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/admin/stats [get]
func (app *application) adminStatsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 12*time.Second)
	defer cancel()

	out, err := app.store.Dashboard.GetOverview(ctx)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, out)
}

// AdminVenueListFilters echoes the filters applied to the admin venue list.
type AdminVenueListFilters struct {
	Kind   string `json:"kind"`   // "" when not filtered
	Status string `json:"status"` // "" when not filtered
}

// VenueListWithMetaResponse is the paginated admin venue listing.
type VenueListWithMetaResponse struct {
	Venues     []venues.Listing      `json:"venues"`
	Pagination params.Pagination     `json:"pagination"`
	Filters    AdminVenueListFilters `json:"filters"`
}

// @Summary		List venues (admin)
// @Description	Paginated list of venues in any status with optional filters.
// @Tags			admin
// @Produce		json
// @Param			kind	query		string	false	"gym or club"
// @Param			status	query		string	false	"ACTIVE, INACTIVE, PENDING_APPROVAL or CLOSED"
// @Param			page	query		int		false	"Page number"		default(1)
// @Param			limit	query		int		false	"Items per page"	default(12)
// @Success		200		{object}	VenueListWithMetaResponse
// @Failure		400		{object}	ErrorBadRequestResponse
// @Security		ApiKeyAuth
// @Router			/admin/venues [get]
func (app *application) adminListVenuesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	q := r.URL.Query()
	p := params.ParsePagination(q)

	filter := venues.AdminFilter{Pagination: p}

	kindParam := strings.TrimSpace(q.Get("kind"))
	if kindParam != "" {
		kind := venues.Kind(strings.ToLower(kindParam))
		if !kind.Valid() {
			app.badRequestResponse(w, r, errors.New("invalid kind"))
			return
		}
		filter.Kind = &kind
	}

	statusParam := strings.TrimSpace(q.Get("status"))
	if statusParam != "" {
		status := venues.Status(strings.ToUpper(statusParam))
		if !status.Valid() {
			app.badRequestResponse(w, r, errors.New("invalid status"))
			return
		}
		filter.Status = &status
	}

	result, err := app.store.Venues.AdminList(ctx, filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	p.ComputeMeta(result.Total)

	list := result.Venues
	if list == nil {
		list = []venues.Listing{}
	}

	app.jsonResponse(w, http.StatusOK, VenueListWithMetaResponse{
		Venues:     list,
		Pagination: p,
		Filters: AdminVenueListFilters{
			Kind:   kindParam,
			Status: statusParam,
		},
	})
}

type venueStatusPayload struct {
	Status venues.Status `json:"status" validate:"required,venuestatus"`
}

// AdminUpdateVenueStatus godoc
//
//	@Summary		Change a venue's status
//	@Description	Approves, deactivates or closes a venue.
//	@Tags			admin
//	@Accept			json
//	@Param			venueID	path	int					true	"Venue ID"
//	@Param			payload	body	venueStatusPayload	true	"New status"
//	@Success		204
//	@Failure		400	{object}	ErrorBadRequestResponse
//	@Failure		404	{object}	error
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/admin/venues/{venueID}/status [patch]
func (app *application) adminUpdateVenueStatusHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := readIDParam(r, "venueID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload venueStatusPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Venues.UpdateStatus(r.Context(), venueID, payload.Status); err != nil {
		if errors.Is(err, venues.ErrVenueNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.logger.Infow("venue status changed", "venue_id", venueID, "status", payload.Status, "by", getUserFromContext(r).ID)
	w.WriteHeader(http.StatusNoContent)
}

// AdminRecomputeRatings godoc
//
//	@Summary		Recompute every venue rating
//	@Description	Refreshes each venue's cached rating from its published reviews.
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	map[string]int64
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/admin/venues/recompute-ratings [post]
func (app *application) adminRecomputeRatingsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	updated, err := app.store.VenuesReviews.RecomputeAll(ctx)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]int64{"updated": updated})
}

type reviewStatusPayload struct {
	Status venuereviews.Status `json:"status" validate:"required,oneof=PUBLISHED HIDDEN"`
}

// AdminUpdateReviewStatus godoc
//
//	@Summary		Moderate a review
//	@Description	Hides or republishes a review. Hidden reviews leave public listings but still count toward the venue rating.
//	@Tags			admin
//	@Accept			json
//	@Param			reviewID	path	int					true	"Review ID"
//	@Param			payload		body	reviewStatusPayload	true	"New status"
//	@Success		204
//	@Failure		400	{object}	ErrorBadRequestResponse
//	@Failure		404	{object}	error
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/admin/reviews/{reviewID}/status [patch]
func (app *application) adminUpdateReviewStatusHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := readIDParam(r, "reviewID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload reviewStatusPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.VenuesReviews.SetStatus(r.Context(), reviewID, payload.Status); err != nil {
		if errors.Is(err, venuereviews.ErrReviewNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type userRolePayload struct {
	Role users.Role `json:"role" validate:"required,oneof=USER GYM_OWNER ADMIN"`
}

// AdminUpdateUserRole godoc
//
//	@Summary		Change a user's role
//	@Description	The new role applies to tokens issued after the change.
//	@Tags			admin
//	@Accept			json
//	@Param			userID	path	int				true	"User ID"
//	@Param			payload	body	userRolePayload	true	"New role"
//	@Success		204
//	@Failure		400	{object}	ErrorBadRequestResponse
//	@Failure		404	{object}	error
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/admin/users/{userID}/role [patch]
func (app *application) adminUpdateUserRoleHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := readIDParam(r, "userID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload userRolePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Users.UpdateRole(r.Context(), userID, payload.Role); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
