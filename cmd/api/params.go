package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"gymspot/internal/domain/accesscontrol"
	"gymspot/internal/domain/venues"

	"github.com/go-chi/chi/v5"
)

// readIDParam parses a positive int64 path parameter.
func readIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

func principal(r *http.Request) accesscontrol.Principal {
	return accesscontrol.FromUser(getUserFromContext(r))
}

// loadVenue fetches the {venueID} venue. It writes the error response itself
// and returns nil on failure.
func (app *application) loadVenue(w http.ResponseWriter, r *http.Request) *venues.Venue {
	venueID, err := readIDParam(r, "venueID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return nil
	}

	venue, err := app.store.Venues.GetByID(r.Context(), venueID)
	if err != nil {
		if errors.Is(err, venues.ErrVenueNotFound) {
			app.notFoundResponse(w, r, err)
			return nil
		}
		app.internalServerError(w, r, err)
		return nil
	}
	return venue
}

// loadVisibleVenue is loadVenue for public routes: venues the caller may not
// see are reported as missing.
func (app *application) loadVisibleVenue(w http.ResponseWriter, r *http.Request) *venues.Venue {
	venue := app.loadVenue(w, r)
	if venue == nil {
		return nil
	}

	if !accesscontrol.CanViewVenue(principal(r), venue) {
		app.notFoundResponse(w, r, venues.ErrVenueNotFound)
		return nil
	}
	return venue
}

// loadManagedVenue is loadVenue for owner routes: the caller must be able to
// manage the venue.
func (app *application) loadManagedVenue(w http.ResponseWriter, r *http.Request) *venues.Venue {
	venue := app.loadVenue(w, r)
	if venue == nil {
		return nil
	}

	if !accesscontrol.CanManageVenue(principal(r), venue) {
		app.forbiddenResponse(w, r)
		return nil
	}

	return venue
}
