package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

var errInvalidDuration = errors.New("older_than must be a positive duration such as 1680h")

// SavePushTokenRequest represents the payload for saving/updating a push token
type SavePushTokenRequest struct {
	Token      string          `json:"token" validate:"required,max=255"`
	DeviceInfo json.RawMessage `json:"device_info" swaggertype:"object"`
}

// RemovePushTokenRequest represents the payload for removing a push token
type RemovePushTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// PruneStaleTokensRequest represents the payload for pruning stale tokens,
// e.g. {"older_than": "1680h"} for 70 days.
type PruneStaleTokensRequest struct {
	OlderThan string `json:"older_than" validate:"required"`
}

func (p *PruneStaleTokensRequest) Duration() (time.Duration, error) {
	return time.ParseDuration(p.OlderThan)
}

// SavePushToken godoc
//
//	@Summary		Save or update a push notification token
//	@Description	Stores or updates a user's Expo push token along with optional device info
//	@Tags			Notifications
//	@Accept			json
//	@Param			payload	body	SavePushTokenRequest	true	"Push token data"
//	@Success		204
//	@Failure		400	{object}	ErrorBadRequestResponse
//	@Failure		401	{object}	error
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/users/push-tokens [post]
func (app *application) savePushTokenHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	var payload SavePushTokenRequest
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.PushTokens.Upsert(r.Context(), user.ID, payload.Token, payload.DeviceInfo); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemovePushToken godoc
//
//	@Summary		Remove a push notification token
//	@Description	Deletes a specific push token for the current user
//	@Tags			Notifications
//	@Accept			json
//	@Param			payload	body	RemovePushTokenRequest	true	"Token to remove"
//	@Success		204
//	@Failure		400	{object}	ErrorBadRequestResponse
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/users/push-tokens [delete]
func (app *application) removePushTokenHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	var payload RemovePushTokenRequest
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.PushTokens.Remove(r.Context(), user.ID, payload.Token); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PruneStaleTokens godoc
//
//	@Summary		Prune stale push tokens
//	@Description	Deletes tokens not refreshed within the given duration (admin-only)
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		PruneStaleTokensRequest	true	"Age threshold"
//	@Success		200		{object}	map[string]int64
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/admin/push-tokens/prune [post]
func (app *application) pruneStaleTokensHandler(w http.ResponseWriter, r *http.Request) {
	var payload PruneStaleTokensRequest
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	olderThan, err := payload.Duration()
	if err != nil || olderThan <= 0 {
		app.badRequestResponse(w, r, errInvalidDuration)
		return
	}

	removed, err := app.store.PushTokens.PruneStale(r.Context(), olderThan)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.logger.Infow("pruned stale push tokens", "removed", removed, "older_than", olderThan)
	app.jsonResponse(w, http.StatusOK, map[string]int64{"removed": removed})
}
