package main

import (
	"net/http"

	"gymspot/internal/domain/users"
)

type userKey string

const userCtx userKey = "user"

func getUserFromContext(r *http.Request) *users.User {
	if user, ok := r.Context().Value(userCtx).(*users.User); ok {
		return user
	}
	return nil
}

// GetCurrentUser godoc
//
//	@Summary		Get the current user
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	users.User
//	@Failure		401	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users/me [get]
func (app *application) getCurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	app.jsonResponse(w, http.StatusOK, getUserFromContext(r))
}
