package main

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"gymspot/internal/auth"
	"gymspot/internal/domain/users"
	"gymspot/internal/mailer"

	"github.com/google/uuid"
)

// ErrorBadRequestResponse represents the standard error format for bad request API responses.
//
//	@name			ErrorBadRequestResponse
//	@description	Standard error response format returned by all bad request API endpoints
type ErrorBadRequestResponse struct {
	Success bool              `json:"success" example:"false"`
	Message string            `json:"message" example:"validation failed"`
	Status  int               `json:"status" example:"400"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// ErrorInternalServerResponse represents the standard error format for internal server API responses.
//
//	@name			ErrorInternalServerResponse
//	@description	Standard error response format returned by all internal server error API endpoints
type ErrorInternalServerResponse struct {
	Success   bool   `json:"success" example:"false"`
	Message   string `json:"message" example:"temporarily unavailable, please retry"`
	Status    int    `json:"status" example:"500"`
	Retryable bool   `json:"retryable" example:"true"`
}

type RegisterUserPayload struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// registerUserHandler godoc
//
//	@Summary		Registers a user
//	@Description	Creates a USER account and sends a welcome email.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		RegisterUserPayload			true	"User credentials"
//	@Success		201		{object}	users.User					"User registered"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		409		{object}	error						"Email already registered"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Router			/authentication/user [post]
func (app *application) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var payload RegisterUserPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := &users.User{
		Name:  payload.Name,
		Email: payload.Email,
		Role:  users.RoleUser,
	}
	// hash the user password.
	if err := user.Password.Set(payload.Password); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Users.Create(r.Context(), user); err != nil {
		if errors.Is(err, users.ErrDuplicateEmail) {
			app.conflictResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	vars := struct {
		Username  string
		SearchURL string
	}{
		Username:  user.Name,
		SearchURL: app.config.frontendURL + "/search",
	}

	// the account exists either way; a lost welcome email is only logged
	status, err := app.mailer.Send(mailer.UserWelcomeTemplate, user.Name, user.Email, vars)
	if err != nil {
		app.logger.Errorw("error sending welcome email", "error", err)
	} else {
		app.logger.Infow("Email sent", "status code", status)
	}

	app.jsonResponse(w, http.StatusCreated, user)
}

type CreateUserTokenPayload struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=3,max=72"`
}

// TokenResponse represents the structure of the tokens in the response. made for swagger doc success output
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	Role         string `json:"role"`
}

// Envelope is a wrapper for API responses.made for swagger doc success output
type Envelope struct {
	Data TokenResponse `json:"data"`
}

func (app *application) issueTokens(w http.ResponseWriter, r *http.Request, userID int64, role users.Role) {
	accessToken, refreshToken, err := app.authenticator.GenerateTokens(userID, string(role))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Users.SaveRefreshToken(r.Context(), userID, refreshToken); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       strconv.FormatInt(userID, 10),
		Role:         string(role),
	})
}

// createTokenHandler godoc
//
//	@Summary		Login to get Token
//	@Description	Creates an access and refresh token pair for a user.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateUserTokenPayload	true	"User credentials"
//	@Success		200		{object}	Envelope
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		401		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/authentication/token [post]
func (app *application) createTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateUserTokenPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user, err := app.store.Users.GetByEmail(r.Context(), payload.Email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			app.unauthorizedErrorResponse(w, r, errors.New("invalid credentials"))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := user.Password.Compare(payload.Password); err != nil {
		app.unauthorizedErrorResponse(w, r, errors.New("invalid credentials"))
		return
	}

	app.issueTokens(w, r, user.ID, user.Role)
}

// LogoutUser godoc
//
//	@Summary		logout user
//	@Description	logout user which will nullify refresh token
//	@Tags			authentication
//	@Success		204	{string}	string	"No Content"
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/users/logout [post]
func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	if err := app.store.Users.DeleteRefreshToken(r.Context(), user.ID); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type RefreshPayload struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// refreshTokenHandler godoc
//
//	@Summary		Refresh authentication tokens
//	@Description	Validates the provided refresh token and issues new access and refresh tokens.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		RefreshPayload	true	"Refresh token payload"
//	@Success		200		{object}	Envelope		"New access and refresh tokens"
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		401		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/authentication/refresh [post]
func (app *application) refreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload RefreshPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	token, err := app.authenticator.ValidateRefreshToken(payload.RefreshToken)
	if err != nil {
		app.unauthorizedErrorResponse(w, r, fmt.Errorf("invalid refresh token: %w", err))
		return
	}

	userID, err := auth.Subject(token)
	if err != nil {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}

	ctx := r.Context()

	// a rotated or logged out token no longer matches the stored one
	savedToken, err := app.store.Users.GetRefreshToken(ctx, userID)
	if err != nil || savedToken != payload.RefreshToken {
		app.unauthorizedErrorResponse(w, r, errors.New("refresh token mismatch"))
		return
	}

	// the role is read fresh so promotions take effect on refresh
	user, err := app.store.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.issueTokens(w, r, user.ID, user.Role)
}

type RequestResetPasswordPayload struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

func hashToken(plain string) string {
	hash := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(hash[:])
}

// requestResetPasswordHandler godoc
//
//	@Summary		Request password reset
//	@Description	Emails a reset link when the address is registered. The response is the same either way.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		RequestResetPasswordPayload	true	"User email"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/authentication/reset-password [post]
func (app *application) requestResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var payload RequestResetPasswordPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()
	accepted := map[string]string{"message": "if the email is registered, a reset link has been sent"}

	user, err := app.store.Users.GetByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			app.jsonResponse(w, http.StatusOK, accepted)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	resetToken := uuid.New().String()
	expires := app.clock().UTC().Add(app.config.mail.resetExp)

	if err := app.store.Users.UpdateResetToken(ctx, user.Email, hashToken(resetToken), expires); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	vars := struct {
		Username  string
		ExpiresIn string
		ResetURL  string
	}{
		Username:  user.Name,
		ExpiresIn: app.config.mail.resetExp.String(),
		ResetURL:  fmt.Sprintf("%s/reset-password?token=%s", app.config.frontendURL, resetToken),
	}

	status, err := app.mailer.Send(mailer.ResetPasswordTemplate, user.Name, user.Email, vars)
	if err != nil {
		app.logger.Errorw("error sending reset password email", "error", err)
		app.internalServerError(w, r, err)
		return
	}
	app.logger.Infow("Reset password email sent", "status code", status)

	app.jsonResponse(w, http.StatusOK, accepted)
}

type ResetPasswordPayload struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// resetPasswordHandler godoc
//
//	@Summary		Reset password
//	@Description	Sets a new password using the emailed token. Existing sessions are logged out.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		ResetPasswordPayload	true	"Reset password details"
//	@Success		200		{object}	map[string]string		"Password reset successful"
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/authentication/reset-password [patch]
func (app *application) resetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var payload ResetPasswordPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Users.ResetPassword(r.Context(), hashToken(payload.Token), payload.Password); err != nil {
		if errors.Is(err, users.ErrInvalidResetToken) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]string{"message": "Password reset successful"})
}
