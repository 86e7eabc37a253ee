package main

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"gymspot/internal/domain/accesscontrol"
	"gymspot/internal/domain/promotions"
	"gymspot/internal/domain/venues"
	"gymspot/internal/notifications"

	"github.com/go-chi/chi/v5"
)

const promotionPushTimeout = 30 * time.Second

type createPromotionPayload struct {
	Title           string                  `json:"title" validate:"required,max=120"`
	Description     string                  `json:"description" validate:"required,max=1000"`
	DiscountType    promotions.DiscountType `json:"discount_type" validate:"required"`
	DiscountPercent *int                    `json:"discount_percent"`
	OfferText       string                  `json:"offer_text" validate:"max=255"`
	StartsAt        time.Time               `json:"starts_at" validate:"required"`
	EndsAt          time.Time               `json:"ends_at" validate:"required"`
	Status          promotions.Status       `json:"status"`
}

type updatePromotionPayload struct {
	Title           *string                  `json:"title" validate:"omitempty,max=120"`
	Description     *string                  `json:"description" validate:"omitempty,max=1000"`
	DiscountType    *promotions.DiscountType `json:"discount_type"`
	DiscountPercent *int                     `json:"discount_percent"`
	OfferText       *string                  `json:"offer_text" validate:"omitempty,max=255"`
	StartsAt        *time.Time               `json:"starts_at"`
	EndsAt          *time.Time               `json:"ends_at"`
	Status          *promotions.Status       `json:"status"`
}

func (p updatePromotionPayload) apply(promo *promotions.Promotion) {
	if p.Title != nil {
		promo.Title = *p.Title
	}
	if p.Description != nil {
		promo.Description = *p.Description
	}
	if p.DiscountType != nil {
		promo.DiscountType = *p.DiscountType
	}
	if p.DiscountPercent != nil {
		promo.DiscountPercent = p.DiscountPercent
	}
	if p.OfferText != nil {
		promo.OfferText = *p.OfferText
	}
	if p.StartsAt != nil {
		promo.StartsAt = *p.StartsAt
	}
	if p.EndsAt != nil {
		promo.EndsAt = *p.EndsAt
	}
	if p.Status != nil {
		promo.Status = *p.Status
	}
	normalizeDiscount(promo)
}

// normalizeDiscount keeps only the field of the promotion's discount type.
func normalizeDiscount(promo *promotions.Promotion) {
	switch promo.DiscountType {
	case promotions.DiscountPercentage:
		promo.OfferText = ""
	case promotions.DiscountOffer:
		promo.DiscountPercent = nil
	}
}

// withCodes fills the public redemption code of every promotion.
func (app *application) withCodes(list []promotions.Promotion) error {
	for i := range list {
		if err := app.codes.WithCode(&list[i]); err != nil {
			return err
		}
	}
	return nil
}

// CreatePromotion godoc
//
//	@Summary		Create a promotion
//	@Description	Creates a promotion for a venue the caller manages and notifies users who favorited the venue.
//	@Tags			Promotions
//	@Accept			json
//	@Produce		json
//	@Param			venueID	path		int						true	"Venue ID"
//	@Param			payload	body		createPromotionPayload	true	"Promotion"
//	@Success		201		{object}	promotions.Promotion
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID}/promotions [post]
func (app *application) createPromotionHandler(w http.ResponseWriter, r *http.Request) {
	venue := app.loadManagedVenue(w, r)
	if venue == nil {
		return
	}

	var payload createPromotionPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	promo := &promotions.Promotion{
		VenueID:         venue.ID,
		Title:           strings.TrimSpace(payload.Title),
		Description:     strings.TrimSpace(payload.Description),
		DiscountType:    payload.DiscountType,
		DiscountPercent: payload.DiscountPercent,
		OfferText:       strings.TrimSpace(payload.OfferText),
		StartsAt:        payload.StartsAt,
		EndsAt:          payload.EndsAt,
		Status:          payload.Status,
	}
	normalizeDiscount(promo)

	if fieldErrs := promotions.Validate(promo); fieldErrs != nil {
		writeJSONFieldErrors(w, fieldErrs)
		return
	}

	if err := app.store.Promotions.Create(r.Context(), promo); err != nil {
		app.internalServerError(w, r, err)
		return
	}
	promo.VenueName = venue.Name
	promo.City = venue.City

	if err := app.codes.WithCode(promo); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if promo.Status == promotions.StatusActive && venue.Status == venues.StatusActive {
		app.notifyPromotion(notifications.PromotionNotice{
			VenueID:     venue.ID,
			VenueName:   venue.Name,
			PromotionID: promo.ID,
			Title:       promo.Title,
			Code:        promo.Code,
		})
	}

	app.jsonResponse(w, http.StatusCreated, promo)
}

// notifyPromotion pushes the promotion in the background. The request
// context is not used because it ends with the response.
func (app *application) notifyPromotion(n notifications.PromotionNotice) {
	app.background(func() {
		ctx, cancel := context.WithTimeout(context.Background(), promotionPushTimeout)
		defer cancel()

		sent, err := notifications.SendPromotionNotification(ctx, app.push, app.store.Venues, app.store.PushTokens, n)
		if err != nil {
			app.logger.Errorw("promotion push failed", "promotion_id", n.PromotionID, "error", err)
			return
		}
		app.logger.Infow("promotion push sent", "promotion_id", n.PromotionID, "messages", sent)
	})
}

// ListVenuePromotions godoc
//
//	@Summary		List a venue's promotions
//	@Description	Visitors see promotions valid right now. The owner and admins see all of them.
//	@Tags			Promotions
//	@Produce		json
//	@Param			venueID	path		int	true	"Venue ID"
//	@Success		200		{array}		promotions.Promotion
//	@Failure		404		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/venues/{venueID}/promotions [get]
func (app *application) listVenuePromotionsHandler(w http.ResponseWriter, r *http.Request) {
	venue := app.loadVisibleVenue(w, r)
	if venue == nil {
		return
	}

	list, err := app.store.Promotions.ListByVenue(r.Context(), venue.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if !accesscontrol.CanManageVenue(principal(r), venue) {
		now := app.clock()
		current := list[:0]
		for _, promo := range list {
			if promo.ValidAt(now) {
				current = append(current, promo)
			}
		}
		list = current
	}

	if err := app.withCodes(list); err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if list == nil {
		list = []promotions.Promotion{}
	}

	app.jsonResponse(w, http.StatusOK, list)
}

// ListCurrentPromotions godoc
//
//	@Summary		List current promotions
//	@Description	Active promotions of active venues that are valid now, ending soonest first.
//	@Tags			Promotions
//	@Produce		json
//	@Param			city	query		string	false	"City"
//	@Success		200		{array}		promotions.Promotion
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/promotions [get]
func (app *application) listCurrentPromotionsHandler(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))

	list, err := app.store.Promotions.ListCurrent(r.Context(), city, app.clock())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.withCodes(list); err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if list == nil {
		list = []promotions.Promotion{}
	}

	app.jsonResponse(w, http.StatusOK, list)
}

// loadManagedPromotion fetches {promotionID} and checks the caller manages
// its venue.
func (app *application) loadManagedPromotion(w http.ResponseWriter, r *http.Request) *promotions.Promotion {
	promotionID, err := readIDParam(r, "promotionID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return nil
	}

	ctx := r.Context()
	promo, err := app.store.Promotions.GetByID(ctx, promotionID)
	if err != nil {
		if errors.Is(err, promotions.ErrPromotionNotFound) {
			app.notFoundResponse(w, r, err)
			return nil
		}
		app.internalServerError(w, r, err)
		return nil
	}

	venue, err := app.store.Venues.GetByID(ctx, promo.VenueID)
	if err != nil {
		app.internalServerError(w, r, err)
		return nil
	}
	if !accesscontrol.CanManageVenue(principal(r), venue) {
		app.forbiddenResponse(w, r)
		return nil
	}
	return promo
}

// UpdatePromotion godoc
//
//	@Summary		Update a promotion
//	@Tags			Promotions
//	@Accept			json
//	@Produce		json
//	@Param			promotionID	path		int						true	"Promotion ID"
//	@Param			payload		body		updatePromotionPayload	true	"Fields to change"
//	@Success		200			{object}	promotions.Promotion
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/promotions/{promotionID} [patch]
func (app *application) updatePromotionHandler(w http.ResponseWriter, r *http.Request) {
	promo := app.loadManagedPromotion(w, r)
	if promo == nil {
		return
	}

	var payload updatePromotionPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payload.apply(promo)
	if fieldErrs := promotions.Validate(promo); fieldErrs != nil {
		writeJSONFieldErrors(w, fieldErrs)
		return
	}

	if err := app.store.Promotions.Update(r.Context(), promo); err != nil {
		if errors.Is(err, promotions.ErrPromotionNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.codes.WithCode(promo); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, promo)
}

// DeletePromotion godoc
//
//	@Summary		Delete a promotion
//	@Tags			Promotions
//	@Param			promotionID	path	int	true	"Promotion ID"
//	@Success		204
//	@Failure		403	{object}	error
//	@Failure		404	{object}	error
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/promotions/{promotionID} [delete]
func (app *application) deletePromotionHandler(w http.ResponseWriter, r *http.Request) {
	promo := app.loadManagedPromotion(w, r)
	if promo == nil {
		return
	}

	if err := app.store.Promotions.Delete(r.Context(), promo.ID); err != nil {
		if errors.Is(err, promotions.ErrPromotionNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RedeemPromotion godoc
//
//	@Summary		Redeem a promotion code
//	@Description	Counts one redemption when the promotion is active and inside its validity window.
//	@Tags			Promotions
//	@Produce		json
//	@Param			code	path		string	true	"Redemption code"
//	@Success		200		{object}	promotions.Promotion
//	@Failure		404		{object}	error	"Unknown code"
//	@Failure		409		{object}	error	"Inactive or expired promotion"
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/promotions/redeem/{code} [post]
func (app *application) redeemPromotionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.codes.Decode(chi.URLParam(r, "code"))
	if err != nil {
		app.notFoundResponse(w, r, err)
		return
	}

	promo, err := app.store.Promotions.Redeem(r.Context(), id, app.clock())
	if err != nil {
		switch {
		case errors.Is(err, promotions.ErrPromotionNotFound):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, promotions.ErrNotRedeemable):
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.codes.WithCode(promo); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, promo)
}
