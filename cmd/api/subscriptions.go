package main

import (
	"errors"
	"fmt"
	"net/http"

	"gymspot/internal/domain/accesscontrol"
	"gymspot/internal/domain/storage"
	"gymspot/internal/domain/subscriptions"
	"gymspot/internal/payments"

	"github.com/google/uuid"
)

// ListPlans godoc
//
//	@Summary		List subscription plans
//	@Tags			Subscriptions
//	@Produce		json
//	@Success		200	{array}		subscriptions.Plan
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Router			/subscriptions/plans [get]
func (app *application) listPlansHandler(w http.ResponseWriter, r *http.Request) {
	plans, err := app.store.Subscriptions.ListPlans(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if plans == nil {
		plans = []subscriptions.Plan{}
	}

	app.jsonResponse(w, http.StatusOK, plans)
}

type createSubscriptionPayload struct {
	PlanID int64 `json:"plan_id" validate:"required,min=1"`
}

type checkout struct {
	TransactionID string `json:"transaction_id"`
	Provider      string `json:"provider"`
	ClientSecret  string `json:"client_secret"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
}

type subscriptionResponse struct {
	Subscription *subscriptions.Subscription `json:"subscription"`
	Checkout     *checkout                   `json:"checkout,omitempty"`
}

// CreateSubscription godoc
//
//	@Summary		Subscribe to a plan
//	@Description	Free plans start trialing immediately. Paid plans stay PENDING until the payment provider confirms the payment; the response carries the client secret to confirm it.
//	@Tags			Subscriptions
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		createSubscriptionPayload	true	"Plan"
//	@Success		201		{object}	subscriptionResponse
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		404		{object}	error	"Unknown plan"
//	@Failure		409		{object}	error	"Already subscribed or a checkout is pending"
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/subscriptions [post]
func (app *application) createSubscriptionHandler(w http.ResponseWriter, r *http.Request) {
	var payload createSubscriptionPayload
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

	plan, err := app.store.Subscriptions.GetPlan(ctx, payload.PlanID)
	if err != nil {
		if errors.Is(err, subscriptions.ErrPlanNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	// a trial may be upgraded to a paid plan; it is canceled once payment lands
	live, err := app.store.Subscriptions.LiveForUser(ctx, user.ID)
	switch {
	case err == nil:
		if live.Status == subscriptions.StatusActive || plan.Free() {
			app.conflictResponse(w, r, subscriptions.ErrActiveSubscription)
			return
		}
	case !errors.Is(err, subscriptions.ErrSubscriptionNotFound):
		app.internalServerError(w, r, err)
		return
	}

	sub := subscriptions.New(user.ID, plan, app.clock())

	if plan.Free() {
		if err := app.store.Subscriptions.Create(ctx, sub); err != nil {
			if errors.Is(err, subscriptions.ErrActiveSubscription) {
				app.conflictResponse(w, r, err)
				return
			}
			app.internalServerError(w, r, err)
			return
		}
		app.jsonResponse(w, http.StatusCreated, subscriptionResponse{Subscription: sub})
		return
	}

	// at most one checkout awaiting payment per user
	_, err = app.store.Subscriptions.PendingForUser(ctx, user.ID)
	switch {
	case err == nil:
		app.conflictResponse(w, r, subscriptions.ErrPendingCheckout)
		return
	case !errors.Is(err, subscriptions.ErrSubscriptionNotFound):
		app.internalServerError(w, r, err)
		return
	}

	payment := &subscriptions.Payment{
		TransactionID: uuid.New().String(),
		Provider:      payments.StripeProvider,
		Amount:        plan.Price,
		Currency:      plan.Currency,
		Status:        subscriptions.PaymentPending,
	}

	err = app.store.WithTx(ctx, func(tx *storage.Container) error {
		if err := tx.Subscriptions.Create(ctx, sub); err != nil {
			return err
		}
		payment.SubscriptionID = sub.ID
		return tx.Subscriptions.CreatePayment(ctx, payment)
	})
	if err != nil {
		if errors.Is(err, subscriptions.ErrPendingCheckout) || errors.Is(err, subscriptions.ErrActiveSubscription) {
			app.conflictResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	resp, err := app.payments.InitiatePayment(ctx, payment.Provider, payments.PaymentRequest{
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		Description:   fmt.Sprintf("GymSpot %s subscription", plan.Name),
		CustomerEmail: user.Email,
		Metadata: map[string]string{
			"subscription_id": fmt.Sprint(sub.ID),
			"user_id":         fmt.Sprint(user.ID),
		},
	})
	if err != nil {
		app.abandonCheckout(r, sub, payment)
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Subscriptions.SetProviderRef(ctx, payment.ID, resp.ProviderRef); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, subscriptionResponse{
		Subscription: sub,
		Checkout: &checkout{
			TransactionID: payment.TransactionID,
			Provider:      payment.Provider,
			ClientSecret:  resp.ClientSecret,
			Amount:        payment.Amount.StringFixed(2),
			Currency:      payment.Currency,
		},
	})
}

// abandonCheckout closes a subscription whose payment could not be started.
func (app *application) abandonCheckout(r *http.Request, sub *subscriptions.Subscription, payment *subscriptions.Payment) {
	ctx := r.Context()
	if err := app.store.Subscriptions.SetPaymentStatus(ctx, payment.ID, subscriptions.PaymentFailed); err != nil {
		app.logger.Errorw("failed to mark payment failed", "payment_id", payment.ID, "error", err)
	}
	if err := app.store.Subscriptions.Cancel(ctx, sub.ID); err != nil {
		app.logger.Errorw("failed to cancel subscription", "subscription_id", sub.ID, "error", err)
	}
}

// MySubscriptions godoc
//
//	@Summary		List my subscriptions
//	@Tags			Subscriptions
//	@Produce		json
//	@Success		200	{array}		subscriptions.Subscription
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/subscriptions/me [get]
func (app *application) mySubscriptionsHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	subs, err := app.store.Subscriptions.ListForUser(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if subs == nil {
		subs = []subscriptions.Subscription{}
	}

	app.jsonResponse(w, http.StatusOK, subs)
}

// CancelSubscription godoc
//
//	@Summary		Cancel a subscription
//	@Tags			Subscriptions
//	@Param			subscriptionID	path	int	true	"Subscription ID"
//	@Success		204
//	@Failure		404	{object}	error
//	@Failure		409	{object}	error	"Already canceled or expired"
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/subscriptions/{subscriptionID}/cancel [post]
func (app *application) cancelSubscriptionHandler(w http.ResponseWriter, r *http.Request) {
	subscriptionID, err := readIDParam(r, "subscriptionID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()
	user := getUserFromContext(r)

	sub, err := app.store.Subscriptions.GetByID(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, subscriptions.ErrSubscriptionNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}
	// someone else's subscription is reported as missing
	if sub.UserID != user.ID && !accesscontrol.IsAdmin(user.Role) {
		app.notFoundResponse(w, r, subscriptions.ErrSubscriptionNotFound)
		return
	}

	if err := app.store.Subscriptions.Cancel(ctx, sub.ID); err != nil {
		if errors.Is(err, subscriptions.ErrNotCancelable) {
			app.conflictResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
