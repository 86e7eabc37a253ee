package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"gymspot/internal/domain/storage"
	"gymspot/internal/domain/subscriptions"
	"gymspot/internal/mailer"
	"gymspot/internal/payments"
)

const (
	maxWebhookBytes = 65536
	receiptTimeout  = 30 * time.Second
)

// StripeWebhook godoc
//
//	@Summary		Stripe webhook
//	@Description	Receives signed Stripe events. A succeeded payment activates its subscription; a failed one is recorded.
//	@Tags			Subscriptions
//	@Accept			json
//	@Produce		json
//	@Param			Stripe-Signature	header		string	true	"Stripe signature"
//	@Success		200					{object}	map[string]bool
//	@Failure		400					{object}	error	"Bad signature or payload"
//	@Failure		404					{object}	error	"Unknown payment"
//	@Failure		500					{object}	ErrorInternalServerResponse
//	@Router			/webhooks/stripe [post]
func (app *application) stripeWebhookHandler(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("read webhook body: %w", err))
		return
	}

	event, err := app.payments.ParseWebhook(payments.StripeProvider, payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, payments.ErrGatewayNotRegistered) {
			app.internalServerError(w, r, err)
			return
		}
		app.badRequestResponse(w, r, err)
		return
	}

	if event.Kind == payments.EventIgnored {
		app.jsonResponse(w, http.StatusOK, map[string]bool{"received": true})
		return
	}

	ctx := r.Context()
	payment, err := app.store.Subscriptions.GetPaymentByProviderRef(ctx, event.ProviderRef)
	if err != nil {
		if errors.Is(err, subscriptions.ErrPaymentNotFound) {
			// Stripe retries non-2xx deliveries, which covers a checkout
			// that has not stored its provider ref yet
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if payment.Status == subscriptions.PaymentPaid {
		app.jsonResponse(w, http.StatusOK, map[string]bool{"received": true})
		return
	}

	switch event.Kind {
	case payments.EventFailed:
		if err := app.store.Subscriptions.SetPaymentStatus(ctx, payment.ID, subscriptions.PaymentFailed); err != nil {
			app.internalServerError(w, r, err)
			return
		}
		app.logger.Infow("payment failed", "transaction_id", payment.TransactionID, "provider_ref", payment.ProviderRef)

	case payments.EventSucceeded:
		err := app.store.WithTx(ctx, func(tx *storage.Container) error {
			return activateSubscription(r, tx, payment)
		})
		if errors.Is(err, subscriptions.ErrNotPending) {
			// the money arrived anyway; record it and leave the refund to support
			if err := app.store.Subscriptions.SetPaymentStatus(ctx, payment.ID, subscriptions.PaymentPaid); err != nil {
				app.internalServerError(w, r, err)
				return
			}
			app.logger.Warnw("payment received for a subscription that is no longer pending, refund required",
				"subscription_id", payment.SubscriptionID, "transaction_id", payment.TransactionID)
			break
		}
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		app.logger.Infow("subscription activated", "subscription_id", payment.SubscriptionID, "transaction_id", payment.TransactionID)
		app.background(func() {
			ctx, cancel := context.WithTimeout(context.Background(), receiptTimeout)
			defer cancel()
			app.sendReceipt(ctx, payment)
		})
	}

	app.jsonResponse(w, http.StatusOK, map[string]bool{"received": true})
}

// activateSubscription marks the payment paid and its subscription ACTIVE.
// A running trial is canceled in favor of the paid plan. It returns
// subscriptions.ErrNotPending when the subscription was canceled or expired
// meanwhile, or when another paid plan is already ACTIVE.
func activateSubscription(r *http.Request, tx *storage.Container, payment *subscriptions.Payment) error {
	ctx := r.Context()

	if err := tx.Subscriptions.SetPaymentStatus(ctx, payment.ID, subscriptions.PaymentPaid); err != nil {
		return err
	}

	sub, err := tx.Subscriptions.GetByID(ctx, payment.SubscriptionID)
	if err != nil {
		return err
	}
	if sub.Status != subscriptions.StatusPending {
		return subscriptions.ErrNotPending
	}

	live, err := tx.Subscriptions.LiveForUser(ctx, sub.UserID)
	switch {
	case errors.Is(err, subscriptions.ErrSubscriptionNotFound):
	case err != nil:
		return err
	case live.Status != subscriptions.StatusTrialing:
		return subscriptions.ErrNotPending
	default:
		if err := tx.Subscriptions.Cancel(ctx, live.ID); err != nil {
			return fmt.Errorf("cancel superseded trial: %w", err)
		}
	}

	return tx.Subscriptions.Activate(ctx, sub.ID)
}

func (app *application) sendReceipt(ctx context.Context, payment *subscriptions.Payment) {
	sub, err := app.store.Subscriptions.GetByID(ctx, payment.SubscriptionID)
	if err != nil {
		app.logger.Errorw("receipt: load subscription", "subscription_id", payment.SubscriptionID, "error", err)
		return
	}
	user, err := app.store.Users.GetByID(ctx, sub.UserID)
	if err != nil {
		app.logger.Errorw("receipt: load user", "user_id", sub.UserID, "error", err)
		return
	}

	vars := struct {
		Username      string
		PlanName      string
		Amount        string
		Currency      string
		EndDate       string
		TransactionID string
	}{
		Username:      user.Name,
		PlanName:      sub.PlanName,
		Amount:        payment.Amount.StringFixed(2),
		Currency:      payment.Currency,
		EndDate:       sub.EndDate.Format("2006-01-02"),
		TransactionID: payment.TransactionID,
	}

	status, err := app.mailer.Send(mailer.SubscriptionReceiptTmpl, user.Name, user.Email, vars)
	if err != nil {
		app.logger.Errorw("error sending receipt email", "error", err)
		return
	}
	app.logger.Infow("Email sent", "status code", status)
}
