package main

import (
	"errors"
	"net/http"
	"testing"

	"gymspot/internal/domain/storage"
	"gymspot/internal/domain/subscriptions"
	"gymspot/internal/domain/users"
	"gymspot/internal/payments"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubscriptionFixture(t *testing.T) (*application, *fakeSubscriptions, *users.User, *users.User) {
	t.Helper()

	alice := &users.User{ID: 2, Role: users.RoleUser, Email: "alice@example.com"}
	bob := &users.User{ID: 3, Role: users.RoleUser, Email: "bob@example.com"}

	fs := newFakeSubscriptions()
	fs.plans[1] = &subscriptions.Plan{ID: 1, Name: "Basic", Price: decimal.Zero, Currency: "MAD", BillingCycle: subscriptions.Monthly}
	fs.plans[2] = &subscriptions.Plan{ID: 2, Name: "Plus", Price: decimal.NewFromInt(99), Currency: "MAD", BillingCycle: subscriptions.Monthly}

	app := newTestApplication(t, &storage.Container{Users: newFakeUsers(alice, bob), Subscriptions: fs})
	return app, fs, alice, bob
}

func TestCreateSubscription(t *testing.T) {
	app, fs, alice, _ := newSubscriptionFixture(t)
	mux := app.mount()

	subscribe := func(body string) *http.Request {
		return bearer(t, app, alice, newJSONRequest(http.MethodPost, "/v1/subscriptions", body))
	}

	t.Run("free plans start trialing", func(t *testing.T) {
		rr := executeRequest(subscribe(`{"plan_id":1}`), mux)
		require.Equal(t, http.StatusCreated, rr.Code)

		var got subscriptionResponse
		decodeData(t, rr, &got)
		require.NotNil(t, got.Subscription)
		assert.Equal(t, subscriptions.StatusTrialing, got.Subscription.Status)
		assert.Equal(t, "Basic", got.Subscription.PlanName)
		assert.True(t, got.Subscription.StartDate.Equal(testNow))
		assert.Nil(t, got.Checkout)
	})

	t.Run("a second free plan conflicts with the trial", func(t *testing.T) {
		rr := executeRequest(subscribe(`{"plan_id":1}`), mux)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("an active subscription blocks paid plans", func(t *testing.T) {
		for _, s := range fs.subs {
			s.Status = subscriptions.StatusActive
		}
		rr := executeRequest(subscribe(`{"plan_id":2}`), mux)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("a pending checkout blocks another one", func(t *testing.T) {
		for _, s := range fs.subs {
			s.Status = subscriptions.StatusCanceled
		}
		fs.subs[99] = &subscriptions.Subscription{ID: 99, UserID: alice.ID, PlanID: 2, Status: subscriptions.StatusPending}
		defer delete(fs.subs, 99)

		rr := executeRequest(subscribe(`{"plan_id":2}`), mux)
		require.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, subscriptions.ErrPendingCheckout.Error(), decodeError(t, rr).Message)
	})

	t.Run("unknown plans are not found", func(t *testing.T) {
		rr := executeRequest(subscribe(`{"plan_id":42}`), mux)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("plan id is required", func(t *testing.T) {
		rr := executeRequest(subscribe(`{}`), mux)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeError(t, rr).Errors, "plan_id")
	})
}

func TestCancelSubscription(t *testing.T) {
	app, fs, alice, bob := newSubscriptionFixture(t)
	mux := app.mount()

	fs.subs[1] = &subscriptions.Subscription{ID: 1, UserID: alice.ID, PlanID: 1, Status: subscriptions.StatusTrialing}

	cancel := func(u *users.User) *http.Request {
		return bearer(t, app, u, newJSONRequest(http.MethodPost, "/v1/subscriptions/1/cancel", ""))
	}

	rr := executeRequest(cancel(bob), mux)
	assert.Equal(t, http.StatusNotFound, rr.Code, "other users' subscriptions look missing")
	assert.Equal(t, subscriptions.StatusTrialing, fs.subs[1].Status)

	rr = executeRequest(cancel(alice), mux)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, subscriptions.StatusCanceled, fs.subs[1].Status)

	rr = executeRequest(cancel(alice), mux)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestActivateSubscription(t *testing.T) {
	const userID = 2
	req := newJSONRequest(http.MethodPost, "/v1/webhooks/stripe", "")

	t.Run("a paid plan replaces the trial", func(t *testing.T) {
		fs := newFakeSubscriptions()
		fs.subs[1] = &subscriptions.Subscription{ID: 1, UserID: userID, Status: subscriptions.StatusTrialing}
		fs.subs[2] = &subscriptions.Subscription{ID: 2, UserID: userID, Status: subscriptions.StatusPending}

		err := activateSubscription(req, &storage.Container{Subscriptions: fs}, &subscriptions.Payment{ID: 7, SubscriptionID: 2})
		require.NoError(t, err)
		assert.Equal(t, subscriptions.StatusCanceled, fs.subs[1].Status)
		assert.Equal(t, subscriptions.StatusActive, fs.subs[2].Status)
		assert.Equal(t, subscriptions.PaymentPaid, fs.paymentStatus[7])
	})

	t.Run("an active paid plan is never canceled", func(t *testing.T) {
		fs := newFakeSubscriptions()
		fs.subs[1] = &subscriptions.Subscription{ID: 1, UserID: userID, Status: subscriptions.StatusActive}
		fs.subs[2] = &subscriptions.Subscription{ID: 2, UserID: userID, Status: subscriptions.StatusPending}

		err := activateSubscription(req, &storage.Container{Subscriptions: fs}, &subscriptions.Payment{ID: 7, SubscriptionID: 2})
		assert.ErrorIs(t, err, subscriptions.ErrNotPending)
		assert.Equal(t, subscriptions.StatusActive, fs.subs[1].Status)
		assert.Equal(t, subscriptions.StatusPending, fs.subs[2].Status)
	})

	t.Run("late payments do not revive canceled subscriptions", func(t *testing.T) {
		for _, status := range []subscriptions.Status{subscriptions.StatusCanceled, subscriptions.StatusExpired} {
			fs := newFakeSubscriptions()
			fs.subs[2] = &subscriptions.Subscription{ID: 2, UserID: userID, Status: status}

			err := activateSubscription(req, &storage.Container{Subscriptions: fs}, &subscriptions.Payment{ID: 7, SubscriptionID: 2})
			assert.ErrorIs(t, err, subscriptions.ErrNotPending)
			assert.Equal(t, status, fs.subs[2].Status)
		}
	})
}

func TestStripeWebhook(t *testing.T) {
	pending := &subscriptions.Payment{ID: 5, SubscriptionID: 1, TransactionID: "tx-5", ProviderRef: "pi_pending", Status: subscriptions.PaymentPending}
	paid := &subscriptions.Payment{ID: 6, SubscriptionID: 2, TransactionID: "tx-6", ProviderRef: "pi_paid", Status: subscriptions.PaymentPaid}

	setup := func(t *testing.T, event payments.WebhookEvent, parseErr error) (*application, *fakeSubscriptions) {
		app, fs, _, _ := newSubscriptionFixture(t)
		fs.payments[pending.ProviderRef] = pending
		fs.payments[paid.ProviderRef] = paid
		app.payments.RegisterGateway(payments.StripeProvider, &fakeGateway{event: event, err: parseErr})
		return app, fs
	}

	deliver := func(app *application) int {
		req := newJSONRequest(http.MethodPost, "/v1/webhooks/stripe", `{"id":"evt_1"}`)
		req.Header.Set("Stripe-Signature", "t=1,v1=abc")
		return executeRequest(req, app.mount()).Code
	}

	t.Run("ignored events are acknowledged", func(t *testing.T) {
		app, fs := setup(t, payments.WebhookEvent{Kind: payments.EventIgnored, Type: "customer.created"}, nil)
		assert.Equal(t, http.StatusOK, deliver(app))
		assert.Empty(t, fs.paymentStatus)
	})

	t.Run("failed payments are recorded", func(t *testing.T) {
		app, fs := setup(t, payments.WebhookEvent{Kind: payments.EventFailed, ProviderRef: "pi_pending"}, nil)
		assert.Equal(t, http.StatusOK, deliver(app))
		assert.Equal(t, subscriptions.PaymentFailed, fs.paymentStatus[pending.ID])
	})

	t.Run("unknown payments are retried", func(t *testing.T) {
		app, _ := setup(t, payments.WebhookEvent{Kind: payments.EventSucceeded, ProviderRef: "pi_unknown"}, nil)
		assert.Equal(t, http.StatusNotFound, deliver(app))
	})

	t.Run("paid payments are not processed twice", func(t *testing.T) {
		app, fs := setup(t, payments.WebhookEvent{Kind: payments.EventSucceeded, ProviderRef: "pi_paid"}, nil)
		assert.Equal(t, http.StatusOK, deliver(app))
		assert.Empty(t, fs.paymentStatus)
	})

	t.Run("bad signatures are rejected", func(t *testing.T) {
		app, _ := setup(t, payments.WebhookEvent{}, errors.New("signature mismatch"))
		assert.Equal(t, http.StatusBadRequest, deliver(app))
	})

	t.Run("missing gateway is a server error", func(t *testing.T) {
		app, _, _, _ := newSubscriptionFixture(t)
		assert.Equal(t, http.StatusInternalServerError, deliver(app))
	})
}
