package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
	"github.com/stripe/stripe-go/v72/webhook"
)

const (
	StripeProvider = "stripe"

	metaTransactionID = "transaction_id"
)

type StripeAdapter struct {
	api           *client.API
	webhookSecret string
}

func NewStripeAdapter(secretKey, webhookSecret string) *StripeAdapter {
	return &StripeAdapter{
		api:           client.New(secretKey, nil),
		webhookSecret: webhookSecret,
	}
}

// minorUnits converts an amount to the smallest currency unit Stripe expects.
func minorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func (s *StripeAdapter) InitiatePayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(minorUnits(req.Amount)),
		Currency:           stripe.String(strings.ToLower(req.Currency)),
		Description:        stripe.String(req.Description),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	if req.CustomerEmail != "" {
		params.ReceiptEmail = stripe.String(req.CustomerEmail)
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.TransactionID)
	params.AddMetadata(metaTransactionID, req.TransactionID)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return PaymentResponse{}, fmt.Errorf("stripe create payment intent: %w", err)
	}

	return PaymentResponse{
		ProviderRef:  pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}

func (s *StripeAdapter) VerifyPayment(ctx context.Context, req PaymentVerifyRequest) (PaymentVerifyResponse, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := s.api.PaymentIntents.Get(req.ProviderRef, params)
	if err != nil {
		return PaymentVerifyResponse{}, fmt.Errorf("stripe get payment intent: %w", err)
	}

	return PaymentVerifyResponse{
		Success: pi.Status == stripe.PaymentIntentStatusSucceeded,
		Status:  string(pi.Status),
	}, nil
}

func (s *StripeAdapter) ParseWebhook(payload []byte, signature string) (WebhookEvent, error) {
	return parseStripeEvent(payload, signature, s.webhookSecret)
}

func parseStripeEvent(payload []byte, signature, secret string) (WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, secret)
	if err != nil {
		return WebhookEvent{}, fmt.Errorf("verify stripe signature: %w", err)
	}

	out := WebhookEvent{Kind: EventIgnored, Type: string(event.Type)}

	switch event.Type {
	case "payment_intent.succeeded":
		out.Kind = EventSucceeded
	case "payment_intent.payment_failed":
		out.Kind = EventFailed
	default:
		return out, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return WebhookEvent{}, fmt.Errorf("decode payment intent: %w", err)
	}
	out.ProviderRef = pi.ID
	out.TransactionID = pi.Metadata[metaTransactionID]

	return out, nil
}
