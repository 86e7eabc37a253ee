package payments

import "github.com/shopspring/decimal"

type PaymentRequest struct {
	TransactionID string
	Amount        decimal.Decimal
	Currency      string
	Description   string
	CustomerEmail string
	Metadata      map[string]string
}

type PaymentResponse struct {
	// ProviderRef identifies the payment at the provider (Stripe PaymentIntent id).
	ProviderRef string
	// ClientSecret lets the client confirm the payment with the provider SDK.
	ClientSecret string
	PaymentURL   string
}

type PaymentVerifyRequest struct {
	ProviderRef string
}

type PaymentVerifyResponse struct {
	Success bool
	Status  string
}

type EventKind int

const (
	EventIgnored EventKind = iota
	EventSucceeded
	EventFailed
)

// WebhookEvent is a verified provider callback reduced to what the
// subscription flow needs.
type WebhookEvent struct {
	Kind          EventKind
	Type          string
	ProviderRef   string
	TransactionID string
}
