package subscriptions

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrPlanNotFound         = errors.New("subscription plan not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrPaymentNotFound      = errors.New("payment record not found")
	ErrActiveSubscription   = errors.New("user already has an active subscription")
	ErrNotCancelable        = errors.New("subscription cannot be canceled in its current state")
	ErrPendingCheckout      = errors.New("a checkout is already awaiting payment; cancel it first")
	// ErrNotPending is returned when a payment lands for a subscription that
	// was canceled, expired or superseded meanwhile.
	ErrNotPending = errors.New("subscription is no longer awaiting payment")
)

type BillingCycle string

const (
	Monthly   BillingCycle = "MONTHLY"
	Quarterly BillingCycle = "QUARTERLY"
	Annually  BillingCycle = "ANNUALLY"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusTrialing Status = "TRIALING"
	StatusActive   Status = "ACTIVE"
	StatusCanceled Status = "CANCELED"
	StatusExpired  Status = "EXPIRED"
)

// Live reports whether the subscription currently grants access.
func (s Status) Live() bool {
	return s == StatusActive || s == StatusTrialing
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

type Plan struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" swaggertype:"string"`
	Currency     string          `json:"currency"`
	BillingCycle BillingCycle    `json:"billing_cycle"`
	Features     []string        `json:"features"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (p *Plan) Free() bool {
	return p.Price.IsZero()
}

type Subscription struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PlanID    int64     `json:"plan_id"`
	Status    Status    `json:"status"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	AutoRenew bool      `json:"auto_renew"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined fields
	PlanName string `json:"plan_name,omitempty"`
}

type Payment struct {
	ID             int64           `json:"id"`
	SubscriptionID int64           `json:"subscription_id"`
	TransactionID  string          `json:"transaction_id"`
	Provider       string          `json:"provider"`
	ProviderRef    string          `json:"provider_ref"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"string"`
	Currency       string          `json:"currency"`
	Status         PaymentStatus   `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type Store interface {
	ListPlans(ctx context.Context) ([]Plan, error)
	GetPlan(ctx context.Context, planID int64) (*Plan, error)

	// LiveForUser returns the user's ACTIVE or TRIALING subscription.
	LiveForUser(ctx context.Context, userID int64) (*Subscription, error)
	// PendingForUser returns the user's checkout awaiting payment.
	PendingForUser(ctx context.Context, userID int64) (*Subscription, error)
	Create(ctx context.Context, s *Subscription) error
	GetByID(ctx context.Context, id int64) (*Subscription, error)
	ListForUser(ctx context.Context, userID int64) ([]Subscription, error)
	// Activate moves a PENDING subscription to ACTIVE.
	Activate(ctx context.Context, id int64) error
	Cancel(ctx context.Context, id int64) error
	ExpireEnded(ctx context.Context, now time.Time) (int64, error)

	CreatePayment(ctx context.Context, p *Payment) error
	SetProviderRef(ctx context.Context, paymentID int64, ref string) error
	GetPaymentByProviderRef(ctx context.Context, ref string) (*Payment, error)
	SetPaymentStatus(ctx context.Context, paymentID int64, status PaymentStatus) error
}
