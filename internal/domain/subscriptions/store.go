package subscriptions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymspot/internal/dbx"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) Store {
	return &Repository{db: db}
}

const planColumns = `id, name, description, price::text, currency, billing_cycle, features, active, created_at`

func scanPlan(row pgx.Row) (*Plan, error) {
	var (
		p     Plan
		price string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &price, &p.Currency,
		&p.BillingCycle, &p.Features, &p.Active, &p.CreatedAt); err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parse plan price %q: %w", price, err)
	}
	p.Price = amount
	return &p, nil
}

// ListPlans returns active plans, cheapest first.
func (r *Repository) ListPlans(ctx context.Context) ([]Plan, error) {
	rows, err := r.db.Query(ctx, `SELECT `+planColumns+` FROM subscription_plans WHERE active ORDER BY price ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	plans := []Plan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *p)
	}
	return plans, rows.Err()
}

func (r *Repository) GetPlan(ctx context.Context, planID int64) (*Plan, error) {
	p, err := scanPlan(r.db.QueryRow(ctx, `SELECT `+planColumns+` FROM subscription_plans WHERE id = $1 AND active`, planID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return p, nil
}

const subscriptionColumns = `
	s.id, s.user_id, s.plan_id, s.status, s.start_date, s.end_date, s.auto_renew,
	s.created_at, s.updated_at, sp.name`

func scanSubscription(row pgx.Row) (*Subscription, error) {
	var s Subscription
	err := row.Scan(&s.ID, &s.UserID, &s.PlanID, &s.Status, &s.StartDate, &s.EndDate,
		&s.AutoRenew, &s.CreatedAt, &s.UpdatedAt, &s.PlanName)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) LiveForUser(ctx context.Context, userID int64) (*Subscription, error) {
	s, err := scanSubscription(r.db.QueryRow(ctx, `SELECT `+subscriptionColumns+`
	FROM subscriptions s JOIN subscription_plans sp ON sp.id = s.plan_id
	WHERE s.user_id = $1 AND s.status IN ('ACTIVE', 'TRIALING')
	ORDER BY s.created_at DESC
	LIMIT 1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("live subscription: %w", err)
	}
	return s, nil
}

func (r *Repository) PendingForUser(ctx context.Context, userID int64) (*Subscription, error) {
	s, err := scanSubscription(r.db.QueryRow(ctx, `SELECT `+subscriptionColumns+`
	FROM subscriptions s JOIN subscription_plans sp ON sp.id = s.plan_id
	WHERE s.user_id = $1 AND s.status = 'PENDING'
	LIMIT 1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("pending subscription: %w", err)
	}
	return s, nil
}

// uniqueViolation maps the per-user partial unique indexes to their
// sentinels.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}
	if pgErr.ConstraintName == "subscriptions_one_pending_per_user" {
		return ErrPendingCheckout
	}
	return ErrActiveSubscription
}

// Create inserts the subscription. A second live subscription, or a second
// pending checkout, for the same user trips a partial unique index.
func (r *Repository) Create(ctx context.Context, s *Subscription) error {
	err := r.db.QueryRow(ctx, `
	INSERT INTO subscriptions (user_id, plan_id, status, start_date, end_date, auto_renew)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at, updated_at
	`, s.UserID, s.PlanID, s.Status, s.StartDate, s.EndDate, s.AutoRenew,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if sentinel := uniqueViolation(err); sentinel != nil {
			return sentinel
		}
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Subscription, error) {
	s, err := scanSubscription(r.db.QueryRow(ctx, `SELECT `+subscriptionColumns+`
	FROM subscriptions s JOIN subscription_plans sp ON sp.id = s.plan_id
	WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return s, nil
}

func (r *Repository) ListForUser(ctx context.Context, userID int64) ([]Subscription, error) {
	rows, err := r.db.Query(ctx, `SELECT `+subscriptionColumns+`
	FROM subscriptions s JOIN subscription_plans sp ON sp.id = s.plan_id
	WHERE s.user_id = $1
	ORDER BY s.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	out := []Subscription{}
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// Activate only touches a subscription still awaiting payment, so a late
// payment never revives a canceled or expired one.
func (r *Repository) Activate(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
	UPDATE subscriptions SET status = 'ACTIVE', updated_at = NOW()
	WHERE id = $1 AND status = 'PENDING'
	`, id)
	if err != nil {
		if sentinel := uniqueViolation(err); sentinel != nil {
			return sentinel
		}
		return fmt.Errorf("activate subscription: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotPending
	}
	return nil
}

// ExpireEnded moves live subscriptions whose period ended before now to
// EXPIRED and abandons checkouts left PENDING for more than a day.
func (r *Repository) ExpireEnded(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
	UPDATE subscriptions SET status = CASE WHEN status = 'PENDING' THEN 'CANCELED' ELSE 'EXPIRED' END,
		updated_at = NOW()
	WHERE (status IN ('ACTIVE', 'TRIALING') AND end_date < $1)
	   OR (status = 'PENDING' AND created_at < $1 - INTERVAL '1 day')
	`, now)
	if err != nil {
		return 0, fmt.Errorf("expire subscriptions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Cancel stops a pending or live subscription and turns off renewal.
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
	UPDATE subscriptions SET status = 'CANCELED', auto_renew = FALSE, updated_at = NOW()
	WHERE id = $1 AND status IN ('PENDING', 'TRIALING', 'ACTIVE')
	`, id)
	if err != nil {
		return fmt.Errorf("cancel subscription: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotCancelable
	}
	return nil
}

func (r *Repository) CreatePayment(ctx context.Context, p *Payment) error {
	if p.Status == "" {
		p.Status = PaymentPending
	}
	err := r.db.QueryRow(ctx, `
	INSERT INTO payment_records (subscription_id, transaction_id, provider, provider_ref, amount, currency, status)
	VALUES ($1, $2, $3, $4, $5::numeric, $6, $7)
	RETURNING id, created_at, updated_at
	`, p.SubscriptionID, p.TransactionID, p.Provider, p.ProviderRef, p.Amount.StringFixed(2), p.Currency, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *Repository) SetProviderRef(ctx context.Context, paymentID int64, ref string) error {
	tag, err := r.db.Exec(ctx, `UPDATE payment_records SET provider_ref = $1, updated_at = NOW() WHERE id = $2`, ref, paymentID)
	if err != nil {
		return fmt.Errorf("set provider ref: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

func (r *Repository) GetPaymentByProviderRef(ctx context.Context, ref string) (*Payment, error) {
	var (
		p      Payment
		amount string
	)
	err := r.db.QueryRow(ctx, `
	SELECT id, subscription_id, transaction_id, provider, provider_ref, amount::text, currency, status, created_at, updated_at
	FROM payment_records
	WHERE provider_ref = $1
	`, ref).Scan(&p.ID, &p.SubscriptionID, &p.TransactionID, &p.Provider, &p.ProviderRef,
		&amount, &p.Currency, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if p.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parse payment amount %q: %w", amount, err)
	}
	return &p, nil
}

func (r *Repository) SetPaymentStatus(ctx context.Context, paymentID int64, status PaymentStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE payment_records SET status = $1, updated_at = NOW() WHERE id = $2`, status, paymentID)
	if err != nil {
		return fmt.Errorf("set payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
