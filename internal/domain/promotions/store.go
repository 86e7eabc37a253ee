package promotions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymspot/internal/dbx"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) Store {
	return &Repository{db: db}
}

const promotionColumns = `
	p.id, p.venue_id, p.title, p.description, p.discount_type, p.discount_percent,
	p.offer_text, p.starts_at, p.ends_at, p.redemption_count, p.status,
	p.created_at, p.updated_at, v.name, v.city`

func scanPromotion(row pgx.Row) (*Promotion, error) {
	var p Promotion
	err := row.Scan(
		&p.ID, &p.VenueID, &p.Title, &p.Description, &p.DiscountType, &p.DiscountPercent,
		&p.OfferText, &p.StartsAt, &p.EndsAt, &p.RedemptionCount, &p.Status,
		&p.CreatedAt, &p.UpdatedAt, &p.VenueName, &p.City,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collect(rows pgx.Rows) ([]Promotion, error) {
	defer rows.Close()

	out := []Promotion{}
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *Repository) Create(ctx context.Context, p *Promotion) error {
	if p.Status == "" {
		p.Status = StatusActive
	}

	query := `
	INSERT INTO promotions (
		venue_id, title, description, discount_type, discount_percent,
		offer_text, starts_at, ends_at, status
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, redemption_count, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		p.VenueID, p.Title, p.Description, p.DiscountType, p.DiscountPercent,
		p.OfferText, p.StartsAt, p.EndsAt, p.Status,
	).Scan(&p.ID, &p.RedemptionCount, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert promotion: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Promotion, error) {
	query := `SELECT` + promotionColumns + `
	FROM promotions p JOIN venues v ON v.id = p.venue_id
	WHERE p.id = $1`

	p, err := scanPromotion(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPromotionNotFound
		}
		return nil, fmt.Errorf("get promotion: %w", err)
	}
	return p, nil
}

func (r *Repository) Update(ctx context.Context, p *Promotion) error {
	err := r.db.QueryRow(ctx, `
	UPDATE promotions SET
		title = $1, description = $2, discount_type = $3, discount_percent = $4,
		offer_text = $5, starts_at = $6, ends_at = $7, status = $8, updated_at = NOW()
	WHERE id = $9
	RETURNING updated_at
	`,
		p.Title, p.Description, p.DiscountType, p.DiscountPercent,
		p.OfferText, p.StartsAt, p.EndsAt, p.Status, p.ID,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPromotionNotFound
		}
		return fmt.Errorf("update promotion: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPromotionNotFound
	}
	return nil
}

func (r *Repository) ListByVenue(ctx context.Context, venueID int64) ([]Promotion, error) {
	rows, err := r.db.Query(ctx, `SELECT`+promotionColumns+`
	FROM promotions p JOIN venues v ON v.id = p.venue_id
	WHERE p.venue_id = $1
	ORDER BY p.starts_at DESC`, venueID)
	if err != nil {
		return nil, fmt.Errorf("list venue promotions: %w", err)
	}
	return collect(rows)
}

func (r *Repository) ListCurrent(ctx context.Context, city string, now time.Time) ([]Promotion, error) {
	query := `SELECT` + promotionColumns + `
	FROM promotions p JOIN venues v ON v.id = p.venue_id
	WHERE p.status = 'ACTIVE' AND v.status = 'ACTIVE'
	  AND p.starts_at <= $1 AND p.ends_at > $1`
	args := []any{now}
	if city != "" {
		query += ` AND v.city ILIKE $2`
		args = append(args, city)
	}
	query += ` ORDER BY p.ends_at ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list current promotions: %w", err)
	}
	return collect(rows)
}

// Redeem increments the redemption counter in one statement when the
// promotion is active and now falls inside its window.
func (r *Repository) Redeem(ctx context.Context, id int64, now time.Time) (*Promotion, error) {
	tag, err := r.db.Exec(ctx, `
	UPDATE promotions SET redemption_count = redemption_count + 1
	WHERE id = $1 AND status = 'ACTIVE' AND starts_at <= $2 AND ends_at > $2
	`, id, now)
	if err != nil {
		return nil, fmt.Errorf("redeem promotion: %w", err)
	}

	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotRedeemable
	}
	return p, nil
}
