package venuereviews

import (
	"context"
	"errors"
	"fmt"

	"gymspot/internal/dbx"
	"gymspot/internal/domain/venues"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) Store {
	return &Repository{db: db}
}

// CreateReview inserts a published review. It does not touch the venue's
// rating; see RecomputeRating.
func (r *Repository) CreateReview(ctx context.Context, review *Review) error {
	query := `
        INSERT INTO reviews (venue_id, user_id, rating, comment)
        VALUES ($1, $2, $3, $4)
        RETURNING id, helpful_count, status, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		review.VenueID,
		review.UserID,
		review.Rating,
		review.Comment,
	).Scan(&review.ID, &review.HelpfulCount, &review.Status, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return ErrAlreadyReviewed
			case pgerrcode.ForeignKeyViolation:
				return venues.ErrVenueNotFound
			}
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, reviewID int64) (*Review, error) {
	var rv Review
	err := r.db.QueryRow(ctx, `
        SELECT id, venue_id, user_id, rating, comment, helpful_count, status, created_at, updated_at
        FROM reviews
        WHERE id = $1 AND status <> 'DELETED'
    `, reviewID).Scan(
		&rv.ID, &rv.VenueID, &rv.UserID, &rv.Rating, &rv.Comment,
		&rv.HelpfulCount, &rv.Status, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &rv, nil
}

func (r *Repository) listReviews(ctx context.Context, where string, venueID int64) ([]Review, error) {
	query := `
        SELECT vr.id, vr.venue_id, vr.user_id, vr.rating, vr.comment, vr.helpful_count,
               vr.status, vr.created_at, vr.updated_at, u.name
        FROM reviews vr
        JOIN users u ON u.id = vr.user_id
        WHERE vr.venue_id = $1 AND ` + where + `
        ORDER BY vr.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []Review{}
	for rows.Next() {
		var review Review
		err := rows.Scan(
			&review.ID,
			&review.VenueID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&review.HelpfulCount,
			&review.Status,
			&review.CreatedAt,
			&review.UpdatedAt,
			&review.UserName,
		)
		if err != nil {
			return nil, err
		}

		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *Repository) GetReviews(ctx context.Context, venueID int64) ([]Review, error) {
	return r.listReviews(ctx, "vr.status = 'PUBLISHED'", venueID)
}

func (r *Repository) ListForVenue(ctx context.Context, venueID int64) ([]Review, error) {
	return r.listReviews(ctx, "vr.status <> 'DELETED'", venueID)
}

func (r *Repository) UpdateReview(ctx context.Context, reviewID int64, rating int, comment string) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE reviews SET rating = $1, comment = $2, updated_at = NOW()
        WHERE id = $3 AND status <> 'DELETED'
    `, rating, comment, reviewID)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// DeleteReview soft-deletes a review. Deleted reviews are excluded from
// listings and from the rating mean.
func (r *Repository) DeleteReview(ctx context.Context, reviewID int64) error {
	return r.SetStatus(ctx, reviewID, StatusDeleted)
}

func (r *Repository) MarkHelpful(ctx context.Context, reviewID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
        UPDATE reviews SET helpful_count = helpful_count + 1
        WHERE id = $1 AND status = 'PUBLISHED'
        RETURNING helpful_count
    `, reviewID).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrReviewNotFound
		}
		return 0, fmt.Errorf("mark helpful: %w", err)
	}
	return count, nil
}

func (r *Repository) SetStatus(ctx context.Context, reviewID int64, status Status) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE reviews SET status = $1, updated_at = NOW()
        WHERE id = $2 AND status <> 'DELETED'
    `, status, reviewID)
	if err != nil {
		return fmt.Errorf("set review status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *Repository) GetReviewStats(ctx context.Context, venueID int64) (total int, average float64, err error) {
	query := `
        SELECT
            COUNT(id) as total_reviews,
            COALESCE(AVG(rating), 0) as average_rating
        FROM reviews
        WHERE venue_id = $1 AND status <> 'DELETED'
    `
	err = r.db.QueryRow(ctx, query, venueID).Scan(&total, &average)
	return total, average, err
}

// RecomputeRating stores the mean of the venue's non-deleted review ratings
// (0 when there are none) on the venue and returns it.
func (r *Repository) RecomputeRating(ctx context.Context, venueID int64) (float64, error) {
	var rating float64
	err := r.db.QueryRow(ctx, `
        UPDATE venues v
        SET rating = COALESCE((
                SELECT AVG(r.rating)::float8 FROM reviews r
                WHERE r.venue_id = v.id AND r.status <> 'DELETED'
            ), 0),
            updated_at = NOW()
        WHERE v.id = $1
        RETURNING v.rating
    `, venueID).Scan(&rating)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, venues.ErrVenueNotFound
		}
		return 0, fmt.Errorf("recompute rating: %w", err)
	}
	return rating, nil
}

// RecomputeAllQuery sets every venue's rating to the mean of its non-deleted
// reviews. The seeder runs it inside its own transaction.
const RecomputeAllQuery = `
        UPDATE venues v
        SET rating = COALESCE((
                SELECT AVG(r.rating)::float8 FROM reviews r
                WHERE r.venue_id = v.id AND r.status <> 'DELETED'
            ), 0)
    `

// RecomputeAll refreshes the rating of every venue and returns how many were
// updated.
func (r *Repository) RecomputeAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, RecomputeAllQuery)
	if err != nil {
		return 0, fmt.Errorf("recompute ratings: %w", err)
	}
	return tag.RowsAffected(), nil
}
