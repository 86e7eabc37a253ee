package venues

import (
	"context"
	"fmt"

	"gymspot/internal/dbx"

	"github.com/jackc/pgx/v5"
)

// ToggleFavorite removes the (user, venue) pair when present and adds it
// otherwise. It returns true when the venue is a favorite afterwards.
func (r *Repository) ToggleFavorite(ctx context.Context, userID, venueID int64) (bool, error) {
	var favorited bool

	err := dbx.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`DELETE FROM favorite_venues WHERE user_id = $1 AND venue_id = $2`,
			userID, venueID,
		)
		if err != nil {
			return fmt.Errorf("failed to remove favorite: %w", err)
		}
		if tag.RowsAffected() > 0 {
			favorited = false
			return nil
		}

		tag, err = tx.Exec(ctx, `
			INSERT INTO favorite_venues (user_id, venue_id)
			SELECT $1, v.id FROM venues v WHERE v.id = $2
			ON CONFLICT DO NOTHING
		`, userID, venueID)
		if err != nil {
			return fmt.Errorf("failed to add favorite: %w", err)
		}
		if tag.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM venues WHERE id = $1)`, venueID).Scan(&exists); err != nil {
				return fmt.Errorf("check venue: %w", err)
			}
			if !exists {
				return ErrVenueNotFound
			}
		}
		favorited = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return favorited, nil
}

// ListFavorites returns the venues a user has favorited, most recent first.
func (r *Repository) ListFavorites(ctx context.Context, userID int64) ([]Listing, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+listingColumns+`
		FROM venues v
		JOIN favorite_venues f ON v.id = f.venue_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}
	return scanListings(rows)
}

// FavoriteIDs returns the venue IDs a user has favorited.
func (r *Repository) FavoriteIDs(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	rows, err := r.db.Query(ctx, `SELECT venue_id FROM favorite_venues WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

// FavoritedBy lists the users who favorited a venue.
func (r *Repository) FavoritedBy(ctx context.Context, venueID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id FROM favorite_venues WHERE venue_id = $1`, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get favoriting users: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
