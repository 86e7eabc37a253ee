package venues

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gymspot/internal/dbx"
	"gymspot/internal/slug"

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

const venueColumns = `
	v.id, v.kind, v.owner_id, v.name, v.slug, v.description, v.address, v.city,
	v.city_slug, v.postal_code, v.latitude, v.longitude, v.phone, v.website,
	v.rating, v.price_tier, v.facilities, v.image_urls, v.status, v.verified,
	v.view_count, v.created_at, v.updated_at`

func scanVenue(row pgx.Row) (*Venue, error) {
	var v Venue
	err := row.Scan(
		&v.ID, &v.Kind, &v.OwnerID, &v.Name, &v.Slug, &v.Description, &v.Address, &v.City,
		&v.CitySlug, &v.PostalCode, &v.Latitude, &v.Longitude, &v.Phone, &v.Website,
		&v.Rating, &v.PriceTier, &v.Facilities, &v.ImageURLs, &v.Status, &v.Verified,
		&v.ViewCount, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// Create inserts a venue. Slug and city slug are derived from name and city;
// facilities and images are stored in the given order.
func (r *Repository) Create(ctx context.Context, v *Venue) error {
	v.Slug = slug.Make(v.Name)
	v.CitySlug = slug.Make(v.City)
	if v.Facilities == nil {
		v.Facilities = []string{}
	}
	if v.ImageURLs == nil {
		v.ImageURLs = []string{}
	}
	if v.Status == "" {
		v.Status = StatusPendingApproval
	}
	if v.PriceTier == "" {
		v.PriceTier = PriceMedium
	}

	const query = `
	INSERT INTO venues (
		kind, owner_id, name, slug, description, address, city, city_slug,
		postal_code, latitude, longitude, phone, website, price_tier,
		facilities, image_urls, status, verified
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
	)
	RETURNING id, rating, view_count, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		v.Kind, v.OwnerID, v.Name, v.Slug, v.Description, v.Address, v.City, v.CitySlug,
		v.PostalCode, v.Latitude, v.Longitude, v.Phone, v.Website, v.PriceTier,
		v.Facilities, v.ImageURLs, v.Status, v.Verified,
	).Scan(&v.ID, &v.Rating, &v.ViewCount, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSlug
		}
		return fmt.Errorf("insert venue: %w", err)
	}
	return nil
}

// GetByID retrieves a venue by its ID.
func (r *Repository) GetByID(ctx context.Context, venueID int64) (*Venue, error) {
	query := `SELECT` + venueColumns + ` FROM venues v WHERE v.id = $1`

	v, err := scanVenue(r.db.QueryRow(ctx, query, venueID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("get venue: %w", err)
	}
	return v, nil
}

// GetBySlug resolves the public /{citySlug}/{slug} path.
func (r *Repository) GetBySlug(ctx context.Context, citySlug, venueSlug string) (*Venue, error) {
	query := `SELECT` + venueColumns + ` FROM venues v WHERE v.city_slug = $1 AND v.slug = $2`

	v, err := scanVenue(r.db.QueryRow(ctx, query, citySlug, venueSlug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("get venue by slug: %w", err)
	}
	return v, nil
}

// Update applies a partial update. Only whitelisted keys are accepted.
func (r *Repository) Update(ctx context.Context, venueID int64, updateData map[string]interface{}) error {
	if len(updateData) == 0 {
		return nil
	}

	var (
		sets       []string
		args       []interface{}
		argCounter = 1
	)

	set := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argCounter))
		args = append(args, value)
		argCounter++
	}

	for key, value := range updateData {
		switch key {
		case "name":
			name, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid name")
			}
			set("name", name)
			set("slug", slug.Make(name))
		case "city":
			city, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid city")
			}
			set("city", city)
			set("city_slug", slug.Make(city))
		case "description", "address", "postal_code", "phone", "website":
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid %s", key)
			}
			set(key, s)
		case "latitude", "longitude":
			f, ok := value.(float64)
			if !ok {
				return fmt.Errorf("invalid %s", key)
			}
			set(key, f)
		case "price_tier":
			s, _ := value.(string)
			if !PriceTier(s).Valid() {
				return fmt.Errorf("invalid price_tier")
			}
			set("price_tier", s)
		case "facilities":
			facilities, err := toStrings(value)
			if err != nil {
				return fmt.Errorf("invalid facilities: %w", err)
			}
			set("facilities", facilities)
		default:
			return fmt.Errorf("unsupported field: %s", key)
		}
	}

	query := "UPDATE venues SET " + strings.Join(sets, ", ") +
		fmt.Sprintf(", updated_at = NOW() WHERE id = $%d", argCounter)
	args = append(args, venueID)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSlug
		}
		return fmt.Errorf("failed to update venue: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrVenueNotFound
	}
	return nil
}

func toStrings(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("non-string item %v", item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected an array of strings")
}

func (r *Repository) UpdateStatus(ctx context.Context, venueID int64, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("invalid status %q", status)
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE venues SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, venueID,
	)
	if err != nil {
		return fmt.Errorf("update venue status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrVenueNotFound
	}
	return nil
}

// Delete removes the venue; reviews, promotions and favorites cascade.
func (r *Repository) Delete(ctx context.Context, venueID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM venues WHERE id = $1`, venueID)
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrVenueNotFound
	}
	return nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID int64) ([]Venue, error) {
	query := `SELECT` + venueColumns + ` FROM venues v WHERE v.owner_id = $1 ORDER BY v.created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list owner venues: %w", err)
	}
	defer rows.Close()

	var out []Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venue row: %w", err)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows venues: %w", err)
	}
	return out, nil
}

// IncrementViews bumps the view counter in a single statement.
func (r *Repository) IncrementViews(ctx context.Context, venueID int64) error {
	_, err := r.db.Exec(ctx, `UPDATE venues SET view_count = view_count + 1 WHERE id = $1`, venueID)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

// AddPhotoURL appends a photo URL to a venue's image_urls array
func (r *Repository) AddPhotoURL(ctx context.Context, venueID int64, photoURL string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE venues SET image_urls = array_append(image_urls, $1), updated_at = NOW() WHERE id = $2`,
		photoURL, venueID,
	)
	if err != nil {
		return fmt.Errorf("failed to add photo URL: %w", err)
	}
	return nil
}

// RemovePhotoURL removes a specific photo URL from a venue's image_urls array
func (r *Repository) RemovePhotoURL(ctx context.Context, venueID int64, photoURL string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE venues SET image_urls = array_remove(image_urls, $1), updated_at = NOW() WHERE id = $2`,
		photoURL, venueID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove photo URL: %w", err)
	}
	return nil
}

const listingColumns = `
	v.id, v.kind, v.name, v.slug, v.description, v.address, v.city, v.city_slug,
	v.image_urls, v.rating, v.price_tier, v.facilities, v.status,
	(SELECT COUNT(*) FROM reviews r WHERE r.venue_id = v.id AND r.status = 'PUBLISHED') AS review_count`

func scanListings(rows pgx.Rows) ([]Listing, error) {
	defer rows.Close()

	out := []Listing{}
	for rows.Next() {
		var l Listing
		if err := rows.Scan(
			&l.ID, &l.Kind, &l.Name, &l.Slug, &l.Description, &l.Address, &l.City, &l.CitySlug,
			&l.ImageURLs, &l.Rating, &l.PriceTier, &l.Facilities, &l.Status,
			&l.ReviewCount,
		); err != nil {
			return nil, fmt.Errorf("scan listing row: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows listings: %w", err)
	}
	return out, nil
}

// FindListings returns one page of venues matching p plus the total number of
// matches. Rows are ordered by rating, best first, then name.
func (r *Repository) FindListings(ctx context.Context, p Predicate, limit, offset int) ([]Listing, int, error) {
	where, args := p.Where()

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM venues v WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count venues: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM venues v WHERE %s ORDER BY v.rating DESC, v.name ASC LIMIT $%d OFFSET $%d`,
		listingColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("find listings: %w", err)
	}
	listings, err := scanListings(rows)
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

// Suggest returns active venues whose name or city starts with prefix, for
// search-bar autocomplete.
func (r *Repository) Suggest(ctx context.Context, prefix string, limit int) ([]Suggestion, error) {
	q := strings.TrimSpace(prefix)
	if q == "" {
		return []Suggestion{}, nil
	}

	rows, err := r.db.Query(ctx, `
	SELECT v.kind, v.name, v.city, v.slug, v.city_slug
	FROM venues v
	WHERE v.status = 'ACTIVE'
	  AND (v.name ILIKE $1 || '%' OR v.city ILIKE $1 || '%')
	ORDER BY v.rating DESC, v.name
	LIMIT $2
	`, escapeLike(q), limit)
	if err != nil {
		return nil, fmt.Errorf("suggest venues: %w", err)
	}
	defer rows.Close()

	out := []Suggestion{}
	for rows.Next() {
		var s Suggestion
		if err := rows.Scan(&s.Kind, &s.Name, &s.City, &s.Slug, &s.CitySlug); err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repository) AdminList(ctx context.Context, filter AdminFilter) (*AdminListResult, error) {
	p := Predicate{}
	if filter.Status != nil {
		p.Status = *filter.Status
	}
	if filter.Kind != nil {
		p.Kind = *filter.Kind
	}
	where, args := p.Where()

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM venues v WHERE `+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count venues: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM venues v WHERE %s ORDER BY v.created_at DESC LIMIT $%d OFFSET $%d`,
		listingColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.Pagination.Limit, filter.Pagination.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	listings, err := scanListings(rows)
	if err != nil {
		return nil, err
	}
	return &AdminListResult{Venues: listings, Total: total}, nil
}

func (r *Repository) OwnerStats(ctx context.Context, venueID int64) (*OwnerStats, error) {
	s := OwnerStats{VenueID: venueID}
	err := r.db.QueryRow(ctx, `
	SELECT
		v.view_count,
		(SELECT COUNT(*) FROM reviews r WHERE r.venue_id = v.id AND r.status <> 'DELETED'),
		(SELECT COALESCE(AVG(r.rating), 0) FROM reviews r WHERE r.venue_id = v.id AND r.status <> 'DELETED'),
		(SELECT COUNT(*) FROM favorite_venues f WHERE f.venue_id = v.id),
		(SELECT COUNT(*) FROM promotions p WHERE p.venue_id = v.id),
		(SELECT COALESCE(SUM(p.redemption_count), 0) FROM promotions p WHERE p.venue_id = v.id)
	FROM venues v
	WHERE v.id = $1
	`, venueID).Scan(&s.Views, &s.Reviews, &s.AverageRating, &s.Favorites, &s.Promotions, &s.Redemptions)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("owner stats: %w", err)
	}
	return &s, nil
}
