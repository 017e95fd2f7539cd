// Package repo contains all database access logic for the Lakbay Region 8 site.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/nightowldevx/lakbayregion8/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SearchParams narrows a store-side search. Query must already be sanitized;
// empty fields are not applied.
type SearchParams struct {
	Query    string
	Province domain.Province
	Category domain.Category
}

// DestinationRepo defines the read operations for destinations and their images.
// The service layer depends on this interface, not the Postgres implementation.
type DestinationRepo interface {
	// ListAll returns every destination ordered by name, images by sort_order.
	ListAll(ctx context.Context) ([]domain.Destination, error)

	// GetBySlug returns one destination with its images.
	// Returns domain.ErrNotFound if no destination has that slug.
	GetBySlug(ctx context.Context, slug string) (domain.Destination, error)

	// ListByProvince returns up to limit destinations in province, skipping
	// excludeSlug, ordered by name.
	ListByProvince(ctx context.Context, province domain.Province, excludeSlug string, limit int) ([]domain.Destination, error)

	// Search returns destinations whose name contains p.Query
	// case-insensitively and that match the optional province and category.
	Search(ctx context.Context, p SearchParams) ([]domain.Destination, error)
}

// pgDestinationRepo is the Postgres implementation of DestinationRepo.
type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

// selectJoined is prefixed to every query. The destination subquery d is
// supplied by the caller so that LIMIT applies to destinations, not to
// joined image rows.
const selectJoined = `
	SELECT d.id, d.name, d.slug, d.province, d.category, d.description,
	       d.entrance_fee, d.hours, d.latitude, d.longitude,
	       d.google_maps_link, d.travel_tips, d.created_at,
	       i.id, i.image_url, i.is_hero, i.sort_order, i.alt_text, i.created_at
	FROM `

// ListAll returns the full collection.
func (r *pgDestinationRepo) ListAll(ctx context.Context) ([]domain.Destination, error) {
	const q = selectJoined + `destinations d
		LEFT JOIN destination_images i ON i.destination_id = d.id
		ORDER BY d.name, d.id, i.sort_order, i.created_at`

	dests, err := r.queryJoined(ctx, q, pgx.NamedArgs{})
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.ListAll: %w", err)
	}
	return dests, nil
}

// GetBySlug retrieves a destination by its unique slug.
func (r *pgDestinationRepo) GetBySlug(ctx context.Context, slug string) (domain.Destination, error) {
	const q = selectJoined + `destinations d
		LEFT JOIN destination_images i ON i.destination_id = d.id
		WHERE d.slug = @slug
		ORDER BY i.sort_order, i.created_at`

	dests, err := r.queryJoined(ctx, q, pgx.NamedArgs{"slug": slug})
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetBySlug: %w", err)
	}
	if len(dests) == 0 {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetBySlug: %w", domain.ErrNotFound)
	}
	return dests[0], nil
}

// ListByProvince returns same-province destinations for the "related" strip.
func (r *pgDestinationRepo) ListByProvince(ctx context.Context, province domain.Province, excludeSlug string, limit int) ([]domain.Destination, error) {
	const q = selectJoined + `(
			SELECT * FROM destinations
			WHERE province = @province AND slug <> @exclude
			ORDER BY name
			LIMIT @limit
		) d
		LEFT JOIN destination_images i ON i.destination_id = d.id
		ORDER BY d.name, d.id, i.sort_order, i.created_at`

	args := pgx.NamedArgs{
		"province": string(province),
		"exclude":  excludeSlug,
		"limit":    limit,
	}
	dests, err := r.queryJoined(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.ListByProvince: %w", err)
	}
	return dests, nil
}

// Search runs a name ILIKE search with optional exact province/category.
// LIKE metacharacters in the query are escaped so they match literally.
func (r *pgDestinationRepo) Search(ctx context.Context, p SearchParams) ([]domain.Destination, error) {
	const q = selectJoined + `destinations d
		LEFT JOIN destination_images i ON i.destination_id = d.id
		WHERE (@query = '' OR d.name ILIKE '%' || @query || '%')
		  AND (@province = '' OR d.province = @province)
		  AND (@category = '' OR d.category = @category)
		ORDER BY d.name, d.id, i.sort_order, i.created_at`

	args := pgx.NamedArgs{
		"query":    escapeLike(p.Query),
		"province": string(p.Province),
		"category": string(p.Category),
	}
	dests, err := r.queryJoined(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.Search: %w", err)
	}
	return dests, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes ILIKE wildcards using the default backslash escape.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// queryJoined runs a destinations-LEFT-JOIN-images query and folds the rows
// into destinations. Rows for the same destination must be adjacent.
func (r *pgDestinationRepo) queryJoined(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Destination, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dests := []domain.Destination{}
	for rows.Next() {
		d, img, err := scanJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		if n := len(dests); n == 0 || dests[n-1].ID != d.ID {
			d.Images = []domain.Image{}
			dests = append(dests, d)
		}
		if img != nil {
			last := &dests[len(dests)-1]
			last.Images = append(last.Images, *img)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return dests, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanJoined maps one joined row. The image is nil when the destination has
// no images (all image columns NULL from the LEFT JOIN).
func scanJoined(s scanner) (domain.Destination, *domain.Image, error) {
	var (
		d        domain.Destination
		id       pgtype.UUID
		province string
		category string
		lat      pgtype.Float8
		lng      pgtype.Float8

		imgID      pgtype.UUID
		imgURL     pgtype.Text
		imgHero    pgtype.Bool
		imgOrder   pgtype.Int4
		imgAlt     pgtype.Text
		imgCreated pgtype.Timestamptz
	)

	err := s.Scan(
		&id, &d.Name, &d.Slug, &province, &category, &d.Description,
		&d.EntranceFee, &d.Hours, &lat, &lng,
		&d.GoogleMapsLink, &d.TravelTips, &d.CreatedAt,
		&imgID, &imgURL, &imgHero, &imgOrder, &imgAlt, &imgCreated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Destination{}, nil, domain.ErrNotFound
		}
		return domain.Destination{}, nil, err
	}

	d.ID = uuid.UUID(id.Bytes)
	d.Province = domain.Province(province)
	d.Category = domain.Category(category)
	if lat.Valid {
		v := lat.Float64
		d.Latitude = &v
	}
	if lng.Valid {
		v := lng.Float64
		d.Longitude = &v
	}

	if !imgID.Valid {
		return d, nil, nil
	}
	img := &domain.Image{
		ID:            uuid.UUID(imgID.Bytes),
		DestinationID: d.ID,
		URL:           imgURL.String,
		IsHero:        imgHero.Bool,
		SortOrder:     int(imgOrder.Int32),
		AltText:       imgAlt.String,
		CreatedAt:     timeOrZero(imgCreated),
	}
	return d, img, nil
}

func timeOrZero(ts pgtype.Timestamptz) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	return ts.Time
}
