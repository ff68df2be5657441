package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kevin6098/roomi-sub001/internal/domain"
)

// ListingRepository encapsulates listing persistence.
type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	Update(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	ListByItem(ctx context.Context, itemID string) ([]domain.Listing, error)
	List(ctx context.Context, limit, offset int) ([]domain.Listing, error)
}

type listingRepository struct {
	pool *pgxpool.Pool
}

// NewListingRepository instantiates repository.
func NewListingRepository(pool *pgxpool.Pool) ListingRepository {
	return &listingRepository{pool: pool}
}

func (r *listingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	const query = `
        INSERT INTO listings (item_id, platform, url, list_price, status, listed_at)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		listing.ItemID,
		listing.Platform,
		listing.URL,
		listing.ListPrice,
		listing.Status,
		listing.ListedAt,
	).Scan(&listing.ID, &listing.CreatedAt, &listing.UpdatedAt)
}

func (r *listingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	const query = `
        UPDATE listings SET platform=$1, url=$2, list_price=$3, status=$4, listed_at=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		listing.Platform,
		listing.URL,
		listing.ListPrice,
		listing.Status,
		listing.ListedAt,
		listing.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *listingRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM listings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *listingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	const query = `
        SELECT id, item_id, platform, url, list_price, status, listed_at, created_at, updated_at
        FROM listings WHERE id=$1`

	var listing domain.Listing
	if err := scanListing(r.pool.QueryRow(ctx, query, id), &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) ListByItem(ctx context.Context, itemID string) ([]domain.Listing, error) {
	const query = `
        SELECT id, item_id, platform, url, list_price, status, listed_at, created_at, updated_at
        FROM listings WHERE item_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectListings(rows)
}

func (r *listingRepository) List(ctx context.Context, limit, offset int) ([]domain.Listing, error) {
	if limit <= 0 {
		limit = 50
	}
	const query = `
        SELECT id, item_id, platform, url, list_price, status, listed_at, created_at, updated_at
        FROM listings ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectListings(rows)
}

func collectListings(rows pgx.Rows) ([]domain.Listing, error) {
	var listings []domain.Listing
	for rows.Next() {
		var listing domain.Listing
		if err := scanListing(rows, &listing); err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}

func scanListing(row pgx.Row, listing *domain.Listing) error {
	return row.Scan(
		&listing.ID,
		&listing.ItemID,
		&listing.Platform,
		&listing.URL,
		&listing.ListPrice,
		&listing.Status,
		&listing.ListedAt,
		&listing.CreatedAt,
		&listing.UpdatedAt,
	)
}
