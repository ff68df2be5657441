package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kevin6098/roomi-sub001/internal/domain"
)

// SaleRepository encapsulates sale persistence.
type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	List(ctx context.Context, limit, offset int) ([]domain.Sale, error)
}

type saleRepository struct {
	pool *pgxpool.Pool
}

// NewSaleRepository instantiates repository.
func NewSaleRepository(pool *pgxpool.Pool) SaleRepository {
	return &saleRepository{pool: pool}
}

const saleColumns = `id, reference, item_id, customer_id, sold_at, price, channel, notes, created_at`

func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	const query = `
        INSERT INTO sales (reference, item_id, customer_id, sold_at, price, channel, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		sale.Reference,
		sale.ItemID,
		sale.CustomerID,
		sale.SoldAt,
		sale.Price,
		sale.Channel,
		sale.Notes,
	).Scan(&sale.ID, &sale.CreatedAt)
}

func (r *saleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	query := fmt.Sprintf(`SELECT %s FROM sales WHERE id=$1`, saleColumns)

	var sale domain.Sale
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&sale.ID,
		&sale.Reference,
		&sale.ItemID,
		&sale.CustomerID,
		&sale.SoldAt,
		&sale.Price,
		&sale.Channel,
		&sale.Notes,
		&sale.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) List(ctx context.Context, limit, offset int) ([]domain.Sale, error) {
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(`SELECT %s FROM sales ORDER BY sold_at DESC LIMIT $1 OFFSET $2`, saleColumns)

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(
			&sale.ID,
			&sale.Reference,
			&sale.ItemID,
			&sale.CustomerID,
			&sale.SoldAt,
			&sale.Price,
			&sale.Channel,
			&sale.Notes,
			&sale.CreatedAt,
		); err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}
