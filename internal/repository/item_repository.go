package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kevin6098/roomi-sub001/internal/domain"
)

// ItemFilter captures item listing parameters.
type ItemFilter struct {
	CategoryID *string
	Statuses   []domain.ItemStatus
	SearchTerm *string
	Limit      int
	Offset     int
}

// ItemRepository encapsulates item persistence.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	GetBySKU(ctx context.Context, sku string) (*domain.Item, error)
	ListWithFilter(ctx context.Context, filter ItemFilter) ([]domain.Item, error)
}

type itemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository instantiates repository.
func NewItemRepository(pool *pgxpool.Pool) ItemRepository {
	return &itemRepository{pool: pool}
}

const itemColumns = `id, category_id, sku, name_en, name_ja, condition, acquisition_cost,
               rental_price, sale_price, status, notes, created_at, updated_at`

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	const query = `
        INSERT INTO items (category_id, sku, name_en, name_ja, condition, acquisition_cost, rental_price, sale_price, status, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		item.CategoryID,
		item.SKU,
		item.NameEN,
		item.NameJA,
		item.Condition,
		item.AcquisitionCost,
		item.RentalPrice,
		item.SalePrice,
		item.Status,
		item.Notes,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *itemRepository) Update(ctx context.Context, item *domain.Item) error {
	const query = `
        UPDATE items SET category_id=$1, sku=$2, name_en=$3, name_ja=$4, condition=$5,
            acquisition_cost=$6, rental_price=$7, sale_price=$8, status=$9, notes=$10, updated_at=NOW()
        WHERE id=$11`
	cmd, err := r.pool.Exec(ctx, query,
		item.CategoryID,
		item.SKU,
		item.NameEN,
		item.NameJA,
		item.Condition,
		item.AcquisitionCost,
		item.RentalPrice,
		item.SalePrice,
		item.Status,
		item.Notes,
		item.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM items WHERE id=$1`, itemColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *itemRepository) GetBySKU(ctx context.Context, sku string) (*domain.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM items WHERE sku=$1`, itemColumns)
	return r.fetchSingle(ctx, query, sku)
}

func (r *itemRepository) ListWithFilter(ctx context.Context, filter ItemFilter) ([]domain.Item, error) {
	var (
		conditions []string
		args       []any
	)

	addArg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CategoryID != nil {
		conditions = append(conditions, "category_id="+addArg(*filter.CategoryID))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			placeholders = append(placeholders, addArg(status))
		}
		conditions = append(conditions, "status IN ("+strings.Join(placeholders, ",")+")")
	}
	if filter.SearchTerm != nil && *filter.SearchTerm != "" {
		term := addArg("%" + *filter.SearchTerm + "%")
		conditions = append(conditions, fmt.Sprintf("(name_en ILIKE %s OR name_ja ILIKE %s OR sku ILIKE %s)", term, term, term))
	}

	query := fmt.Sprintf(`SELECT %s FROM items`, itemColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += " LIMIT " + addArg(limit)
	if filter.Offset > 0 {
		query += " OFFSET " + addArg(filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := scanItem(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *itemRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Item, error) {
	var item domain.Item
	if err := scanItem(r.pool.QueryRow(ctx, query, arg), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func scanItem(row pgx.Row, item *domain.Item) error {
	return row.Scan(
		&item.ID,
		&item.CategoryID,
		&item.SKU,
		&item.NameEN,
		&item.NameJA,
		&item.Condition,
		&item.AcquisitionCost,
		&item.RentalPrice,
		&item.SalePrice,
		&item.Status,
		&item.Notes,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}
