package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kevin6098/roomi-sub001/internal/domain"
)

// RentalFilter captures rental listing parameters.
type RentalFilter struct {
	CustomerID  *string
	ItemID      *string
	Statuses    []domain.RentalStatus
	OverdueOnly bool
	Limit       int
	Offset      int
}

// RentalRepository encapsulates rental persistence.
type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	Update(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	ListWithFilter(ctx context.Context, filter RentalFilter) ([]domain.Rental, error)
}

type rentalRepository struct {
	pool *pgxpool.Pool
}

// NewRentalRepository instantiates repository.
func NewRentalRepository(pool *pgxpool.Pool) RentalRepository {
	return &rentalRepository{pool: pool}
}

const rentalColumns = `id, reference, item_id, customer_id, start_date, due_date, returned_at,
               price, deposit, status, notes, created_at, updated_at`

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	const query = `
        INSERT INTO rentals (reference, item_id, customer_id, start_date, due_date, price, deposit, status, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		rental.Reference,
		rental.ItemID,
		rental.CustomerID,
		rental.StartDate,
		rental.DueDate,
		rental.Price,
		rental.Deposit,
		rental.Status,
		rental.Notes,
	).Scan(&rental.ID, &rental.CreatedAt, &rental.UpdatedAt)
}

func (r *rentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	const query = `
        UPDATE rentals SET due_date=$1, returned_at=$2, price=$3, deposit=$4, status=$5, notes=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		rental.DueDate,
		rental.ReturnedAt,
		rental.Price,
		rental.Deposit,
		rental.Status,
		rental.Notes,
		rental.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	query := fmt.Sprintf(`SELECT %s FROM rentals WHERE id=$1`, rentalColumns)

	var rental domain.Rental
	if err := scanRental(r.pool.QueryRow(ctx, query, id), &rental); err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *rentalRepository) ListWithFilter(ctx context.Context, filter RentalFilter) ([]domain.Rental, error) {
	var (
		conditions []string
		args       []any
	)

	addArg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CustomerID != nil {
		conditions = append(conditions, "customer_id="+addArg(*filter.CustomerID))
	}
	if filter.ItemID != nil {
		conditions = append(conditions, "item_id="+addArg(*filter.ItemID))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			placeholders = append(placeholders, addArg(status))
		}
		conditions = append(conditions, "status IN ("+strings.Join(placeholders, ",")+")")
	}
	if filter.OverdueOnly {
		conditions = append(conditions, "status='ACTIVE' AND due_date < "+addArg(time.Now()))
	}

	query := fmt.Sprintf(`SELECT %s FROM rentals`, rentalColumns)
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

	var rentals []domain.Rental
	for rows.Next() {
		var rental domain.Rental
		if err := scanRental(rows, &rental); err != nil {
			return nil, err
		}
		rentals = append(rentals, rental)
	}
	return rentals, rows.Err()
}

func scanRental(row pgx.Row, rental *domain.Rental) error {
	return row.Scan(
		&rental.ID,
		&rental.Reference,
		&rental.ItemID,
		&rental.CustomerID,
		&rental.StartDate,
		&rental.DueDate,
		&rental.ReturnedAt,
		&rental.Price,
		&rental.Deposit,
		&rental.Status,
		&rental.Notes,
		&rental.CreatedAt,
		&rental.UpdatedAt,
	)
}
