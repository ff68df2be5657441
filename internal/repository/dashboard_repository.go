package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kevin6098/roomi-sub001/internal/domain"
)

// DashboardRepository runs the aggregation queries behind the reporting
// dashboard.
type DashboardRepository interface {
	ItemCountsByStatus(ctx context.Context) (map[domain.ItemStatus]int, error)
	RentalCounts(ctx context.Context, now time.Time) (active, overdue int, err error)
	RevenueSince(ctx context.Context, since time.Time) (rentalRevenue, saleRevenue int64, err error)
	NewContactCount(ctx context.Context) (int, error)
	RecentRentals(ctx context.Context, limit int) ([]domain.Rental, error)
	RecentSales(ctx context.Context, limit int) ([]domain.Sale, error)
}

type dashboardRepository struct {
	pool    *pgxpool.Pool
	rentals RentalRepository
	sales   SaleRepository
}

// NewDashboardRepository instantiates repository.
func NewDashboardRepository(pool *pgxpool.Pool) DashboardRepository {
	return &dashboardRepository{
		pool:    pool,
		rentals: NewRentalRepository(pool),
		sales:   NewSaleRepository(pool),
	}
}

func (r *dashboardRepository) ItemCountsByStatus(ctx context.Context) (map[domain.ItemStatus]int, error) {
	const query = `SELECT status, COUNT(*) FROM items GROUP BY status`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.ItemStatus]int)
	for rows.Next() {
		var status domain.ItemStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *dashboardRepository) RentalCounts(ctx context.Context, now time.Time) (int, int, error) {
	const query = `
        SELECT COUNT(*) FILTER (WHERE status='ACTIVE'),
               COUNT(*) FILTER (WHERE status='ACTIVE' AND due_date < $1)
        FROM rentals`

	var active, overdue int
	if err := r.pool.QueryRow(ctx, query, now).Scan(&active, &overdue); err != nil {
		return 0, 0, err
	}
	return active, overdue, nil
}

func (r *dashboardRepository) RevenueSince(ctx context.Context, since time.Time) (int64, int64, error) {
	const rentalQuery = `SELECT COALESCE(SUM(price), 0) FROM rentals WHERE created_at >= $1`
	const saleQuery = `SELECT COALESCE(SUM(price), 0) FROM sales WHERE sold_at >= $1`

	var rentalRevenue, saleRevenue int64
	if err := r.pool.QueryRow(ctx, rentalQuery, since).Scan(&rentalRevenue); err != nil {
		return 0, 0, err
	}
	if err := r.pool.QueryRow(ctx, saleQuery, since).Scan(&saleRevenue); err != nil {
		return 0, 0, err
	}
	return rentalRevenue, saleRevenue, nil
}

func (r *dashboardRepository) NewContactCount(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts WHERE status='NEW'`).Scan(&count)
	return count, err
}

func (r *dashboardRepository) RecentRentals(ctx context.Context, limit int) ([]domain.Rental, error) {
	return r.rentals.ListWithFilter(ctx, RentalFilter{Limit: limit})
}

func (r *dashboardRepository) RecentSales(ctx context.Context, limit int) ([]domain.Sale, error) {
	return r.sales.List(ctx, limit, 0)
}
