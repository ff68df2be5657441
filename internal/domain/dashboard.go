package domain

import "time"

// DashboardSummary is the aggregated view behind the reporting dashboard.
type DashboardSummary struct {
	ItemCounts         map[ItemStatus]int `json:"item_counts"`
	ActiveRentals      int                `json:"active_rentals"`
	OverdueRentals     int                `json:"overdue_rentals"`
	RentalRevenueMonth int64              `json:"rental_revenue_month"`
	SaleRevenueMonth   int64              `json:"sale_revenue_month"`
	NewContacts        int                `json:"new_contacts"`
	RecentRentals      []Rental           `json:"recent_rentals"`
	RecentSales        []Sale             `json:"recent_sales"`
	GeneratedAt        time.Time          `json:"generated_at"`
}
