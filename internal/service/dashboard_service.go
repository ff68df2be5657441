package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/internal/repository"
)

const (
	dashboardCacheKey = "dashboard:summary"
	dashboardCacheTTL = 60 * time.Second
)

// DashboardService assembles the reporting summary, caching it briefly in
// Redis. A missing or unreachable cache degrades to direct queries.
type DashboardService struct {
	dashboard repository.DashboardRepository
	cache     *redis.Client
	logger    *zap.Logger
}

// NewDashboardService constructs the service. cache may be nil.
func NewDashboardService(dashboard repository.DashboardRepository, cache *redis.Client, logger *zap.Logger) *DashboardService {
	return &DashboardService{dashboard: dashboard, cache: cache, logger: logger}
}

// Summary returns the aggregated dashboard view.
func (s *DashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	itemCounts, err := s.dashboard.ItemCountsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	active, overdue, err := s.dashboard.RentalCounts(ctx, now)
	if err != nil {
		return nil, err
	}
	rentalRevenue, saleRevenue, err := s.dashboard.RevenueSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	newContacts, err := s.dashboard.NewContactCount(ctx)
	if err != nil {
		return nil, err
	}
	recentRentals, err := s.dashboard.RecentRentals(ctx, 5)
	if err != nil {
		return nil, err
	}
	recentSales, err := s.dashboard.RecentSales(ctx, 5)
	if err != nil {
		return nil, err
	}

	summary := &domain.DashboardSummary{
		ItemCounts:         itemCounts,
		ActiveRentals:      active,
		OverdueRentals:     overdue,
		RentalRevenueMonth: rentalRevenue,
		SaleRevenueMonth:   saleRevenue,
		NewContacts:        newContacts,
		RecentRentals:      recentRentals,
		RecentSales:        recentSales,
		GeneratedAt:        now,
	}
	s.toCache(ctx, summary)
	return summary, nil
}

// Invalidate drops the cached summary after a write that changes it.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, dashboardCacheKey).Err(); err != nil {
		s.logger.Debug("dashboard cache invalidate failed", zap.Error(err))
	}
}

func (s *DashboardService) fromCache(ctx context.Context) *domain.DashboardSummary {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var summary domain.DashboardSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil
	}
	return &summary
}

func (s *DashboardService) toCache(ctx context.Context, summary *domain.DashboardSummary) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, dashboardCacheKey, raw, dashboardCacheTTL).Err(); err != nil {
		s.logger.Debug("dashboard cache write failed", zap.Error(err))
	}
}
