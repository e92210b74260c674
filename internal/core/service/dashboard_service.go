package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

const topMedicationsLimit = 4
const recentOrdersLimit = 3

// DashboardService aggregates the admin dashboard snapshot. A cached copy is
// preferred; cache failures fall back to recomputing rather than erroring.
type DashboardService struct {
	repo  ports.DashboardRepository
	cache ports.StatsCache
	log   zerolog.Logger
}

func NewDashboardService(repo ports.DashboardRepository, cache ports.StatsCache, log zerolog.Logger) *DashboardService {
	return &DashboardService{repo: repo, cache: cache, log: log}
}

// Stats returns the dashboard snapshot and whether it came from cache.
func (s *DashboardService) Stats(ctx context.Context) (*ports.DashboardStats, bool, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("stats cache read failed, recomputing")
		} else if ok {
			return cached, true, nil
		}
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, false, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.log.Warn().Err(err).Msg("stats cache write failed")
		}
	}

	return stats, false, nil
}

func (s *DashboardService) compute(ctx context.Context) (*ports.DashboardStats, error) {
	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	users, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.CountOrders(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.repo.CountPendingOrders(ctx)
	if err != nil {
		return nil, err
	}
	prescriptions, err := s.repo.CountPrescriptions(ctx)
	if err != nil {
		return nil, err
	}
	filled, err := s.repo.CountCompletedPrescriptions(ctx)
	if err != nil {
		return nil, err
	}
	addresses, err := s.repo.CountAddresses(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.repo.SalesSince(ctx, midnight)
	if err != nil {
		return nil, err
	}
	topMeds, err := s.repo.TopMedications(ctx, topMedicationsLimit)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.RecentOrders(ctx, recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{
		TotalUsers:          users,
		TotalOrders:         orders,
		TotalPrescriptions:  prescriptions,
		TotalAddresses:      addresses,
		TodaysSales:         sales,
		PrescriptionsFilled: filled,
		PendingOrders:       pending,
		TopMedications:      topMeds,
		RecentOrders:        recent,
		GeneratedAt:         now,
	}, nil
}
