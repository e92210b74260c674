package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

type stubDashboardRepo struct {
	computed int
}

func (s *stubDashboardRepo) CountUsers(ctx context.Context) (int64, error) {
	s.computed++
	return 12, nil
}

func (s *stubDashboardRepo) CountOrders(ctx context.Context) (int64, error) { return 40, nil }

func (s *stubDashboardRepo) CountPendingOrders(ctx context.Context) (int64, error) { return 3, nil }

func (s *stubDashboardRepo) CountPrescriptions(ctx context.Context) (int64, error) { return 20, nil }

func (s *stubDashboardRepo) CountCompletedPrescriptions(ctx context.Context) (int64, error) {
	return 15, nil
}

func (s *stubDashboardRepo) CountAddresses(ctx context.Context) (int64, error) { return 9, nil }

func (s *stubDashboardRepo) SalesSince(ctx context.Context, from time.Time) (float64, error) {
	return 123.45, nil
}

func (s *stubDashboardRepo) TopMedications(ctx context.Context, limit int) ([]ports.MedicationCount, error) {
	if limit != topMedicationsLimit {
		return nil, errors.New("unexpected limit")
	}
	return []ports.MedicationCount{{Name: "Aspirin", Count: 7}}, nil
}

func (s *stubDashboardRepo) RecentOrders(ctx context.Context, limit int) ([]ports.RecentOrder, error) {
	if limit != recentOrdersLimit {
		return nil, errors.New("unexpected limit")
	}
	return []ports.RecentOrder{{ID: "order-1", OrderNumber: "Order #ABCDE"}}, nil
}

type stubStatsCache struct {
	stored  *ports.DashboardStats
	getErr  error
	setErr  error
	setHits int
}

func (s *stubStatsCache) Get(ctx context.Context) (*ports.DashboardStats, bool, error) {
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	if s.stored == nil {
		return nil, false, nil
	}
	return s.stored, true, nil
}

func (s *stubStatsCache) Set(ctx context.Context, stats *ports.DashboardStats) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.stored = stats
	s.setHits++
	return nil
}

func TestDashboardService_Stats_CacheMissComputesAndStores(t *testing.T) {
	repo := &stubDashboardRepo{}
	cache := &stubStatsCache{}
	svc := NewDashboardService(repo, cache, zerolog.Nop())

	stats, fromCache, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats error: %v", err)
	}
	if fromCache {
		t.Fatalf("first call must not come from cache")
	}
	if stats.TotalUsers != 12 || stats.PendingOrders != 3 || stats.TodaysSales != 123.45 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(stats.TopMedications) != 1 || stats.TopMedications[0].Name != "Aspirin" {
		t.Fatalf("unexpected top medications: %+v", stats.TopMedications)
	}
	if cache.setHits != 1 {
		t.Fatalf("snapshot not cached")
	}
}

func TestDashboardService_Stats_CacheHitSkipsRepo(t *testing.T) {
	repo := &stubDashboardRepo{}
	cache := &stubStatsCache{stored: &ports.DashboardStats{TotalUsers: 99}}
	svc := NewDashboardService(repo, cache, zerolog.Nop())

	stats, fromCache, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats error: %v", err)
	}
	if !fromCache {
		t.Fatalf("expected cache hit")
	}
	if stats.TotalUsers != 99 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if repo.computed != 0 {
		t.Fatalf("repo queried on cache hit")
	}
}

func TestDashboardService_Stats_CacheReadFailureFallsBack(t *testing.T) {
	repo := &stubDashboardRepo{}
	cache := &stubStatsCache{getErr: errors.New("redis down")}
	svc := NewDashboardService(repo, cache, zerolog.Nop())

	stats, fromCache, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if fromCache {
		t.Fatalf("degraded cache cannot produce a hit")
	}
	if stats.TotalUsers != 12 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestDashboardService_Stats_CacheWriteFailureIsNonFatal(t *testing.T) {
	repo := &stubDashboardRepo{}
	cache := &stubStatsCache{setErr: errors.New("redis down")}
	svc := NewDashboardService(repo, cache, zerolog.Nop())

	if _, _, err := svc.Stats(context.Background()); err != nil {
		t.Fatalf("cache write failure must not fail the request: %v", err)
	}
}

func TestDashboardService_Stats_NilCache(t *testing.T) {
	repo := &stubDashboardRepo{}
	svc := NewDashboardService(repo, nil, zerolog.Nop())

	stats, fromCache, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats error: %v", err)
	}
	if fromCache {
		t.Fatalf("no cache, no hit")
	}
	if stats.GeneratedAt.IsZero() {
		t.Fatalf("generated_at not set")
	}
}
