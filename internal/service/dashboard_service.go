package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rwedu/schoolverify-backend/internal/cache"
	"github.com/rwedu/schoolverify-backend/internal/config"
	"github.com/rwedu/schoolverify-backend/internal/model"
	"github.com/rwedu/schoolverify-backend/internal/registry"
)

// DashboardData consolidates the overview page.
type DashboardData struct {
	Stats         model.Stats        `json:"stats"`
	TopDistricts  []model.ChartPoint `json:"top_districts"`
	RecentSchools []model.School     `json:"recent_schools"`
}

// DashboardService builds the overview from the catalog.
type DashboardService struct {
	catalog *registry.Catalog
	store   cache.Store
	top     int
	recent  int
	log     zerolog.Logger
}

func NewDashboardService(cfg *config.Config, catalog *registry.Catalog, store cache.Store, log zerolog.Logger) *DashboardService {
	return &DashboardService{
		catalog: catalog,
		store:   store,
		top:     cfg.TopDistricts,
		recent:  cfg.RecentSchools,
		log:     log.With().Str("component", "dashboard_service").Logger(),
	}
}

// GetDashboard returns the overview, from the snapshot cache when warm.
// Cache failures are logged and the view is recomputed.
func (s *DashboardService) GetDashboard(ctx context.Context) *DashboardData {
	key := config.CacheKey.DashboardKey(s.catalog.Version(), s.top, s.recent)

	var cached DashboardData
	hit, err := s.store.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn().Err(err).Msg("Dashboard cache read failed")
	}
	if hit {
		return &cached
	}

	data := s.build()
	if err := s.store.Set(ctx, key, data); err != nil {
		s.log.Warn().Err(err).Msg("Dashboard cache write failed")
	}
	return data
}

// Prewarm stores the dashboard snapshot so the first request is a hit.
func (s *DashboardService) Prewarm(ctx context.Context) error {
	key := config.CacheKey.DashboardKey(s.catalog.Version(), s.top, s.recent)
	return s.store.Set(ctx, key, s.build())
}

func (s *DashboardService) build() *DashboardData {
	schools := s.catalog.All()
	stats := registry.ComputeStats(schools)
	return &DashboardData{
		Stats:         stats,
		TopDistricts:  registry.TopCounts(stats.ByDistrict, s.top),
		RecentSchools: registry.RecentlyUpdated(schools, s.recent),
	}
}
