package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rwedu/schoolverify-backend/internal/cache"
	"github.com/rwedu/schoolverify-backend/internal/config"
	"github.com/rwedu/schoolverify-backend/internal/model"
	"github.com/rwedu/schoolverify-backend/internal/registry"
)

// AnalyticsData backs the analytics page.
type AnalyticsData struct {
	Stats                  model.Stats `json:"stats"`
	DistrictsCovered       int         `json:"districts_covered"`
	EducationLevelsTracked int         `json:"education_levels_tracked"`
	// PublicShare is the rounded percentage of public schools.
	PublicShare           int                `json:"public_share"`
	VerificationBreakdown []model.ChartPoint `json:"verification_breakdown"`
	EducationLevels       []model.ChartPoint `json:"education_levels"`
	Provinces             []model.ChartPoint `json:"provinces"`
	TopDistricts          []model.ChartPoint `json:"top_districts"`
}

type AnalyticsService struct {
	catalog *registry.Catalog
	store   cache.Store
	top     int
	log     zerolog.Logger
}

func NewAnalyticsService(cfg *config.Config, catalog *registry.Catalog, store cache.Store, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{
		catalog: catalog,
		store:   store,
		top:     cfg.TopDistricts,
		log:     log.With().Str("component", "analytics_service").Logger(),
	}
}

// GetAnalytics returns the analytics view, from the snapshot cache when warm.
func (s *AnalyticsService) GetAnalytics(ctx context.Context) *AnalyticsData {
	key := config.CacheKey.AnalyticsKey(s.catalog.Version())

	var cached AnalyticsData
	hit, err := s.store.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn().Err(err).Msg("Analytics cache read failed")
	}
	if hit {
		return &cached
	}

	data := s.build()
	if err := s.store.Set(ctx, key, data); err != nil {
		s.log.Warn().Err(err).Msg("Analytics cache write failed")
	}
	return data
}

func (s *AnalyticsService) Prewarm(ctx context.Context) error {
	return s.store.Set(ctx, config.CacheKey.AnalyticsKey(s.catalog.Version()), s.build())
}

func (s *AnalyticsService) build() *AnalyticsData {
	stats := registry.ComputeStats(s.catalog.All())

	// Chart labels drop the " Province" and " City" suffixes.
	provinces := make(map[string]int, len(stats.ByProvince))
	for name, n := range stats.ByProvince {
		provinces[registry.ShortProvinceName(name)] += n
	}

	return &AnalyticsData{
		Stats:                  stats,
		DistrictsCovered:       len(stats.ByDistrict),
		PublicShare:            registry.Percentage(stats.PublicSchools, stats.Total),
		EducationLevelsTracked: len(stats.ByEducationLevel),
		VerificationBreakdown: []model.ChartPoint{
			{Name: string(model.StatusVerified), Value: stats.Verified},
			{Name: string(model.StatusPending), Value: stats.Pending},
			{Name: string(model.StatusUnverified), Value: stats.Unverified},
			{Name: string(model.StatusRejected), Value: stats.Rejected},
		},
		EducationLevels: registry.ChartPoints(stats.ByEducationLevel),
		Provinces:       registry.ChartPoints(provinces),
		TopDistricts:    registry.TopCounts(stats.ByDistrict, s.top),
	}
}
