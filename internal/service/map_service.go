package service

import (
	"context"

	"github.com/rwedu/schoolverify-backend/internal/model"
	"github.com/rwedu/schoolverify-backend/internal/registry"
)

// MapService projects filtered schools onto map markers.
type MapService struct {
	catalog *registry.Catalog
}

func NewMapService(catalog *registry.Catalog) *MapService {
	return &MapService{catalog: catalog}
}

// Markers applies the map filters (search by name only).
func (s *MapService) Markers(_ context.Context, q model.SchoolFilterQuery) []model.SchoolMarker {
	schools := registry.Filter(s.catalog.All(), q.Criteria(registry.MapSearchFields))
	markers := make([]model.SchoolMarker, len(schools))
	for i, school := range schools {
		markers[i] = school.Marker()
	}
	return markers
}
