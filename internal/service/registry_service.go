package service

import (
	"context"

	"github.com/rwedu/schoolverify-backend/internal/model"
	"github.com/rwedu/schoolverify-backend/internal/registry"
	"github.com/rwedu/schoolverify-backend/internal/response"
)

// RegistryService serves the schools registry table and record details.
type RegistryService struct {
	catalog *registry.Catalog
}

func NewRegistryService(catalog *registry.Catalog) *RegistryService {
	return &RegistryService{catalog: catalog}
}

// ListSchools filters the registry (name, id and district search) and
// returns one page of the matches.
func (s *RegistryService) ListSchools(_ context.Context, q model.RegistryListQuery) (*model.RegistryPage, *response.Pagination) {
	page, perPage := q.Page, q.PerPage
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	all := s.catalog.All()
	matched := registry.Filter(all, q.Criteria(registry.RegistrySearchFields))

	// Compare before multiplying; a huge page must not overflow the offset.
	offset := len(matched)
	if page-1 <= len(matched)/perPage {
		offset = min((page-1)*perPage, len(matched))
	}
	end := offset + perPage
	if end > len(matched) {
		end = len(matched)
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: len(matched),
		TotalPages: (len(matched) + perPage - 1) / perPage,
	}

	return &model.RegistryPage{
		Schools: matched[offset:end],
		Matched: len(matched),
		Total:   len(all),
	}, pagination
}

// GetSchool returns a record with its verification history.
func (s *RegistryService) GetSchool(_ context.Context, id string) (*model.SchoolDetail, error) {
	school, ok := s.catalog.Get(id)
	if !ok {
		return nil, ErrSchoolNotFound
	}
	return &model.SchoolDetail{School: school, History: s.catalog.History(id)}, nil
}

// Stats aggregates the records matching q. An empty query covers the whole collection.
func (s *RegistryService) Stats(_ context.Context, q model.SchoolFilterQuery) model.Stats {
	return registry.ComputeStats(registry.Filter(s.catalog.All(), q.Criteria(registry.RegistrySearchFields)))
}
