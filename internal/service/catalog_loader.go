package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rwedu/schoolverify-backend/internal/registry"
	"github.com/rwedu/schoolverify-backend/internal/repository"
)

// LoadCatalog reads the collection from src once and validates it.
func LoadCatalog(ctx context.Context, src repository.Source, log zerolog.Logger) (*registry.Catalog, error) {
	ds, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	catalog, err := registry.NewCatalog(ds.Schools, ds.History)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	log.Info().
		Int("schools", catalog.Len()).
		Int("history", len(ds.History)).
		Str("version", catalog.Version()).
		Msg("Catalog loaded")
	return catalog, nil
}
