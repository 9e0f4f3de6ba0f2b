package repository

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/rwedu/schoolverify-backend/internal/model"
)

//go:embed seed/schools.json
var seedJSON []byte

// Dataset is the raw seed collection before it is validated into a catalog.
type Dataset struct {
	Schools []model.School              `json:"schools"`
	History []model.VerificationHistory `json:"history"`
}

// Source loads the seed collection once at startup.
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
}

// SeedSource serves the dataset bundled into the binary.
type SeedSource struct {
	raw []byte
}

// NewSeedSource creates a SeedSource over the embedded sample dataset.
func NewSeedSource() *SeedSource {
	return &SeedSource{raw: seedJSON}
}

// NewSeedSourceFromJSON creates a SeedSource over an arbitrary JSON document
// with the same shape as the embedded one.
func NewSeedSourceFromJSON(raw []byte) *SeedSource {
	return &SeedSource{raw: raw}
}

// Load decodes the dataset.
func (s *SeedSource) Load(_ context.Context) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(s.raw, &ds); err != nil {
		return nil, fmt.Errorf("decode seed dataset: %w", err)
	}
	return &ds, nil
}
