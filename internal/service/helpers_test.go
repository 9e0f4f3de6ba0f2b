package service

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rwedu/schoolverify-backend/internal/model"
	"github.com/rwedu/schoolverify-backend/internal/registry"
	"github.com/rwedu/schoolverify-backend/internal/repository"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T) *registry.Catalog {
	t.Helper()
	cat, err := LoadCatalog(context.Background(), repository.NewSeedSource(), zerolog.Nop())
	require.NoError(t, err)
	return cat
}

// recordingPublisher keeps every published notification.
type recordingPublisher struct {
	mu   sync.Mutex
	sent []model.Notification
	err  error
}

func (p *recordingPublisher) Publish(_ context.Context, n model.Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, n)
	return nil
}

// memStore is an in-memory cache.Store counting hits.
type memStore struct {
	values map[string]any
	hits   int
}

func newMemStore() *memStore { return &memStore{values: map[string]any{}} }

func (m *memStore) Get(_ context.Context, key string, dst any) (bool, error) {
	v, ok := m.values[key]
	if !ok {
		return false, nil
	}
	m.hits++
	switch d := dst.(type) {
	case *DashboardData:
		*d = *v.(*DashboardData)
	case *AnalyticsData:
		*d = *v.(*AnalyticsData)
	}
	return true, nil
}

func (m *memStore) Set(_ context.Context, key string, v any) error {
	m.values[key] = v
	return nil
}

func ids(schools []model.School) []string {
	out := make([]string, len(schools))
	for i, s := range schools {
		out[i] = s.ID
	}
	return out
}
