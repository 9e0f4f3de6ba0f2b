package repository

import (
	"context"
	"testing"

	"github.com/rwedu/schoolverify-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSourceLoadsEmbeddedDataset(t *testing.T) {
	ds, err := NewSeedSource().Load(context.Background())
	require.NoError(t, err)

	require.Len(t, ds.Schools, 20)
	assert.Len(t, ds.History, 3)

	first := ds.Schools[0]
	assert.Equal(t, "SCH-001", first.ID)
	assert.Equal(t, "Huye", first.District)
	assert.Equal(t, model.StatusVerified, first.VerificationStatus)
	assert.Equal(t, "2024-12-01", first.LastUpdated.String())
	require.NotNil(t, first.StudentCount)
	assert.Equal(t, 1250, *first.StudentCount)

	rejected := ds.Schools[9]
	assert.Equal(t, "SCH-010", rejected.ID)
	assert.Equal(t, model.StatusRejected, rejected.VerificationStatus)
	assert.NotEmpty(t, rejected.RejectionReason)

	h := ds.History[2]
	assert.Equal(t, "SCH-010", h.SchoolID)
	require.NotNil(t, h.PreviousStatus)
	assert.Equal(t, model.StatusPending, *h.PreviousStatus)
	assert.Nil(t, ds.History[0].PreviousStatus)
}

func TestSeedSourceFromJSON(t *testing.T) {
	ds, err := NewSeedSourceFromJSON([]byte(`{"schools":[{"id":"X","date_added":"2024-01-01","last_updated":"2024-01-02"}]}`)).
		Load(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Schools, 1)
	assert.Equal(t, "X", ds.Schools[0].ID)
	assert.Empty(t, ds.History)

	_, err = NewSeedSourceFromJSON([]byte(`{"schools":[{"date_added":"yesterday"}]}`)).Load(context.Background())
	assert.Error(t, err)
}
