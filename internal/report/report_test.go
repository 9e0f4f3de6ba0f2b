package report

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rwedu/schoolverify-backend/internal/model"
	"github.com/rwedu/schoolverify-backend/internal/registry"
	"github.com/rwedu/schoolverify-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T) *registry.Catalog {
	t.Helper()
	ds, err := repository.NewSeedSource().Load(context.Background())
	require.NoError(t, err)
	cat, err := registry.NewCatalog(ds.Schools, ds.History)
	require.NoError(t, err)
	return cat
}

func TestBuildUsesRegistrySearch(t *testing.T) {
	r := Build(seedCatalog(t), model.FilterCriteria{SearchText: "musanze"}, 8)

	assert.Equal(t, 20, r.Total)
	assert.Equal(t, 2, r.Stats.Total)
	require.Len(t, r.Schools, 2)
	assert.Equal(t, "SCH-006", r.Schools[0].ID)
	assert.Equal(t, []model.ChartPoint{{Name: "Musanze", Value: 2}}, r.TopDistricts)
}

func TestWriteJSON(t *testing.T) {
	r := Build(seedCatalog(t), model.FilterCriteria{Status: model.StatusRejected}, 8)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r, FormatJSON))

	var out struct {
		Stats   model.Stats    `json:"stats"`
		Schools []model.School `json:"schools"`
		Total   int            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 1, out.Stats.Rejected)
	assert.Equal(t, 20, out.Total)
	require.Len(t, out.Schools, 1)
	assert.Equal(t, "SCH-010", out.Schools[0].ID)
}

func TestWriteTable(t *testing.T) {
	color.NoColor = true
	r := Build(seedCatalog(t), model.FilterCriteria{Status: model.StatusPending, District: "Gasabo"}, 8)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r, FormatTable))
	out := buf.String()

	assert.Contains(t, out, "Showing 2 of 20 schools")
	assert.Contains(t, out, "Verified 0  Pending 2")
	assert.Contains(t, out, "ID  ")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[len(lines)-2], "SCH-004"))
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], "Pending"))
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, Report{}, "xml"))
}
