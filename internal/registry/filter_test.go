package registry

import (
	"testing"

	"github.com/rwedu/schoolverify-backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFilterNoCriteriaIsIdentity(t *testing.T) {
	schools := seedSchools(t)

	for _, c := range []model.FilterCriteria{
		{},
		{Status: model.FilterAll, District: model.FilterAll, SchoolType: model.FilterAll, EducationLevel: model.FilterAll},
	} {
		got := Filter(schools, c)
		assert.Equal(t, schools, got)
	}
}

func TestFilterReturnsNewSlice(t *testing.T) {
	schools := seedSchools(t)
	got := Filter(schools, model.FilterCriteria{})
	got[0].Name = "changed"
	assert.NotEqual(t, "changed", schools[0].Name)

	empty := Filter(nil, model.FilterCriteria{})
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestFilterCombinesCriteriaWithAnd(t *testing.T) {
	got := Filter(seedSchools(t), model.FilterCriteria{
		Status:   model.StatusPending,
		District: "Gasabo",
	})
	assert.Equal(t, []string{"SCH-004", "SCH-012"}, ids(got))
}

func TestFilterByTypeAndLevel(t *testing.T) {
	schools := seedSchools(t)

	private := Filter(schools, model.FilterCriteria{SchoolType: model.SchoolTypePrivate})
	assert.Equal(t, []string{"SCH-003", "SCH-005", "SCH-012", "SCH-015"}, ids(private))

	tvet := Filter(schools, model.FilterCriteria{EducationLevel: model.LevelTVET})
	assert.Equal(t, []string{"SCH-006", "SCH-010", "SCH-014", "SCH-019"}, ids(tvet))
}

func TestFilterSearch(t *testing.T) {
	schools := seedSchools(t)

	tests := []struct {
		name   string
		text   string
		fields []model.SearchField
		want   []string
	}{
		{"name substring is case insensitive", "LYCÉE", RegistrySearchFields, []string{"SCH-002"}},
		{"id matches in registry", "sch-010", RegistrySearchFields, []string{"SCH-010"}},
		{"id ignored on map", "sch-010", MapSearchFields, []string{}},
		{"district matches in registry", "musanze", RegistrySearchFields, []string{"SCH-006", "SCH-009"}},
		{"default scope is name", "kayonza", nil, []string{"SCH-010"}},
		{"no match", "zzz", RegistrySearchFields, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(schools, model.FilterCriteria{SearchText: tt.text, SearchFields: tt.fields})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterMonotonic(t *testing.T) {
	schools := seedSchools(t)
	base := model.FilterCriteria{Status: model.StatusVerified}
	narrower := base
	narrower.District = "Kicukiro"

	wide := Filter(schools, base)
	narrow := Filter(schools, narrower)

	assert.LessOrEqual(t, len(narrow), len(wide))
	for _, s := range narrow {
		assert.Contains(t, ids(wide), s.ID)
	}
	assert.Equal(t, []string{"SCH-003", "SCH-019"}, ids(narrow))
}

func TestFilterIsStable(t *testing.T) {
	schools := seedSchools(t)
	got := Filter(schools, model.FilterCriteria{Status: model.StatusPending})
	assert.Equal(t, []string{"SCH-004", "SCH-008", "SCH-012", "SCH-017", "SCH-020"}, ids(got))
}
