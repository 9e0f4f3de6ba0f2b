package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.November, 28)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-11-28"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(d.Time))
}

func TestDateRejectsBadInput(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"28/11/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20241128`), &d))
	assert.Panics(t, func() { MustParseDate("2024-13-01") })
}

func TestDateBefore(t *testing.T) {
	a := MustParseDate("2024-06-15")
	b := MustParseDate("2024-06-16")
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestEnumsValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.Valid())
	}
	assert.False(t, VerificationStatus("All").Valid())
	assert.False(t, SchoolType("Charter").Valid())
	assert.True(t, LevelTVET.Valid())
	assert.False(t, EducationLevel("").Valid())
}

func TestFilterQueryCriteria(t *testing.T) {
	q := SchoolFilterQuery{Status: "Pending", District: "Gasabo", Search: "kigali"}
	c := q.Criteria([]SearchField{SearchFieldName, SearchFieldID})

	assert.Equal(t, StatusPending, c.Status)
	assert.Equal(t, "Gasabo", c.District)
	assert.Equal(t, SchoolType(""), c.SchoolType)
	assert.Equal(t, "kigali", c.SearchText)
	assert.Equal(t, []SearchField{SearchFieldName, SearchFieldID}, c.SearchFields)
}

func TestQueueCounts(t *testing.T) {
	q := VerificationQueue{Pending: make([]School, 2), Rejected: make([]School, 1)}
	assert.Equal(t, map[VerificationStatus]int{
		StatusPending:    2,
		StatusUnverified: 0,
		StatusVerified:   0,
		StatusRejected:   1,
	}, q.Counts())
}

func TestMarker(t *testing.T) {
	s := School{
		ID: "SCH-006", Name: "IPRC Musanze", District: "Musanze",
		Coordinates:        Coordinates{Lat: -1.4997, Lng: 29.6347},
		SchoolType:         SchoolTypePublic,
		EducationLevel:     LevelTVET,
		VerificationStatus: StatusVerified,
	}
	assert.Equal(t, SchoolMarker{
		ID: "SCH-006", Name: "IPRC Musanze", Lat: -1.4997, Lng: 29.6347,
		District: "Musanze", Status: StatusVerified,
		SchoolType: SchoolTypePublic, EducationLevel: LevelTVET,
	}, s.Marker())
}
