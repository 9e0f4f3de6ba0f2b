package registry

import (
	"testing"
	"time"

	"github.com/rwedu/schoolverify-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogSeed(t *testing.T) {
	schools := seedSchools(t)
	cat, err := NewCatalog(schools, nil)
	require.NoError(t, err)

	assert.Equal(t, 20, cat.Len())
	assert.Equal(t, schools, cat.All())

	s, ok := cat.Get("SCH-002")
	require.True(t, ok)
	assert.Equal(t, "Lycée de Kigali", s.Name)

	_, ok = cat.Get("SCH-999")
	assert.False(t, ok)
}

func TestCatalogAllReturnsCopy(t *testing.T) {
	cat, err := NewCatalog(seedSchools(t), nil)
	require.NoError(t, err)

	all := cat.All()
	all[0].Name = "changed"
	s, _ := cat.Get(all[0].ID)
	assert.NotEqual(t, "changed", s.Name)
}

func TestCatalogCopiesOptionalCounts(t *testing.T) {
	students, teachers := 400, 20
	school := mkSchool("A", "A", "Huye", model.StatusVerified)
	school.StudentCount = &students
	school.TeacherCount = &teachers
	verified := model.StatusVerified
	cat, err := NewCatalog([]model.School{school}, []model.VerificationHistory{
		{ID: "H1", SchoolID: "A", Action: model.ActionVerified, NewStatus: &verified},
	})
	require.NoError(t, err)

	// The caller's own pointers are not shared with the catalog.
	students = 1

	all := cat.All()
	*all[0].StudentCount = 2
	got, ok := cat.Get("A")
	require.True(t, ok)
	*got.TeacherCount = 3
	*cat.History("A")[0].NewStatus = model.StatusRejected

	again, _ := cat.Get("A")
	assert.Equal(t, 400, *again.StudentCount)
	assert.Equal(t, 20, *again.TeacherCount)
	assert.Equal(t, model.StatusVerified, *cat.History("A")[0].NewStatus)
}

func TestNewCatalogRejectsDuplicatesAndInvalid(t *testing.T) {
	bad := mkSchool("B", "Bad", "Huye", model.StatusPending)
	bad.RejectionReason = "not allowed"

	_, err := NewCatalog([]model.School{
		mkSchool("A", "One", "Huye", model.StatusPending),
		mkSchool("A", "Two", "Huye", model.StatusPending),
		bad,
	}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.ErrorIs(t, err, ErrInvalidSchool)
}

func TestNewCatalogRejectsOrphanHistory(t *testing.T) {
	_, err := NewCatalog(
		[]model.School{mkSchool("A", "A", "Huye", model.StatusVerified)},
		[]model.VerificationHistory{{ID: "H-1", SchoolID: "MISSING", Action: model.ActionCreated}},
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSchool)
	assert.Contains(t, err.Error(), "MISSING")
}

func TestCatalogHistory(t *testing.T) {
	verified := model.StatusVerified
	unverified := model.StatusUnverified
	later := model.VerificationHistory{
		ID: "H2", SchoolID: "A", Action: model.ActionVerified,
		PreviousStatus: &unverified, NewStatus: &verified,
		Timestamp: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	earlier := model.VerificationHistory{
		ID: "H1", SchoolID: "A", Action: model.ActionCreated,
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	cat, err := NewCatalog([]model.School{mkSchool("A", "A", "Huye", model.StatusVerified)}, []model.VerificationHistory{later, earlier})
	require.NoError(t, err)

	h := cat.History("A")
	require.Len(t, h, 2)
	assert.Equal(t, "H1", h[0].ID)
	assert.Equal(t, "H2", h[1].ID)

	none := cat.History("missing")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCatalogVersion(t *testing.T) {
	schools := seedSchools(t)
	a, err := NewCatalog(schools, nil)
	require.NoError(t, err)
	b, err := NewCatalog(schools, nil)
	require.NoError(t, err)
	assert.Equal(t, a.Version(), b.Version())
	assert.Len(t, a.Version(), 16)

	changed := append([]model.School(nil), schools...)
	changed[0].Name = "Renamed"
	c, err := NewCatalog(changed, nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.Version(), c.Version())
}
