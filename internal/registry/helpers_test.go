package registry

import (
	"context"
	"testing"

	"github.com/rwedu/schoolverify-backend/internal/model"
	"github.com/rwedu/schoolverify-backend/internal/repository"
	"github.com/stretchr/testify/require"
)

func mkSchool(id, name, district string, status model.VerificationStatus) model.School {
	province, _ := ProvinceOfDistrict(district)
	return model.School{
		ID:                 id,
		Name:               name,
		Province:           province,
		District:           district,
		Sector:             "Sector",
		Coordinates:        model.Coordinates{Lat: -1.95, Lng: 30.06},
		SchoolType:         model.SchoolTypePublic,
		EducationLevel:     model.LevelPrimary,
		VerificationStatus: status,
		DateAdded:          model.NewDate(2024, 1, 1),
		LastUpdated:        model.NewDate(2024, 6, 1),
	}
}

func seedSchools(t *testing.T) []model.School {
	t.Helper()
	ds, err := repository.NewSeedSource().Load(context.Background())
	require.NoError(t, err)
	return ds.Schools
}

func ids(schools []model.School) []string {
	out := make([]string, len(schools))
	for i, s := range schools {
		out[i] = s.ID
	}
	return out
}
