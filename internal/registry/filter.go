package registry

import (
	"strings"

	"github.com/rwedu/schoolverify-backend/internal/model"
)

var (
	// MapSearchFields is the search scope of the map view.
	MapSearchFields = []model.SearchField{model.SearchFieldName}

	// RegistrySearchFields is the search scope of the schools registry.
	RegistrySearchFields = []model.SearchField{
		model.SearchFieldName,
		model.SearchFieldID,
		model.SearchFieldDistrict,
	}
)

// Filter returns the schools satisfying every active criterion, in input order.
// The result is always a new slice.
func Filter(schools []model.School, criteria model.FilterCriteria) []model.School {
	out := make([]model.School, 0, len(schools))
	for _, s := range schools {
		if Matches(s, criteria) {
			out = append(out, s)
		}
	}
	return out
}

// Matches reports whether a single school satisfies criteria.
func Matches(s model.School, c model.FilterCriteria) bool {
	if active(string(c.Status)) && s.VerificationStatus != c.Status {
		return false
	}
	if active(c.District) && s.District != c.District {
		return false
	}
	if active(string(c.SchoolType)) && s.SchoolType != c.SchoolType {
		return false
	}
	if active(string(c.EducationLevel)) && s.EducationLevel != c.EducationLevel {
		return false
	}
	if c.SearchText != "" && !matchesSearch(s, c.SearchText, c.SearchFields) {
		return false
	}
	return true
}

func active(v string) bool {
	return v != "" && v != model.FilterAll
}

func matchesSearch(s model.School, text string, fields []model.SearchField) bool {
	if len(fields) == 0 {
		fields = MapSearchFields
	}
	query := strings.ToLower(text)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(fieldValue(s, f)), query) {
			return true
		}
	}
	return false
}

func fieldValue(s model.School, f model.SearchField) string {
	switch f {
	case model.SearchFieldName:
		return s.Name
	case model.SearchFieldID:
		return s.ID
	case model.SearchFieldDistrict:
		return s.District
	}
	return ""
}
