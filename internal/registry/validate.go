package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rwedu/schoolverify-backend/internal/model"
)

var (
	ErrInvalidSchool = errors.New("invalid school record")
	ErrDuplicateID   = errors.New("duplicate school id")
	ErrUnknownSchool = errors.New("unknown school id")
)

// ValidateSchool checks the record-level invariants of a school.
// All violations are reported together.
func ValidateSchool(s model.School) error {
	var problems []string

	for field, v := range map[string]string{
		"id":       s.ID,
		"name":     s.Name,
		"province": s.Province,
		"district": s.District,
		"sector":   s.Sector,
	} {
		if strings.TrimSpace(v) == "" {
			problems = append(problems, field+" is required")
		}
	}

	if !s.VerificationStatus.Valid() {
		problems = append(problems, fmt.Sprintf("unknown verification status %q", s.VerificationStatus))
	}
	if !s.SchoolType.Valid() {
		problems = append(problems, fmt.Sprintf("unknown school type %q", s.SchoolType))
	}
	if !s.EducationLevel.Valid() {
		problems = append(problems, fmt.Sprintf("unknown education level %q", s.EducationLevel))
	}

	if s.Coordinates.Lat < -90 || s.Coordinates.Lat > 90 {
		problems = append(problems, fmt.Sprintf("latitude %v out of range", s.Coordinates.Lat))
	}
	if s.Coordinates.Lng < -180 || s.Coordinates.Lng > 180 {
		problems = append(problems, fmt.Sprintf("longitude %v out of range", s.Coordinates.Lng))
	}

	if s.LastUpdated.Before(s.DateAdded) {
		problems = append(problems, fmt.Sprintf("last updated %s precedes date added %s", s.LastUpdated, s.DateAdded))
	}

	if s.StudentCount != nil && *s.StudentCount < 0 {
		problems = append(problems, "student count is negative")
	}
	if s.TeacherCount != nil && *s.TeacherCount < 0 {
		problems = append(problems, "teacher count is negative")
	}

	if s.RejectionReason != "" && s.VerificationStatus != model.StatusRejected {
		problems = append(problems, "rejection reason set on a non-rejected school")
	}

	if s.District != "" && s.Province != "" {
		if p, ok := ProvinceOfDistrict(s.District); !ok {
			problems = append(problems, fmt.Sprintf("unknown district %q", s.District))
		} else if p != s.Province {
			problems = append(problems, fmt.Sprintf("district %q is in %s, not %s", s.District, p, s.Province))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	// Map iteration above is unordered; keep messages stable.
	sort.Strings(problems)
	return fmt.Errorf("%w %q: %s", ErrInvalidSchool, s.ID, strings.Join(problems, "; "))
}
