package registry

import (
	"math"

	"github.com/rwedu/schoolverify-backend/internal/model"
)

// ComputeStats reduces a collection of schools into dashboard statistics.
// The grouping maps only hold keys observed in schools and are never nil.
func ComputeStats(schools []model.School) model.Stats {
	stats := model.Stats{
		Total:            len(schools),
		ByDistrict:       make(map[string]int),
		ByProvince:       make(map[string]int),
		ByEducationLevel: make(map[string]int),
	}

	for _, s := range schools {
		switch s.VerificationStatus {
		case model.StatusVerified:
			stats.Verified++
		case model.StatusPending:
			stats.Pending++
		case model.StatusUnverified:
			stats.Unverified++
		case model.StatusRejected:
			stats.Rejected++
		}

		switch s.SchoolType {
		case model.SchoolTypePublic:
			stats.PublicSchools++
		case model.SchoolTypePrivate:
			stats.PrivateSchools++
		}

		stats.ByDistrict[s.District]++
		stats.ByProvince[s.Province]++
		stats.ByEducationLevel[string(s.EducationLevel)]++
	}

	stats.VerificationRate = Percentage(stats.Verified, stats.Total)
	return stats
}

// Percentage returns part/total as a rounded integer percentage, 0 for an empty total.
func Percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
