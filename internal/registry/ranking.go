package registry

import (
	"slices"
	"sort"
	"strings"

	"github.com/rwedu/schoolverify-backend/internal/model"
)

// TopCounts ranks a grouping map by count, descending, ties broken by name.
// n <= 0 keeps every entry.
func TopCounts(counts map[string]int, n int) []model.ChartPoint {
	points := ChartPoints(counts)
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Value > points[j].Value
	})
	if n > 0 && len(points) > n {
		points = points[:n]
	}
	return points
}

// ChartPoints flattens a grouping map into points sorted by name.
func ChartPoints(counts map[string]int) []model.ChartPoint {
	points := make([]model.ChartPoint, 0, len(counts))
	for name, value := range counts {
		points = append(points, model.ChartPoint{Name: name, Value: value})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Name < points[j].Name
	})
	return points
}

// RecentlyUpdated returns the n most recently updated schools, newest first.
// Schools updated on the same day keep their input order.
func RecentlyUpdated(schools []model.School, n int) []model.School {
	out := slices.Clone(schools)
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].LastUpdated.Before(out[i].LastUpdated)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	if out == nil {
		out = []model.School{}
	}
	return out
}

// ShortProvinceName drops the " Province" and " City" suffixes used as chart labels.
func ShortProvinceName(province string) string {
	name := strings.Replace(province, " Province", "", 1)
	return strings.Replace(name, " City", "", 1)
}
