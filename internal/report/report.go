package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/rwedu/schoolverify-backend/internal/model"
	"github.com/rwedu/schoolverify-backend/internal/registry"
)

// Format selects how a Report is written.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Report is a filtered listing with the statistics of the listed schools.
type Report struct {
	Criteria     model.FilterCriteria `json:"-"`
	Stats        model.Stats          `json:"stats"`
	TopDistricts []model.ChartPoint   `json:"top_districts"`
	Schools      []model.School       `json:"schools"`
	Total        int                  `json:"total"`
}

// Build filters the catalog with the registry search scope and aggregates the result.
func Build(catalog *registry.Catalog, criteria model.FilterCriteria, topDistricts int) Report {
	if len(criteria.SearchFields) == 0 {
		criteria.SearchFields = registry.RegistrySearchFields
	}
	schools := registry.Filter(catalog.All(), criteria)
	stats := registry.ComputeStats(schools)
	return Report{
		Criteria:     criteria,
		Stats:        stats,
		TopDistricts: registry.TopCounts(stats.ByDistrict, topDistricts),
		Schools:      schools,
		Total:        catalog.Len(),
	}
}

// Write renders r in the given format.
func Write(w io.Writer, r Report, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatTable:
		return writeTable(w, r)
	}
	return fmt.Errorf("unknown format %q", format)
}

var statusColor = map[model.VerificationStatus]*color.Color{
	model.StatusVerified:   color.New(color.FgGreen),
	model.StatusPending:    color.New(color.FgYellow),
	model.StatusUnverified: color.New(color.FgWhite),
	model.StatusRejected:   color.New(color.FgRed),
}

func writeTable(w io.Writer, r Report) error {
	s := r.Stats
	fmt.Fprintf(w, "Showing %d of %d schools\n", s.Total, r.Total)
	fmt.Fprintf(w, "Verified %d  Pending %d  Unverified %d  Rejected %d  (rate %d%%)\n",
		s.Verified, s.Pending, s.Unverified, s.Rejected, s.VerificationRate)
	fmt.Fprintf(w, "Public %d  Private %d\n", s.PublicSchools, s.PrivateSchools)

	if len(r.TopDistricts) > 0 {
		fmt.Fprintln(w, "\nTop districts:")
		for _, p := range r.TopDistricts {
			fmt.Fprintf(w, "  %-12s %d\n", p.Name, p.Value)
		}
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDISTRICT\tTYPE\tLEVEL\tUPDATED\tSTATUS")
	for _, school := range r.Schools {
		status := string(school.VerificationStatus)
		if c, ok := statusColor[school.VerificationStatus]; ok {
			status = c.Sprint(status)
		}
		// Status is last so color escapes never skew column widths.
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			school.ID, school.Name, school.District, school.SchoolType,
			school.EducationLevel, school.LastUpdated, status)
	}
	return tw.Flush()
}
