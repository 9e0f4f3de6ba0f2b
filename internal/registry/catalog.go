package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/rwedu/schoolverify-backend/internal/model"
)

// Catalog is the immutable seed collection of schools and their history.
// It is safe for concurrent use; accessors return deep copies, including the
// optional counts.
type Catalog struct {
	schools []model.School
	byID    map[string]int
	history map[string][]model.VerificationHistory
	version string
}

// NewCatalog validates the records and builds a catalog. Every invalid or
// duplicated record is reported in the returned error.
func NewCatalog(schools []model.School, history []model.VerificationHistory) (*Catalog, error) {
	var errs []error
	byID := make(map[string]int, len(schools))

	for i, s := range schools {
		if err := ValidateSchool(s); err != nil {
			errs = append(errs, err)
		}
		if _, dup := byID[s.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateID, s.ID))
			continue
		}
		byID[s.ID] = i
	}
	for _, h := range history {
		if _, ok := byID[h.SchoolID]; !ok {
			errs = append(errs, fmt.Errorf("%w: history %q refers to %q", ErrUnknownSchool, h.ID, h.SchoolID))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	hist := make(map[string][]model.VerificationHistory)
	for _, h := range history {
		h.PreviousStatus = cloneStatus(h.PreviousStatus)
		h.NewStatus = cloneStatus(h.NewStatus)
		hist[h.SchoolID] = append(hist[h.SchoolID], h)
	}
	for id := range hist {
		sort.SliceStable(hist[id], func(i, j int) bool {
			return hist[id][i].Timestamp.Before(hist[id][j].Timestamp)
		})
	}

	version, err := fingerprint(schools)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		schools: cloneSchools(schools),
		byID:    byID,
		history: hist,
		version: version,
	}, nil
}

// All returns every school in seed order.
func (c *Catalog) All() []model.School {
	return cloneSchools(c.schools)
}

// Len returns the number of schools.
func (c *Catalog) Len() int {
	return len(c.schools)
}

// Get returns the school with the given id.
func (c *Catalog) Get(id string) (model.School, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.School{}, false
	}
	return cloneSchool(c.schools[i]), true
}

// History returns the audit trail of a school, oldest first.
func (c *Catalog) History(id string) []model.VerificationHistory {
	src := c.history[id]
	h := make([]model.VerificationHistory, len(src))
	for i, e := range src {
		e.PreviousStatus = cloneStatus(e.PreviousStatus)
		e.NewStatus = cloneStatus(e.NewStatus)
		h[i] = e
	}
	return h
}

// Version identifies the catalog contents; it changes whenever any record does.
func (c *Catalog) Version() string {
	return c.version
}

func fingerprint(schools []model.School) (string, error) {
	h := fnv.New64a()
	if err := json.NewEncoder(h).Encode(schools); err != nil {
		return "", fmt.Errorf("fingerprint catalog: %w", err)
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

func cloneSchools(schools []model.School) []model.School {
	out := make([]model.School, len(schools))
	for i, s := range schools {
		out[i] = cloneSchool(s)
	}
	return out
}

func cloneSchool(s model.School) model.School {
	s.StudentCount = cloneInt(s.StudentCount)
	s.TeacherCount = cloneInt(s.TeacherCount)
	return s
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStatus(p *model.VerificationStatus) *model.VerificationStatus {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
