package model

// FilterAll is the sentinel value meaning "no constraint" on a filter field.
const FilterAll = "All"

// SearchField names a school attribute the free-text search may match.
type SearchField string

const (
	SearchFieldName     SearchField = "name"
	SearchFieldID       SearchField = "id"
	SearchFieldDistrict SearchField = "district"
)

// FilterCriteria is a conjunction of optional predicates over school records.
// Each field left empty or set to FilterAll imposes no constraint.
type FilterCriteria struct {
	Status         VerificationStatus
	District       string
	SchoolType     SchoolType
	EducationLevel EducationLevel
	SearchText     string
	// SearchFields lists the attributes SearchText is matched against.
	// Empty means name only.
	SearchFields []SearchField
}

// SchoolFilterQuery is the query-string form of FilterCriteria.
type SchoolFilterQuery struct {
	Status         string `form:"status" json:"status" binding:"omitempty,oneof=All Verified Pending Unverified Rejected"`
	District       string `form:"district" json:"district" binding:"omitempty,rw_district"`
	SchoolType     string `form:"school_type" json:"school_type" binding:"omitempty,oneof=All Public Private"`
	EducationLevel string `form:"education_level" json:"education_level" binding:"omitempty,oneof=All Primary Secondary TVET Combined"`
	Search         string `form:"search" json:"search" binding:"omitempty,max=100"`
}

// Criteria converts the query into FilterCriteria searching the given fields.
func (q SchoolFilterQuery) Criteria(fields []SearchField) FilterCriteria {
	return FilterCriteria{
		Status:         VerificationStatus(q.Status),
		District:       q.District,
		SchoolType:     SchoolType(q.SchoolType),
		EducationLevel: EducationLevel(q.EducationLevel),
		SearchText:     q.Search,
		SearchFields:   fields,
	}
}

// RegistryListQuery adds pagination to the registry filter.
type RegistryListQuery struct {
	SchoolFilterQuery
	Page    int `form:"page" json:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" json:"per_page" binding:"omitempty,min=1,max=100"`
}

// RegistryPage is one page of the filtered registry.
type RegistryPage struct {
	Schools []School `json:"schools"`
	// Matched counts records passing the filter, Total the whole collection.
	Matched int `json:"matched"`
	Total   int `json:"total"`
}
