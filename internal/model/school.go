package model

// VerificationStatus is the lifecycle label of a school record.
type VerificationStatus string

const (
	StatusVerified   VerificationStatus = "Verified"
	StatusPending    VerificationStatus = "Pending"
	StatusUnverified VerificationStatus = "Unverified"
	StatusRejected   VerificationStatus = "Rejected"
)

// AllStatuses lists every verification status in display order.
var AllStatuses = []VerificationStatus{
	StatusVerified,
	StatusPending,
	StatusUnverified,
	StatusRejected,
}

// Valid reports whether s is one of the four known statuses.
func (s VerificationStatus) Valid() bool {
	switch s {
	case StatusVerified, StatusPending, StatusUnverified, StatusRejected:
		return true
	}
	return false
}

// SchoolType is the ownership category of a school.
type SchoolType string

const (
	SchoolTypePublic  SchoolType = "Public"
	SchoolTypePrivate SchoolType = "Private"
)

func (t SchoolType) Valid() bool {
	return t == SchoolTypePublic || t == SchoolTypePrivate
}

// EducationLevel is the category of schooling offered.
type EducationLevel string

const (
	LevelPrimary   EducationLevel = "Primary"
	LevelSecondary EducationLevel = "Secondary"
	LevelTVET      EducationLevel = "TVET"
	LevelCombined  EducationLevel = "Combined"
)

func (l EducationLevel) Valid() bool {
	switch l {
	case LevelPrimary, LevelSecondary, LevelTVET, LevelCombined:
		return true
	}
	return false
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// School is a single entry of the school registry.
type School struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Province           string             `json:"province"`
	District           string             `json:"district"`
	Sector             string             `json:"sector"`
	Coordinates        Coordinates        `json:"coordinates"`
	SchoolType         SchoolType         `json:"school_type"`
	EducationLevel     EducationLevel     `json:"education_level"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	PhotoURL           string             `json:"photo_url,omitempty"`
	DateAdded          Date               `json:"date_added"`
	LastUpdated        Date               `json:"last_updated"`
	StudentCount       *int               `json:"student_count,omitempty"`
	TeacherCount       *int               `json:"teacher_count,omitempty"`
	AddedBy            string             `json:"added_by,omitempty"`
	VerifiedBy         string             `json:"verified_by,omitempty"`
	RejectionReason    string             `json:"rejection_reason,omitempty"`
}

// SchoolMarker is the reduced projection of a school used by the map view.
type SchoolMarker struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Lat            float64            `json:"lat"`
	Lng            float64            `json:"lng"`
	District       string             `json:"district"`
	Status         VerificationStatus `json:"status"`
	SchoolType     SchoolType         `json:"school_type"`
	EducationLevel EducationLevel     `json:"education_level"`
}

// Marker projects s onto a map marker.
func (s School) Marker() SchoolMarker {
	return SchoolMarker{
		ID:             s.ID,
		Name:           s.Name,
		Lat:            s.Coordinates.Lat,
		Lng:            s.Coordinates.Lng,
		District:       s.District,
		Status:         s.VerificationStatus,
		SchoolType:     s.SchoolType,
		EducationLevel: s.EducationLevel,
	}
}

// SchoolDetail is a registry record together with its audit trail.
type SchoolDetail struct {
	School  School                `json:"school"`
	History []VerificationHistory `json:"history"`
}
