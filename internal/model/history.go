package model

import "time"

// HistoryAction is the kind of event recorded in a school's audit trail.
type HistoryAction string

const (
	ActionCreated       HistoryAction = "Created"
	ActionUpdated       HistoryAction = "Updated"
	ActionVerified      HistoryAction = "Verified"
	ActionRejected      HistoryAction = "Rejected"
	ActionStatusChanged HistoryAction = "StatusChanged"
)

// VerificationHistory is one audit-trail entry for a school.
// Entries are served read-only and never feed any computation.
type VerificationHistory struct {
	ID             string              `json:"id"`
	SchoolID       string              `json:"school_id"`
	Action         HistoryAction       `json:"action"`
	PreviousStatus *VerificationStatus `json:"previous_status,omitempty"`
	NewStatus      *VerificationStatus `json:"new_status,omitempty"`
	PerformedBy    string              `json:"performed_by"`
	Timestamp      time.Time           `json:"timestamp"`
	Notes          string              `json:"notes,omitempty"`
}
