package model

import "time"

// NotificationKind mirrors the toast variants shown by the dashboard.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient message produced by a verification action.
// It is never stored and the school record it refers to is left unchanged.
type Notification struct {
	ID         string           `json:"id"`
	Kind       NotificationKind `json:"kind"`
	SchoolID   string           `json:"school_id"`
	SchoolName string           `json:"school_name"`
	Message    string           `json:"message"`
	Reason     string           `json:"reason,omitempty"`
	Actor      string           `json:"actor,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}
