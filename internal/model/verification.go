package model

// VerificationQueue groups records into the four verification-queue tabs.
type VerificationQueue struct {
	Pending    []School `json:"pending"`
	Unverified []School `json:"unverified"`
	Verified   []School `json:"verified"`
	Rejected   []School `json:"rejected"`
}

// Counts returns the number of records per tab.
func (q VerificationQueue) Counts() map[VerificationStatus]int {
	return map[VerificationStatus]int{
		StatusPending:    len(q.Pending),
		StatusUnverified: len(q.Unverified),
		StatusVerified:   len(q.Verified),
		StatusRejected:   len(q.Rejected),
	}
}

// ApproveRequest is the optional payload for approving a pending school.
type ApproveRequest struct {
	Actor string `json:"actor" binding:"omitempty,max=64"`
}

// RejectRequest is the payload for rejecting a pending school. A blank
// reason is refused by the verification service, not by binding, so the
// caller gets the dedicated error code.
type RejectRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
	Actor  string `json:"actor" binding:"omitempty,max=64"`
}
