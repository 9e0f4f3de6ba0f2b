package registry

import "github.com/rwedu/schoolverify-backend/internal/model"

// Partition splits schools into the verification-queue tabs, preserving order.
func Partition(schools []model.School) model.VerificationQueue {
	q := model.VerificationQueue{
		Pending:    []model.School{},
		Unverified: []model.School{},
		Verified:   []model.School{},
		Rejected:   []model.School{},
	}
	for _, s := range schools {
		switch s.VerificationStatus {
		case model.StatusPending:
			q.Pending = append(q.Pending, s)
		case model.StatusUnverified:
			q.Unverified = append(q.Unverified, s)
		case model.StatusVerified:
			q.Verified = append(q.Verified, s)
		case model.StatusRejected:
			q.Rejected = append(q.Rejected, s)
		}
	}
	return q
}
