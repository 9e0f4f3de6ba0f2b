package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rwedu/schoolverify-backend/internal/model"
	"github.com/rwedu/schoolverify-backend/internal/notify"
	"github.com/rwedu/schoolverify-backend/internal/registry"
)

// VerificationService drives the verification queue. Approving or rejecting
// a school only emits a notification; the catalog is never modified.
type VerificationService struct {
	catalog   *registry.Catalog
	publisher notify.Publisher
	now       func() time.Time
	log       zerolog.Logger
}

func NewVerificationService(catalog *registry.Catalog, publisher notify.Publisher, log zerolog.Logger) *VerificationService {
	return &VerificationService{
		catalog:   catalog,
		publisher: publisher,
		now:       time.Now,
		log:       log.With().Str("component", "verification_service").Logger(),
	}
}

// Queue returns the four queue tabs.
func (s *VerificationService) Queue(_ context.Context) model.VerificationQueue {
	return registry.Partition(s.catalog.All())
}

// Approve acknowledges a pending school.
func (s *VerificationService) Approve(ctx context.Context, id, actor string) (*model.Notification, error) {
	school, err := s.pending(id)
	if err != nil {
		return nil, err
	}

	n := s.notification(school, model.NotificationSuccess, fmt.Sprintf("%s has been verified!", school.Name), actor)
	s.publish(ctx, n)
	return n, nil
}

// Reject refuses a pending school. The reason must not be blank.
func (s *VerificationService) Reject(ctx context.Context, id, actor, reason string) (*model.Notification, error) {
	school, err := s.pending(id)
	if err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrRejectionReasonRequired
	}

	n := s.notification(school, model.NotificationError, fmt.Sprintf("%s has been rejected", school.Name), actor)
	n.Reason = reason
	s.publish(ctx, n)
	return n, nil
}

func (s *VerificationService) pending(id string) (model.School, error) {
	school, ok := s.catalog.Get(id)
	if !ok {
		return model.School{}, ErrSchoolNotFound
	}
	if school.VerificationStatus != model.StatusPending {
		return model.School{}, ErrNotPending
	}
	return school, nil
}

func (s *VerificationService) notification(school model.School, kind model.NotificationKind, msg, actor string) *model.Notification {
	return &model.Notification{
		ID:         uuid.New().String(),
		Kind:       kind,
		SchoolID:   school.ID,
		SchoolName: school.Name,
		Message:    msg,
		Actor:      strings.TrimSpace(actor),
		CreatedAt:  s.now().UTC(),
	}
}

// publish is best effort; the caller still gets its notification.
func (s *VerificationService) publish(ctx context.Context, n *model.Notification) {
	if err := s.publisher.Publish(ctx, *n); err != nil {
		s.log.Error().Err(err).Str("school_id", n.SchoolID).Msg("Failed to publish notification")
		return
	}
	s.log.Info().
		Str("school_id", n.SchoolID).
		Str("kind", string(n.Kind)).
		Str("actor", n.Actor).
		Msg("Verification notification published")
}
