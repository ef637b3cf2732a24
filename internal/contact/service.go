// Package contact accepts contact form submissions, logs them and hands them
// to the notification pipeline according to the configured policy.
package contact

import (
	"context"
	"time"

	"agentic_backend/internal/events"
	"agentic_backend/platform/apperr"
	"agentic_backend/platform/config"
	"agentic_backend/platform/logger"
	"agentic_backend/platform/sanitize"

	"github.com/google/uuid"
)

const (
	msgLogOnly = "Заявка получена! Данные сохранены в логах сервера. Для получения заявки проверьте консоль сервера."
	msgSent    = "Заявка отправлена! Мы свяжемся с вами в ближайшее время."
)

// Service processes contact submissions.
type Service struct {
	bus  events.Bus
	mode string
	log  *logger.Logger
	now  func() time.Time
}

func NewService(bus events.Bus, mode string, log *logger.Logger) *Service {
	return &Service{bus: bus, mode: mode, log: log, now: time.Now}
}

// normalize drops control characters before a submission is logged or mailed.
// Name and email are folded onto one line; the description keeps its layout.
func normalize(req ContactRequest) ContactRequest {
	return ContactRequest{
		Name:        sanitize.SingleLine(req.Name),
		Email:       sanitize.SingleLine(req.Email),
		Description: sanitize.Text(req.Description),
	}
}

// Submit records a validated submission and notifies according to the mode.
// In required mode the notification runs inline and its failure fails the
// submission; in best_effort mode it runs in the background and a failure is
// only logged by the bus.
func (s *Service) Submit(ctx context.Context, req ContactRequest) (ContactResponse, error) {
	req = normalize(req)
	submittedAt := s.now().UTC()
	submissionID := uuid.NewString()
	log := s.log.WithContext(ctx)

	log.ContactSubmission(req.Name, req.Email, req.Description, submittedAt.Format(time.RFC3339))

	if s.mode == config.NotifyModeLogOnly {
		return ContactResponse{Success: true, Message: msgLogOnly, SubmittedAt: submittedAt}, nil
	}

	event := events.ContactSubmitted{
		BaseEvent:    events.NewBaseEvent(),
		SubmissionID: submissionID,
		Name:         req.Name,
		Email:        req.Email,
		Description:  req.Description,
		SubmittedAt:  submittedAt,
	}

	if s.mode != config.NotifyModeRequired {
		s.bus.Publish(ctx, event)
		return ContactResponse{Success: true, Message: msgSent, SubmittedAt: submittedAt}, nil
	}

	if err := s.bus.PublishSync(ctx, event); err != nil {
		log.Error("contact notification failed", "submissionId", submissionID, "error", err)
		return ContactResponse{}, apperr.Wrap(apperr.KindInternal, "Internal server error", err).WithOp("contact.Submit")
	}
	return ContactResponse{Success: true, Message: msgSent, SubmittedAt: submittedAt}, nil
}
