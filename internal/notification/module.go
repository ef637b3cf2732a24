// Package notification provides event handlers for sending notifications in
// response to domain events. Domain modules publish events and never talk to
// email providers or the task queue themselves.
package notification

import (
	"context"
	"fmt"
	"time"

	"agentic_backend/internal/email"
	"agentic_backend/internal/events"
	"agentic_backend/internal/scheduler"
	"agentic_backend/platform/config"
	"agentic_backend/platform/logger"
)

const channelEmail = "email"

// Module delivers contact form notifications, either inline or through the
// task queue when one is set.
type Module struct {
	sender    email.Sender
	queue     scheduler.ContactNotificationQueue
	recipient string
	log       *logger.Logger
}

func New(sender email.Sender, cfg config.ContactConfig, log *logger.Logger) *Module {
	return &Module{
		sender:    sender,
		recipient: cfg.GetContactRecipient(),
		log:       log,
	}
}

func (m *Module) Name() string { return "notification" }

// SetContactQueue switches contact notifications to queued delivery.
func (m *Module) SetContactQueue(q scheduler.ContactNotificationQueue) { m.queue = q }

// RegisterHandlers subscribes to all relevant domain events on the event bus.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.ContactSubmittedEvent, m)
	bus.Subscribe(events.ContactNotificationDueEvent, m)

	m.log.Info("notification module registered event handlers", "queued", m.queue != nil)
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.ContactSubmitted:
		return m.handleContactSubmitted(ctx, e)
	case events.ContactNotificationDue:
		return m.deliverContact(ctx, e.SubmissionID, email.ContactNotification{
			Name:        e.Name,
			Email:       e.Email,
			Description: e.Description,
			SubmittedAt: e.SubmittedAt,
		})
	default:
		m.log.Warn("unhandled event type", "event", event.EventName())
		return nil
	}
}

func (m *Module) handleContactSubmitted(ctx context.Context, e events.ContactSubmitted) error {
	if m.queue != nil {
		err := m.queue.EnqueueContactNotification(ctx, scheduler.ContactNotificationPayload{
			SubmissionID: e.SubmissionID,
			Name:         e.Name,
			Email:        e.Email,
			Description:  e.Description,
			SubmittedAt:  e.SubmittedAt,
		})
		if err != nil {
			m.log.NotificationFailed("queue", m.recipient, err)
			return fmt.Errorf("enqueue contact notification: %w", err)
		}
		m.log.Info("contact notification queued", "submissionId", e.SubmissionID)
		return nil
	}

	return m.deliverContact(ctx, e.SubmissionID, email.ContactNotification{
		Name:        e.Name,
		Email:       e.Email,
		Description: e.Description,
		SubmittedAt: e.SubmittedAt,
	})
}

func (m *Module) deliverContact(ctx context.Context, submissionID string, n email.ContactNotification) error {
	start := time.Now()
	if err := m.sender.SendContactNotification(ctx, m.recipient, n); err != nil {
		m.log.NotificationFailed(channelEmail, m.recipient, err)
		return fmt.Errorf("send contact notification: %w", err)
	}
	m.log.Info("contact notification sent",
		"submissionId", submissionID,
		"recipient", m.recipient,
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
