package notification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"agentic_backend/internal/email"
	"agentic_backend/internal/events"
	"agentic_backend/internal/scheduler"
	"agentic_backend/platform/logger"
)

type testContactConfig struct{}

func (testContactConfig) GetContactNotifyMode() string { return "required" }
func (testContactConfig) GetContactDelivery() string   { return "direct" }
func (testContactConfig) GetContactRecipient() string  { return "sales@agentic.example" }

type testSender struct {
	calls []email.ContactNotification
	to    []string
	err   error
}

func (s *testSender) SendContactNotification(_ context.Context, toEmail string, n email.ContactNotification) error {
	s.calls = append(s.calls, n)
	s.to = append(s.to, toEmail)
	return s.err
}

type testQueue struct {
	payloads []scheduler.ContactNotificationPayload
	err      error
}

func (q *testQueue) EnqueueContactNotification(_ context.Context, p scheduler.ContactNotificationPayload) error {
	q.payloads = append(q.payloads, p)
	return q.err
}

func submitted() events.ContactSubmitted {
	return events.ContactSubmitted{
		BaseEvent:    events.NewBaseEvent(),
		SubmissionID: "sub-1",
		Name:         "Ann",
		Email:        "ann@x.com",
		Description:  "I need a bot for my shop",
		SubmittedAt:  time.Date(2026, time.October, 19, 11, 5, 0, 0, time.UTC),
	}
}

func TestContactSubmittedSendsDirectly(t *testing.T) {
	sender := &testSender{}
	m := New(sender, testContactConfig{}, logger.Discard())
	bus := events.NewInMemoryBus(logger.Discard())
	m.RegisterHandlers(bus)

	if err := bus.PublishSync(context.Background(), submitted()); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(sender.calls) != 1 {
		t.Fatalf("expected one email, got %d", len(sender.calls))
	}
	if sender.to[0] != "sales@agentic.example" || sender.calls[0].Name != "Ann" {
		t.Fatalf("unexpected delivery to %q: %+v", sender.to[0], sender.calls[0])
	}
}

func TestContactSubmittedSurfacesSendFailure(t *testing.T) {
	sender := &testSender{err: errors.New("smtp down")}
	m := New(sender, testContactConfig{}, logger.Discard())
	bus := events.NewInMemoryBus(logger.Discard())
	m.RegisterHandlers(bus)

	err := bus.PublishSync(context.Background(), submitted())
	if err == nil || !strings.Contains(err.Error(), "smtp down") {
		t.Fatalf("expected send failure, got %v", err)
	}
}

func TestContactSubmittedQueuedWhenQueueSet(t *testing.T) {
	sender := &testSender{}
	queue := &testQueue{}
	m := New(sender, testContactConfig{}, logger.Discard())
	m.SetContactQueue(queue)
	bus := events.NewInMemoryBus(logger.Discard())
	m.RegisterHandlers(bus)

	if err := bus.PublishSync(context.Background(), submitted()); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(sender.calls) != 0 {
		t.Fatal("queued delivery must not send inline")
	}
	if len(queue.payloads) != 1 || queue.payloads[0].SubmissionID != "sub-1" {
		t.Fatalf("unexpected queued payloads %+v", queue.payloads)
	}
}

func TestContactNotificationDueSends(t *testing.T) {
	sender := &testSender{}
	m := New(sender, testContactConfig{}, logger.Discard())

	err := m.Handle(context.Background(), events.ContactNotificationDue{
		BaseEvent:    events.NewBaseEvent(),
		SubmissionID: "sub-2",
		Name:         "Bob",
		Email:        "bob@x.com",
		Description:  "Need support automation",
	})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(sender.calls) != 1 || sender.calls[0].Email != "bob@x.com" {
		t.Fatalf("unexpected deliveries %+v", sender.calls)
	}
}
