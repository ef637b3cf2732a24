// Package events defines the contact pipeline events and exposes the
// in-process bus they travel on.
package events

import (
	"time"

	"agentic_backend/platform/events"
	"agentic_backend/platform/logger"
)

type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus returns the bus shared by the HTTP modules, the notification
// module and the queue worker of one process.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// ContactSubmitted is published when a contact form submission passed
// validation. Subscribers deliver the notification email.
type ContactSubmitted struct {
	BaseEvent
	SubmissionID string    `json:"submissionId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Description  string    `json:"description"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

// ContactSubmittedEvent is the name under which ContactSubmitted is published.
const ContactSubmittedEvent = "contact.submission.received"

func (e ContactSubmitted) EventName() string { return ContactSubmittedEvent }

// ContactNotificationDue is published by the queue worker when a queued
// contact notification is ready to be delivered.
type ContactNotificationDue struct {
	BaseEvent
	SubmissionID string    `json:"submissionId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Description  string    `json:"description"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

// ContactNotificationDueEvent is the name under which ContactNotificationDue is published.
const ContactNotificationDueEvent = "contact.notification.due"

func (e ContactNotificationDue) EventName() string { return ContactNotificationDueEvent }
