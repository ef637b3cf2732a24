// Package form is the client side of the contact modal: it checks the three
// fields are filled in, posts them once and reports the outcome.
package form

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const (
	TitleSent       = "Заявка отправлена"
	MessageSent     = "Спасибо! Мы свяжемся с вами в ближайшее время."
	TitleFailed     = "Ошибка"
	MessageFailed   = "Произошла ошибка при отправке заявки. Попробуйте еще раз."
	TitleIncomplete = "Заполните все поля"
	MessageMissing  = "Пожалуйста, заполните все обязательные поля."
)

// ErrSubmitPending is returned while a previous submit is still in flight.
var ErrSubmitPending = errors.New("contact form submit already in progress")

type Fields struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

// ValidationError lists the fields left empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Validate checks presence only; the server owns the format rules.
func Validate(f Fields) error {
	var missing []string
	if strings.TrimSpace(f.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(f.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(f.Description) == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Response is the server's answer to an accepted submission.
type Response struct {
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Submitter delivers the fields to the backend.
type Submitter interface {
	Submit(ctx context.Context, f Fields) (Response, error)
}

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a toast shown to the visitor.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

type Notifier interface {
	Notify(Notice)
}

type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// Form holds the modal state.
type Form struct {
	submitter Submitter
	notifier  Notifier
	onClose   func()

	pending atomic.Bool

	mu     sync.Mutex
	fields Fields
}

// New creates an empty form. onClose is called once per successful submit.
func New(submitter Submitter, notifier Notifier, onClose func()) *Form {
	return &Form{submitter: submitter, notifier: notifier, onClose: onClose}
}

func (f *Form) SetFields(fields Fields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
}

func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Pending reports whether a submit is in flight.
func (f *Form) Pending() bool { return f.pending.Load() }

// Submit validates the fields and sends them exactly once. On success the
// fields are cleared and the form closes; on failure they are kept so the
// visitor can try again.
func (f *Form) Submit(ctx context.Context) (Response, error) {
	fields := f.Fields()
	if err := Validate(fields); err != nil {
		f.notify(Notice{Kind: NoticeError, Title: TitleIncomplete, Message: MessageMissing})
		return Response{}, err
	}

	if !f.pending.CompareAndSwap(false, true) {
		return Response{}, ErrSubmitPending
	}
	defer f.pending.Store(false)

	resp, err := f.submitter.Submit(ctx, fields)
	if err != nil {
		f.notify(Notice{Kind: NoticeError, Title: TitleFailed, Message: MessageFailed})
		return Response{}, err
	}

	f.SetFields(Fields{})
	message := resp.Message
	if message == "" {
		message = MessageSent
	}
	f.notify(Notice{Kind: NoticeSuccess, Title: TitleSent, Message: message})
	if f.onClose != nil {
		f.onClose()
	}
	return resp, nil
}

func (f *Form) notify(n Notice) {
	if f.notifier != nil {
		f.notifier.Notify(n)
	}
}
