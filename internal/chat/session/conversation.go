// Package session keeps the transcript of one chat demo conversation.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"agentic_backend/internal/chat/resolver"

	"github.com/google/uuid"
)

var (
	ErrEmptyMessage = errors.New("chat message is empty")
	ErrReplyPending = errors.New("chat reply is still pending")
)

type Sender string

const (
	SenderUser  Sender = "user"
	SenderAgent Sender = "agent"
)

type Message struct {
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

type Option func(*Conversation)

// WithObserver is called after every append, outside the transcript lock.
func WithObserver(fn func(Message)) Option {
	return func(c *Conversation) { c.onMessage = fn }
}

// WithErrorHandler receives resolver failures. The transcript gets the
// apology either way.
func WithErrorHandler(fn func(error)) Option {
	return func(c *Conversation) { c.onError = fn }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Conversation) { c.now = now }
}

// Conversation is an append-only transcript. Each accepted user message gets
// exactly one agent message.
type Conversation struct {
	id       string
	resolver resolver.Resolver
	apology  string

	now       func() time.Time
	onMessage func(Message)
	onError   func(error)

	pending atomic.Bool

	mu       sync.Mutex
	messages []Message
	typing   bool
}

// New starts a conversation whose transcript opens with greeting.
func New(r resolver.Resolver, greeting, apology string, opts ...Option) *Conversation {
	c := &Conversation{
		id:       uuid.NewString(),
		resolver: r,
		apology:  apology,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if greeting != "" {
		c.messages = append(c.messages, Message{Content: greeting, Sender: SenderAgent, Timestamp: c.now()})
	}
	return c
}

// ID identifies the conversation to the remote resolver. It never changes.
func (c *Conversation) ID() string { return c.id }

// Messages returns a copy of the transcript.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.messages...)
}

// Typing reports whether a reply is being resolved.
func (c *Conversation) Typing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.typing
}

// Send appends text as a user message, resolves the reply and appends it.
// Blank text and calls made while a reply is pending change nothing.
func (c *Conversation) Send(ctx context.Context, text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyMessage
	}
	if !c.pending.CompareAndSwap(false, true) {
		return Message{}, ErrReplyPending
	}
	defer c.pending.Store(false)

	c.append(Message{Content: text, Sender: SenderUser, Timestamp: c.now()}, true)

	reply, err := c.resolver.Resolve(ctx, resolver.Request{Message: text, ConversationID: c.id})
	if err != nil {
		if c.onError != nil {
			c.onError(err)
		}
		reply = c.apology
	}

	agent := Message{Content: reply, Sender: SenderAgent, Timestamp: c.now()}
	c.append(agent, false)
	return agent, nil
}

func (c *Conversation) append(m Message, typing bool) {
	c.mu.Lock()
	c.messages = append(c.messages, m)
	c.typing = typing
	c.mu.Unlock()

	if c.onMessage != nil {
		c.onMessage(m)
	}
}
