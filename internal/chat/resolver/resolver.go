// Package resolver turns a chat demo message into the agent's reply, either
// from the canned catalog or by delegating to an external webhook.
package resolver

import (
	"context"
	"fmt"
	"time"

	"agentic_backend/internal/content"
	"agentic_backend/platform/config"
)

// Request is one user message within a conversation.
type Request struct {
	Message        string
	ConversationID string
}

// Resolver produces the agent reply for a message.
type Resolver interface {
	Resolve(ctx context.Context, req Request) (string, error)
}

// NetworkError reports a failed exchange with the reply webhook. StatusCode
// is zero when no response was received.
type NetworkError struct {
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("chat webhook returned an unreadable response (status %d): %v", e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("chat webhook responded with status %d", e.StatusCode)
	default:
		return fmt.Sprintf("chat webhook unreachable: %v", e.Err)
	}
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Static answers from an exact-text prompt catalog after a fixed delay.
type Static struct {
	replies  map[string]string
	fallback string
	delay    time.Duration
}

func NewStatic(replies map[string]string, fallback string, delay time.Duration) *Static {
	return &Static{replies: replies, fallback: fallback, delay: delay}
}

// Lookup returns the canned reply and whether the message matched a prompt.
func (s *Static) Lookup(message string) (string, bool) {
	if reply, ok := s.replies[message]; ok {
		return reply, true
	}
	return s.fallback, false
}

func (s *Static) Resolve(ctx context.Context, req Request) (string, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}
	reply, _ := s.Lookup(req.Message)
	return reply, nil
}

// New picks the configured strategy.
func New(cfg config.ChatConfig, chat content.Chat) (Resolver, error) {
	switch cfg.GetChatReplyStrategy() {
	case config.ChatStrategyStatic:
		return NewStatic(chat.Replies(), chat.Fallback, cfg.GetChatReplyDelay()), nil
	case config.ChatStrategyRemote:
		return NewRemote(cfg.GetChatWebhookURL(), chat.DefaultReply, cfg.GetChatWebhookTimeout()), nil
	default:
		return nil, fmt.Errorf("unsupported chat reply strategy %q", cfg.GetChatReplyStrategy())
	}
}
