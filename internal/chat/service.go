package chat

import (
	"context"
	"strings"
	"time"

	"agentic_backend/internal/chat/resolver"
	"agentic_backend/internal/content"
	"agentic_backend/platform/apperr"
	"agentic_backend/platform/logger"

	"github.com/google/uuid"
)

// Service answers chat widget messages through the configured resolver.
type Service struct {
	resolver resolver.Resolver
	strategy string
	chat     content.Chat
	log      *logger.Logger
}

func NewService(r resolver.Resolver, strategy string, chat content.Chat, log *logger.Logger) *Service {
	return &Service{resolver: r, strategy: strategy, chat: chat, log: log}
}

func (s *Service) Prompts() PromptsResponse {
	return PromptsResponse{Greeting: s.chat.Greeting, Prompts: s.chat.QuickPrompts()}
}

// Reply resolves one message. Resolver failures become the apology reply,
// the same thing the widget shows.
func (s *Service) Reply(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return ChatResponse{}, apperr.Validation("Message is required").
			WithFields([]apperr.FieldError{{Field: "message", Message: "Message is required"}})
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}
	ctx = context.WithValue(ctx, logger.ConversationIDKey, conversationID)
	log := s.log.WithContext(ctx)

	start := time.Now()
	reply, err := s.resolver.Resolve(ctx, resolver.Request{Message: req.Message, ConversationID: conversationID})
	if err != nil {
		log.Warn("chat reply failed", "strategy", s.strategy, "error", err)
		reply = s.chat.Apology
	}
	log.ChatReply(s.strategy, reply == s.chat.Fallback, float64(time.Since(start).Milliseconds()))

	return ChatResponse{Reply: reply, ConversationID: conversationID}, nil
}
