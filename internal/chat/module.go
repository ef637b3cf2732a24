// Package chat serves the chat demo widget: the quick prompts and one agent
// reply per posted message.
package chat

import (
	"agentic_backend/internal/chat/resolver"
	"agentic_backend/internal/content"
	apphttp "agentic_backend/internal/http"
	"agentic_backend/platform/config"
	"agentic_backend/platform/logger"
	"agentic_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Module wires the chat demo HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(cfg config.ChatConfig, catalog *content.Catalog, val *validator.Validator, log *logger.Logger) (*Module, error) {
	r, err := resolver.New(cfg, catalog.Chat)
	if err != nil {
		return nil, err
	}
	svc := NewService(r, cfg.GetChatReplyStrategy(), catalog.Chat, log)
	return &Module{handler: NewHandler(svc, val)}, nil
}

func (m *Module) Name() string {
	return "chat"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/chat")
	group.GET("/prompts", m.handler.Prompts)

	send := []gin.HandlerFunc{m.handler.Send}
	if ctx.ChatRateLimiter != nil {
		send = append([]gin.HandlerFunc{ctx.ChatRateLimiter.RateLimit()}, send...)
	}
	group.POST("", send...)
}

var _ apphttp.Module = (*Module)(nil)
