package contact

import (
	"agentic_backend/internal/events"
	apphttp "agentic_backend/internal/http"
	"agentic_backend/platform/config"
	"agentic_backend/platform/logger"
	"agentic_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Module wires the contact form HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(bus events.Bus, cfg config.ContactConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := NewService(bus, cfg.GetContactNotifyMode(), log)
	return &Module{handler: NewHandler(svc, val)}
}

func (m *Module) Name() string {
	return "contact"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	handlers := []gin.HandlerFunc{m.handler.Submit}
	if ctx.ContactRateLimiter != nil {
		handlers = append([]gin.HandlerFunc{ctx.ContactRateLimiter.RateLimit()}, handlers...)
	}
	ctx.API.POST("/contact", handlers...)
}

var _ apphttp.Module = (*Module)(nil)
