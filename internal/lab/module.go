// Package lab serves the AI Lab widget: the industry catalog and a live
// stream of the staged process simulation.
package lab

import (
	"agentic_backend/internal/content"
	apphttp "agentic_backend/internal/http"
	"agentic_backend/platform/logger"
)

// Module wires the AI Lab HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(catalog *content.Catalog, log *logger.Logger) *Module {
	svc := NewService(catalog.Industries, StepsFromCatalog(catalog.Steps), nil)
	return &Module{handler: NewHandler(svc, log)}
}

func (m *Module) Name() string {
	return "lab"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/lab")
	group.GET("/industries", m.handler.ListIndustries)
	group.GET("/run", m.handler.Run)
}

var _ apphttp.Module = (*Module)(nil)
