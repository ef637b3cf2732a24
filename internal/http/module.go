// Package http provides HTTP server infrastructure including the Module interface
// that all site modules implement for route registration.
package http

import (
	"agentic_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Module represents a bounded context that can register its HTTP routes.
// Each module encapsulates its own route setup, keeping the router decoupled
// from specific endpoints.
type Module interface {
	// Name returns the module's identifier for logging purposes.
	Name() string
	// RegisterRoutes mounts the module's routes using the shared RouterContext.
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext provides shared dependencies for module route registration.
type RouterContext struct {
	// Engine is the root Gin engine, used by modules serving pages and assets.
	Engine *gin.Engine
	// API is the /api route group.
	API *gin.RouterGroup
	// ContactRateLimiter throttles contact form submissions per client IP.
	ContactRateLimiter *httpkit.IPRateLimiter
	// ChatRateLimiter throttles chat demo messages per client IP.
	ChatRateLimiter *httpkit.IPRateLimiter
}
