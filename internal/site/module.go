// Package site serves the landing page and its static assets.
package site

import (
	"bytes"
	"embed"
	"io/fs"
	"net/http"

	"agentic_backend/internal/content"
	apphttp "agentic_backend/internal/http"
	"agentic_backend/internal/site/components"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"
)

//go:embed static
var staticFS embed.FS

// Module wires the landing page routes.
type Module struct {
	page   []byte
	assets http.FileSystem
}

// NewModule renders the page once; the catalog does not change at runtime.
func NewModule(catalog *content.Catalog) (*Module, error) {
	var buf bytes.Buffer
	if err := LandingPage(catalog).Render(&buf); err != nil {
		return nil, err
	}

	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	return &Module{page: buf.Bytes(), assets: http.FS(sub)}, nil
}

// LandingPage assembles every section of the site.
func LandingPage(catalog *content.Catalog) g.Node {
	return components.Layout(
		components.PageConfig{},
		components.Navigation(),
		components.Hero(),
		components.Comparison(),
		components.Process(),
		components.Demo(catalog.Chat),
		components.Lab(catalog.Industries, catalog.Steps),
		components.Pricing(),
		components.ContactModal(),
	)
}

func (m *Module) Name() string {
	return "site"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Engine.GET("/", m.index)
	ctx.Engine.StaticFS("/static", m.assets)
}

func (m *Module) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", m.page)
}

var _ apphttp.Module = (*Module)(nil)
