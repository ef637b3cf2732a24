// Package components renders the landing page markup.
package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "AI-Агент | Поддержка, которая не спит"
	}
	if config.Description == "" {
		config.Description = "AI-агент для поддержки клиентов: решает 80% запросов мгновенно, 24/7."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("ru"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Class("page"),
				g.Group(content),
				Div(ID("toast"), Class("toast"), g.Attr("role", "status"), g.Attr("aria-live", "polite"), g.Attr("hidden")),
				Script(Src("/static/app.js"), g.Attr("defer")),
			),
		),
	})
}

// Heading renders a section title with an accented second half.
func Heading(plain, accent string, breakLine bool) g.Node {
	return H2(
		Class("section-title"),
		g.Text(plain),
		g.If(breakLine, Br()),
		g.If(!breakLine, g.Text(" ")),
		Span(Class("accent"), g.Text(accent)),
	)
}
