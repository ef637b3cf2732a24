package components

import (
	"strconv"

	"agentic_backend/internal/content"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Demo renders the chat widget seeded with the greeting and quick prompts.
func Demo(chat content.Chat) g.Node {
	return Section(
		ID("demo"),
		Class("section"),
		Div(
			Class("container narrow"),
			Heading("Наш AI", "в действии", false),
			H3(Class("section-lead"), g.Text("Этот агент не просто демо. Он работает на том же движке, что мы установим вам. Задайте ему любой вопрос о нашем сервисе.")),
			Div(
				Class("chat"),
				g.Attr("data-chat", ""),
				g.Attr("data-chat-apology", chat.Apology),
				Div(
					Class("chat-messages"),
					g.Attr("data-chat-messages", ""),
					g.Attr("aria-live", "polite"),
					chatBubble("agent", chat.Greeting),
				),
				Div(
					Class("chat-typing"),
					g.Attr("data-chat-typing", ""),
					g.Attr("hidden"),
					Span(Class("avatar"), g.Text("AI")),
					Span(Class("dots"), Span(), Span(), Span()),
				),
				Div(
					Class("chat-prompts"),
					P(g.Text("Популярные вопросы:")),
					Div(
						Class("chat-prompt-list"),
						g.Group(promptButtons(chat.QuickPrompts())),
					),
				),
				g.El("form",
					Class("chat-input"),
					g.Attr("data-chat-form", ""),
					Input(Type("text"), Name("message"), Placeholder("Введите ваш вопрос..."), g.Attr("autocomplete", "off"), g.Attr("data-testid", "chat-input")),
					Button(Type("submit"), Class("btn btn-primary"), g.Attr("data-testid", "send-button"), Span(g.Text("→"))),
				),
			),
		),
	)
}

func promptButtons(prompts []string) []g.Node {
	nodes := make([]g.Node, 0, len(prompts))
	for i, p := range prompts {
		nodes = append(nodes, Button(
			Type("button"),
			Class("btn btn-outline btn-sm"),
			g.Attr("data-prompt", p),
			g.Attr("data-testid", "prompt-"+strconv.Itoa(i)),
			g.Text(p),
		))
	}
	return nodes
}

func chatBubble(sender, text string) g.Node {
	return Div(
		Class("chat-message chat-"+sender),
		g.If(sender == "agent", Span(Class("avatar"), g.Text("AI"))),
		Div(Class("bubble"), P(g.Text(text))),
	)
}

// Lab renders the industry picker and the step list the simulation animates.
func Lab(industries []content.Industry, steps []content.Step) g.Node {
	return Section(
		ID("ai-lab"),
		Class("section"),
		g.Attr("data-lab", ""),
		Div(
			Class("container"),
			Div(Class("eyebrow"), Span(g.Text("AI-Лаборатория"))),
			H2(Class("section-title"), g.Text("Заглянуть под капот нашего процесса")),
			P(Class("section-lead"), g.Text("Выберите свою индустрию и посмотрите, как мы создаём AI-агента специально для вашей сферы бизнеса")),
			Div(
				Class("industries"),
				g.Attr("data-lab-industries", ""),
				g.Map(industries, industryCard),
			),
			Div(
				Class("lab-run"),
				g.Attr("data-lab-run", ""),
				g.Attr("hidden"),
				Div(
					Class("lab-header"),
					Span(Class("lab-icon"), g.Attr("data-lab-icon", "")),
					Div(
						Div(Class("muted"), g.Text("Создаём AI для:")),
						Div(Class("lab-industry"), g.Attr("data-lab-name", "")),
					),
				),
				Div(Class("lab-steps"), g.Map(steps, stepCard)),
				Div(
					Class("lab-result"),
					g.Attr("data-lab-result", ""),
					g.Attr("hidden"),
					H3(g.Text("🎉 AI-агент готов!")),
					P(g.Attr("data-lab-summary", "")),
					Div(Class("muted"), g.Text("Пример диалога:")),
					Div(Class("chat-message chat-user"), Div(Class("bubble"), P(g.Attr("data-lab-question", "")))),
					Div(
						Class("chat-message chat-agent"),
						Div(
							Class("bubble"),
							P(g.Attr("data-lab-answer", "")),
							Div(Class("muted small"), g.Text("Ответ получен за 0.3 сек • AI-агент")),
						),
					),
					Div(
						Class("lab-actions"),
						Button(Type("button"), Class("btn btn-outline"), g.Attr("data-lab-reset", ""), g.Attr("data-testid", "button-try-another"), g.Text("Попробовать другую индустрию")),
						Button(Type("button"), Class("btn btn-primary"), g.Attr("data-open-contact", ""), g.Attr("data-testid", "button-create-for-me"), g.Text("Создать такого для моего бизнеса")),
					),
				),
			),
		),
	)
}

func industryCard(ind content.Industry) g.Node {
	challenges := ind.Challenges
	if len(challenges) > 2 {
		challenges = challenges[:2]
	}

	return Button(
		Type("button"),
		Class("industry-card"),
		g.Attr("data-industry", ind.ID),
		g.Attr("data-icon", ind.Icon),
		g.Attr("data-name", ind.Name),
		g.Attr("data-testid", "industry-"+ind.ID),
		Div(Class("industry-icon"), g.Text(ind.Icon)),
		H3(g.Text(ind.Name)),
		P(g.Text(ind.Description)),
		Div(Class("muted small"), g.Text("Типичные вопросы:")),
		Ul(g.Map(challenges, func(c string) g.Node { return Li(g.Text(c)) })),
		Span(Class("accent"), g.Text("Создать AI-агента →")),
	)
}

func stepCard(step content.Step) g.Node {
	return Div(
		Class("lab-step"),
		g.Attr("data-step", strconv.Itoa(step.ID)),
		g.Attr("data-testid", "process-step-"+strconv.Itoa(step.ID)),
		Div(
			Class("lab-step-head"),
			Span(Class("lab-step-badge"), g.Text(strconv.Itoa(step.ID))),
			H3(g.Text(step.Title)),
		),
		P(Class("muted"), g.Text(step.Description)),
		Ul(
			Class("lab-details"),
			g.Map(step.Details, func(d string) g.Node {
				return Li(Class("lab-detail"), g.Text(d))
			}),
		),
	)
}

// ContactModal is the "Обсудить проект" dialog. Field names match the
// POST /api/contact body.
func ContactModal() g.Node {
	return g.El("dialog",
		ID("contact-modal"),
		Class("modal"),
		g.El("form",
			Class("contact-form"),
			g.Attr("data-contact-form", ""),
			g.Attr("novalidate"),
			H2(g.Text("Обсудить проект")),
			field("name", "Имя *", Input(ID("name"), Name("name"), Type("text"), g.Attr("required"), g.Attr("data-testid", "input-name"))),
			field("email", "Email *", Input(ID("email"), Name("email"), Type("email"), g.Attr("required"), g.Attr("data-testid", "input-email"))),
			field("description", "Краткое описание задачи *", Textarea(ID("description"), Name("description"), g.Attr("rows", "4"), g.Attr("required"), g.Attr("data-testid", "textarea-description"))),
			Div(
				Class("modal-actions"),
				Button(Type("submit"), Class("btn btn-primary"), g.Attr("data-testid", "button-submit"), g.Text("Отправить")),
				Button(Type("button"), Class("btn btn-outline"), g.Attr("data-close-contact", ""), g.Attr("data-testid", "button-cancel"), g.Text("Отмена")),
			),
		),
	)
}

func field(id, label string, control g.Node) g.Node {
	return Div(
		Class("field"),
		Label(g.Attr("for", id), g.Text(label)),
		control,
	)
}
