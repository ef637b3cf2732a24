package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Navigation() g.Node {
	return Nav(
		Class("nav"),
		g.Attr("data-testid", "navigation"),
		Div(
			Class("container nav-inner"),
			Div(Class("logo"), g.Text("AI-Агент")),
			Div(
				Class("nav-links"),
				Button(Type("button"), Class("nav-link"), g.Attr("data-scroll", "process"), g.Attr("data-testid", "nav-process"), g.Text("Процесс")),
				Button(Type("button"), Class("nav-link"), g.Attr("data-scroll", "demo"), g.Attr("data-testid", "nav-demo"), g.Text("Демо")),
				Button(Type("button"), Class("nav-link"), g.Attr("data-open-contact", ""), g.Attr("data-testid", "nav-contact"), g.Text("Контакт")),
			),
		),
	)
}

func Hero() g.Node {
	return Section(
		ID("hero"),
		Class("hero"),
		Div(
			Class("container hero-inner"),
			H1(
				Class("hero-title"),
				g.Text("Поддержка, которая "),
				Br(),
				Span(Class("accent"), g.Text("не спит")),
			),
			H2(Class("hero-subtitle"), g.Text("Наш AI-агент решает 80% запросов клиентов. Мгновенно.")),
			Div(
				Class("hero-actions"),
				Button(Type("button"), Class("btn btn-primary"), g.Attr("data-scroll", "demo"), g.Attr("data-testid", "button-watch-demo"), g.Text("Посмотреть в действии")),
				Button(Type("button"), Class("btn btn-outline"), g.Attr("data-scroll", "process"), g.Attr("data-testid", "button-how-it-works"), g.Text("Как это работает")),
			),
		),
	)
}

type feature struct {
	Icon  string
	Title string
	Text  string
}

var oldApproach = []feature{
	{Icon: "⏰", Title: "Ограниченное время работы", Text: "Поддержка доступна только в рабочие часы, клиенты вынуждены ждать"},
	{Icon: "❌", Title: "Человеческий фактор", Text: "Ошибки в ответах, неконсистентность информации, усталость сотрудников"},
	{Icon: "🐌", Title: "Медленная скорость", Text: "Длительное время ответа, необходимость поиска информации, очереди"},
}

var agentApproach = []feature{
	{Icon: "🌙", Title: "24/7/365 доступность", Text: "Клиенты получают помощь в любое время, без выходных и праздников"},
	{Icon: "✅", Title: "100% точность", Text: "Всегда актуальная информация, отсутствие ошибок, консистентные ответы"},
	{Icon: "⚡", Title: "Мгновенный ответ", Text: "Одновременная поддержка тысяч клиентов без очередей и задержек"},
}

// Comparison shows the old approach by default; the script toggles panels.
func Comparison() g.Node {
	return Section(
		ID("comparison"),
		Class("section"),
		Div(
			Class("container"),
			Heading("Новый стандарт ", "поддержки клиентов", true),
			Div(
				Class("toggle"),
				g.Attr("role", "tablist"),
				Button(Type("button"), Class("toggle-btn toggle-active"), g.Attr("data-tab", "old"), g.Attr("data-testid", "toggle-old-approach"), g.Text("Старый подход")),
				Button(Type("button"), Class("toggle-btn"), g.Attr("data-tab", "ai"), g.Attr("data-testid", "toggle-ai-agent"), g.Text("AI-Агент")),
			),
			featureList("old", oldApproach, false, "old-approach-content"),
			featureList("ai", agentApproach, true, "ai-agent-content"),
		),
	)
}

func featureList(tab string, items []feature, hidden bool, testID string) g.Node {
	return Div(
		Class("features"),
		g.Attr("data-panel", tab),
		g.Attr("data-testid", testID),
		g.If(hidden, g.Attr("hidden")),
		g.Map(items, func(f feature) g.Node {
			return Div(
				Class("feature"),
				Div(Class("feature-icon"), Span(g.Text(f.Icon))),
				Div(
					H3(g.Text(f.Title)),
					P(g.Text(f.Text)),
				),
			)
		}),
	)
}

var processStages = []struct {
	Title string
	Text  string
}{
	{Title: "ШАГ 1: АНАЛИЗ", Text: "Мы погружаемся в ваш бизнес. Изучаем базу знаний, FAQ, диалоги, чтобы AI понял все нюансы ваших продуктов и клиентов."},
	{Title: "ШАГ 2: НАСТРОЙКА", Text: "Создаем уникальную \"личность\" для вашего AI-агента. Он будет общаться в стиле вашего бренда, будь то формальный или дружелюбный тон."},
	{Title: "ШАГ 3: ИНТЕГРАЦИЯ", Text: "Предоставляем безупречно работающий код, который легко встраивается в ваш сайт. Проводим финальное тестирование и запускаем."},
}

func Process() g.Node {
	nodes := make([]g.Node, 0, len(processStages))
	for _, stage := range processStages {
		nodes = append(nodes, Div(
			Class("process-stage"),
			H3(g.Text(stage.Title)),
			P(g.Text(stage.Text)),
		))
	}

	return Section(
		ID("process"),
		Class("section"),
		Div(
			Class("container"),
			H2(Class("section-title"), g.Text("Прозрачный процесс.")),
			P(Class("section-lead"), g.Text("Гарантированный результат.")),
			Div(Class("process-line")),
			Div(Class("process-stages"), g.Group(nodes)),
		),
	)
}

func Pricing() g.Node {
	return Section(
		ID("pricing"),
		Class("section"),
		Div(
			Class("container narrow"),
			Heading("Инвестиция,", "а не расход", false),
			Div(
				Class("pricing-text"),
				P(g.Text("Мы не верим в универсальные тарифы, потому что не бывает универсальных бизнесов. Стоимость каждого проекта рассчитывается индивидуально и зависит от его уникальных задач.")),
				P(g.Text("Наш подход: полноценная разработка под ключ. Мы создаем не просто чат-бота, а интеллектуального агента, который становится естественным продолжением вашей команды поддержки.")),
				P(g.Text("Инвестиции в AI-агента окупаются в первые месяцы работы за счет снижения нагрузки на сотрудников и увеличения удовлетворенности клиентов.")),
			),
			Button(Type("button"), Class("btn btn-primary"), g.Attr("data-open-contact", ""), g.Attr("data-testid", "button-discuss-project"), g.Text("Обсудить мой проект")),
		),
	)
}
