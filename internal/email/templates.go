package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"
	_ "time/tzdata"
)

//go:embed templates/*.html templates/*.txt
var templateFS embed.FS

// moscow is the zone the sales team reads timestamps in.
var moscow = mustLoadLocation("Europe/Moscow")

var monthsGenitive = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

type baseEmailData struct {
	Title   string
	Heading string
}

type contactNotificationEmailData struct {
	baseEmailData
	Name             string
	Email            string
	Description      string
	SubmittedAtLong  string
	SubmittedAtShort string
}

// renderedEmail carries both bodies of a multipart message.
type renderedEmail struct {
	Subject string
	HTML    string
	Text    string
}

func renderContactNotification(n ContactNotification) (renderedEmail, error) {
	data := contactNotificationEmailData{
		baseEmailData: baseEmailData{
			Title:   "Новая заявка с сайта Agentic",
			Heading: "Новая заявка с сайта Agentic",
		},
		Name:             n.Name,
		Email:            n.Email,
		Description:      n.Description,
		SubmittedAtLong:  FormatLongRU(n.SubmittedAt),
		SubmittedAtShort: FormatShortRU(n.SubmittedAt),
	}

	htmlBody, err := renderHTMLTemplate("contact_notification.html", data)
	if err != nil {
		return renderedEmail{}, err
	}
	textBody, err := renderTextTemplate("contact_notification.txt", data)
	if err != nil {
		return renderedEmail{}, err
	}

	return renderedEmail{
		Subject: fmt.Sprintf(subjectContactNotificationFmt, n.Name),
		HTML:    htmlBody,
		Text:    textBody,
	}, nil
}

func renderHTMLTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := htmltemplate.New("base.html").ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}

func renderTextTemplate(name string, data any) (string, error) {
	tmpl, err := texttemplate.New(name).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}

// FormatLongRU renders t in Moscow time as "19 октября 2026 г., 14:05".
func FormatLongRU(t time.Time) string {
	local := t.In(moscow)
	return fmt.Sprintf("%d %s %d г., %02d:%02d",
		local.Day(), monthsGenitive[local.Month()-1], local.Year(), local.Hour(), local.Minute())
}

// FormatShortRU renders t in Moscow time as "19.10.2026, 14:05:00".
func FormatShortRU(t time.Time) string {
	return t.In(moscow).Format("02.01.2006, 15:04:05")
}

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("MSK", 3*60*60)
	}
	return loc
}
