package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

var testSubmittedAt = time.Date(2026, time.October, 19, 11, 5, 0, 0, time.UTC)

func testNotification() ContactNotification {
	return ContactNotification{
		Name:        "Ann",
		Email:       "ann@x.com",
		Description: "I need a bot for my shop <script>",
		SubmittedAt: testSubmittedAt,
	}
}

func TestFormatRUUsesMoscowTime(t *testing.T) {
	if got := FormatLongRU(testSubmittedAt); got != "19 октября 2026 г., 14:05" {
		t.Fatalf("unexpected long format %q", got)
	}
	if got := FormatShortRU(testSubmittedAt); got != "19.10.2026, 14:05:00" {
		t.Fatalf("unexpected short format %q", got)
	}
}

func TestRenderContactNotification(t *testing.T) {
	msg, err := renderContactNotification(testNotification())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if msg.Subject != "Новая заявка от Ann - Agentic" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	if !strings.Contains(msg.HTML, "ann@x.com") || !strings.Contains(msg.HTML, "19 октября 2026 г., 14:05 (МСК)") {
		t.Fatalf("html body misses submission fields: %s", msg.HTML)
	}
	if strings.Contains(msg.HTML, "<script>") {
		t.Fatalf("html body must escape user input")
	}
	if !strings.Contains(msg.Text, "Имя: Ann") || !strings.Contains(msg.Text, "19.10.2026, 14:05:00") {
		t.Fatalf("text body misses submission fields: %s", msg.Text)
	}
}

func TestBrevoSenderPostsBothBodies(t *testing.T) {
	var got brevoEmailRequest
	var apiKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("api-key")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	sender := NewBrevoSender("key-123", "noreply@agentic.example", "Agentic")
	sender.endpoint = srv.URL

	if err := sender.SendContactNotification(context.Background(), "sales@agentic.example", testNotification()); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	if apiKey != "key-123" {
		t.Fatalf("expected api key header, got %q", apiKey)
	}
	if len(got.To) != 1 || got.To[0].Email != "sales@agentic.example" {
		t.Fatalf("unexpected recipients %+v", got.To)
	}
	if got.ReplyTo == nil || got.ReplyTo.Email != "ann@x.com" {
		t.Fatalf("expected reply-to of the submitter, got %+v", got.ReplyTo)
	}
	if got.HTMLContent == "" || got.TextContent == "" {
		t.Fatal("expected html and text content")
	}
}

func TestBrevoSenderReportsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	sender := NewBrevoSender("bad", "noreply@agentic.example", "Agentic")
	sender.endpoint = srv.URL

	err := sender.SendContactNotification(context.Background(), "sales@agentic.example", testNotification())
	if err == nil || !strings.Contains(err.Error(), "status 401") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestSMTPSenderBuildsMultipartMessage(t *testing.T) {
	sender := NewSMTPSender("smtp.example", 587, "user", "pass", "noreply@agentic.example", "Agentic")
	rendered, err := renderContactNotification(testNotification())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	msg, err := sender.buildMessage("sales@agentic.example", "ann@x.com", rendered)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	var buf strings.Builder
	if _, err := msg.WriteTo(&buf); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	raw := buf.String()
	if !strings.Contains(raw, "multipart/alternative") {
		t.Fatalf("expected multipart/alternative message")
	}
	if !strings.Contains(raw, "Reply-To:") || !strings.Contains(raw, "ann@x.com") {
		t.Fatalf("expected reply-to header, got:\n%s", raw)
	}
}
