package content

import (
	"strings"
	"testing"
	"time"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(c.Steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(c.Steps))
	}
	wantDurations := []time.Duration{2 * time.Second, 3 * time.Second, 2500 * time.Millisecond}
	for i, s := range c.Steps {
		if s.ID != i+1 {
			t.Fatalf("step %d has id %d", i, s.ID)
		}
		if s.Duration != wantDurations[i] {
			t.Fatalf("step %d duration %v, want %v", s.ID, s.Duration, wantDurations[i])
		}
		if len(s.Details) != 4 {
			t.Fatalf("step %d has %d details", s.ID, len(s.Details))
		}
	}

	ind, ok := c.Industry("saas")
	if !ok {
		t.Fatal("expected saas industry")
	}
	if ind.SampleQuestion() != "Как подключить CRM к вашей платформе?" {
		t.Fatalf("unexpected sample question %q", ind.SampleQuestion())
	}
	if ind.SampleAnswer() != "Пошаговые гайды по настройке" {
		t.Fatalf("unexpected sample answer %q", ind.SampleAnswer())
	}
	if _, ok := c.Industry("bakery"); ok {
		t.Fatal("unexpected industry bakery")
	}
}

func TestChatCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got := len(c.Chat.QuickPrompts()); got != 3 {
		t.Fatalf("expected 3 quick prompts, got %d", got)
	}
	replies := c.Chat.Replies()
	if reply := replies["Как я могу с вами связаться?"]; reply == "" {
		t.Fatal("expected a reply for the contact prompt")
	}
	if !strings.Contains(c.Chat.Fallback, "Обсудить мой проект") {
		t.Fatalf("unexpected fallback %q", c.Chat.Fallback)
	}
}

func TestParseRejectsBrokenCatalog(t *testing.T) {
	doc := []byte(`
steps:
  - id: 1
    title: x
industries:
  - id: a
  - id: a
chat:
  greeting: hi
`)
	_, err := Parse(doc)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"no duration", "duplicate industry", "apology"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}
