package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agentic_backend/internal/content"
)

func loadChat(t *testing.T) content.Chat {
	t.Helper()
	c, err := content.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c.Chat
}

func TestStaticAnswersKnownPrompt(t *testing.T) {
	chat := loadChat(t)
	r := NewStatic(chat.Replies(), chat.Fallback, 0)

	reply, err := r.Resolve(context.Background(), Request{Message: "Как я могу с вами связаться?"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if reply != chat.Replies()["Как я могу с вами связаться?"] {
		t.Fatalf("unexpected reply %q", reply)
	}
	if reply == chat.Fallback {
		t.Fatal("known prompt must not get the fallback")
	}
}

func TestStaticFallsBackForUnknownText(t *testing.T) {
	chat := loadChat(t)
	r := NewStatic(chat.Replies(), chat.Fallback, 0)

	reply, err := r.Resolve(context.Background(), Request{Message: "сколько стоит доставка?"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if reply != chat.Fallback {
		t.Fatalf("expected fallback, got %q", reply)
	}
	if _, matched := r.Lookup("сколько стоит доставка?"); matched {
		t.Fatal("unknown text reported as matched")
	}
}

func TestStaticDelayHonoursContext(t *testing.T) {
	r := NewStatic(nil, "fallback", time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := r.Resolve(ctx, Request{Message: "hi"}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestRemoteRelaysOutput(t *testing.T) {
	var got webhookRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"output":"Здравствуйте!"}`))
	}))
	defer srv.Close()

	r := NewRemote(srv.URL, "default", time.Second)
	reply, err := r.Resolve(context.Background(), Request{Message: "привет", ConversationID: "conv-1"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if reply != "Здравствуйте!" {
		t.Fatalf("unexpected reply %q", reply)
	}
	if got.Message != "привет" || got.ConversationID != "conv-1" {
		t.Fatalf("unexpected webhook request %+v", got)
	}
}

func TestRemoteDefaultsWhenOutputMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	reply, err := NewRemote(srv.URL, "default", time.Second).Resolve(context.Background(), Request{Message: "x"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if reply != "default" {
		t.Fatalf("expected default reply, got %q", reply)
	}
}

func TestRemoteNon2xxIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL, "default", time.Second).Resolve(context.Background(), Request{Message: "x"})
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if netErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("unexpected status %d", netErr.StatusCode)
	}
}

func TestRemoteUnreachableIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewRemote(url, "default", time.Second).Resolve(context.Background(), Request{Message: "x"})
	var netErr *NetworkError
	if !errors.As(err, &netErr) || netErr.StatusCode != 0 {
		t.Fatalf("expected transport NetworkError, got %v", err)
	}
}
