package resolver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type webhookRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
}

type webhookResponse struct {
	Output *string `json:"output"`
}

// Remote forwards each message to a webhook and relays its output field.
type Remote struct {
	url          string
	defaultReply string
	client       *http.Client
}

func NewRemote(url, defaultReply string, timeout time.Duration) *Remote {
	return &Remote{
		url:          url,
		defaultReply: defaultReply,
		client:       &http.Client{Timeout: timeout},
	}
}

func (r *Remote) Resolve(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(webhookRequest{Message: req.Message, ConversationID: req.ConversationID})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat webhook request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", &NetworkError{StatusCode: resp.StatusCode}
	}

	var out webhookResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil && err != io.EOF {
		return "", &NetworkError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode chat webhook response: %w", err)}
	}
	if out.Output == nil || *out.Output == "" {
		return r.defaultReply, nil
	}
	return *out.Output, nil
}
