package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"agentic_backend/platform/apperr"
)

// NetworkError reports a submit that did not succeed: a transport failure
// (StatusCode zero) or a non-2xx answer carrying the server envelope.
type NetworkError struct {
	StatusCode int
	Message    string
	Fields     []apperr.FieldError
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("contact submit failed: %v", e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("contact submit rejected with status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("contact submit rejected with status %d", e.StatusCode)
}

func (e *NetworkError) Unwrap() error { return e.Err }

type errorEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  []apperr.FieldError `json:"errors"`
}

// HTTPSubmitter posts the form to the site backend.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSubmitter targets <baseURL>/api/contact.
func NewHTTPSubmitter(baseURL string, client *http.Client) *HTTPSubmitter {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPSubmitter{
		endpoint: strings.TrimRight(baseURL, "/") + "/api/contact",
		client:   client,
	}
}

func (s *HTTPSubmitter) Submit(ctx context.Context, f Fields) (Response, error) {
	body, err := json.Marshal(f)
	if err != nil {
		return Response{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Response{}, &NetworkError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Response{}, &NetworkError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env errorEnvelope
		_ = json.Unmarshal(data, &env)
		return Response{}, &NetworkError{StatusCode: resp.StatusCode, Message: env.Message, Fields: env.Errors}
	}

	var out Response
	if err := json.Unmarshal(data, &out); err != nil {
		return Response{}, &NetworkError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode contact response: %w", err)}
	}
	if !out.Success {
		var env errorEnvelope
		_ = json.Unmarshal(data, &env)
		return Response{}, &NetworkError{StatusCode: resp.StatusCode, Message: env.Message, Fields: env.Errors}
	}
	return out, nil
}
