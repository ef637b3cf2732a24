package httpkit

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agentic_backend/platform/apperr"
	"agentic_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimitPerIP(t *testing.T) {
	limiter := NewPerMinuteLimiter(2, logger.Discard())
	engine := gin.New()
	engine.POST("/limited", limiter.RateLimit(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/limited", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if code := do("10.0.0.1"); code != http.StatusNoContent {
			t.Fatalf("request %d: expected 204, got %d", i, code)
		}
	}
	if code := do("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after the burst, got %d", code)
	}
	if code := do("10.0.0.2"); code != http.StatusNoContent {
		t.Fatalf("another client must not be throttled, got %d", code)
	}
}

func TestUnlimitedWhenPerMinuteIsZero(t *testing.T) {
	limiter := NewPerMinuteLimiter(0, nil)
	engine := gin.New()
	engine.GET("/open", limiter.RateLimit(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/open", nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("request %d: expected 204, got %d", i, rec.Code)
		}
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "not found", err: apperr.NotFound("industry not found"), status: http.StatusNotFound, message: "industry not found"},
		{name: "validation", err: apperr.Validation("Validation error").WithFields([]apperr.FieldError{{Field: "name", Message: "Name is required"}}), status: http.StatusBadRequest, message: "Validation error"},
		{name: "bad request", err: apperr.BadRequest("Invalid request body").WithOp("contact.Submit"), status: http.StatusBadRequest, message: "Invalid request body"},
		{name: "wrapped internal", err: apperr.Wrap(apperr.KindInternal, "Internal server error", errors.New("smtp: 535")), status: http.StatusInternalServerError, message: "Internal server error"},
		{name: "plain error", err: errors.New("boom"), status: http.StatusInternalServerError, message: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			if !HandleError(c, tt.err) {
				t.Fatal("expected the error to be handled")
			}
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
			var body ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Success || body.Message != tt.message {
				t.Fatalf("unexpected body %+v", body)
			}
		})
	}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	if HandleError(c, nil) {
		t.Fatal("nil must not be handled")
	}
}

func TestRequestIDKeepsValidHeader(t *testing.T) {
	const id = "6f1c1b52-5d7e-4c1a-9b1e-3c2f8f0b4a11"
	var seen any
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) {
		seen = c.Request.Context().Value(logger.RequestIDKey)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, id)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Header().Get(HeaderRequestID) != id || seen != id {
		t.Fatalf("expected request id %q to be kept, got header %q context %v", id, rec.Header().Get(HeaderRequestID), seen)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "not-a-uuid")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if got := rec.Header().Get(HeaderRequestID); got == "" || got == "not-a-uuid" {
		t.Fatalf("expected a fresh request id, got %q", got)
	}
}
