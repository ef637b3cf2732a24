package chat

import (
	"net/http"

	"agentic_backend/platform/apperr"
	"agentic_backend/platform/httpkit"
	"agentic_backend/platform/validator"

	"github.com/gin-gonic/gin"
	playground "github.com/go-playground/validator/v10"
)

const (
	errInvalidRequest = "Invalid request body"
	errValidation     = "Validation error"
)

// Handler exposes the chat demo endpoints.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Prompts handles GET /api/chat/prompts
func (h *Handler) Prompts(c *gin.Context) {
	httpkit.OK(c, h.svc.Prompts())
}

// Send handles POST /api/chat
func (h *Handler) Send(c *gin.Context) {
	var req ChatRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Reply(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

func (h *Handler) bindAndValidate(c *gin.Context, req *ChatRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest(errInvalidRequest).WithOp("chat.Send"))
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, errValidation, validator.FieldErrors(err, fieldMessage))
		return false
	}
	return true
}

func fieldMessage(fe playground.FieldError) string {
	switch fe.Field() {
	case "message":
		return "Message is required"
	}
	return ""
}
