package contact

import (
	"net/http"
	"strings"

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

// Handler handles contact form HTTP requests.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Submit handles POST /api/contact
func (h *Handler) Submit(c *gin.Context) {
	req, ok := h.bindAndValidate(c)
	if !ok {
		return
	}

	resp, err := h.svc.Submit(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

func (h *Handler) bindAndValidate(c *gin.Context) (ContactRequest, bool) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest(errInvalidRequest).WithOp("contact.Submit"))
		return ContactRequest{}, false
	}

	// a name of spaces only counts as missing; the other fields are checked as sent
	req.Name = strings.TrimSpace(req.Name)
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, errValidation, validator.FieldErrors(err, fieldMessage))
		return ContactRequest{}, false
	}
	return req, true
}

func fieldMessage(fe playground.FieldError) string {
	switch fe.Field() {
	case "name":
		return "Name is required"
	case "email":
		return "Valid email is required"
	case "description":
		return "Description must be at least 10 characters"
	}
	return ""
}
