package lab

import (
	"agentic_backend/internal/content"
	"agentic_backend/internal/lab/disclosure"
)

// RunRequest selects the industry to simulate.
type RunRequest struct {
	Industry string `form:"industry" binding:"required"`
}

// StepView is a process step as the widget renders it.
type StepView struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DurationMs  int64    `json:"durationMs"`
	Details     []string `json:"details"`
}

// CatalogResponse lists what the lab can simulate and how.
type CatalogResponse struct {
	Industries []content.Industry `json:"industries"`
	Steps      []StepView         `json:"steps"`
}

// RunEvent is the payload of every state transition sent on the stream.
type RunEvent struct {
	Type   disclosure.EventKind `json:"type"`
	State  disclosure.State     `json:"state"`
	Step   StepView             `json:"step"`
	Detail string               `json:"detail,omitempty"`
}

// RunResult is the final view shown after the last step.
type RunResult struct {
	Industry string `json:"industry"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func toStepView(s disclosure.ProcessStep) StepView {
	return StepView{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		DurationMs:  s.Duration.Milliseconds(),
		Details:     s.Details,
	}
}
