package lab

import (
	"agentic_backend/internal/content"
	"agentic_backend/internal/lab/disclosure"
	"agentic_backend/platform/apperr"
)

// Service hands out AI Lab timers over the process step catalog.
type Service struct {
	industries []content.Industry
	steps      []disclosure.ProcessStep
	clock      disclosure.Clock
}

// NewService builds a Service. A nil clock means the wall clock.
func NewService(industries []content.Industry, steps []disclosure.ProcessStep, clock disclosure.Clock) *Service {
	return &Service{industries: industries, steps: steps, clock: clock}
}

// StepsFromCatalog converts the content steps into timer steps.
func StepsFromCatalog(steps []content.Step) []disclosure.ProcessStep {
	out := make([]disclosure.ProcessStep, 0, len(steps))
	for _, s := range steps {
		out = append(out, disclosure.ProcessStep{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Duration:    s.Duration,
			Details:     s.Details,
		})
	}
	return out
}

func (s *Service) Catalog() CatalogResponse {
	views := make([]StepView, 0, len(s.steps))
	for _, step := range s.steps {
		views = append(views, toStepView(step))
	}
	return CatalogResponse{Industries: s.industries, Steps: views}
}

// Industry returns the industry with the given id or a not-found error.
func (s *Service) Industry(id string) (content.Industry, error) {
	for _, ind := range s.industries {
		if ind.ID == id {
			return ind, nil
		}
	}
	return content.Industry{}, apperr.NotFound("industry not found").WithOp("lab.Industry")
}

// NewTimer creates a timer owned by one caller. The caller must Close it.
// EventsPerRun sizes the buffer between a timer and its consumer.
func (s *Service) EventsPerRun() int {
	return disclosure.EventsPerRun(s.steps)
}

func (s *Service) NewTimer(observer func(disclosure.Event)) *disclosure.Timer {
	opts := []disclosure.Option{disclosure.WithObserver(observer)}
	if s.clock != nil {
		opts = append(opts, disclosure.WithClock(s.clock))
	}
	return disclosure.New(s.steps, opts...)
}

// Result pairs the industry's first sample question with its first solution.
func Result(ind content.Industry) RunResult {
	return RunResult{
		Industry: ind.ID,
		Question: ind.SampleQuestion(),
		Answer:   ind.SampleAnswer(),
	}
}
