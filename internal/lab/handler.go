package lab

import (
	"net/http"

	"agentic_backend/internal/lab/disclosure"
	"agentic_backend/platform/apperr"
	"agentic_backend/platform/httpkit"
	"agentic_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

const eventResult = "result"

// Handler exposes the AI Lab catalog and the simulation stream.
type Handler struct {
	svc *Service
	log *logger.Logger
}

func NewHandler(svc *Service, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// ListIndustries handles GET /api/lab/industries
func (h *Handler) ListIndustries(c *gin.Context) {
	httpkit.OK(c, h.svc.Catalog())
}

// Run handles GET /api/lab/run?industry=...
// It streams the staged disclosure as Server-Sent Events and tears the timer
// down when the client goes away.
func (h *Handler) Run(c *gin.Context) {
	var req RunRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest("query 'industry' is required").WithOp("lab.Run"))
		return
	}

	industry, err := h.svc.Industry(req.Industry)
	if httpkit.HandleError(c, err) {
		return
	}

	log := h.log.WithContext(c.Request.Context())
	events := make(chan disclosure.Event, h.svc.EventsPerRun())
	timer := h.svc.NewTimer(func(ev disclosure.Event) {
		select {
		case events <- ev:
		default:
			log.Warn("lab stream buffer full, dropping event", "type", ev.Kind)
		}
	})
	defer timer.Close()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	timer.Start(industry.ID)
	log.Debug("lab run started", "industry", industry.ID)

	clientGone := c.Request.Context().Done()
	for {
		select {
		case <-clientGone:
			log.Debug("lab stream client disconnected", "industry", industry.ID)
			return
		case ev := <-events:
			if ev.Kind == disclosure.EventReset {
				continue
			}
			c.SSEvent(string(ev.Kind), RunEvent{
				Type:   ev.Kind,
				State:  ev.State,
				Step:   toStepView(ev.Step),
				Detail: ev.Detail,
			})
			c.Writer.Flush()

			if ev.Kind == disclosure.EventCompleted {
				c.SSEvent(eventResult, Result(industry))
				c.Writer.Flush()
				return
			}
		}
	}
}
