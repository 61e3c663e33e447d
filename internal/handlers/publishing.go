package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coursewave/coursewave-backend/internal/publish"
	"github.com/coursewave/coursewave-backend/internal/scheduler"
)

// PublishingHandler exposes the publish lifecycle operations. It is a thin
// mapping from orchestrator outcomes to HTTP status codes; all decisions
// live in the publish package.
type PublishingHandler struct {
	orch *publish.Orchestrator
	loop *scheduler.Loop
}

func NewPublishingHandler(orch *publish.Orchestrator, loop *scheduler.Loop) *PublishingHandler {
	return &PublishingHandler{orch: orch, loop: loop}
}

func renderOutcome(c *gin.Context, out publish.Outcome) {
	body := gin.H{"outcome": out.Code}
	if out.Reason != nil {
		body["reason"] = out.Reason.Error()
	}
	if len(out.MissingVariants) > 0 {
		body["missing_variants"] = out.MissingVariants
	}
	if out.CascadeErr != nil {
		body["cascade_error"] = out.CascadeErr.Error()
	}
	switch out.Code {
	case publish.OutcomeNotFound:
		c.JSON(http.StatusNotFound, body)
	case publish.OutcomeConflict:
		c.JSON(http.StatusConflict, body)
	case publish.OutcomeRejected:
		c.JSON(http.StatusUnprocessableEntity, body)
	default:
		c.JSON(http.StatusOK, body)
	}
}

// POST /api/lessons/:id/publish
func (h *PublishingHandler) PublishNow(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}
	out, err := h.orch.PublishNow(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	renderOutcome(c, out)
}

type scheduleRequest struct {
	PublishAt time.Time `json:"publish_at" validate:"required"`
}

// POST /api/lessons/:id/schedule
func (h *PublishingHandler) Schedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.orch.Schedule(c.Request.Context(), id, req.PublishAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	renderOutcome(c, out)
}

// POST /api/lessons/:id/archive
func (h *PublishingHandler) Archive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}
	out, err := h.orch.Archive(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	renderOutcome(c, out)
}

// POST /api/lessons/:id/cancel-schedule
func (h *PublishingHandler) CancelSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}
	out, err := h.orch.CancelSchedule(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	renderOutcome(c, out)
}

// GET /api/publishing/report — last scheduler run, for operational monitoring.
func (h *PublishingHandler) LastRunReport(c *gin.Context) {
	if h.loop == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "scheduler not running in this process"})
		return
	}
	report := h.loop.LastReport()
	if report == nil {
		c.JSON(http.StatusOK, gin.H{"report": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}
