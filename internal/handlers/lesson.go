package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coursewave/coursewave-backend/internal/services"
)

type LessonHandler struct {
	svc services.LessonService
}

func NewLessonHandler(svc services.LessonService) *LessonHandler {
	return &LessonHandler{svc: svc}
}

type createLessonRequest struct {
	TermID          string            `json:"term_id" validate:"required,uuid"`
	LessonNumber    int               `json:"lesson_number" validate:"required,min=1"`
	Title           string            `json:"title" validate:"required"`
	Kind            string            `json:"kind" validate:"required,oneof=video article"`
	DurationSeconds *int              `json:"duration_seconds,omitempty"`
	PrimaryLanguage string            `json:"primary_language" validate:"required"`
	Languages       []string          `json:"languages" validate:"required,min=1"`
	ContentURLs     map[string]string `json:"content_urls" validate:"required"`
	SubtitleURLs    map[string]string `json:"subtitle_urls,omitempty"`
}

// POST /api/lessons
func (h *LessonHandler) Create(c *gin.Context) {
	var req createLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	termID, _ := uuid.Parse(req.TermID)
	lesson, err := h.svc.CreateLesson(c.Request.Context(), services.CreateLessonInput{
		TermID:          termID,
		LessonNumber:    req.LessonNumber,
		Title:           req.Title,
		Kind:            req.Kind,
		DurationSeconds: req.DurationSeconds,
		PrimaryLanguage: req.PrimaryLanguage,
		Languages:       req.Languages,
		ContentURLs:     req.ContentURLs,
		SubtitleURLs:    req.SubtitleURLs,
	})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"lesson": lesson})
}

// GET /api/lessons/:id
func (h *LessonHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}
	lesson, err := h.svc.GetLesson(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if lesson == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lesson not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lesson": lesson})
}

// GET /api/terms/:id/lessons
func (h *LessonHandler) ListForTerm(c *gin.Context) {
	termID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid term id"})
		return
	}
	lessons, err := h.svc.ListLessonsForTerm(c.Request.Context(), termID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lessons": lessons})
}

type updateLessonRequest struct {
	Title *string `json:"title,omitempty"`
}

// PATCH /api/lessons/:id
func (h *LessonHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}
	var req updateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	lesson, err := h.svc.UpdateLesson(c.Request.Context(), id, updates)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if lesson == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lesson not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lesson": lesson})
}

// POST /api/lessons/:id/restore
func (h *LessonHandler) RestoreToDraft(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}
	lesson, err := h.svc.RestoreToDraft(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if lesson == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lesson not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lesson": lesson})
}

// DELETE /api/lessons/:id
func (h *LessonHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}
	if err := h.svc.DeleteLesson(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
