package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coursewave/coursewave-backend/internal/services"
)

type TermHandler struct {
	svc services.TermService
}

func NewTermHandler(svc services.TermService) *TermHandler {
	return &TermHandler{svc: svc}
}

type createTermRequest struct {
	ProgramID  string `json:"program_id" validate:"required,uuid"`
	TermNumber int    `json:"term_number" validate:"required,min=1"`
	Title      string `json:"title"`
}

// POST /api/terms
func (h *TermHandler) Create(c *gin.Context) {
	var req createTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	programID, _ := uuid.Parse(req.ProgramID)
	term, err := h.svc.CreateTerm(c.Request.Context(), programID, req.TermNumber, req.Title)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"term": term})
}

// GET /api/programs/:id/terms
func (h *TermHandler) ListForProgram(c *gin.Context) {
	programID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid program id"})
		return
	}
	terms, err := h.svc.ListTermsForProgram(c.Request.Context(), programID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"terms": terms})
}

// DELETE /api/terms/:id
func (h *TermHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid term id"})
		return
	}
	if err := h.svc.DeleteTerm(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
