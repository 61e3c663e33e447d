package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coursewave/coursewave-backend/internal/services"
)

type AssetHandler struct {
	svc services.AssetService
}

func NewAssetHandler(svc services.AssetService) *AssetHandler {
	return &AssetHandler{svc: svc}
}

type createAssetRequest struct {
	OwnerID   string `json:"owner_id" validate:"required,uuid"`
	OwnerKind string `json:"owner_kind" validate:"required,oneof=program lesson"`
	Language  string `json:"language" validate:"required"`
	Variant   string `json:"variant" validate:"required,oneof=portrait landscape square banner"`
	Kind      string `json:"kind" validate:"required,oneof=poster thumbnail"`
	URL       string `json:"url" validate:"required,url"`
}

// POST /api/assets
func (h *AssetHandler) Create(c *gin.Context) {
	var req createAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ownerID, _ := uuid.Parse(req.OwnerID)
	asset, err := h.svc.CreateAsset(c.Request.Context(), services.CreateAssetInput{
		OwnerID:   ownerID,
		OwnerKind: req.OwnerKind,
		Language:  req.Language,
		Variant:   req.Variant,
		Kind:      req.Kind,
		URL:       req.URL,
	})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

// GET /api/assets?owner_id=...&owner_kind=...
func (h *AssetHandler) List(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Query("owner_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner id"})
		return
	}
	ownerKind := c.Query("owner_kind")
	assets, err := h.svc.ListAssets(c.Request.Context(), ownerID, ownerKind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

// DELETE /api/assets/:id
func (h *AssetHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
		return
	}
	if err := h.svc.DeleteAsset(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
