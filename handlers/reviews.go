package handlers

import (
	"net/http"

	"weddingplanner/models"
	"weddingplanner/services/reviews"
	"weddingplanner/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes the review endpoints.
type ReviewHandler struct {
	Service reviews.ReviewService
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviews.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

// Create handles POST /reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid review payload", err.Error())
		return
	}
	res, err := h.Service.Create(c.Request.Context(), review)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// List handles GET /reviews.
func (h *ReviewHandler) List(c *gin.Context) {
	result, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if result == nil {
		result = []models.Review{}
	}
	c.JSON(http.StatusOK, result)
}

// ListPinned handles GET /reviews/pinned, the homepage selection.
func (h *ReviewHandler) ListPinned(c *gin.Context) {
	result, err := h.Service.ListPinned(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if result == nil {
		result = []models.Review{}
	}
	c.JSON(http.StatusOK, result)
}

// SetPinned handles PATCH /reviews/pin/:id.
func (h *ReviewHandler) SetPinned(c *gin.Context) {
	var req struct {
		IsPinned bool `json:"isPinned"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid pin payload", err.Error())
		return
	}
	res, err := h.Service.SetPinned(c.Request.Context(), c.Param("id"), req.IsPinned)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /reviews/:id.
func (h *ReviewHandler) Delete(c *gin.Context) {
	res, err := h.Service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
