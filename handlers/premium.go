package handlers

import (
	"net/http"

	"weddingplanner/models"
	"weddingplanner/services/premium"
	"weddingplanner/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// PremiumHandler exposes the biodata and unlock-premium endpoints.
type PremiumHandler struct {
	Service premium.PremiumService
}

// NewPremiumHandler creates a PremiumHandler.
func NewPremiumHandler(svc premium.PremiumService) *PremiumHandler {
	return &PremiumHandler{Service: svc}
}

// CreateBiodata handles POST /biodata. Profiles carry arbitrary fields, so
// the payload is stored as-is.
func (h *PremiumHandler) CreateBiodata(c *gin.Context) {
	var doc bson.M
	if err := c.ShouldBindJSON(&doc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid biodata payload", err.Error())
		return
	}
	res, err := h.Service.CreateBiodata(c.Request.Context(), doc)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ListBiodata handles GET /biodata. Each profile includes premiumCount,
// computed from the unlock records at read time.
func (h *PremiumHandler) ListBiodata(c *gin.Context) {
	docs, err := h.Service.ListBiodata(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if docs == nil {
		docs = []bson.M{}
	}
	c.JSON(http.StatusOK, docs)
}

// GetBiodata handles GET /biodata/:id.
func (h *PremiumHandler) GetBiodata(c *gin.Context) {
	doc, err := h.Service.GetBiodata(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpsertBiodata handles PUT /biodata/:id.
func (h *PremiumHandler) UpsertBiodata(c *gin.Context) {
	var fields bson.M
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid biodata payload", err.Error())
		return
	}
	res, err := h.Service.UpsertBiodata(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteBiodata handles DELETE /biodata/:id.
func (h *PremiumHandler) DeleteBiodata(c *gin.Context) {
	res, err := h.Service.DeleteBiodata(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Unlock handles POST /unlock-premium.
func (h *PremiumHandler) Unlock(c *gin.Context) {
	var req models.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid unlock payload", err.Error())
		return
	}
	res, err := h.Service.Unlock(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// MyUnlocks handles GET /unlocked-requests/:email.
func (h *PremiumHandler) MyUnlocks(c *gin.Context) {
	records, err := h.Service.UnlocksForEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if records == nil {
		records = []models.UnlockRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// AllUnlocks handles GET /all-unlocked-requests.
func (h *PremiumHandler) AllUnlocks(c *gin.Context) {
	records, err := h.Service.AllUnlocks(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if records == nil {
		records = []models.UnlockRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// DeleteUnlock handles DELETE /unlock-premium/:id.
func (h *PremiumHandler) DeleteUnlock(c *gin.Context) {
	res, err := h.Service.DeleteUnlock(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
