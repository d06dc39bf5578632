package handlers

import (
	"net/http"

	"weddingplanner/models"
	"weddingplanner/services/carts"
	"weddingplanner/utils"

	"github.com/gin-gonic/gin"
)

// CartHandler exposes the cart endpoints.
type CartHandler struct {
	Service carts.CartService
}

// NewCartHandler creates a CartHandler.
func NewCartHandler(svc carts.CartService) *CartHandler {
	return &CartHandler{Service: svc}
}

// Save handles POST /cart. The cart is upserted by email: created on first
// write, replaced wholesale afterwards.
func (h *CartHandler) Save(c *gin.Context) {
	var req models.CartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid cart payload", err.Error())
		return
	}
	res, err := h.Service.Save(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Get handles GET /cart/:email.
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.Service.Get(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}
