package handlers

import (
	"net/http"

	"weddingplanner/models"
	"weddingplanner/services/users"
	"weddingplanner/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the user and role endpoints.
type UserHandler struct {
	Service users.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc users.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// Register handles POST /users. Registering an email that already exists is
// acknowledged without creating a second account.
func (h *UserHandler) Register(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid user payload", err.Error())
		return
	}
	res, err := h.Service.Register(c.Request.Context(), user)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	result, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if result == nil {
		result = []models.User{}
	}
	c.JSON(http.StatusOK, result)
}

// GetRole handles GET /users/role/:email.
func (h *UserHandler) GetRole(c *gin.Context) {
	role, err := h.Service.GetRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}

// UpdateRole handles PATCH /users/role/:id.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid role payload", err.Error())
		return
	}
	res, err := h.Service.UpdateRole(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	res, err := h.Service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
