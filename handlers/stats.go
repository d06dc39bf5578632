package handlers

import (
	"net/http"

	"weddingplanner/services/stats"
	"weddingplanner/utils"

	"github.com/gin-gonic/gin"
)

// StatsHandler exposes the dashboard stats endpoint.
type StatsHandler struct {
	Service stats.StatsService
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc stats.StatsService) *StatsHandler {
	return &StatsHandler{Service: svc}
}

// Dashboard handles GET /dashboard-stats/:email. Admins see global counts;
// everyone else, including unknown emails, sees their own.
func (h *StatsHandler) Dashboard(c *gin.Context) {
	result, err := h.Service.Dashboard(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
