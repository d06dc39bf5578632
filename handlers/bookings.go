package handlers

import (
	"net/http"

	"weddingplanner/models"
	"weddingplanner/services/bookings"
	"weddingplanner/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the order and booking endpoints.
type BookingHandler struct {
	Service bookings.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc bookings.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateOrder handles POST /orders.
func (h *BookingHandler) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid order payload", err.Error())
		return
	}
	res, err := h.Service.CreateOrder(c.Request.Context(), order)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}
	res, err := h.Service.CreateBooking(c.Request.Context(), booking)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// MyBookings handles GET /my-bookings/:email.
func (h *BookingHandler) MyBookings(c *gin.Context) {
	result, err := h.Service.MyBookings(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if result == nil {
		result = []models.Booking{}
	}
	c.JSON(http.StatusOK, result)
}

// AllBookings handles GET /admin/all-bookings.
func (h *BookingHandler) AllBookings(c *gin.Context) {
	result, err := h.Service.AllBookings(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if result == nil {
		result = []models.Booking{}
	}
	c.JSON(http.StatusOK, result)
}

// UpdateStatus handles PATCH /bookings/:id.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid status payload", err.Error())
		return
	}
	res, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /bookings/:id.
func (h *BookingHandler) Delete(c *gin.Context) {
	res, err := h.Service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
