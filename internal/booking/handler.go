package booking

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type bookRequest struct {
	Name   string      `json:"name"`
	Phone  string      `json:"phone"`
	Date   string      `json:"date"`
	Time   string      `json:"time"`
	// Guests arrives as a number or, from the booking form, a numeric string.
	Guests json.Number `json:"guests"`
}

// --------------------------------------------------
// POST /api/book-table
// --------------------------------------------------
func (h *Handler) BookTable(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
		return
	}

	guests := 0
	if req.Guests != "" {
		n, err := strconv.Atoi(req.Guests.String())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "guests must be a whole number"})
			return
		}
		guests = n
	}

	_, err := h.service.Create(c.Request.Context(), Input{
		Name:   req.Name,
		Phone:  req.Phone,
		Date:   req.Date,
		Time:   req.Time,
		Guests: guests,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidBooking) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to save booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Booking confirmed",
	})
}

// --------------------------------------------------
// Admin: GET /admin/bookings
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
