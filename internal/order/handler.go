package order

import (
	"net/http"

	"pearl/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
	log     logrus.FieldLogger
}

func NewHandler(service *Service, log logrus.FieldLogger) *Handler {
	return &Handler{service: service, log: log}
}

// --------------------------------------------------
// POST /api/order/confirm
// --------------------------------------------------
func (h *Handler) Confirm(c *gin.Context) {
	sess, ok := session.Current(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
		return
	}

	o, err := h.service.Confirm(c.Request.Context(), sess)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No cart"})
			return
		}
		h.log.WithError(err).WithField("user_id", sess.UserID).Error("order confirm failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		return
	}

	h.log.WithFields(logrus.Fields{
		"order_id": o.ID,
		"user_id":  sess.UserID,
		"total":    o.TotalAmount,
	}).Info("order placed")

	c.JSON(http.StatusOK, gin.H{
		"status":   "order placed",
		"order_id": o.ID,
		"total":    o.TotalAmount,
	})
}

// --------------------------------------------------
// GET /api/orders
// --------------------------------------------------
func (h *Handler) Mine(c *gin.Context) {
	sess, ok := session.Current(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
		return
	}

	orders, err := h.service.ListForUser(c.Request.Context(), sess.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// --------------------------------------------------
// Admin: GET /admin/orders
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	orders, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
