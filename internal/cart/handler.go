package cart

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pearl/internal/menu"
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
// GET /api/cart
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	sess, ok := session.Current(c)
	if !ok {
		c.JSON(http.StatusOK, session.NewCart())
		return
	}

	c.JSON(http.StatusOK, sess.Cart)
}

type addRequest struct {
	ItemID json.Number `json:"item_id"`
	// Price is accepted for compatibility with older clients and ignored.
	Price json.Number `json:"price"`
}

// --------------------------------------------------
// POST /api/cart/add
// --------------------------------------------------
func (h *Handler) Add(c *gin.Context) {
	sess, ok := session.Current(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
		return
	}

	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	itemID, err := strconv.ParseInt(req.ItemID.String(), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_id is required"})
		return
	}

	cart, err := h.service.Add(c.Request.Context(), sess, itemID)
	if err != nil {
		if errors.Is(err, menu.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.WithError(err).WithField("item_id", itemID).Error("add to cart failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "added", "cart": cart})
}

// --------------------------------------------------
// GET /api/cart/count
// --------------------------------------------------
func (h *Handler) Count(c *gin.Context) {
	count := 0
	if sess, ok := session.Current(c); ok {
		count = sess.Cart.Count()
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// --------------------------------------------------
// POST /api/cart/clear
// --------------------------------------------------
func (h *Handler) Clear(c *gin.Context) {
	if sess, ok := session.Current(c); ok {
		if err := h.service.Clear(c.Request.Context(), sess); err != nil {
			h.log.WithError(err).Error("clear cart failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
