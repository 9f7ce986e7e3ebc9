package menu

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

type AdminHandler struct {
	service *Service
	log     logrus.FieldLogger
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func NewAdminHandler(service *Service, log logrus.FieldLogger) *AdminHandler {
	return &AdminHandler{service: service, log: log}
}

// --------------------------------------------------
// GET /api/menu
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menu"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// --------------------------------------------------
// Admin: GET /admin/menu
// --------------------------------------------------
func (h *AdminHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"menu": items})
}

type addRequest struct {
	Name        string  `json:"name" form:"name"`
	Description string  `json:"description" form:"description"`
	Price       float64 `json:"price" form:"price"`
	Image       string  `json:"image" form:"image"`
	Category    string  `json:"category" form:"category"`
}

// --------------------------------------------------
// Admin: POST /admin/menu/add (JSON, form, or multipart with image_file)
// --------------------------------------------------
func (h *AdminHandler) Add(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	in := AddInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
	}

	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		if header, err := c.FormFile("image_file"); err == nil {
			file, err := header.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image_file"})
				return
			}
			defer file.Close()

			in.Upload = &ImageUpload{Filename: header.Filename, Body: file}
		}
	}

	item, err := h.service.Add(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidItem),
			errors.Is(err, ErrInvalidImage),
			errors.Is(err, ErrUploadsDisabled):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.WithError(err).Error("add menu item failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add menu item"})
		}
		return
	}

	h.log.WithFields(logrus.Fields{"item_id": item.ID, "name": item.Name}).Info("menu item added")
	c.JSON(http.StatusCreated, item)
}

// --------------------------------------------------
// Admin: DELETE /admin/menu/:id, POST /admin/menu/delete/:id
// --------------------------------------------------
func (h *AdminHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.WithError(err).Error("delete menu item failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete menu item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted", "id": id})
}
