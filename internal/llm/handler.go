package llm

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DegradedHeader is set on search responses that fell back to an empty list.
const DegradedHeader = "X-Search-Degraded"

type Handler struct {
	describer *Describer
	searcher  *Searcher
}

func NewHandler(describer *Describer, searcher *Searcher) *Handler {
	return &Handler{describer: describer, searcher: searcher}
}

// --------------------------------------------------
// GET /api/ai-description?name=
// --------------------------------------------------
func (h *Handler) Description(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"description": h.describer.Describe(c.Request.Context(), c.Query("name")),
	})
}

// --------------------------------------------------
// GET /api/search?q=
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	res := h.searcher.Search(c.Request.Context(), c.Query("q"))
	if res.Degraded {
		c.Header(DegradedHeader, "true")
	}

	c.JSON(http.StatusOK, res.Items)
}
