package analysis

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /analyze
// --------------------------------------------------
func (h *Handler) Analyze(c *gin.Context) {
	report, err := h.service.Analyze(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze data"})
		return
	}

	c.JSON(http.StatusOK, report)
}
