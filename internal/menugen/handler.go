package menugen

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

type periodRequest struct {
	TimePeriod string `json:"timePeriod" binding:"required,oneof=1-day 3-days 7-days"`
}

// --------------------------------------------------
// POST /menu/generate
// --------------------------------------------------
func (h *Handler) Generate(c *gin.Context) {
	var req periodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "timePeriod must be one of: 1-day, 3-days, 7-days",
		})
		return
	}

	result := h.service.GenerateMenu(c.Request.Context(), req.TimePeriod)

	message := "Menu generated successfully"
	if result.Fallback {
		message = "Menu generated with fallback due to error"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    result,
	})
}

// --------------------------------------------------
// POST /ingredients/filter
// --------------------------------------------------
func (h *Handler) FilterIngredients(c *gin.Context) {
	var req periodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "timePeriod must be one of: 1-day, 3-days, 7-days",
		})
		return
	}

	result, err := h.service.EstimateWaste(c.Request.Context(), req.TimePeriod)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error filtering ingredients",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ingredients filtered successfully",
		"data":    result,
	})
}
