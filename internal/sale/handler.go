package sale

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /sales
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		FoodID   int64      `json:"food_id"`
		Quantity float64    `json:"quantity"`
		SoldAt   *time.Time `json:"sold_at"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	soldAt := time.Time{}
	if req.SoldAt != nil {
		soldAt = *req.SoldAt
	}

	sale, err := h.service.Record(c.Request.Context(), req.FoodID, req.Quantity, soldAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sale)
}

// --------------------------------------------------
// GET /sales/recent?days=7
// --------------------------------------------------
func (h *Handler) Recent(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
		return
	}

	sales, err := h.service.Recent(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sales"})
		return
	}

	if sales == nil {
		sales = []*Sale{}
	}

	c.JSON(http.StatusOK, sales)
}
