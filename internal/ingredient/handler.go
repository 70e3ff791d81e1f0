package ingredient

import (
	"fmt"
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
// GET /ingredients
// --------------------------------------------------
func (h *Handler) Index(c *gin.Context) {
	ingredients, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch ingredients"})
		return
	}

	c.JSON(http.StatusOK, ingredients)
}

// --------------------------------------------------
// GET /ingredients/:id
// --------------------------------------------------
func (h *Handler) Show(c *gin.Context) {
	var id int64
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	ing, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ing)
}

// --------------------------------------------------
// GET /ingredients/:id/remaining?timePeriod=7-days
// --------------------------------------------------
func (h *Handler) ShowRemaining(c *gin.Context) {
	var id int64
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	remaining, err := h.service.Remaining(
		c.Request.Context(),
		id,
		c.Query("timePeriod"),
	)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, remaining)
}

// --------------------------------------------------
// POST /ingredients
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Price       float64 `json:"price"`
		CategoryID  *int64  `json:"category_id"`
		Longevity   int     `json:"longevity"`
		Amount      float64 `json:"amount"`
		Unit        string  `json:"unit"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ing := &Ingredient{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		IsActive:    true,
		Longevity:   req.Longevity,
		Amount:      req.Amount,
		Unit:        req.Unit,
		Foods:       []FoodRef{},
	}

	created, err := h.service.Create(c.Request.Context(), ing)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}
