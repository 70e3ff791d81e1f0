package food

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
// GET /foods
// --------------------------------------------------
func (h *Handler) Index(c *gin.Context) {
	foods, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch foods"})
		return
	}

	c.JSON(http.StatusOK, foods)
}

// --------------------------------------------------
// GET /foods/:id
// --------------------------------------------------
func (h *Handler) Show(c *gin.Context) {
	var id int64
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	f, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, f)
}

// --------------------------------------------------
// POST /foods
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name            string      `json:"name"`
		Description     *string     `json:"description"`
		Price           float64     `json:"price"`
		CategoryID      *int64      `json:"category_id"`
		IsActive        *bool       `json:"is_active"`
		IsAvailable     *bool       `json:"is_available"`
		PreparationTime int         `json:"preparation_time"`
		Ingredients     []LinkInput `json:"ingredients"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	f := &Food{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		CategoryID:      req.CategoryID,
		IsActive:        true,
		IsAvailable:     true,
		PreparationTime: req.PreparationTime,
	}
	if req.IsActive != nil {
		f.IsActive = *req.IsActive
	}
	if req.IsAvailable != nil {
		f.IsAvailable = *req.IsAvailable
	}

	created, err := h.service.Create(c.Request.Context(), f, req.Ingredients)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// --------------------------------------------------
// POST /foods/:id/image
// --------------------------------------------------
func (h *Handler) UploadImage(c *gin.Context) {
	var id int64
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	url, err := h.service.UploadImage(c.Request.Context(), id, file, header)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "image uploaded successfully",
		"url":     url,
	})
}
