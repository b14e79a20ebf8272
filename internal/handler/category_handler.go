package handler

import (
	"net/http"

	"github.com/BangKartavya/evently/internal/filter"
	"github.com/BangKartavya/evently/internal/service"
	"github.com/BangKartavya/evently/pkg/response"
	"github.com/gin-gonic/gin"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService service.CategoryService
	filter          *filter.CategoryFilter
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService, categoryFilter *filter.CategoryFilter) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		filter:          categoryFilter,
	}
}

// List handles GET /categories - every category plus the filter options
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.GetAllCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{
		"categories": categories,
		"options":    h.filter.Options(),
	}))
}

// Create handles POST /categories - adds a category by display name
func (h *CategoryHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(category))
}
