package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/cemas-app/cemas_backend/internal/core/ports/services"
	"github.com/cemas-app/cemas_backend/internal/dto"
	"github.com/cemas-app/cemas_backend/internal/middleware"
)

// categoryHandler handles HTTP requests for categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(categoryService portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: categoryService}
}

// RegisterCategoryRoutes registers category routes on an authenticated group.
func RegisterCategoryRoutes(group *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)

	categories := group.Group("/categorias")
	{
		categories.GET("/", h.listCategories)
		categories.POST("/", h.createCategory)
		categories.PUT("/:id/", h.updateCategory)
		categories.DELETE("/:id/", h.deleteCategory)
	}
}

// listCategories godoc
// @Summary List the caller's categories
// @Tags categorias
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Security BearerAuth
// @Router /categorias/ [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), callerID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// createCategory godoc
// @Summary Create a category
// @Tags categorias
// @Accept json
// @Produce json
// @Param category body dto.CategoryRequest true "Category fields"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /categorias/ [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), callerID, req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// updateCategory godoc
// @Summary Update an owned category
// @Tags categorias
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body dto.CategoryRequest true "Category fields"
// @Success 200 {object} dto.CategoryResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /categorias/{id}/ [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), callerID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete an owned category
// @Tags categorias
// @Param id path string true "Category ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /categorias/{id}/ [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), callerID, c.Param("id")); err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
