package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/cemas-app/cemas_backend/internal/core/ports/services"
	"github.com/cemas-app/cemas_backend/internal/dto"
	"github.com/cemas-app/cemas_backend/internal/middleware"
)

// productHandler handles HTTP requests for the product catalog.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(productService portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: productService}
}

// RegisterProductRoutes registers product routes on an authenticated group.
func RegisterProductRoutes(group *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := group.Group("/productos")
	{
		products.GET("/", h.listProducts)
		products.POST("/", h.createProduct)
		products.GET("/:id/", h.getProduct)
		products.PUT("/:id/", h.updateProduct)
		products.DELETE("/:id/", h.deleteProduct)
	}
}

// listProducts godoc
// @Summary List the caller's products
// @Tags productos
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Security BearerAuth
// @Router /productos/ [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), callerID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// getProduct godoc
// @Summary Get an owned product
// @Tags productos
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /productos/{id}/ [get]
func (h *productHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), callerID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// createProduct godoc
// @Summary Create a product
// @Tags productos
// @Accept json
// @Produce json
// @Param product body dto.ProductRequest true "Product fields"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /productos/ [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), callerID, req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Update an owned product
// @Description Price edits only affect future sales; committed sale lines keep their snapshot.
// @Tags productos
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body dto.ProductRequest true "Product fields"
// @Success 200 {object} dto.ProductResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /productos/{id}/ [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), callerID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deleteProduct godoc
// @Summary Delete an owned product
// @Description Fails with 400 when any committed sale line references the product.
// @Tags productos
// @Param id path string true "Product ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /productos/{id}/ [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), callerID, c.Param("id")); err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
