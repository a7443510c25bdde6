package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/cemas-app/cemas_backend/internal/core/ports/services"
	"github.com/cemas-app/cemas_backend/internal/dto"
	"github.com/cemas-app/cemas_backend/internal/middleware"
)

// saleHandler handles checkout and sale history requests.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(saleService portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: saleService}
}

// RegisterSaleRoutes registers sale routes on an authenticated group.
func RegisterSaleRoutes(group *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := group.Group("/ventas")
	{
		sales.POST("/nueva/", h.processSale)
		sales.GET("/historial/", h.listSales)
	}
}

// processSale godoc
// @Summary Commit a point-of-sale transaction
// @Description Creates the sale header and all lines atomically, snapshotting
// @Description each product's current price. Any invalid line rolls back the
// @Description whole sale.
// @Tags ventas
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Payment method and product lines"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /ventas/nueva/ [post]
func (h *saleHandler) processSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	sale, err := h.saleService.ProcessSale(c.Request.Context(), callerID, req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// listSales godoc
// @Summary List the caller's sales, newest first, with their lines
// @Tags ventas
// @Produce json
// @Success 200 {array} dto.SaleResponse
// @Security BearerAuth
// @Router /ventas/historial/ [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), callerID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponses(sales))
}
