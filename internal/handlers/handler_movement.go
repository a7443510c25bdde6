package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/cemas-app/cemas_backend/internal/core/ports/services"
	"github.com/cemas-app/cemas_backend/internal/dto"
	"github.com/cemas-app/cemas_backend/internal/middleware"
)

// movementHandler handles HTTP requests for manual financial movements.
type movementHandler struct {
	movementService portssvc.MovementSvcFacade
}

func newMovementHandler(movementService portssvc.MovementSvcFacade) *movementHandler {
	return &movementHandler{movementService: movementService}
}

// RegisterMovementRoutes registers movement routes on an authenticated group.
func RegisterMovementRoutes(group *gin.RouterGroup, movementService portssvc.MovementSvcFacade) {
	h := newMovementHandler(movementService)

	movements := group.Group("/movimientos")
	{
		movements.GET("/", h.listMovements)
		movements.POST("/", h.createMovement)
		movements.DELETE("/:id/", h.deleteMovement)
	}
}

// listMovements godoc
// @Summary List the caller's movements, newest first
// @Tags movimientos
// @Produce json
// @Success 200 {array} dto.MovementResponse
// @Security BearerAuth
// @Router /movimientos/ [get]
func (h *movementHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	movements, err := h.movementService.ListMovements(c.Request.Context(), callerID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMovementResponses(movements))
}

// createMovement godoc
// @Summary Record a manual income or expense entry
// @Tags movimientos
// @Accept json
// @Produce json
// @Param movement body dto.CreateMovementRequest true "Movement fields"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /movimientos/ [post]
func (h *movementHandler) createMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	movement, err := h.movementService.CreateMovement(c.Request.Context(), callerID, req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// deleteMovement godoc
// @Summary Delete an owned movement
// @Tags movimientos
// @Param id path string true "Movement ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /movimientos/{id}/ [delete]
func (h *movementHandler) deleteMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.movementService.DeleteMovement(c.Request.Context(), callerID, c.Param("id")); err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
