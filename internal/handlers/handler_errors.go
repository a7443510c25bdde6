package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cemas-app/cemas_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondServiceError maps the apperrors taxonomy onto HTTP status codes.
// Referential-protection and validation failures carry their message to the
// client; anything unexpected is logged and hidden behind a 500.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrProductInUse):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No puedes eliminar este producto porque ya tiene ventas registradas."})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Credenciales inválidas"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "No tienes permiso sobre este recurso"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Recurso no encontrado"})
	default:
		logger.Error("Unexpected service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
