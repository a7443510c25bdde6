package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/cemas-app/cemas_backend/internal/core/ports/services"
	"github.com/cemas-app/cemas_backend/internal/dto"
	"github.com/cemas-app/cemas_backend/internal/middleware"
)

// authHandler handles registration, login and logout.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(authService portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: authService}
}

// RegisterAuthRoutes sets up the routes for authentication. The credential
// endpoints share an IP rate limiter.
func RegisterAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade, rateFormat string) {
	h := newAuthHandler(authService)

	rate, err := limiter.NewRateFromFormatted(rateFormat)
	if err != nil {
		// A bad format falls back to the standard 5 attempts per minute.
		rate = limiter.Rate{Period: time.Minute, Limit: 5}
	}
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/auth")
	{
		auth.POST("/registro/", limitMiddleware, h.register)
		auth.POST("/login/", limitMiddleware, h.login)
		auth.POST("/logout/", middleware.AuthMiddleware(authService), h.logout)
	}
}

// register godoc
// @Summary Register a new user
// @Description Creates an account and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body dto.RegisterRequest true "Registration fields"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/registro/ [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// login godoc
// @Summary User login
// @Description Validates credentials and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login/ [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// logout godoc
// @Summary Revoke the presented session token
// @Tags auth
// @Produce json
// @Success 200
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout/ [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// The middleware already validated the header shape.
	token := strings.SplitN(c.GetHeader("Authorization"), " ", 2)[1]
	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.Status(http.StatusOK)
}
