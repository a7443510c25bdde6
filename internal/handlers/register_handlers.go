package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cemas-app/cemas_backend/internal/core/services"
	"github.com/cemas-app/cemas_backend/internal/middleware"
	"github.com/cemas-app/cemas_backend/internal/repositories/database/pgsql"
	"github.com/cemas-app/cemas_backend/pkg/config"
)

// RegisterHandlers wires repositories, services and routes onto the engine.
// Auth routes are public (rate limited); everything else sits behind the
// bearer-token middleware.
func RegisterHandlers(r *gin.Engine, cfg *config.Config, dbPool *pgxpool.Pool) {
	userRepo := pgsql.NewPgxUserRepository(dbPool)
	sessionRepo := pgsql.NewPgxSessionRepository(dbPool)
	categoryRepo := pgsql.NewPgxCategoryRepository(dbPool)
	productRepo := pgsql.NewPgxProductRepository(dbPool)
	movementRepo := pgsql.NewPgxMovementRepository(dbPool)
	saleRepo := pgsql.NewPgxSaleRepository(dbPool)

	authService := services.NewAuthService(userRepo, sessionRepo, cfg.SessionDuration)
	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepo)
	movementService := services.NewMovementService(movementRepo, categoryRepo)
	saleService := services.NewSaleService(saleRepo)

	RegisterAuthRoutes(r, authService, cfg.AuthRateLimit)

	authed := r.Group("/", middleware.AuthMiddleware(authService))
	RegisterCategoryRoutes(authed, categoryService)
	RegisterProductRoutes(authed, productService)
	RegisterMovementRoutes(authed, movementService)
	RegisterSaleRoutes(authed, saleService)
}
