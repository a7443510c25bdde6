package services

import (
	"context"

	"github.com/cemas-app/cemas_backend/internal/core/domain"
	"github.com/cemas-app/cemas_backend/internal/dto"
)

// AuthSvcFacade covers registration, login, logout and token resolution.
type AuthSvcFacade interface {
	// Register creates a user and issues a session token.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)

	// Login validates credentials and issues a session token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)

	// Logout revokes the presented token. Unknown tokens are unauthorized.
	Logout(ctx context.Context, token string) error

	// ResolveToken maps a bearer token to the owning user's ID. Expired or
	// revoked tokens return apperrors.ErrUnauthorized.
	ResolveToken(ctx context.Context, token string) (string, error)
}

// CategorySvcFacade covers category CRUD, always scoped to the caller.
type CategorySvcFacade interface {
	ListCategories(ctx context.Context, callerID string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, callerID string, req dto.CategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, callerID, categoryID string, req dto.CategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, callerID, categoryID string) error
}

// ProductSvcFacade covers product CRUD, always scoped to the caller.
type ProductSvcFacade interface {
	ListProducts(ctx context.Context, callerID string) ([]domain.Product, error)
	GetProduct(ctx context.Context, callerID, productID string) (*domain.Product, error)
	CreateProduct(ctx context.Context, callerID string, req dto.ProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, callerID, productID string, req dto.ProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, callerID, productID string) error
}

// MovementSvcFacade covers the append-only movement log.
type MovementSvcFacade interface {
	ListMovements(ctx context.Context, callerID string) ([]domain.Movement, error)
	CreateMovement(ctx context.Context, callerID string, req dto.CreateMovementRequest) (*domain.Movement, error)
	DeleteMovement(ctx context.Context, callerID, movementID string) error
}

// SaleSvcFacade covers sale processing and history.
type SaleSvcFacade interface {
	// ProcessSale validates and atomically commits a sale for the caller.
	ProcessSale(ctx context.Context, callerID string, req dto.CreateSaleRequest) (*domain.Sale, error)

	// ListSales returns the caller's committed sales, newest first.
	ListSales(ctx context.Context, callerID string) ([]domain.Sale, error)
}
