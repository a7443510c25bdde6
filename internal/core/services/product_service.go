package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cemas-app/cemas_backend/internal/apperrors"
	"github.com/cemas-app/cemas_backend/internal/core/domain"
	portsrepo "github.com/cemas-app/cemas_backend/internal/core/ports/repositories"
	portssvc "github.com/cemas-app/cemas_backend/internal/core/ports/services"
	"github.com/cemas-app/cemas_backend/internal/dto"
)

// productService provides product CRUD scoped to the calling user.
type productService struct {
	productRepo portsrepo.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepository) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) ListProducts(ctx context.Context, callerID string) ([]domain.Product, error) {
	return s.productRepo.ListProductsByOwner(ctx, callerID)
}

func (s *productService) GetProduct(ctx context.Context, callerID, productID string) (*domain.Product, error) {
	return s.findOwnedProduct(ctx, callerID, productID)
}

func (s *productService) CreateProduct(ctx context.Context, callerID string, req dto.ProductRequest) (*domain.Product, error) {
	if err := validateProductPrices(req); err != nil {
		return nil, err
	}

	approxCost := decimal.Zero
	if req.ApproxCost != nil {
		approxCost = *req.ApproxCost
	}

	product := domain.Product{
		ProductID:  uuid.NewString(),
		OwnerID:    callerID,
		Name:       req.Name,
		SalePrice:  req.SalePrice,
		ApproxCost: approxCost,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, callerID, productID string, req dto.ProductRequest) (*domain.Product, error) {
	if err := validateProductPrices(req); err != nil {
		return nil, err
	}

	product, err := s.findOwnedProduct(ctx, callerID, productID)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.SalePrice = req.SalePrice
	if req.ApproxCost != nil {
		product.ApproxCost = *req.ApproxCost
	}
	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, callerID, productID string) error {
	if _, err := s.findOwnedProduct(ctx, callerID, productID); err != nil {
		return err
	}
	// The repository reports ErrProductInUse when sale lines reference the
	// product; the handler turns that into a user-facing conflict.
	return s.productRepo.DeleteProduct(ctx, productID)
}

// findOwnedProduct fetches a product and enforces ownership: an absent row is
// NotFound, a foreign one is Forbidden.
func (s *productService) findOwnedProduct(ctx context.Context, callerID, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.OwnerID != callerID {
		return nil, apperrors.ErrForbidden
	}
	return product, nil
}

func validateProductPrices(req dto.ProductRequest) error {
	if req.SalePrice.IsNegative() {
		return fmt.Errorf("%w: precio_venta must not be negative", apperrors.ErrValidation)
	}
	if req.ApproxCost != nil && req.ApproxCost.IsNegative() {
		return fmt.Errorf("%w: costo_aprox must not be negative", apperrors.ErrValidation)
	}
	return nil
}
