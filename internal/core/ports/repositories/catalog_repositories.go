package repositories

import (
	"context"

	"github.com/cemas-app/cemas_backend/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
// Every read is scoped by owner except FindCategoryByID, which services use
// to tell a missing row (NotFound) from a foreign one (Forbidden).
type CategoryRepository interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// FindCategoryByID retrieves a category by ID regardless of owner.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategoriesByOwner retrieves the owner's categories in insertion order.
	ListCategoriesByOwner(ctx context.Context, ownerID string) ([]domain.Category, error)

	// UpdateCategory updates name and kind of an existing category.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category. Movements referencing it keep their
	// rows with the category reference set to NULL.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// FindProductByID retrieves a product by ID regardless of owner.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProductsByOwner retrieves the owner's products in insertion order.
	ListProductsByOwner(ctx context.Context, ownerID string) ([]domain.Product, error)

	// UpdateProduct updates name and prices of an existing product.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product. Returns apperrors.ErrProductInUse when
	// sale lines reference it.
	DeleteProduct(ctx context.Context, productID string) error
}
