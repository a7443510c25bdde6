package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cemas-app/cemas_backend/internal/apperrors"
	"github.com/cemas-app/cemas_backend/internal/core/domain"
	portsrepo "github.com/cemas-app/cemas_backend/internal/core/ports/repositories"
	"github.com/cemas-app/cemas_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductRepository struct {
	db *pgxpool.Pool
}

// NewPgxProductRepository creates a new repository for product data.
func NewPgxProductRepository(db *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{db: db}
}

var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

func toDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:  m.ProductID,
		OwnerID:    m.OwnerID,
		Name:       m.Name,
		SalePrice:  m.SalePrice,
		ApproxCost: m.ApproxCost,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
        INSERT INTO products (product_id, owner_id, name, sale_price, approx_cost, created_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		product.ProductID,
		product.OwnerID,
		product.Name,
		product.SalePrice,
		product.ApproxCost,
		product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
        SELECT product_id, owner_id, name, sale_price, approx_cost, created_at
        FROM products
        WHERE product_id = $1;
    `
	var m models.Product
	err := r.db.QueryRow(ctx, query, productID).Scan(
		&m.ProductID,
		&m.OwnerID,
		&m.Name,
		&m.SalePrice,
		&m.ApproxCost,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}
	product := toDomainProduct(m)
	return &product, nil
}

func (r *PgxProductRepository) ListProductsByOwner(ctx context.Context, ownerID string) ([]domain.Product, error) {
	query := `
        SELECT product_id, owner_id, name, sale_price, approx_cost, created_at
        FROM products
        WHERE owner_id = $1
        ORDER BY created_at, product_id;
    `
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var m models.Product
		if err := rows.Scan(&m.ProductID, &m.OwnerID, &m.Name, &m.SalePrice, &m.ApproxCost, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, toDomainProduct(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	// Past sale lines keep their snapshotted unit_price; this only changes
	// the price future sales will resolve.
	query := `
        UPDATE products
        SET name = $2, sale_price = $3, approx_cost = $4
        WHERE product_id = $1;
    `
	tag, err := r.db.Exec(ctx, query, product.ProductID, product.Name, product.SalePrice, product.ApproxCost)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			// sale_lines.product_id is ON DELETE RESTRICT: sold products
			// stay so history keeps pointing at them.
			return apperrors.ErrProductInUse
		}
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
