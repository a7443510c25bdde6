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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	db *pgxpool.Pool
}

// NewPgxCategoryRepository creates a new repository for category data.
func NewPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{db: db}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		OwnerID:    m.OwnerID,
		Name:       m.Name,
		Kind:       domain.CategoryKind(m.Kind),
		CreatedAt:  m.CreatedAt,
	}
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
        INSERT INTO categories (category_id, owner_id, name, kind, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		category.CategoryID,
		category.OwnerID,
		category.Name,
		string(category.Kind),
		category.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
        SELECT category_id, owner_id, name, kind, created_at
        FROM categories
        WHERE category_id = $1;
    `
	var m models.Category
	err := r.db.QueryRow(ctx, query, categoryID).Scan(
		&m.CategoryID,
		&m.OwnerID,
		&m.Name,
		&m.Kind,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	category := toDomainCategory(m)
	return &category, nil
}

func (r *PgxCategoryRepository) ListCategoriesByOwner(ctx context.Context, ownerID string) ([]domain.Category, error) {
	query := `
        SELECT category_id, owner_id, name, kind, created_at
        FROM categories
        WHERE owner_id = $1
        ORDER BY created_at, category_id;
    `
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var m models.Category
		if err := rows.Scan(&m.CategoryID, &m.OwnerID, &m.Name, &m.Kind, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, toDomainCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
        UPDATE categories
        SET name = $2, kind = $3
        WHERE category_id = $1;
    `
	tag, err := r.db.Exec(ctx, query, category.CategoryID, category.Name, string(category.Kind))
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", category.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	// financial_movements.category_id is ON DELETE SET NULL, so movements
	// referencing this category survive with a nil reference.
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
