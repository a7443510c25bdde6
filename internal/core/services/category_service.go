package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cemas-app/cemas_backend/internal/apperrors"
	"github.com/cemas-app/cemas_backend/internal/core/domain"
	portsrepo "github.com/cemas-app/cemas_backend/internal/core/ports/repositories"
	portssvc "github.com/cemas-app/cemas_backend/internal/core/ports/services"
	"github.com/cemas-app/cemas_backend/internal/dto"
)

// categoryService provides category CRUD scoped to the calling user.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context, callerID string) ([]domain.Category, error) {
	return s.categoryRepo.ListCategoriesByOwner(ctx, callerID)
}

func (s *categoryService) CreateCategory(ctx context.Context, callerID string, req dto.CategoryRequest) (*domain.Category, error) {
	kind := domain.CategoryKind(req.Kind)
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: tipo must be %s or %s", apperrors.ErrValidation, domain.KindIncome, domain.KindExpense)
	}

	category := domain.Category{
		CategoryID: uuid.NewString(),
		OwnerID:    callerID, // owner always comes from the session
		Name:       req.Name,
		Kind:       kind,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, callerID, categoryID string, req dto.CategoryRequest) (*domain.Category, error) {
	kind := domain.CategoryKind(req.Kind)
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: tipo must be %s or %s", apperrors.ErrValidation, domain.KindIncome, domain.KindExpense)
	}

	category, err := s.findOwnedCategory(ctx, callerID, categoryID)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Kind = kind
	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, callerID, categoryID string) error {
	if _, err := s.findOwnedCategory(ctx, callerID, categoryID); err != nil {
		return err
	}
	return s.categoryRepo.DeleteCategory(ctx, categoryID)
}

// findOwnedCategory fetches a category and enforces ownership: an absent row
// is NotFound, a foreign one is Forbidden.
func (s *categoryService) findOwnedCategory(ctx context.Context, callerID, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.OwnerID != callerID {
		return nil, apperrors.ErrForbidden
	}
	return category, nil
}
