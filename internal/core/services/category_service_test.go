package services_test

import (
	"context"
	"testing"

	"github.com/cemas-app/cemas_backend/internal/apperrors"
	"github.com/cemas-app/cemas_backend/internal/core/domain"
	portsrepo "github.com/cemas-app/cemas_backend/internal/core/ports/repositories"
	portssvc "github.com/cemas-app/cemas_backend/internal/core/ports/services"
	"github.com/cemas-app/cemas_backend/internal/core/services"
	"github.com/cemas-app/cemas_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepository = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategoriesByOwner(ctx context.Context, ownerID string) ([]domain.Category, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Test Suite ---
type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.CategorySvcFacade
	callerID         string
	otherUserID      string
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockCategoryRepo)
	suite.callerID = uuid.NewString()
	suite.otherUserID = uuid.NewString()
}

// --- Test Cases ---

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	req := dto.CategoryRequest{Name: "Ventas mostrador", Kind: "INGRESO"}

	var saved domain.Category
	suite.mockCategoryRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Category)
		}).Return(nil).Once()

	created, err := suite.service.CreateCategory(ctx, suite.callerID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(created.CategoryID)
	suite.Equal(suite.callerID, saved.OwnerID)
	suite.Equal(req.Name, saved.Name)
	suite.Equal(domain.KindIncome, saved.Kind)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_InvalidKind() {
	ctx := context.Background()
	req := dto.CategoryRequest{Name: "Ventas", Kind: "OTRO"}

	_, err := suite.service.CreateCategory(ctx, suite.callerID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_Success() {
	ctx := context.Background()
	existing := &domain.Category{
		CategoryID: uuid.NewString(),
		OwnerID:    suite.callerID,
		Name:       "Gastos varios",
		Kind:       domain.KindExpense,
	}
	req := dto.CategoryRequest{Name: "Insumos", Kind: "GASTO"}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, existing.CategoryID).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("UpdateCategory", ctx, mock.AnythingOfType("domain.Category")).Return(nil).Once()

	updated, err := suite.service.UpdateCategory(ctx, suite.callerID, existing.CategoryID, req)

	suite.Require().NoError(err)
	suite.Equal("Insumos", updated.Name)
	suite.Equal(domain.KindExpense, updated.Kind)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_ForeignRowIsForbidden() {
	ctx := context.Background()
	foreign := &domain.Category{
		CategoryID: uuid.NewString(),
		OwnerID:    suite.otherUserID,
		Name:       "Ajena",
		Kind:       domain.KindIncome,
	}
	req := dto.CategoryRequest{Name: "Mia ahora", Kind: "INGRESO"}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, foreign.CategoryID).Return(foreign, nil).Once()

	_, err := suite.service.UpdateCategory(ctx, suite.callerID, foreign.CategoryID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "UpdateCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_MissingRowIsNotFound() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := dto.CategoryRequest{Name: "Nada", Kind: "GASTO"}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateCategory(ctx, suite.callerID, categoryID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Success() {
	ctx := context.Background()
	existing := &domain.Category{
		CategoryID: uuid.NewString(),
		OwnerID:    suite.callerID,
		Name:       "Temporal",
		Kind:       domain.KindIncome,
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, existing.CategoryID).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("DeleteCategory", ctx, existing.CategoryID).Return(nil).Once()

	err := suite.service.DeleteCategory(ctx, suite.callerID, existing.CategoryID)

	suite.Require().NoError(err)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_ForeignRowIsForbidden() {
	ctx := context.Background()
	foreign := &domain.Category{
		CategoryID: uuid.NewString(),
		OwnerID:    suite.otherUserID,
		Name:       "Ajena",
		Kind:       domain.KindExpense,
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, foreign.CategoryID).Return(foreign, nil).Once()

	err := suite.service.DeleteCategory(ctx, suite.callerID, foreign.CategoryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "DeleteCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestListCategories() {
	ctx := context.Background()
	categories := []domain.Category{
		{CategoryID: uuid.NewString(), OwnerID: suite.callerID, Name: "Ventas", Kind: domain.KindIncome},
		{CategoryID: uuid.NewString(), OwnerID: suite.callerID, Name: "Insumos", Kind: domain.KindExpense},
	}

	suite.mockCategoryRepo.On("ListCategoriesByOwner", ctx, suite.callerID).Return(categories, nil).Once()

	listed, err := suite.service.ListCategories(ctx, suite.callerID)

	suite.Require().NoError(err)
	suite.Equal(categories, listed)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
