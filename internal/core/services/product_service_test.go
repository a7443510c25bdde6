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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepository = (*MockProductRepository)(nil)

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProductsByOwner(ctx context.Context, ownerID string) ([]domain.Product, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// --- Test Suite ---
type ProductServiceTestSuite struct {
	suite.Suite
	mockProductRepo *MockProductRepository
	service         portssvc.ProductSvcFacade
	callerID        string
	otherUserID     string
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewProductService(suite.mockProductRepo)
	suite.callerID = uuid.NewString()
	suite.otherUserID = uuid.NewString()
}

func (suite *ProductServiceTestSuite) ownedProduct() *domain.Product {
	return &domain.Product{
		ProductID:  uuid.NewString(),
		OwnerID:    suite.callerID,
		Name:       "Cafe americano",
		SalePrice:  decimal.NewFromFloat(35.00),
		ApproxCost: decimal.NewFromFloat(12.50),
	}
}

// --- Test Cases ---

func (suite *ProductServiceTestSuite) TestCreateProduct_Success() {
	ctx := context.Background()
	cost := decimal.NewFromFloat(12.50)
	req := dto.ProductRequest{
		Name:       "Cafe americano",
		SalePrice:  decimal.NewFromFloat(35.00),
		ApproxCost: &cost,
	}

	var saved domain.Product
	suite.mockProductRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Product)
		}).Return(nil).Once()

	created, err := suite.service.CreateProduct(ctx, suite.callerID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(created.ProductID)
	suite.Equal(suite.callerID, saved.OwnerID)
	suite.True(saved.SalePrice.Equal(req.SalePrice))
	suite.True(saved.ApproxCost.Equal(cost))
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_OmittedCostDefaultsToZero() {
	ctx := context.Background()
	req := dto.ProductRequest{
		Name:      "Pan dulce",
		SalePrice: decimal.NewFromFloat(8.00),
	}

	var saved domain.Product
	suite.mockProductRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Product)
		}).Return(nil).Once()

	_, err := suite.service.CreateProduct(ctx, suite.callerID, req)

	suite.Require().NoError(err)
	suite.True(saved.ApproxCost.IsZero())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_NegativePrice() {
	ctx := context.Background()
	req := dto.ProductRequest{
		Name:      "Cafe americano",
		SalePrice: decimal.NewFromFloat(-1.00),
	}

	_, err := suite.service.CreateProduct(ctx, suite.callerID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestGetProduct_ForeignRowIsForbidden() {
	ctx := context.Background()
	foreign := suite.ownedProduct()
	foreign.OwnerID = suite.otherUserID

	suite.mockProductRepo.On("FindProductByID", ctx, foreign.ProductID).Return(foreign, nil).Once()

	_, err := suite.service.GetProduct(ctx, suite.callerID, foreign.ProductID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ProductServiceTestSuite) TestGetProduct_MissingRowIsNotFound() {
	ctx := context.Background()
	productID := uuid.NewString()

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetProduct(ctx, suite.callerID, productID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_Success() {
	ctx := context.Background()
	existing := suite.ownedProduct()
	req := dto.ProductRequest{
		Name:      "Cafe americano grande",
		SalePrice: decimal.NewFromFloat(42.00),
	}

	suite.mockProductRepo.On("FindProductByID", ctx, existing.ProductID).Return(existing, nil).Once()

	var updated domain.Product
	suite.mockProductRepo.On("UpdateProduct", ctx, mock.AnythingOfType("domain.Product")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.Product)
		}).Return(nil).Once()

	result, err := suite.service.UpdateProduct(ctx, suite.callerID, existing.ProductID, req)

	suite.Require().NoError(err)
	suite.Equal(req.Name, result.Name)
	suite.True(updated.SalePrice.Equal(req.SalePrice))
	// Cost was omitted, so the stored value stays.
	suite.True(updated.ApproxCost.Equal(decimal.NewFromFloat(12.50)))
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestDeleteProduct_InUse() {
	ctx := context.Background()
	existing := suite.ownedProduct()

	suite.mockProductRepo.On("FindProductByID", ctx, existing.ProductID).Return(existing, nil).Once()
	suite.mockProductRepo.On("DeleteProduct", ctx, existing.ProductID).Return(apperrors.ErrProductInUse).Once()

	err := suite.service.DeleteProduct(ctx, suite.callerID, existing.ProductID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrProductInUse)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestDeleteProduct_Success() {
	ctx := context.Background()
	existing := suite.ownedProduct()

	suite.mockProductRepo.On("FindProductByID", ctx, existing.ProductID).Return(existing, nil).Once()
	suite.mockProductRepo.On("DeleteProduct", ctx, existing.ProductID).Return(nil).Once()

	err := suite.service.DeleteProduct(ctx, suite.callerID, existing.ProductID)

	suite.Require().NoError(err)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
