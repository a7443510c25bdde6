package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/cemas-app/cemas_backend/internal/apperrors"
	"github.com/cemas-app/cemas_backend/internal/core/domain"
	portsrepo "github.com/cemas-app/cemas_backend/internal/core/ports/repositories"
	portssvc "github.com/cemas-app/cemas_backend/internal/core/ports/services"
	"github.com/cemas-app/cemas_backend/internal/core/services"
	"github.com/cemas-app/cemas_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

var _ portsrepo.SaleRepository = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) CreateSale(ctx context.Context, sale domain.Sale, lines []portsrepo.SaleLineInput) (*domain.Sale, error) {
	args := m.Called(ctx, sale, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSalesByOwner(ctx context.Context, ownerID string) ([]domain.Sale, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

// --- Test Suite ---
type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo *MockSaleRepository
	service      portssvc.SaleSvcFacade
	callerID     string
	productID    string
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.service = services.NewSaleService(suite.mockSaleRepo)
	suite.callerID = uuid.NewString()
	suite.productID = uuid.NewString()
}

// committedSale mirrors what the repository returns after a successful
// transaction: lines hydrated with a price snapshot and the exact total.
func (suite *SaleServiceTestSuite) committedSale(quantity int) *domain.Sale {
	unitPrice := decimal.NewFromFloat(25.50)
	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	saleID := uuid.NewString()
	return &domain.Sale{
		SaleID:        saleID,
		OwnerID:       suite.callerID,
		Total:         subtotal,
		PaymentMethod: domain.PaymentCard,
		CreatedAt:     time.Now().UTC(),
		Lines: []domain.SaleLine{
			{
				LineID:    uuid.NewString(),
				SaleID:    saleID,
				ProductID: suite.productID,
				Quantity:  quantity,
				UnitPrice: unitPrice,
				Subtotal:  subtotal,
			},
		},
	}
}

// --- Test Cases ---

func (suite *SaleServiceTestSuite) TestProcessSale_Success() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		PaymentMethod: "TARJETA",
		Lines: []dto.SaleLineRequest{
			{ProductID: suite.productID, Quantity: 3},
		},
	}

	expected := suite.committedSale(3)
	var capturedSale domain.Sale
	var capturedLines []portsrepo.SaleLineInput
	suite.mockSaleRepo.On("CreateSale", ctx, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("[]repositories.SaleLineInput")).
		Run(func(args mock.Arguments) {
			capturedSale = args.Get(1).(domain.Sale)
			capturedLines = args.Get(2).([]portsrepo.SaleLineInput)
		}).
		Return(expected, nil).Once()

	committed, err := suite.service.ProcessSale(ctx, suite.callerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(committed)
	suite.NotEmpty(capturedSale.SaleID)
	suite.Equal(suite.callerID, capturedSale.OwnerID)
	suite.Equal(domain.PaymentCard, capturedSale.PaymentMethod)
	suite.WithinDuration(time.Now().UTC(), capturedSale.CreatedAt, 5*time.Second)
	suite.Require().Len(capturedLines, 1)
	suite.Equal(portsrepo.SaleLineInput{ProductID: suite.productID, Quantity: 3}, capturedLines[0])
	suite.Equal(expected, committed)
	suite.True(committed.Total.Equal(decimal.NewFromFloat(76.50)), "total should be qty x unit price, got %s", committed.Total)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestProcessSale_DefaultsToCash() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		Lines: []dto.SaleLineRequest{
			{ProductID: suite.productID, Quantity: 1},
		},
	}

	var capturedSale domain.Sale
	suite.mockSaleRepo.On("CreateSale", ctx, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("[]repositories.SaleLineInput")).
		Run(func(args mock.Arguments) {
			capturedSale = args.Get(1).(domain.Sale)
		}).
		Return(suite.committedSale(1), nil).Once()

	_, err := suite.service.ProcessSale(ctx, suite.callerID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentCash, capturedSale.PaymentMethod)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestProcessSale_EmptyLines() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{PaymentMethod: "EFECTIVO"}

	_, err := suite.service.ProcessSale(ctx, suite.callerID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "CreateSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestProcessSale_UnknownPaymentMethod() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		PaymentMethod: "CHEQUE",
		Lines: []dto.SaleLineRequest{
			{ProductID: suite.productID, Quantity: 1},
		},
	}

	_, err := suite.service.ProcessSale(ctx, suite.callerID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "CreateSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestProcessSale_NonPositiveQuantity() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		Lines: []dto.SaleLineRequest{
			{ProductID: suite.productID, Quantity: 2},
			{ProductID: uuid.NewString(), Quantity: 0},
		},
	}

	_, err := suite.service.ProcessSale(ctx, suite.callerID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "CreateSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestProcessSale_ProductNotFound() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		Lines: []dto.SaleLineRequest{
			{ProductID: suite.productID, Quantity: 1},
		},
	}

	suite.mockSaleRepo.On("CreateSale", ctx, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("[]repositories.SaleLineInput")).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ProcessSale(ctx, suite.callerID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestProcessSale_RepoError() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		Lines: []dto.SaleLineRequest{
			{ProductID: suite.productID, Quantity: 1},
		},
	}
	repoErr := assert.AnError

	suite.mockSaleRepo.On("CreateSale", ctx, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("[]repositories.SaleLineInput")).
		Return(nil, repoErr).Once()

	_, err := suite.service.ProcessSale(ctx, suite.callerID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, repoErr)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestListSales() {
	ctx := context.Background()
	sales := []domain.Sale{
		{SaleID: uuid.NewString(), OwnerID: suite.callerID, Total: decimal.NewFromInt(120), PaymentMethod: domain.PaymentCash},
		{SaleID: uuid.NewString(), OwnerID: suite.callerID, Total: decimal.NewFromInt(80), PaymentMethod: domain.PaymentTransfer},
	}

	suite.mockSaleRepo.On("ListSalesByOwner", ctx, suite.callerID).Return(sales, nil).Once()

	listed, err := suite.service.ListSales(ctx, suite.callerID)

	suite.Require().NoError(err)
	suite.Equal(sales, listed)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
