package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cemas-app/cemas_backend/internal/apperrors"
	"github.com/cemas-app/cemas_backend/internal/core/domain"
	portsrepo "github.com/cemas-app/cemas_backend/internal/core/ports/repositories"
	portssvc "github.com/cemas-app/cemas_backend/internal/core/ports/services"
	"github.com/cemas-app/cemas_backend/internal/dto"
	"github.com/cemas-app/cemas_backend/internal/middleware"
)

var (
	ErrSaleNoLines        = errors.New("sale must have at least one product")
	ErrInvalidPayment     = errors.New("metodo_pago is not a recognized payment method")
	ErrInvalidQuantity    = errors.New("cantidad must be at least 1")
	ErrSaleProductMissing = errors.New("sale references an unknown product")
)

// saleService validates checkout requests and delegates the atomic commit to
// the sale repository. Price snapshots and the total are resolved inside the
// repository's database transaction so a mid-sale failure leaves no trace.
type saleService struct {
	saleRepo portsrepo.SaleRepository
}

// NewSaleService creates a new SaleService.
func NewSaleService(saleRepo portsrepo.SaleRepository) portssvc.SaleSvcFacade {
	return &saleService{saleRepo: saleRepo}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// ProcessSale validates and atomically commits a sale for the caller.
func (s *saleService) ProcessSale(ctx context.Context, callerID string, req dto.CreateSaleRequest) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrSaleNoLines)
	}

	// Absent method defaults to cash; a present but unknown value is
	// rejected rather than stored verbatim.
	method := domain.PaymentCash
	if req.PaymentMethod != "" {
		method = domain.PaymentMethod(req.PaymentMethod)
		if !method.Valid() {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrInvalidPayment)
		}
	}

	lines := make([]portsrepo.SaleLineInput, len(req.Lines))
	for i, line := range req.Lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: %s (product %s)", apperrors.ErrValidation, ErrInvalidQuantity, line.ProductID)
		}
		lines[i] = portsrepo.SaleLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
	}

	sale := domain.Sale{
		SaleID:        uuid.NewString(),
		OwnerID:       callerID,
		PaymentMethod: method,
		CreatedAt:     time.Now().UTC(),
	}

	committed, err := s.saleRepo.CreateSale(ctx, sale, lines)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// An unknown product and a foreign one are the same failure:
			// the whole sale rolled back.
			return nil, fmt.Errorf("%w: %s", err, ErrSaleProductMissing)
		}
		return nil, err
	}

	logger.Info("Sale committed",
		slog.String("sale_id", committed.SaleID),
		slog.Int("lines", len(committed.Lines)),
		slog.String("total", committed.Total.String()),
	)
	return committed, nil
}

// ListSales returns the caller's committed sales, newest first.
func (s *saleService) ListSales(ctx context.Context, callerID string) ([]domain.Sale, error) {
	return s.saleRepo.ListSalesByOwner(ctx, callerID)
}
