package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cemas-app/cemas_backend/internal/apperrors"
	"github.com/cemas-app/cemas_backend/internal/core/domain"
	portsrepo "github.com/cemas-app/cemas_backend/internal/core/ports/repositories"
	"github.com/cemas-app/cemas_backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxSaleRepository struct {
	BaseRepository
}

// NewPgxSaleRepository creates a new repository for sale and sale line data.
func NewPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepository {
	return &PgxSaleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SaleRepository = (*PgxSaleRepository)(nil)

// CreateSale commits the sale header and all lines within a DB transaction.
// Price snapshots are taken from the products table inside the same
// transaction; any missing or foreign product aborts the whole sale.
func (r *PgxSaleRepository) CreateSale(ctx context.Context, sale domain.Sale, lines []portsrepo.SaleLineInput) (*domain.Sale, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored if the transaction is committed successfully
	defer r.Rollback(ctx, tx)

	// 1. Insert the sale header with a zero placeholder total.
	headerQuery := `
        INSERT INTO sales (sale_id, owner_id, total, payment_method, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err = tx.Exec(ctx, headerQuery,
		sale.SaleID,
		sale.OwnerID,
		decimal.Zero,
		string(sale.PaymentMethod),
		sale.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert sale %s: %w", sale.SaleID, err)
	}

	// 2. Resolve each product against the sale owner and snapshot its price,
	// accumulating the total. Lines are processed in input order so the
	// persisted line order matches the request.
	priceQuery := `
        SELECT sale_price FROM products
        WHERE product_id = $1 AND owner_id = $2;
    `
	lineQuery := `
        INSERT INTO sale_lines (line_id, sale_id, product_id, quantity, unit_price, subtotal)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	batch := &pgx.Batch{}
	total := decimal.Zero
	saleLines := make([]domain.SaleLine, 0, len(lines))
	for _, line := range lines {
		var unitPrice decimal.Decimal
		err := tx.QueryRow(ctx, priceQuery, line.ProductID, sale.OwnerID).Scan(&unitPrice)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, line.ProductID)
			}
			return nil, fmt.Errorf("failed to resolve product %s: %w", line.ProductID, err)
		}

		subtotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		saleLine := domain.SaleLine{
			LineID:    uuid.NewString(),
			SaleID:    sale.SaleID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
			Subtotal:  subtotal,
		}
		batch.Queue(lineQuery,
			saleLine.LineID,
			saleLine.SaleID,
			saleLine.ProductID,
			saleLine.Quantity,
			saleLine.UnitPrice,
			saleLine.Subtotal,
		)
		total = total.Add(subtotal)
		saleLines = append(saleLines, saleLine)
	}

	// 3. Send the batch of line inserts.
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("failed to execute line batch for sale %s: %w", sale.SaleID, err)
	}

	// 4. Set the final total on the header.
	_, err = tx.Exec(ctx, `UPDATE sales SET total = $2 WHERE sale_id = $1;`, sale.SaleID, total)
	if err != nil {
		return nil, fmt.Errorf("failed to update total for sale %s: %w", sale.SaleID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	sale.Total = total
	sale.Lines = saleLines
	return &sale, nil
}

// ListSalesByOwner retrieves the owner's sales newest first with their lines.
func (r *PgxSaleRepository) ListSalesByOwner(ctx context.Context, ownerID string) ([]domain.Sale, error) {
	saleQuery := `
        SELECT sale_id, owner_id, total, payment_method, created_at
        FROM sales
        WHERE owner_id = $1
        ORDER BY created_at DESC, sale_id DESC;
    `
	rows, err := r.Pool.Query(ctx, saleQuery, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	saleIDs := []string{}
	for rows.Next() {
		var m models.Sale
		if err := rows.Scan(&m.SaleID, &m.OwnerID, &m.Total, &m.PaymentMethod, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, domain.Sale{
			SaleID:        m.SaleID,
			OwnerID:       m.OwnerID,
			Total:         m.Total,
			PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
			CreatedAt:     m.CreatedAt,
			Lines:         []domain.SaleLine{},
		})
		saleIDs = append(saleIDs, m.SaleID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}
	if len(sales) == 0 {
		return sales, nil
	}

	linesBySale, err := r.findLinesBySaleIDs(ctx, saleIDs)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		if lines, ok := linesBySale[sales[i].SaleID]; ok {
			sales[i].Lines = lines
		}
	}
	return sales, nil
}

// findLinesBySaleIDs fetches the lines for a set of sales in creation order,
// grouped by sale ID.
func (r *PgxSaleRepository) findLinesBySaleIDs(ctx context.Context, saleIDs []string) (map[string][]domain.SaleLine, error) {
	query := `
        SELECT line_id, sale_id, product_id, quantity, unit_price, subtotal
        FROM sale_lines
        WHERE sale_id = ANY($1)
        ORDER BY created_seq;
    `
	rows, err := r.Pool.Query(ctx, query, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale lines: %w", err)
	}
	defer rows.Close()

	linesBySale := make(map[string][]domain.SaleLine)
	for rows.Next() {
		var m models.SaleLine
		if err := rows.Scan(&m.LineID, &m.SaleID, &m.ProductID, &m.Quantity, &m.UnitPrice, &m.Subtotal); err != nil {
			return nil, fmt.Errorf("failed to scan sale line row: %w", err)
		}
		linesBySale[m.SaleID] = append(linesBySale[m.SaleID], domain.SaleLine{
			LineID:    m.LineID,
			SaleID:    m.SaleID,
			ProductID: m.ProductID,
			Quantity:  m.Quantity,
			UnitPrice: m.UnitPrice,
			Subtotal:  m.Subtotal,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale line rows: %w", err)
	}
	return linesBySale, nil
}
