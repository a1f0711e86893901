package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/domain"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/infra"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/sqlinline"
)

// QuoteOrderRepositoryPG implements QuoteOrderRepository using PostgreSQL.
// Queries go through the audit-logging SQL runner so every statement carries
// its sqlinline marker in the logs.
type QuoteOrderRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewQuoteOrderRepository creates a new quote-order repo.
func NewQuoteOrderRepository(sql infra.SQLExecutor) *QuoteOrderRepositoryPG {
	return &QuoteOrderRepositoryPG{sql: sql}
}

// Create inserts a new quote order record.
func (r *QuoteOrderRepositoryPG) Create(ctx context.Context, order *domain.QuoteOrder) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertQuoteOrder,
		order.ID,
		string(order.ArtworkType),
		order.EstimatedPriceCents,
		order.RequiresQuote,
		order.Description,
		order.InspirationImages,
		order.PayloadJSON,
	)
	return err
}

// GetByID fetches one quote order.
func (r *QuoteOrderRepositoryPG) GetByID(ctx context.Context, id string) (*domain.QuoteOrder, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QGetQuoteOrder, id)
	order, err := scanQuoteOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

// ListRecent returns recent quote orders limited by the input value.
func (r *QuoteOrderRepositoryPG) ListRecent(ctx context.Context, limit int) ([]domain.QuoteOrder, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListQuoteOrders, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.QuoteOrder
	for rows.Next() {
		order, err := scanQuoteOrder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanQuoteOrder(row pgx.Row) (*domain.QuoteOrder, error) {
	var order domain.QuoteOrder
	var artworkType string
	if err := row.Scan(
		&order.ID,
		&artworkType,
		&order.EstimatedPriceCents,
		&order.RequiresQuote,
		&order.Description,
		&order.InspirationImages,
		&order.PayloadJSON,
		&order.CreatedAt,
	); err != nil {
		return nil, err
	}
	order.ArtworkType = domain.ArtworkType(artworkType)
	return &order, nil
}
