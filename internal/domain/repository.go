package domain

import "context"

// QuoteOrderRepository persists quote requests produced by the studio flow.
type QuoteOrderRepository interface {
	Create(ctx context.Context, order *QuoteOrder) error
	GetByID(ctx context.Context, id string) (*QuoteOrder, error)
	ListRecent(ctx context.Context, limit int) ([]QuoteOrder, error)
}

// InspirationImageStore resolves customer-supplied inspiration images into
// durable storage keys and reads them back for fulfillment.
type InspirationImageStore interface {
	Save(ctx context.Context, sessionID, filename string, data []byte) (string, error)
	Load(ctx context.Context, key string) ([]byte, error)
}
