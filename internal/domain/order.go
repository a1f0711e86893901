package domain

import "time"

// ArtworkType classifies which artwork categories a quote order carries.
type ArtworkType string

const (
	ArtworkNone       ArtworkType = "none"
	ArtworkPredefined ArtworkType = "predefined"
	ArtworkCustom     ArtworkType = "custom"
	ArtworkBoth       ArtworkType = "both"
)

// QuoteOrder is a persisted quote request for a configuration containing
// custom artwork. EstimatedPriceCents is the pre-quote subtotal; the final
// price is set by a human reviewer later.
type QuoteOrder struct {
	ID                  string
	ArtworkType         ArtworkType
	EstimatedPriceCents int64
	RequiresQuote       bool
	Description         string
	InspirationImages   []string
	PayloadJSON         []byte
	CreatedAt           time.Time
}
