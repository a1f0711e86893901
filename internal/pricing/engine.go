package pricing

import (
	"fmt"
	"sort"

	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/domain"
)

// LineItem is one priced or quote-flagged component of a breakdown.
type LineItem struct {
	Label         string `json:"label"`
	AmountCents   int64  `json:"amount_cents"`
	QuoteRequired bool   `json:"quote_required"`
}

// Breakdown is the full derived price for one configuration snapshot.
// SubtotalCents sums only items that are not quote-flagged.
type Breakdown struct {
	Items         []LineItem `json:"items"`
	SubtotalCents int64      `json:"subtotal_cents"`
	HasQuoteItems bool       `json:"has_quote_items"`
}

// Engine derives price breakdowns from studio configurations. Compute is a
// pure function of its input and the price list: no side effects, no I/O,
// identical output for identical snapshots.
type Engine struct {
	prices PriceList
}

// NewEngine builds an engine over the given price list.
func NewEngine(prices PriceList) *Engine {
	return &Engine{prices: prices}
}

// Prices returns the price list the engine evaluates against.
func (e *Engine) Prices() PriceList {
	return e.prices
}

// Compute evaluates the configuration into a breakdown. Line items are
// emitted in a fixed category order so equal configurations always produce
// identical breakdowns. It is total over any structurally valid
// configuration, including the empty one.
func (e *Engine) Compute(cfg *domain.StudioConfig) Breakdown {
	var bd Breakdown

	if cfg.Shape != "" {
		bd.add(fmt.Sprintf("Shape: %s", Humanize(string(cfg.Shape))), e.prices.Shapes[cfg.Shape])
	}
	if cfg.Length != "" {
		bd.add(fmt.Sprintf("Length: %s", Humanize(string(cfg.Length))), e.prices.Lengths[cfg.Length])
	}
	if cfg.BaseFinish != "" {
		bd.add(fmt.Sprintf("Finish: %s", Humanize(string(cfg.BaseFinish))), e.prices.Finishes[cfg.BaseFinish])
	}

	if changed := e.accentFinishChanges(cfg); changed > 0 {
		label := "Accent finish change"
		if changed > 1 {
			label = fmt.Sprintf("Accent finish change x%d", changed)
		}
		bd.add(label, int64(changed)*e.prices.AccentFinishChange)
	}

	for _, effectType := range sortedEffectTypes(cfg.Effects) {
		scope := cfg.Effects[effectType]
		price := e.prices.Effects[effectType]
		switch scope {
		case domain.ScopeAccentsOnly:
			// Zero accent nails still itemizes at zero cost; the
			// application is kept, only its price changes.
			count := cfg.AccentNailCount()
			bd.add(fmt.Sprintf("%s effect (accent nails)", Humanize(string(effectType))), price.PerNail*int64(count))
		default:
			bd.add(fmt.Sprintf("%s effect (all nails)", Humanize(string(effectType))), price.AllNails)
		}
	}

	if cfg.RhinestoneTier != domain.RhinestoneNone && cfg.RhinestoneTier != "" {
		bd.add(fmt.Sprintf("Rhinestones: %s", Humanize(string(cfg.RhinestoneTier))), e.prices.Rhinestones[cfg.RhinestoneTier])
	}
	if cfg.CharmTier != domain.CharmNone && cfg.CharmTier != "" {
		bd.add(fmt.Sprintf("Charms: %s", Humanize(string(cfg.CharmTier))), e.prices.Charms[cfg.CharmTier])
	}

	for _, artType := range sortedArtTypes(cfg.Artwork) {
		nails := cfg.Artwork[artType]
		price := e.prices.NailArt[artType]
		if artType == domain.ArtThemedSet {
			bd.add(fmt.Sprintf("Nail art: %s", Humanize(string(artType))), price.Flat)
			continue
		}
		bd.add(fmt.Sprintf("Nail art: %s (%d nails)", Humanize(string(artType)), len(nails)), price.PerNail*int64(len(nails)))
	}

	if cfg.CustomArtwork != nil {
		bd.Items = append(bd.Items, LineItem{
			Label:         "Custom artwork (quote required)",
			AmountCents:   0,
			QuoteRequired: true,
		})
		bd.HasQuoteItems = true
	}

	return bd
}

func (b *Breakdown) add(label string, amount int64) {
	b.Items = append(b.Items, LineItem{Label: label, AmountCents: amount})
	b.SubtotalCents += amount
}

func (e *Engine) accentFinishChanges(cfg *domain.StudioConfig) int {
	changed := 0
	for finger := range cfg.AccentNails {
		ac, ok := cfg.AccentConfigs[finger]
		if !ok || ac.Finish == nil {
			continue
		}
		if *ac.Finish != cfg.BaseFinish {
			changed++
		}
	}
	return changed
}

func sortedEffectTypes(effects map[domain.EffectType]domain.EffectScope) []domain.EffectType {
	types := make([]domain.EffectType, 0, len(effects))
	for t := range effects {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

func sortedArtTypes(artwork map[domain.NailArtType]domain.FingerSet) []domain.NailArtType {
	types := make([]domain.NailArtType, 0, len(artwork))
	for t := range artwork {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
