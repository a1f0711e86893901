package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/domain"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/pricing"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/studio"
)

// App bundles the handler dependencies: the session manager owning live
// studio configurations, the quote-order repository, and the inspiration
// image store.
type App struct {
	Logger   zerolog.Logger
	Sessions *studio.Manager
	Orders   domain.QuoteOrderRepository
	Images   domain.InspirationImageStore
}

func NewApp(logger zerolog.Logger, sessions *studio.Manager, orders domain.QuoteOrderRepository, images domain.InspirationImageStore) *App {
	return &App{Logger: logger, Sessions: sessions, Orders: orders, Images: images}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

// session resolves the studio store for the id in the URL, writing a 404 when
// the session is unknown. The second return value reports whether the caller
// may proceed.
func (a *App) session(w http.ResponseWriter, id string) (*studio.Store, bool) {
	store, err := a.Sessions.Get(id)
	if err != nil {
		a.error(w, http.StatusNotFound, "session_not_found", "studio session not found")
		return nil, false
	}
	return store, true
}

type lineItemView struct {
	Label         string `json:"label"`
	AmountCents   int64  `json:"amount_cents"`
	Amount        string `json:"amount"`
	Display       string `json:"display"`
	QuoteRequired bool   `json:"quote_required"`
}

type breakdownView struct {
	Items         []lineItemView `json:"items"`
	SubtotalCents int64          `json:"subtotal_cents"`
	Subtotal      string         `json:"subtotal"`
	HasQuoteItems bool           `json:"has_quote_items"`
}

func viewBreakdown(bd pricing.Breakdown) breakdownView {
	view := breakdownView{
		Items:         []lineItemView{},
		SubtotalCents: bd.SubtotalCents,
		Subtotal:      pricing.FormatCents(bd.SubtotalCents),
		HasQuoteItems: bd.HasQuoteItems,
	}
	for _, item := range bd.Items {
		view.Items = append(view.Items, lineItemView{
			Label:         item.Label,
			AmountCents:   item.AmountCents,
			Amount:        pricing.FormatCents(item.AmountCents),
			Display:       item.Display(),
			QuoteRequired: item.QuoteRequired,
		})
	}
	return view
}
