package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/domain"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/studio"
)

// CartCreate converts a priced configuration into a cart line item and resets
// the session for the next set. Configurations in quote mode are rejected;
// they must go through the quote path instead.
func (a *App) CartCreate(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	cfg := store.Snapshot()
	item, err := studio.BuildCartLineItem(cfg, store.Breakdown())
	if err != nil {
		if errors.Is(err, domain.ErrQuoteRequired) {
			a.error(w, http.StatusConflict, "quote_required", "custom artwork requires a quote before checkout")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to build cart item")
		return
	}

	store.Reset()
	a.json(w, http.StatusCreated, map[string]any{"item": item})
}
