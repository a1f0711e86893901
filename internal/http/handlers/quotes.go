package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/domain"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/pricing"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/studio"
	pkgzip "github.com/cashmoneyrick/bridal-nail-studio-sub000/pkg/zip"
)

const maxImageBytes = 10 << 20

// QuoteSubmit turns a quote-mode configuration into a persisted quote order.
// The session is only reset after the order is stored, so a failed submission
// leaves the configuration intact for retry.
func (a *App) QuoteSubmit(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	cfg := store.Snapshot()
	payload, err := studio.BuildQuotePayload(cfg, store.Breakdown())
	if err != nil {
		if errors.Is(err, domain.ErrNoCustomArtwork) {
			a.error(w, http.StatusConflict, "no_custom_artwork", "quote requests require custom artwork")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to build quote payload")
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to encode quote payload")
		return
	}

	order := &domain.QuoteOrder{
		ID:                  uuid.NewString(),
		ArtworkType:         payload.ArtworkType,
		EstimatedPriceCents: payload.EstimatedPriceCents,
		RequiresQuote:       true,
		Description:         payload.Description,
		InspirationImages:   payload.InspirationImages,
		PayloadJSON:         raw,
		CreatedAt:           time.Now().UTC(),
	}
	if err := a.Orders.Create(r.Context(), order); err != nil {
		a.Logger.Error().Err(err).Msg("create quote order")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create quote order")
		return
	}

	store.Reset()
	a.json(w, http.StatusCreated, map[string]any{
		"order_id":        order.ID,
		"artwork_type":    order.ArtworkType,
		"estimated_price": pricing.FormatCents(order.EstimatedPriceCents),
		"requires_quote":  true,
	})
}

// ImageUpload stores one inspiration image for the session's custom artwork
// request and records its reference on the configuration.
func (a *App) ImageUpload(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid multipart payload")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to read image")
		return
	}
	if len(data) > maxImageBytes {
		a.error(w, http.StatusRequestEntityTooLarge, "too_large", "image exceeds the 10MB limit")
		return
	}

	key, err := a.Images.Save(r.Context(), chi.URLParam(r, "id"), header.Filename, data)
	if err != nil {
		a.Logger.Error().Err(err).Msg("save inspiration image")
		a.error(w, http.StatusInternalServerError, "internal", "failed to store image")
		return
	}
	if !store.AddInspirationImage(key) {
		a.error(w, http.StatusConflict, "no_custom_artwork", "add a custom artwork request before uploading images")
		return
	}

	a.json(w, http.StatusCreated, map[string]any{"reference": key})
}

func (a *App) OrdersGet(w http.ResponseWriter, r *http.Request) {
	order, err := a.Orders.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "quote order not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to load quote order")
		return
	}
	a.json(w, http.StatusOK, orderView(order))
}

func (a *App) OrdersList(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	orders, err := a.Orders.ListRecent(r.Context(), limit)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to list quote orders")
		return
	}
	items := []map[string]any{}
	for i := range orders {
		items = append(items, orderView(&orders[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// OrdersExport bundles the order payload and its inspiration images into one
// zip download for the fulfillment team.
func (a *App) OrdersExport(w http.ResponseWriter, r *http.Request) {
	order, err := a.Orders.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "quote order not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to load quote order")
		return
	}

	entries := []pkgzip.Entry{{Filename: "order.json", Data: order.PayloadJSON}}
	for i, ref := range order.InspirationImages {
		data, err := a.Images.Load(r.Context(), ref)
		if err != nil {
			a.Logger.Warn().Err(err).Str("reference", ref).Msg("skip missing inspiration image")
			continue
		}
		entries = append(entries, pkgzip.Entry{Filename: fmt.Sprintf("inspiration-%02d%s", i+1, path.Ext(ref)), Data: data})
	}

	archive, err := pkgzip.Archive(entries)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to build export archive")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "order-"+order.ID+".zip"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

func orderView(order *domain.QuoteOrder) map[string]any {
	return map[string]any{
		"id":                 order.ID,
		"artwork_type":       order.ArtworkType,
		"estimated_price":    pricing.FormatCents(order.EstimatedPriceCents),
		"requires_quote":     order.RequiresQuote,
		"description":        order.Description,
		"inspiration_images": order.InspirationImages,
		"payload":            json.RawMessage(order.PayloadJSON),
		"created_at":         order.CreatedAt,
	}
}
