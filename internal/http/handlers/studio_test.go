package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/pricing"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/studio"
)

func newTestApp() *App {
	engine := pricing.NewEngine(pricing.DefaultPriceList())
	return &App{
		Logger:   zerolog.Nop(),
		Sessions: studio.NewManager(engine),
		Orders:   &fakeOrderRepo{},
		Images:   &fakeImageStore{},
	}
}

// withRouteID attaches a chi route context carrying the session or order id,
// so handlers can be exercised without mounting the full router.
func withRouteID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func requestWithID(method, target, id string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	return withRouteID(httptest.NewRequest(method, target, &buf), id)
}

type breakdownPayload struct {
	Breakdown struct {
		Items []struct {
			Label         string `json:"label"`
			AmountCents   int64  `json:"amount_cents"`
			Display       string `json:"display"`
			QuoteRequired bool   `json:"quote_required"`
		} `json:"items"`
		SubtotalCents int64  `json:"subtotal_cents"`
		Subtotal      string `json:"subtotal"`
		HasQuoteItems bool   `json:"has_quote_items"`
	} `json:"breakdown"`
}

func decodeBreakdown(t *testing.T, rr *httptest.ResponseRecorder) breakdownPayload {
	t.Helper()
	var payload breakdownPayload
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload
}

func TestSessionsCreateReturnsEmptyBreakdown(t *testing.T) {
	app := newTestApp()

	rr := httptest.NewRecorder()
	app.SessionsCreate(rr, httptest.NewRequest("POST", "/v1/studio/sessions", nil))

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rr.Code)
	}
	var payload struct {
		ID string `json:"id"`
		breakdownPayload
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.ID == "" {
		t.Fatal("expected a session id")
	}
	if payload.Breakdown.SubtotalCents != 0 {
		t.Fatalf("fresh session subtotal = %d", payload.Breakdown.SubtotalCents)
	}
}

func TestUnknownSessionIs404(t *testing.T) {
	app := newTestApp()

	rr := httptest.NewRecorder()
	app.SetShape(rr, requestWithID("POST", "/v1/studio/sessions/nope/shape", "nope", map[string]string{"shape": "almond"}))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestSetShapeValidatesEnum(t *testing.T) {
	app := newTestApp()
	id, _ := app.Sessions.Create()

	rr := httptest.NewRecorder()
	app.SetShape(rr, requestWithID("POST", "/shape", id, map[string]string{"shape": "round"}))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}

	rr = httptest.NewRecorder()
	app.SetShape(rr, requestWithID("POST", "/shape", id, map[string]string{"shape": "almond"}))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	payload := decodeBreakdown(t, rr)
	if payload.Breakdown.SubtotalCents != 800 {
		t.Fatalf("subtotal after almond = %d, want 800", payload.Breakdown.SubtotalCents)
	}
}

func TestMutationFlowBuildsBreakdown(t *testing.T) {
	app := newTestApp()
	id, _ := app.Sessions.Create()

	steps := []struct {
		handler http.HandlerFunc
		body    any
	}{
		{app.SetShape, map[string]any{"shape": "almond"}},
		{app.SetLength, map[string]any{"length": "medium"}},
		{app.SetFinish, map[string]any{"finish": "matte"}},
		{app.SetAccents, map[string]any{"enabled": true}},
		{app.ToggleAccent, map[string]any{"finger": 3}},
		{app.ToggleAccent, map[string]any{"finger": 7}},
		{app.AddEffect, map[string]any{"type": "chrome", "scope": "accents-only"}},
	}
	for i, step := range steps {
		rr := httptest.NewRecorder()
		step.handler(rr, requestWithID("POST", "/op", id, step.body))
		if rr.Code != http.StatusOK {
			t.Fatalf("step %d: status = %d body=%s", i, rr.Code, rr.Body.String())
		}
	}

	rr := httptest.NewRecorder()
	app.BreakdownGet(rr, requestWithID("GET", "/breakdown", id, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	payload := decodeBreakdown(t, rr)
	// almond 8.00 + matte 5.00 + chrome on 2 accents 12.00
	if payload.Breakdown.SubtotalCents != 2500 {
		t.Fatalf("subtotal = %d, want 2500", payload.Breakdown.SubtotalCents)
	}
}

func TestNailColorValidatesFinger(t *testing.T) {
	app := newTestApp()
	id, _ := app.Sessions.Create()

	rr := httptest.NewRecorder()
	app.SetNailColor(rr, requestWithID("POST", "/nail-color", id, map[string]any{"finger": 11, "color": "#fff"}))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestCartCreateResetsSession(t *testing.T) {
	app := newTestApp()
	id, store := app.Sessions.Create()

	rr := httptest.NewRecorder()
	app.SetShape(rr, requestWithID("POST", "/shape", id, map[string]string{"shape": "stiletto"}))

	rr = httptest.NewRecorder()
	app.CartCreate(rr, requestWithID("POST", "/cart", id, nil))
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body=%s", rr.Code, rr.Body.String())
	}
	var payload struct {
		Item struct {
			VariantID      string `json:"variant_id"`
			UnitPriceCents int64  `json:"unit_price_cents"`
			Quantity       int    `json:"quantity"`
		} `json:"item"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Item.UnitPriceCents != 1000 {
		t.Fatalf("unit price = %d, want 1000", payload.Item.UnitPriceCents)
	}
	if payload.Item.Quantity != 1 {
		t.Fatalf("quantity = %d, want 1", payload.Item.Quantity)
	}
	if payload.Item.VariantID == "" {
		t.Fatal("expected a variant id")
	}

	if bd := store.Breakdown(); bd.SubtotalCents != 0 {
		t.Fatalf("session must reset after carting, subtotal = %d", bd.SubtotalCents)
	}
}

func TestCartCreateConflictsInQuoteMode(t *testing.T) {
	app := newTestApp()
	id, _ := app.Sessions.Create()

	rr := httptest.NewRecorder()
	app.SetCustomArtwork(rr, requestWithID("POST", "/custom-artwork", id, map[string]any{"description": ""}))
	if rr.Code != http.StatusOK {
		t.Fatalf("set custom artwork: status = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	app.CartCreate(rr, requestWithID("POST", "/cart", id, nil))
	if rr.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rr.Code)
	}
}
