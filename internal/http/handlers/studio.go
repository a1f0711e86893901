package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/domain"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/middleware"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/studio"
)

func (a *App) SessionsCreate(w http.ResponseWriter, r *http.Request) {
	id, store := a.Sessions.Create()
	a.json(w, http.StatusCreated, map[string]any{
		"id":        id,
		"breakdown": viewBreakdown(store.Breakdown()),
	})
}

func (a *App) SessionsGet(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"id":            chi.URLParam(r, "id"),
		"locale":        middleware.LocaleFromContext(r.Context()),
		"configuration": studio.Normalize(store.Snapshot()),
		"breakdown":     viewBreakdown(store.Breakdown()),
	})
}

func (a *App) SessionsDelete(w http.ResponseWriter, r *http.Request) {
	a.Sessions.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) SessionsReset(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	store.Reset()
	a.json(w, http.StatusOK, map[string]any{"breakdown": viewBreakdown(store.Breakdown())})
}

func (a *App) BreakdownGet(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"locale":    middleware.LocaleFromContext(r.Context()),
		"breakdown": viewBreakdown(store.Breakdown()),
	})
}

// respondWithBreakdown is the shared tail of every mutation handler: the UI
// re-reads the derived price on each change.
func (a *App) respondWithBreakdown(w http.ResponseWriter, store *studio.Store) {
	a.json(w, http.StatusOK, map[string]any{"breakdown": viewBreakdown(store.Breakdown())})
}

func (a *App) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return false
	}
	return true
}

func (a *App) SetShape(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req struct {
		Shape domain.ShapeType `json:"shape"`
	}
	if !a.decode(w, r, &req) {
		return
	}
	if !req.Shape.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown shape")
		return
	}
	store.SetShape(req.Shape)
	a.respondWithBreakdown(w, store)
}

func (a *App) SetLength(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req struct {
		Length domain.LengthType `json:"length"`
	}
	if !a.decode(w, r, &req) {
		return
	}
	if !req.Length.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown length")
		return
	}
	store.SetLength(req.Length)
	a.respondWithBreakdown(w, store)
}

func (a *App) SetFinish(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req struct {
		Finish domain.FinishType `json:"finish"`
	}
	if !a.decode(w, r, &req) {
		return
	}
	if !req.Finish.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown finish")
		return
	}
	store.SetBaseFinish(req.Finish)
	a.respondWithBreakdown(w, store)
}

func (a *App) SetPalette(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req struct {
		Name   string   `json:"name"`
		Colors []string `json:"colors"`
	}
	if !a.decode(w, r, &req) {
		return
	}
	if len(req.Colors) == 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "palette needs at least one color")
		return
	}
	store.SetColorPalette(domain.ColorPalette{Name: req.Name, Colors: req.Colors})
	a.respondWithBreakdown(w, store)
}

func (a *App) SetNailColor(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req struct {
		Finger domain.FingerIndex `json:"finger"`
		Color  string             `json:"color"`
	}
	if !a.decode(w, r, &req) {
		return
	}
	if !req.Finger.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "finger must be between 0 and 9")
		return
	}
	if req.Color == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "color is required")
		return
	}
	store.SetNailColor(req.Finger, req.Color)
	a.respondWithBreakdown(w, store)
}

func (a *App) SetAccents(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if !a.decode(w, r, &req) {
		return
	}
	store.SetHasAccentNails(req.Enabled)
	a.respondWithBreakdown(w, store)
}

func (a *App) ToggleAccent(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req struct {
		Finger domain.FingerIndex `json:"finger"`
	}
	if !a.decode(w, r, &req) {
		return
	}
	if !req.Finger.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "finger must be between 0 and 9")
		return
	}
	store.ToggleAccentNail(req.Finger)
	a.respondWithBreakdown(w, store)
}

func (a *App) SetAccentConfig(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req struct {
		Finger domain.FingerIndex `json:"finger"`
		Finish *domain.FinishType `json:"finish"`
	}
	if !a.decode(w, r, &req) {
		return
	}
	if !req.Finger.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "finger must be between 0 and 9")
		return
	}
	if req.Finish != nil && !req.Finish.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown finish")
		return
	}
	store.SetAccentConfig(req.Finger, domain.AccentConfig{Finish: req.Finish})
	a.respondWithBreakdown(w, store)
}

func (a *App) AddEffect(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req struct {
		Type  domain.EffectType  `json:"type"`
		Scope domain.EffectScope `json:"scope"`
	}
	if !a.decode(w, r, &req) {
		return
	}
	if !req.Type.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown effect type")
		return
	}
	if !req.Scope.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown effect scope")
		return
	}
	store.AddEffect(req.Type, req.Scope)
	a.respondWithBreakdown(w, store)
}

func (a *App) RemoveEffect(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	effectType := domain.EffectType(chi.URLParam(r, "type"))
	if !effectType.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown effect type")
		return
	}
	store.RemoveEffect(effectType)
	a.respondWithBreakdown(w, store)
}

func (a *App) SetRhinestones(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req struct {
		Tier domain.RhinestoneTier `json:"tier"`
	}
	if !a.decode(w, r, &req) {
		return
	}
	if !req.Tier.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown rhinestone tier")
		return
	}
	store.SetRhinestoneTier(req.Tier)
	a.respondWithBreakdown(w, store)
}

func (a *App) SetCharms(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req struct {
		Tier domain.CharmTier `json:"tier"`
	}
	if !a.decode(w, r, &req) {
		return
	}
	if !req.Tier.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown charm tier")
		return
	}
	store.SetCharmTier(req.Tier)
	a.respondWithBreakdown(w, store)
}

func (a *App) SetCharmPreferences(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if !a.decode(w, r, &req) {
		return
	}
	store.SetCharmPreferences(req.Text)
	a.respondWithBreakdown(w, store)
}

func (a *App) AddArtwork(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req struct {
		Type  domain.NailArtType `json:"type"`
		Nails []int              `json:"nails"`
	}
	if !a.decode(w, r, &req) {
		return
	}
	if !req.Type.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown nail art type")
		return
	}
	nails := make(domain.FingerSet, len(req.Nails))
	for _, n := range req.Nails {
		finger := domain.FingerIndex(n)
		if !finger.Valid() {
			a.error(w, http.StatusBadRequest, "bad_request", "finger must be between 0 and 9")
			return
		}
		nails[finger] = struct{}{}
	}
	store.AddPredefinedArtwork(req.Type, nails)
	a.respondWithBreakdown(w, store)
}

func (a *App) RemoveArtwork(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	artType := domain.NailArtType(chi.URLParam(r, "type"))
	if !artType.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown nail art type")
		return
	}
	store.RemovePredefinedArtwork(artType)
	a.respondWithBreakdown(w, store)
}

func (a *App) SetCustomArtwork(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req struct {
		Description       string   `json:"description"`
		InspirationImages []string `json:"inspiration_images"`
		Nails             []int    `json:"nails"`
	}
	if !a.decode(w, r, &req) {
		return
	}
	nails := make(domain.FingerSet, len(req.Nails))
	for _, n := range req.Nails {
		finger := domain.FingerIndex(n)
		if !finger.Valid() {
			a.error(w, http.StatusBadRequest, "bad_request", "finger must be between 0 and 9")
			return
		}
		nails[finger] = struct{}{}
	}
	store.SetCustomArtwork(&domain.CustomArtworkRequest{
		Description:       req.Description,
		InspirationImages: req.InspirationImages,
		Nails:             nails,
	})
	a.respondWithBreakdown(w, store)
}

func (a *App) ClearCustomArtwork(w http.ResponseWriter, r *http.Request) {
	store, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	store.SetCustomArtwork(nil)
	a.respondWithBreakdown(w, store)
}
