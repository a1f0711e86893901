package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/http/handlers"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/middleware"
)

// Options carries the router's middleware configuration.
type Options struct {
	AllowedOrigins  []string
	DefaultLocale   string
	CountryLookup   middleware.CountryLookup
	QuoteRatePerMin int
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(opts.AllowedOrigins),
		middleware.Locale(opts.DefaultLocale, opts.CountryLookup),
	)

	submitLimit := middleware.RateLimit(opts.QuoteRatePerMin, time.Minute)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/studio/sessions", func(r chi.Router) {
		r.Post("/", app.SessionsCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", app.SessionsGet)
			r.Delete("/", app.SessionsDelete)
			r.Post("/reset", app.SessionsReset)
			r.Get("/breakdown", app.BreakdownGet)

			r.Post("/shape", app.SetShape)
			r.Post("/length", app.SetLength)
			r.Post("/finish", app.SetFinish)
			r.Post("/palette", app.SetPalette)
			r.Post("/nail-color", app.SetNailColor)
			r.Post("/accents", app.SetAccents)
			r.Post("/accents/toggle", app.ToggleAccent)
			r.Post("/accent-config", app.SetAccentConfig)
			r.Post("/effects", app.AddEffect)
			r.Delete("/effects/{type}", app.RemoveEffect)
			r.Post("/rhinestones", app.SetRhinestones)
			r.Post("/charms", app.SetCharms)
			r.Post("/charm-preferences", app.SetCharmPreferences)
			r.Post("/artwork", app.AddArtwork)
			r.Delete("/artwork/{type}", app.RemoveArtwork)
			r.Post("/custom-artwork", app.SetCustomArtwork)
			r.Delete("/custom-artwork", app.ClearCustomArtwork)

			r.Post("/cart", app.CartCreate)
			r.With(submitLimit).Post("/quote", app.QuoteSubmit)
			r.With(submitLimit).Post("/images", app.ImageUpload)
		})
	})

	r.Route("/v1/orders", func(r chi.Router) {
		r.Get("/", app.OrdersList)
		r.Get("/{id}", app.OrdersGet)
		r.Get("/{id}/export", app.OrdersExport)
	})

	return r
}
