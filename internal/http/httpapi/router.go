package httpapi

import (
	"net/http"

	"fotoseni/internal/http/handlers"
	"fotoseni/internal/infra"
	appmw "fotoseni/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger, lookup appmw.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		appmw.RequestID,
		appmw.Logger(logger),
		appmw.CORS(cfg.CORSAllowedOrigins),
		appmw.I18N(cfg.DefaultLocale, lookup),
	)

	// Studio page and controls
	r.Get("/", app.StudioPage)
	r.Route("/studio", func(r chi.Router) {
		r.Post("/image", app.StudioUpload)
		r.Post("/convert", app.StudioConvert)
		r.Post("/reset", app.StudioReset)
		r.Get("/download", app.StudioDownload)
	})

	// Health
	r.Get("/healthz", app.Health)

	// JSON API
	r.Route("/v1", func(r chi.Router) {
		r.Get("/styles", app.StylesCatalog)
		r.Post("/convert", app.ConvertAPI)
		r.Get("/stats", app.StatsSummary)
		r.Get("/openapi.json", app.OpenAPIJSON)
		r.Get("/docs", app.OpenAPIDocs)
	})

	return r
}
