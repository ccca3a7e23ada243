package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"obiene/quotation_backend/internal/app/config"
	"obiene/quotation_backend/internal/app/http/handlers"
	"obiene/quotation_backend/internal/app/http/middleware"
)

func NewRouter(cfg config.Config, log *logrus.Logger, h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/session", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Post("/items", h.AddItem)
			r.Post("/items/{index}/edit", h.BeginEdit)
			r.Delete("/items/{index}", h.DeleteItem)
			r.Post("/clear", h.ClearSession)
			r.Put("/client", h.SetClient)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Put("/company", h.UpdateCompany)
			r.Post("/company/logo", h.UploadLogo)
		})

		r.Route("/quotations", func(r chi.Router) {
			r.Post("/", h.Generate)
			r.Get("/", h.History)
			r.Get("/export", h.ExportHistory)
			r.Get("/{number}/pdf", h.RegeneratePDF)
		})
	})

	return r
}
