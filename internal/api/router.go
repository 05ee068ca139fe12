package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"

	"github.com/vendorunity/vendorunity/internal/config"
	"github.com/vendorunity/vendorunity/internal/observability"
)

// NewRouter builds the chi router with the full middleware stack.
func NewRouter(h *Handler, cfg *config.Config, metrics *observability.Metrics) http.Handler {
	r := chi.NewRouter()

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLRedirect:        cfg.IsProduction(),
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
	})

	r.Use(requestLogger)
	r.Use(corsMiddleware)
	r.Use(secureMiddleware.Handler)
	r.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))
	r.Use(metrics.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/vendors", h.registerVendor)
		r.Delete("/vendors/{id}", h.deleteVendor)

		r.Get("/groups", h.listGroups)
		r.Route("/groups/{code}", func(r chi.Router) {
			r.Get("/vendors", h.listGroupVendors)
			r.Delete("/", h.deleteGroup)
			r.Post("/items", h.addItem)
			r.Patch("/items/{index}", h.patchItem)
			r.Delete("/items/{index}", h.removeItem)
			r.Get("/summary", h.groupSummary)
			r.Get("/invoice", h.groupInvoice)
			r.Post("/submit", h.submitGroupOrder)
		})

		r.Post("/suppliers", h.registerSupplier)
		r.Get("/suppliers", h.listSuppliers)
		r.Delete("/suppliers/{id}", h.deleteSupplier)

		r.Get("/orders", h.listOrders)
		r.Post("/orders/{id}/status", h.updateOrderStatus)

		r.Get("/admin/summary", h.adminSummary)
		r.Post("/admin/reset", h.resetAll)

		r.Get("/language", h.getLanguage)
		r.Put("/language", h.setLanguage)
	})

	return r
}
