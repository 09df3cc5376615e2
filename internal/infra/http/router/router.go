package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-vendas/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-vendas/internal/infra/http/middleware"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	Catalog *handlers.CatalogHandler
	Lead    *handlers.LeadHandler
	Profile *handlers.ProfileHandler
}

type Options struct {
	AllowedOrigins []string
	LeadLimiter    *handlers.RateLimiter
	// TrustProxy liga o RealIP: só com proxy na frente que sobrescreve
	// X-Forwarded-For / X-Real-IP, senão o cliente escolhe o próprio IP.
	TrustProxy bool
}

func New(h Handlers, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if opts.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", h.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/sections", h.Catalog.HandleSections)
	r.Get("/products/{productId}/labels", h.Catalog.HandleProductLabels)
	r.Get("/categories/{categoryId}/products", h.Catalog.HandleCategoryProducts)

	r.Route("/users/{userId}", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if opts.LeadLimiter != nil {
				r.Use(opts.LeadLimiter.Middleware)
			}
			r.Get("/leads", h.Lead.HandleList)
		})
		r.Post("/leads/sync", h.Lead.HandleSync)

		r.Get("/profile", h.Profile.HandleGet)
		r.Put("/profile", h.Profile.HandleUpdate)
		r.Put("/profile/image", h.Profile.HandleBumpImage)
	})

	return r
}
