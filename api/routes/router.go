package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielavega/shopfront-backend/api/controllers"
	"github.com/danielavega/shopfront-backend/api/middleware"
	"github.com/danielavega/shopfront-backend/internal/catalog"
	"github.com/danielavega/shopfront-backend/internal/session"
	"github.com/danielavega/shopfront-backend/pkg/config"
	"github.com/danielavega/shopfront-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *session.Registry,
	catalogService catalog.Service,
	promRegistry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, registry))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(registry, logg))
		r.Use(middleware.RateLimit(cfg.RateLimit, logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", controllers.CatalogList(catalogService, logg))
			r.Get("/products/{productId}", controllers.CatalogDetail(catalogService, logg))
			r.Get("/facets", controllers.CatalogFacets(catalogService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(logg))
			r.Post("/items", controllers.CartAdd(catalogService, logg))
			r.Put("/items", controllers.CartUpdate(logg))
			r.Delete("/items/{productId}", controllers.CartRemove(logg))
			r.Delete("/", controllers.CartClear(logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.AuthLogin(logg))
			r.Post("/register", controllers.AuthRegister(logg))
			r.Post("/logout", controllers.AuthLogout(logg))
			r.Post("/clear-error", controllers.AuthClearError(logg))
			r.Get("/session", controllers.AuthSession(logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", controllers.CheckoutState(logg))
			r.Post("/", controllers.CheckoutBegin(logg))
			r.Post("/advance", controllers.CheckoutAdvance(logg))
			r.Post("/retreat", controllers.CheckoutRetreat(logg))
			r.Post("/exit", controllers.CheckoutExit(logg))
			r.Put("/draft", controllers.CheckoutDraft(logg))
			r.Post("/place-order", controllers.CheckoutPlaceOrder(logg))
		})

		r.Route("/payment", func(r chi.Router) {
			r.Post("/validate", controllers.PaymentValidate(logg))
			r.Post("/format", controllers.PaymentFormat(logg))
		})
	})

	return r
}
