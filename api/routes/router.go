package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/myezz/restaurant-api/api/controllers"
	ordercontrollers "github.com/myezz/restaurant-api/api/controllers/orders"
	reportcontrollers "github.com/myezz/restaurant-api/api/controllers/reports"
	"github.com/myezz/restaurant-api/api/middleware"
	"github.com/myezz/restaurant-api/internal/datasource"
	"github.com/myezz/restaurant-api/internal/menu"
	"github.com/myezz/restaurant-api/internal/orders"
	"github.com/myezz/restaurant-api/internal/reports"
	"github.com/myezz/restaurant-api/internal/restaurants"
	"github.com/myezz/restaurant-api/pkg/config"
	"github.com/myezz/restaurant-api/pkg/logger"
	"github.com/myezz/restaurant-api/pkg/metrics"
	"github.com/myezz/restaurant-api/pkg/redis"
)

// NewRouter wires every HTTP route. redisClient may be nil, which disables
// idempotency replay and report rate limiting.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	source *datasource.Source,
	redisClient *redis.Client,
	gatherer prometheus.Gatherer,
	httpMetrics *metrics.HTTPMetrics,
	reportsService reports.Service,
	ordersService orders.Service,
	menuService menu.Service,
	restaurantService restaurants.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, httpMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	var (
		idempotencyStore redis.IdempotencyStore
		rateLimiter      redis.RateLimiter
		readiness        = map[string]controllers.Pinger{"database": source, "redis": nil}
	)
	if redisClient != nil {
		idempotencyStore = redisClient
		rateLimiter = redisClient
		readiness["redis"] = redisClient
	}

	r.Get("/health", controllers.Health(source, cfg.App.Env))
	r.Get("/health/live", controllers.HealthLive())
	r.Get("/health/ready", controllers.HealthReady(readiness, logg))
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	defaultTenant, _ := uuid.Parse(cfg.Tenant.DefaultID)
	reportsPolicy := middleware.NewRateLimitPolicy("reports", cfg.RateLimit.ReportsWindow, cfg.RateLimit.ReportsLimit)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Tenant(middleware.TenantPolicy{DefaultID: defaultTenant, Strict: cfg.Tenant.Strict}, logg))
		r.Use(middleware.Idempotency(idempotencyStore, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(reportsPolicy, rateLimiter, logg))
			r.Route("/reports", func(r chi.Router) {
				r.Get("/sales", reportcontrollers.Sales(reportsService, logg))
				r.Get("/orders", reportcontrollers.Orders(reportsService, logg))
				r.Get("/menu", reportcontrollers.Menu(reportsService, logg))
				r.Get("/heatmap", reportcontrollers.Heatmap(reportsService, logg))
				r.Get("/customers", reportcontrollers.Customers(reportsService, logg))
			})
			r.Get("/metrics/today", reportcontrollers.Today(reportsService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", ordercontrollers.List(ordersService, logg))
			r.Post("/", ordercontrollers.Create(ordersService, logg))
			r.Route("/{orderId}", func(r chi.Router) {
				r.Get("/", ordercontrollers.Detail(ordersService, logg))
				r.Delete("/", ordercontrollers.Delete(ordersService, logg))
				r.Post("/accept", ordercontrollers.Accept(ordersService, logg))
				r.Post("/reject", ordercontrollers.Reject(ordersService, logg))
				r.Post("/ready", ordercontrollers.MarkReady(ordersService, logg))
				r.Post("/handover", ordercontrollers.HandOver(ordersService, logg))
				r.Post("/deliver", ordercontrollers.Deliver(ordersService, logg))
				r.Post("/cancel", ordercontrollers.Cancel(ordersService, logg))
			})
		})

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", controllers.MenuList(menuService, logg))
			r.Post("/", controllers.MenuCreate(menuService, logg))
			r.Put("/{itemId}", controllers.MenuUpdate(menuService, logg))
			r.Delete("/{itemId}", controllers.MenuDelete(menuService, logg))
			r.Patch("/{itemId}/stock", controllers.MenuSetStock(menuService, logg))
		})
		r.Get("/categories", controllers.Categories(menuService, logg))

		r.Route("/restaurant", func(r chi.Router) {
			r.Get("/", controllers.RestaurantProfile(restaurantService, logg))
			r.Put("/", controllers.RestaurantUpdate(restaurantService, logg))
			r.Patch("/status", controllers.RestaurantSetOnline(restaurantService, logg))
		})
	})

	return r
}
