package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fleetflow/internal/http/handlers"
	mw "fleetflow/internal/http/middleware"
	"fleetflow/internal/logx"
)

// Config stores router settings.
type Config struct {
	CORSOrigin string
}

// Deps bundles everything the router mounts.
type Deps struct {
	Logger       logx.Logger
	RateLimit    func(http.Handler) http.Handler
	Base         *handlers.Handlers
	State        *handlers.StateHandler
	Auth         *handlers.AuthHandler
	Vehicles     *handlers.VehicleHandler
	Trips        *handlers.TripHandler
	Maintenances *handlers.MaintenanceHandler
	Expenses     *handlers.ExpenseHandler
	Reports      *handlers.ReportsHandler
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(cfg Config, d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(mw.Observability(d.Logger))
	if d.RateLimit != nil {
		r.Use(d.RateLimit)
	}

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", d.Auth.Register)
		r.Post("/auth/login", d.Auth.Login)

		r.Get("/state", d.State.Get)

		r.Post("/vehicles", d.Vehicles.Create)
		r.Post("/vehicles/{id}/toggle-shop", d.Vehicles.ToggleShop)

		r.Post("/trips", d.Trips.Create)
		r.Post("/trips/{id}/complete", d.Trips.Complete)

		r.Post("/maintenances", d.Maintenances.Create)
		r.Post("/expenses", d.Expenses.Create)

		r.Get("/reports/finance", d.Reports.Finance)
	})

	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	return r
}
