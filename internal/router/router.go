package router

import (
	"context"
	"net/http"

	"daily-diet-api/internal/config"
	"daily-diet-api/internal/handlers"
	"daily-diet-api/internal/middleware"
	"daily-diet-api/internal/services"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the collaborators the HTTP routes are built from
type Dependencies struct {
	UserService *services.UserService
	MealService *services.MealService
	Ping        func(ctx context.Context) error
	Session     config.SessionConfig
	Metrics     config.MetricsConfig
	// AccessLog enables chi's request logger
	AccessLog bool
}

// New builds the application router
func New(deps Dependencies) http.Handler {
	userHandler := handlers.NewUserHandler(deps.UserService, deps.Session.CookieName, deps.Session.MaxAge)
	mealHandler := handlers.NewMealHandler(deps.MealService)
	healthHandler := handlers.NewHealthHandler(deps.Ping)

	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	if deps.AccessLog {
		r.Use(chiMiddleware.Logger)
	}
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS)

	r.Get("/healthz", healthHandler.Health)
	if deps.Metrics.IsEnabled() {
		r.Handle(deps.Metrics.Path, promhttp.Handler())
	}

	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)

		r.With(middleware.Session(deps.Session.CookieName)).Get("/", userHandler.ListUsers)
	})

	r.Route("/meals", func(r chi.Router) {
		r.Use(middleware.Session(deps.Session.CookieName))
		r.Use(middleware.ResolveUser(deps.UserService))

		r.Get("/", mealHandler.ListMeals)
		r.Post("/", mealHandler.CreateMeal)
		r.Get("/{id}", mealHandler.GetMeal)
		r.Put("/{id}", mealHandler.UpdateMeal)
		r.Delete("/{id}", mealHandler.DeleteMeal)
	})

	return r
}
