package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/ishaanB3006/fitness-tracker/internal/handler"
)

func Setup(h *handler.Handler, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// The consumer is a browser app on another origin.
	c := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch},
		AllowedHeaders: []string{"Content-Type"},
	})
	r.Use(c.Handler)

	// Routes
	r.Route("/users/{userID}", func(r chi.Router) {
		r.Get("/recommendations", h.GetRecommendationFeed)
		r.Get("/recommendations/workouts", h.GetWorkoutRecommendations)
		r.Get("/recommendations/meal-plans", h.GetMealPlanRecommendations)
		r.Get("/recommendations/programs", h.GetProgramRecommendations)
		r.Get("/profile", h.GetProfile)
		r.Put("/profile", h.UpsertProfile)
		r.Post("/plan", h.GenerateWeeklyPlan)
		r.Get("/plan", h.GetWeeklyPlan)
		r.Patch("/plan/days/{day}", h.UpdatePlanDay)
	})
	r.Get("/recommendations/batch", h.GetBatchRecommendations)
	r.Get("/health", healthCheck)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
