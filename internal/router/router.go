package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"planwise-backend/internal/handlers"
	"planwise-backend/internal/middleware"
	"planwise-backend/internal/websocket"
)

func New(
	jwtAuth *middleware.JWTAuth,
	authHandler *handlers.AuthHandler,
	plannerHandler *handlers.PlannerHandler,
	wsHub *websocket.Hub,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Auth rate limiter (10 req/min per IP)
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Auth Routes (public) ────
		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Get("/verify-email", authHandler.VerifyEmail)

			// Logout requires auth
			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// ──── Planner Routes ────
		r.Route("/planner", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Post("/onboarding", plannerHandler.Onboarding)
			r.Get("/status", plannerHandler.Status)
			r.Get("/plan", plannerHandler.GetPlan)
			r.Post("/checkin", plannerHandler.Checkin)
			r.Get("/assessment", plannerHandler.GetAssessment)
			r.Post("/adjust", plannerHandler.Adjust)
			r.Get("/progress", plannerHandler.GetProgress)
			r.Post("/tasks/toggle", plannerHandler.ToggleTask)
			r.Get("/tasks", plannerHandler.ListTasks)
			r.Delete("/reset", plannerHandler.Reset)
		})

		// ──── WebSocket ────
		r.Get("/ws", wsHub.HandleWebSocket)
	})

	return r
}
