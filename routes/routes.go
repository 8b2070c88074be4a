package routes

import (
	"net/http"

	"github.com/Dosada05/league-media-system/handlers"
	"github.com/Dosada05/league-media-system/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRoutes(
	router *chi.Mux,
	authHandler *handlers.AuthHandler,
	clipHandler *handlers.ClipHandler,
	standingHandler *handlers.StandingHandler,
	matchHandler *handlers.MatchHandler,
	settingsHandler *handlers.SettingsHandler,
	statsHandler *handlers.StatsHandler,
	webSocketHandler *handlers.WebSocketHandler,
	jwtSecret []byte,
	uploadDir string,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	admin := func(r chi.Router) chi.Router {
		return r.With(middleware.Authenticate(jwtSecret), middleware.RequireAdmin)
	}

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		r.Get("/clips", clipHandler.List)
		r.Get("/clips/{id}", clipHandler.GetByID)
		r.Post("/clips/{id}/view", clipHandler.View)
		r.Post("/clips/{id}/like", clipHandler.Like)
		r.Post("/upload", clipHandler.Upload)

		r.Get("/stats", statsHandler.Overview)
		r.Get("/teams", statsHandler.Teams)

		r.Get("/standings", standingHandler.List)
		admin(r).Put("/standings", standingHandler.Replace)
		admin(r).Post("/standings/reset", standingHandler.Reset)

		r.Get("/matches", matchHandler.List)
		admin(r).Post("/matches", matchHandler.Create)
		admin(r).Put("/matches/{id}", matchHandler.Update)
		admin(r).Delete("/matches/{id}", matchHandler.Delete)

		r.Get("/settings", settingsHandler.Get)
		admin(r).Put("/settings", settingsHandler.Replace)
	})

	router.Get("/ws", webSocketHandler.ServeWs)

	router.Get("/swagger/*", httpSwagger.Handler())

	// Uploaded videos are served straight from disk; with the R2 backend
	// clip locations point at the bucket instead and this route is idle.
	fileServer := http.StripPrefix("/uploads/videos/", http.FileServer(http.Dir(uploadDir)))
	router.Get("/uploads/videos/*", fileServer.ServeHTTP)
}
