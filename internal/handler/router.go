package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"country-guess/internal/config"
	"country-guess/internal/service"
)

// NewRouter wires the HTTP surface: middleware, the session cookie, and
// the game and ranking routes.
func NewRouter(cfg *config.Config, games *service.GameService, leaderboard *service.LeaderboardService) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(cfg.Server.RequestTimeout))
	r.Use(jsonContentType)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.ClientOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	gameHandler := NewGameHandler(games)
	rankingHandler := NewRankingHandler(games, leaderboard)

	r.Route("/api", func(r chi.Router) {
		r.Use(SessionCookie(cfg.Session.CookieName))

		r.Post("/game/start", gameHandler.Start)
		r.Post("/game/guess", gameHandler.Guess)
		r.Post("/game/giveup", gameHandler.GiveUp)

		r.Post("/ranking", rankingHandler.Save)
		r.Get("/ranking", rankingHandler.List)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	})

	return r
}

// jsonContentType sets a default JSON Content-Type header on all
// responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}
