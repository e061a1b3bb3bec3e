package wire

import (
	"movie-watchlist/internal/adaptor"
	"movie-watchlist/internal/data/repository"
	"movie-watchlist/pkg/middleware"
	"movie-watchlist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWatchlist(
	r chi.Router,
	watchlistHandler *adaptor.WatchlistHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	// Every watchlist route is scoped to the authenticated user
	r.Route("/api/watchlist", func(r chi.Router) {
		r.Use(middleware.Auth(repo.User, config, log))

		r.Get("/", watchlistHandler.List)
		r.Post("/", watchlistHandler.Add)
		r.Get("/stats", watchlistHandler.Stats)
		r.Put("/{id}", watchlistHandler.SetWatched)
		r.Put("/{id}/feedback", watchlistHandler.SetFeedback)
		r.Delete("/{id}", watchlistHandler.Remove)
		// Removal by movie id serves the search page, which never sees
		// item ids
		r.Delete("/by-movie/{movieId}", watchlistHandler.RemoveByMovie)
	})
}
