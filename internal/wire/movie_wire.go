package wire

import (
	"movie-watchlist/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/movies/search - search OMDb and the persisted cache
	r.Get("/api/movies/search", movieHandler.Search)

	// GET /api/movies/{id} - movie details from the persisted cache
	r.Get("/api/movies/{id}", movieHandler.GetByID)
}
