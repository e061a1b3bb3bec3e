package response

import (
	"time"

	"movie-watchlist/internal/data/entity"
)

type MovieResponse struct {
	ID        string    `json:"id"`
	ImdbID    string    `json:"imdbID"`
	Title     string    `json:"title"`
	Year      string    `json:"year"`
	Poster    *string   `json:"poster"`
	Plot      *string   `json:"plot,omitempty"`
	Director  *string   `json:"director,omitempty"`
	Actors    *string   `json:"actors,omitempty"`
	Genre     *string   `json:"genre,omitempty"`
	Rating    *string   `json:"rating,omitempty"`
	Runtime   *string   `json:"runtime,omitempty"`
	Language  *string   `json:"language,omitempty"`
	Country   *string   `json:"country,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type MovieSearchResponse struct {
	Movies       []MovieResponse `json:"movies"`
	TotalResults int             `json:"totalResults"`
	CurrentPage  int             `json:"currentPage"`
}

// Helper converter
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:        movie.ID.String(),
		ImdbID:    movie.ImdbID,
		Title:     movie.Title,
		Year:      movie.Year,
		Poster:    movie.PosterURL,
		Plot:      movie.Plot,
		Director:  movie.Director,
		Actors:    movie.Actors,
		Genre:     movie.Genre,
		Rating:    movie.Rating,
		Runtime:   movie.Runtime,
		Language:  movie.Language,
		Country:   movie.Country,
		CreatedAt: movie.CreatedAt,
	}
}
