package repository

import (
	"context"
	"fmt"

	"movie-watchlist/internal/data/entity"
	"movie-watchlist/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindByImdbID(ctx context.Context, imdbID string) (*entity.Movie, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `id, imdb_id, title, year, poster_url, plot, director,
	       actors, genre, rating, runtime, language, country, created_at`

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.ImdbID,
		&movie.Title,
		&movie.Year,
		&movie.PosterURL,
		&movie.Plot,
		&movie.Director,
		&movie.Actors,
		&movie.Genre,
		&movie.Rating,
		&movie.Runtime,
		&movie.Language,
		&movie.Country,
		&movie.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, imdb_id, title, year, poster_url, plot, director,
		                   actors, genre, rating, runtime, language, country, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.ImdbID,
		movie.Title,
		movie.Year,
		movie.PosterURL,
		movie.Plot,
		movie.Director,
		movie.Actors,
		movie.Genre,
		movie.Rating,
		movie.Runtime,
		movie.Language,
		movie.Country,
		movie.CreatedAt,
	)

	if err != nil {
		// Concurrent backfills of the same imdb_id race on the unique
		// index; the caller treats the loser as benign
		if IsUniqueViolation(err) {
			return fmt.Errorf("create movie %s: %w", movie.ImdbID, err)
		}
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("imdb_id", movie.ImdbID),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %s: %w", movie.ImdbID, err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	return movie, nil
}

func (r *movieRepository) FindByImdbID(ctx context.Context, imdbID string) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE imdb_id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, imdbID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by imdb ID",
			zap.Error(err),
			zap.String("imdb_id", imdbID),
		)
		return nil, fmt.Errorf("find movie by imdb ID %s: %w", imdbID, err)
	}

	return movie, nil
}
