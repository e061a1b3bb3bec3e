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

type WatchlistRepository interface {
	Create(ctx context.Context, item *entity.WatchlistItem) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.WatchlistItem, error)
	FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.WatchlistItem, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WatchlistItemDetail, error)
	Update(ctx context.Context, item *entity.WatchlistItem) error
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
	DeleteByMovie(ctx context.Context, movieID, userID uuid.UUID) (bool, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CountWatchedByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type watchlistRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWatchlistRepository(db database.PgxIface, log *zap.Logger) WatchlistRepository {
	return &watchlistRepository{
		db:  db,
		log: log.With(zap.String("repository", "watchlist")),
	}
}

const watchlistColumns = `id, user_id, movie_id, watched, added_at, watched_at,
	       rating, review, reviewed_at`

func scanWatchlistItem(row pgx.Row) (*entity.WatchlistItem, error) {
	var item entity.WatchlistItem
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.MovieID,
		&item.Watched,
		&item.AddedAt,
		&item.WatchedAt,
		&item.Rating,
		&item.Review,
		&item.ReviewedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *watchlistRepository) Create(ctx context.Context, item *entity.WatchlistItem) error {
	query := `
		INSERT INTO watchlist_items (id, user_id, movie_id, watched, added_at,
		                            watched_at, rating, review, reviewed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.UserID,
		item.MovieID,
		item.Watched,
		item.AddedAt,
		item.WatchedAt,
		item.Rating,
		item.Review,
		item.ReviewedAt,
	)

	if err != nil {
		// The composite unique index rejects the second writer of the
		// same (user, movie) pair; the service maps that to a conflict
		if IsUniqueViolation(err) {
			return fmt.Errorf("create watchlist item for movie %s by user %s: %w",
				item.MovieID.String(), item.UserID.String(), err)
		}
		r.log.Error("Failed to create watchlist item",
			zap.Error(err),
			zap.String("user_id", item.UserID.String()),
			zap.String("movie_id", item.MovieID.String()),
		)
		return fmt.Errorf("create watchlist item for movie %s by user %s: %w",
			item.MovieID.String(), item.UserID.String(), err)
	}

	return nil
}

func (r *watchlistRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.WatchlistItem, error) {
	query := `SELECT ` + watchlistColumns + `
		FROM watchlist_items
		WHERE id = $1 AND user_id = $2`

	item, err := scanWatchlistItem(r.db.QueryRow(ctx, query, id, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find watchlist item by ID",
			zap.Error(err),
			zap.String("item_id", id.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find watchlist item by ID %s: %w", id.String(), err)
	}

	return item, nil
}

func (r *watchlistRepository) FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.WatchlistItem, error) {
	query := `SELECT ` + watchlistColumns + `
		FROM watchlist_items
		WHERE user_id = $1 AND movie_id = $2`

	item, err := scanWatchlistItem(r.db.QueryRow(ctx, query, userID, movieID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find watchlist item by user and movie",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find watchlist item for movie %s by user %s: %w",
			movieID.String(), userID.String(), err)
	}

	return item, nil
}

// FindAllByUser returns the user's watchlist with movies populated,
// most recently added first
func (r *watchlistRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WatchlistItemDetail, error) {
	query := `
		SELECT w.id, w.user_id, w.movie_id, w.watched, w.added_at, w.watched_at,
		       w.rating, w.review, w.reviewed_at,
		       m.id, m.imdb_id, m.title, m.year, m.poster_url, m.plot, m.director,
		       m.actors, m.genre, m.rating, m.runtime, m.language, m.country, m.created_at
		FROM watchlist_items w
		INNER JOIN movies m ON w.movie_id = m.id
		WHERE w.user_id = $1
		ORDER BY w.added_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find watchlist for user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find watchlist for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var items []*entity.WatchlistItemDetail
	for rows.Next() {
		var detail entity.WatchlistItemDetail
		err := rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.MovieID,
			&detail.Watched,
			&detail.AddedAt,
			&detail.WatchedAt,
			&detail.Rating,
			&detail.Review,
			&detail.ReviewedAt,
			&detail.Movie.ID,
			&detail.Movie.ImdbID,
			&detail.Movie.Title,
			&detail.Movie.Year,
			&detail.Movie.PosterURL,
			&detail.Movie.Plot,
			&detail.Movie.Director,
			&detail.Movie.Actors,
			&detail.Movie.Genre,
			&detail.Movie.Rating,
			&detail.Movie.Runtime,
			&detail.Movie.Language,
			&detail.Movie.Country,
			&detail.Movie.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan watchlist row", zap.Error(err))
			return nil, fmt.Errorf("scan watchlist row: %w", err)
		}
		items = append(items, &detail)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate watchlist rows: %w", err)
	}

	return items, nil
}

func (r *watchlistRepository) Update(ctx context.Context, item *entity.WatchlistItem) error {
	query := `
		UPDATE watchlist_items
		SET watched = $3, watched_at = $4, rating = $5, review = $6, reviewed_at = $7
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.Exec(ctx, query,
		item.ID,
		item.UserID,
		item.Watched,
		item.WatchedAt,
		item.Rating,
		item.Review,
		item.ReviewedAt,
	)

	if err != nil {
		r.log.Error("Failed to update watchlist item",
			zap.Error(err),
			zap.String("item_id", item.ID.String()),
			zap.String("user_id", item.UserID.String()),
		)
		return fmt.Errorf("update watchlist item %s: %w", item.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("watchlist item %s not found", item.ID.String())
	}

	return nil
}

func (r *watchlistRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM watchlist_items WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		r.log.Error("Failed to delete watchlist item",
			zap.Error(err),
			zap.String("item_id", id.String()),
			zap.String("user_id", userID.String()),
		)
		return false, fmt.Errorf("delete watchlist item %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *watchlistRepository) DeleteByMovie(ctx context.Context, movieID, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM watchlist_items WHERE movie_id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, movieID, userID)
	if err != nil {
		r.log.Error("Failed to delete watchlist item by movie",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
			zap.String("user_id", userID.String()),
		)
		return false, fmt.Errorf("delete watchlist item for movie %s: %w", movieID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *watchlistRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM watchlist_items WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count watchlist items",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count watchlist items for user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *watchlistRepository) CountWatchedByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM watchlist_items WHERE user_id = $1 AND watched = TRUE`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count watched items",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count watched items for user %s: %w", userID.String(), err)
	}

	return count, nil
}
