package entity

import (
	"time"

	"github.com/google/uuid"
)

// WatchlistItem links a user to a movie. At most one row exists per
// (user_id, movie_id) pair, enforced by a unique composite index.
type WatchlistItem struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	MovieID    uuid.UUID  `db:"movie_id"`
	Watched    bool       `db:"watched"`
	AddedAt    time.Time  `db:"added_at"`
	WatchedAt  *time.Time `db:"watched_at"`
	Rating     *int       `db:"rating"`
	Review     *string    `db:"review"`
	ReviewedAt *time.Time `db:"reviewed_at"`
}

// WatchlistItemDetail is a watchlist row joined with its movie
type WatchlistItemDetail struct {
	WatchlistItem
	Movie Movie
}
