package database

import (
	"context"
	"fmt"
)

// schemaStatements is executed in order at startup. Everything is
// create-if-not-exists so repeated boots are safe.
//
// The unique indexes are load-bearing: users.username / users.email back the
// registration uniqueness rules, movies.imdb_id deduplicates lookup backfills,
// and watchlist_items(user_id, movie_id) is the only guard against two
// requests adding the same movie to the same watchlist concurrently.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT NOT NULL,
		password TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_username_key ON users (username)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email)`,

	`CREATE TABLE IF NOT EXISTS movies (
		id UUID PRIMARY KEY,
		imdb_id TEXT NOT NULL,
		title TEXT NOT NULL,
		year TEXT NOT NULL,
		poster_url TEXT,
		plot TEXT,
		director TEXT,
		actors TEXT,
		genre TEXT,
		rating TEXT,
		runtime TEXT,
		language TEXT,
		country TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS movies_imdb_id_key ON movies (imdb_id)`,

	`CREATE TABLE IF NOT EXISTS watchlist_items (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users (id),
		movie_id UUID NOT NULL REFERENCES movies (id),
		watched BOOLEAN NOT NULL DEFAULT FALSE,
		added_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		watched_at TIMESTAMPTZ,
		rating INTEGER CHECK (rating BETWEEN 1 AND 5),
		review TEXT CHECK (char_length(review) <= 1000),
		reviewed_at TIMESTAMPTZ
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS watchlist_items_user_movie_key
		ON watchlist_items (user_id, movie_id)`,
}

// EnsureSchema creates tables and indexes at startup
func EnsureSchema(ctx context.Context, db PgxIface) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
