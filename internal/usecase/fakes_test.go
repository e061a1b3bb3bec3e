package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"movie-watchlist/internal/data/entity"
	"movie-watchlist/internal/data/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// uniqueViolation mimics the error a Postgres unique index produces, so the
// services' constraint-race handling is exercised for real
func uniqueViolation() error {
	return fmt.Errorf("duplicate key value violates unique constraint: %w",
		&pgconn.PgError{Code: "23505"})
}

// ---------- user repo fake ----------

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return uniqueViolation()
		}
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

// ---------- movie repo fake ----------

type fakeMovieRepo struct {
	mu     sync.Mutex
	movies map[uuid.UUID]*entity.Movie
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[uuid.UUID]*entity.Movie)}
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.movies {
		if existing.ImdbID == movie.ImdbID {
			return uniqueViolation()
		}
	}
	copied := *movie
	f.movies[movie.ID] = &copied
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if movie, ok := f.movies[id]; ok {
		copied := *movie
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeMovieRepo) FindByImdbID(ctx context.Context, imdbID string) (*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, movie := range f.movies {
		if movie.ImdbID == imdbID {
			copied := *movie
			return &copied, nil
		}
	}
	return nil, nil
}

// ---------- watchlist repo fake ----------

type fakeWatchlistRepo struct {
	mu     sync.Mutex
	items  map[uuid.UUID]*entity.WatchlistItem
	movies *fakeMovieRepo
}

func newFakeWatchlistRepo(movies *fakeMovieRepo) *fakeWatchlistRepo {
	return &fakeWatchlistRepo{
		items:  make(map[uuid.UUID]*entity.WatchlistItem),
		movies: movies,
	}
}

func (f *fakeWatchlistRepo) Create(ctx context.Context, item *entity.WatchlistItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.items {
		if existing.UserID == item.UserID && existing.MovieID == item.MovieID {
			return uniqueViolation()
		}
	}
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeWatchlistRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.WatchlistItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item, ok := f.items[id]; ok && item.UserID == userID {
		copied := *item
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeWatchlistRepo) FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.WatchlistItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.UserID == userID && item.MovieID == movieID {
			copied := *item
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeWatchlistRepo) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WatchlistItemDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var details []*entity.WatchlistItemDetail
	for _, item := range f.items {
		if item.UserID != userID {
			continue
		}
		movie := f.movies.movies[item.MovieID]
		if movie == nil {
			continue
		}
		details = append(details, &entity.WatchlistItemDetail{
			WatchlistItem: *item,
			Movie:         *movie,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].AddedAt.After(details[j].AddedAt)
	})
	return details, nil
}

func (f *fakeWatchlistRepo) Update(ctx context.Context, item *entity.WatchlistItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.items[item.ID]
	if !ok || existing.UserID != item.UserID {
		return fmt.Errorf("watchlist item %s not found", item.ID.String())
	}
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeWatchlistRepo) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item, ok := f.items[id]; ok && item.UserID == userID {
		delete(f.items, id)
		return true, nil
	}
	return false, nil
}

func (f *fakeWatchlistRepo) DeleteByMovie(ctx context.Context, movieID, userID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, item := range f.items {
		if item.UserID == userID && item.MovieID == movieID {
			delete(f.items, id)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWatchlistRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, item := range f.items {
		if item.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeWatchlistRepo) CountWatchedByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, item := range f.items {
		if item.UserID == userID && item.Watched {
			count++
		}
	}
	return count, nil
}

// newTestRepository bundles the fakes into the aggregate the services expect
func newTestRepository() (*repository.Repository, *fakeUserRepo, *fakeMovieRepo, *fakeWatchlistRepo) {
	users := newFakeUserRepo()
	movies := newFakeMovieRepo()
	watchlist := newFakeWatchlistRepo(movies)

	return &repository.Repository{
		User:      users,
		Movie:     movies,
		Watchlist: watchlist,
	}, users, movies, watchlist
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
