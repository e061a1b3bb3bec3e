package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"movie-watchlist/internal/data/entity"
	"movie-watchlist/internal/data/repository"
	"movie-watchlist/internal/dto/response"
	"movie-watchlist/internal/omdb"
	"movie-watchlist/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	Search(ctx context.Context, query string, page int) (*response.MovieSearchResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.MovieResponse, error)
}

// MovieLookup is the slice of the OMDb client the service needs; tests
// substitute a stub to count upstream calls
type MovieLookup interface {
	Search(ctx context.Context, query string, page int) (*omdb.SearchResponse, error)
	Detail(ctx context.Context, imdbID string) (*omdb.Detail, error)
}

type movieService struct {
	repo   *repository.Repository
	lookup MovieLookup
	config *utils.Config
	log    *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	lookup MovieLookup,
	config *utils.Config,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo:   repo,
		lookup: lookup,
		config: config,
		log:    log.With(zap.String("service", "movie")),
	}
}

// Search queries OMDb and merges results with the persisted movie cache.
// Already-persisted movies are reused without a detail fetch; misses are
// backfilled concurrently. An entry whose detail fetch or persist fails is
// dropped from the output, never surfaced as a request error.
func (s *movieService) Search(ctx context.Context, query string, page int) (*response.MovieSearchResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ValidationError("Search query is required")
	}
	if s.config.OMDb.APIKey == "" {
		return nil, NotConfiguredError("OMDb API key not configured")
	}
	if page < 1 {
		page = 1
	}

	searchResult, err := s.lookup.Search(ctx, query, page)
	if err != nil {
		s.log.Error("OMDb search failed", zap.Error(err), zap.String("query", query))
		return nil, err
	}

	// OMDb signals "no results" in-band; that is an empty page, not an error
	if !searchResult.Found() {
		return &response.MovieSearchResponse{
			Movies:       []response.MovieResponse{},
			TotalResults: 0,
			CurrentPage:  page,
		}, nil
	}

	// Resolve each entry independently; the indexed slice keeps output in
	// search-result order regardless of completion order
	resolved := make([]*entity.Movie, len(searchResult.Search))

	var wg sync.WaitGroup
	for i, result := range searchResult.Search {
		wg.Add(1)
		go func(i int, imdbID string) {
			defer wg.Done()
			resolved[i] = s.resolveMovie(ctx, imdbID)
		}(i, result.ImdbID)
	}
	wg.Wait()

	movies := make([]response.MovieResponse, 0, len(resolved))
	for _, movie := range resolved {
		if movie != nil {
			movies = append(movies, response.MovieToResponse(movie))
		}
	}

	return &response.MovieSearchResponse{
		Movies:       movies,
		TotalResults: searchResult.TotalResultsInt(),
		CurrentPage:  page,
	}, nil
}

// resolveMovie returns the cached movie for imdbID, backfilling it from the
// detail endpoint on a miss. Returns nil when the entry must be dropped.
func (s *movieService) resolveMovie(ctx context.Context, imdbID string) *entity.Movie {
	existing, err := s.repo.Movie.FindByImdbID(ctx, imdbID)
	if err != nil {
		s.log.Warn("Movie cache lookup failed, dropping entry",
			zap.Error(err), zap.String("imdb_id", imdbID))
		return nil
	}
	if existing != nil {
		return existing
	}

	detail, err := s.lookup.Detail(ctx, imdbID)
	if err != nil {
		s.log.Warn("OMDb detail fetch failed, dropping entry",
			zap.Error(err), zap.String("imdb_id", imdbID))
		return nil
	}
	if !detail.Found() {
		s.log.Warn("OMDb has no detail for entry, dropping",
			zap.String("imdb_id", imdbID), zap.String("omdb_error", detail.Error))
		return nil
	}

	movie := movieFromDetail(detail)
	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		// A concurrent backfill of the same imdb ID beat us to the
		// insert; reuse the winner's row
		if repository.IsUniqueViolation(err) {
			winner, ferr := s.repo.Movie.FindByImdbID(ctx, imdbID)
			if ferr == nil && winner != nil {
				return winner
			}
		}
		s.log.Warn("Movie persist failed, dropping entry",
			zap.Error(err), zap.String("imdb_id", imdbID))
		return nil
	}

	return movie
}

func (s *movieService) GetByID(ctx context.Context, id uuid.UUID) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load movie", zap.Error(err), zap.String("movie_id", id.String()))
		return nil, err
	}
	if movie == nil {
		return nil, NotFoundError("Movie not found")
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func movieFromDetail(detail *omdb.Detail) *entity.Movie {
	return &entity.Movie{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ImdbID:    detail.ImdbID,
		Title:     detail.Title,
		Year:      detail.Year,
		PosterURL: posterURL(detail.Poster),
		Plot:      strPtr(detail.Plot),
		Director:  strPtr(detail.Director),
		Actors:    strPtr(detail.Actors),
		Genre:     strPtr(detail.Genre),
		Rating:    strPtr(detail.ImdbRating),
		Runtime:   strPtr(detail.Runtime),
		Language:  strPtr(detail.Language),
		Country:   strPtr(detail.Country),
	}
}

// posterURL maps OMDb's "N/A" poster placeholder to NULL. Only the poster
// gets this treatment; other fields keep whatever OMDb sent.
func posterURL(value string) *string {
	if value == "" || value == "N/A" {
		return nil
	}
	return &value
}

func strPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
