package usecase

import (
	"context"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"movie-watchlist/internal/data/entity"
	"movie-watchlist/internal/data/repository"
	"movie-watchlist/internal/dto/request"
	"movie-watchlist/internal/dto/response"
	"movie-watchlist/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxReviewLength = 1000

type WatchlistService interface {
	List(ctx context.Context, userID uuid.UUID) ([]response.WatchlistItemResponse, error)
	Add(ctx context.Context, userID uuid.UUID, req *request.AddWatchlistRequest) (*response.WatchlistItemResponse, error)
	SetWatched(ctx context.Context, userID, itemID uuid.UUID, req *request.UpdateWatchedRequest) (*response.WatchlistItemResponse, error)
	SetFeedback(ctx context.Context, userID, itemID uuid.UUID, req *request.FeedbackRequest) (*response.WatchlistItemResponse, error)
	Remove(ctx context.Context, userID, itemID uuid.UUID) error
	RemoveByMovie(ctx context.Context, userID, movieID uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID) (*response.WatchlistStatsResponse, error)
}

type watchlistService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewWatchlistService(repo *repository.Repository, log *zap.Logger) WatchlistService {
	return &watchlistService{
		repo: repo,
		log:  log.With(zap.String("service", "watchlist")),
	}
}

func (s *watchlistService) List(ctx context.Context, userID uuid.UUID) ([]response.WatchlistItemResponse, error) {
	details, err := s.repo.Watchlist.FindAllByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list watchlist", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, err
	}

	items := make([]response.WatchlistItemResponse, 0, len(details))
	for _, detail := range details {
		items = append(items, response.WatchlistItemToResponse(&detail.WatchlistItem, &detail.Movie))
	}

	return items, nil
}

func (s *watchlistService) Add(ctx context.Context, userID uuid.UUID, req *request.AddWatchlistRequest) (*response.WatchlistItemResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add to watchlist validation failed", zap.Any("errors", errs))
		return nil, ValidationError("Movie ID is required")
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, ValidationError("Movie ID is required")
	}

	// 2. Movie must be persisted already (search backfills the cache)
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to check movie", zap.Error(err), zap.String("movie_id", movieID.String()))
		return nil, err
	}
	if movie == nil {
		return nil, NotFoundError("Movie not found")
	}

	// 3. Reject duplicates up front for a clean message
	existing, err := s.repo.Watchlist.FindByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		s.log.Error("Failed to check existing watchlist item", zap.Error(err),
			zap.String("user_id", userID.String()), zap.String("movie_id", movieID.String()))
		return nil, err
	}
	if existing != nil {
		return nil, ConflictError("Movie is already in your watchlist")
	}

	// 4. Create the item; two racing adds of the same pair both pass the
	// check above, so the composite unique index settles the race
	item := &entity.WatchlistItem{
		ID:      uuid.New(),
		UserID:  userID,
		MovieID: movieID,
		Watched: false,
		AddedAt: time.Now(),
	}

	if err := s.repo.Watchlist.Create(ctx, item); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ConflictError("Movie is already in your watchlist")
		}
		s.log.Error("Failed to create watchlist item", zap.Error(err),
			zap.String("user_id", userID.String()), zap.String("movie_id", movieID.String()))
		return nil, err
	}

	s.log.Info("Movie added to watchlist",
		zap.String("user_id", userID.String()),
		zap.String("movie_id", movieID.String()),
		zap.String("item_id", item.ID.String()))

	resp := response.WatchlistItemToResponse(item, movie)
	return &resp, nil
}

// SetWatched is an idempotent set, not a toggle: watchedAt is stamped on
// every transition to true and cleared on every transition to false,
// regardless of the previous value.
func (s *watchlistService) SetWatched(ctx context.Context, userID, itemID uuid.UUID, req *request.UpdateWatchedRequest) (*response.WatchlistItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Set watched validation failed", zap.Any("errors", errs))
		return nil, ValidationError("Watched status is required")
	}

	item, err := s.repo.Watchlist.FindByID(ctx, itemID, userID)
	if err != nil {
		s.log.Error("Failed to find watchlist item", zap.Error(err), zap.String("item_id", itemID.String()))
		return nil, err
	}
	if item == nil {
		return nil, NotFoundError("Watchlist item not found")
	}

	item.Watched = *req.Watched
	if item.Watched {
		now := time.Now()
		item.WatchedAt = &now
	} else {
		item.WatchedAt = nil
	}

	if err := s.repo.Watchlist.Update(ctx, item); err != nil {
		s.log.Error("Failed to update watchlist item", zap.Error(err), zap.String("item_id", itemID.String()))
		return nil, err
	}

	return s.respondWithMovie(ctx, item)
}

func (s *watchlistService) SetFeedback(ctx context.Context, userID, itemID uuid.UUID, req *request.FeedbackRequest) (*response.WatchlistItemResponse, error) {
	item, err := s.repo.Watchlist.FindByID(ctx, itemID, userID)
	if err != nil {
		s.log.Error("Failed to find watchlist item", zap.Error(err), zap.String("item_id", itemID.String()))
		return nil, err
	}
	if item == nil {
		return nil, NotFoundError("Watchlist item not found")
	}

	// Feedback is only allowed once the movie has been watched
	if !item.Watched {
		return nil, InvalidStateError("You can only leave feedback for watched movies")
	}

	if req.Rating != nil {
		rating := *req.Rating
		if math.IsNaN(rating) || math.IsInf(rating, 0) ||
			rating < 1 || rating > 5 || rating != math.Trunc(rating) {
			return nil, ValidationError("Rating must be a number between 1 and 5")
		}
		value := int(rating)
		item.Rating = &value
	}

	if req.Review != nil {
		sanitized := strings.TrimSpace(*req.Review)
		if utf8.RuneCountInString(sanitized) > maxReviewLength {
			return nil, ValidationError("Review is too long (max 1000 characters)")
		}
		if sanitized == "" {
			// Empty review clears the field
			item.Review = nil
		} else {
			item.Review = &sanitized
		}
	}

	now := time.Now()
	item.ReviewedAt = &now

	if err := s.repo.Watchlist.Update(ctx, item); err != nil {
		s.log.Error("Failed to save feedback", zap.Error(err), zap.String("item_id", itemID.String()))
		return nil, err
	}

	s.log.Info("Feedback saved",
		zap.String("user_id", userID.String()),
		zap.String("item_id", itemID.String()))

	return s.respondWithMovie(ctx, item)
}

func (s *watchlistService) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	deleted, err := s.repo.Watchlist.Delete(ctx, itemID, userID)
	if err != nil {
		s.log.Error("Failed to remove watchlist item", zap.Error(err), zap.String("item_id", itemID.String()))
		return err
	}
	if !deleted {
		return NotFoundError("Watchlist item not found")
	}

	s.log.Info("Watchlist item removed",
		zap.String("user_id", userID.String()),
		zap.String("item_id", itemID.String()))

	return nil
}

func (s *watchlistService) RemoveByMovie(ctx context.Context, userID, movieID uuid.UUID) error {
	deleted, err := s.repo.Watchlist.DeleteByMovie(ctx, movieID, userID)
	if err != nil {
		s.log.Error("Failed to remove watchlist item by movie", zap.Error(err), zap.String("movie_id", movieID.String()))
		return err
	}
	if !deleted {
		return NotFoundError("Watchlist item not found")
	}

	s.log.Info("Watchlist item removed by movie",
		zap.String("user_id", userID.String()),
		zap.String("movie_id", movieID.String()))

	return nil
}

func (s *watchlistService) Stats(ctx context.Context, userID uuid.UUID) (*response.WatchlistStatsResponse, error) {
	total, err := s.repo.Watchlist.CountByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count watchlist", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, err
	}

	watched, err := s.repo.Watchlist.CountWatchedByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count watched items", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, err
	}

	return &response.WatchlistStatsResponse{
		Total:     total,
		Watched:   watched,
		Unwatched: total - watched,
	}, nil
}

func (s *watchlistService) respondWithMovie(ctx context.Context, item *entity.WatchlistItem) (*response.WatchlistItemResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, item.MovieID)
	if err != nil {
		s.log.Error("Failed to load movie for watchlist item", zap.Error(err),
			zap.String("movie_id", item.MovieID.String()))
		return nil, err
	}
	if movie == nil {
		// Movies are never deleted, so a dangling reference is a data bug
		return nil, NotFoundError("Movie not found")
	}

	resp := response.WatchlistItemToResponse(item, movie)
	return &resp, nil
}
