package response

import (
	"time"

	"movie-watchlist/internal/data/entity"
)

type WatchlistItemResponse struct {
	ID         string        `json:"id"`
	Movie      MovieResponse `json:"movie"`
	Watched    bool          `json:"watched"`
	AddedAt    time.Time     `json:"addedAt"`
	WatchedAt  *time.Time    `json:"watchedAt,omitempty"`
	Rating     *int          `json:"rating,omitempty"`
	Review     *string       `json:"review,omitempty"`
	ReviewedAt *time.Time    `json:"reviewedAt,omitempty"`
}

type WatchlistStatsResponse struct {
	Total     int64 `json:"total"`
	Watched   int64 `json:"watched"`
	Unwatched int64 `json:"unwatched"`
}

// Helper converter
func WatchlistItemToResponse(item *entity.WatchlistItem, movie *entity.Movie) WatchlistItemResponse {
	return WatchlistItemResponse{
		ID:         item.ID.String(),
		Movie:      MovieToResponse(movie),
		Watched:    item.Watched,
		AddedAt:    item.AddedAt,
		WatchedAt:  item.WatchedAt,
		Rating:     item.Rating,
		Review:     item.Review,
		ReviewedAt: item.ReviewedAt,
	}
}
