package usecase

import (
	"movie-watchlist/internal/data/repository"
	"movie-watchlist/internal/omdb"
	"movie-watchlist/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Movie     MovieService
	Watchlist WatchlistService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	lookup := omdb.NewClient(config.OMDb)

	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Movie:     NewMovieService(repo, lookup, config, log),
		Watchlist: NewWatchlistService(repo, log),
	}
}
