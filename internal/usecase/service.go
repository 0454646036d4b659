package usecase

import (
	"github.com/sertech/movie-watchList-Porftolio/internal/data/repository"
	"github.com/sertech/movie-watchList-Porftolio/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	Movie MovieService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo, config, log),
		Movie: NewMovieService(repo, log),
	}
}
