package adaptor

import (
	"github.com/sertech/movie-watchList-Porftolio/internal/data/repository"
	"github.com/sertech/movie-watchList-Porftolio/internal/usecase"
	"github.com/sertech/movie-watchList-Porftolio/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	Movie *MovieHandler
	Theme *ThemeHandler
}

func NewHandler(service *usecase.Service, repo *repository.Repository, config *utils.Config, log *zap.Logger) (*Handler, error) {
	renderer, err := NewRenderer(log)
	if err != nil {
		return nil, err
	}

	return &Handler{
		Auth:  NewAuthHandler(service.Auth, repo.Session, renderer, config.Session, log),
		Movie: NewMovieHandler(service.Movie, renderer, log),
		Theme: NewThemeHandler(log),
	}, nil
}
