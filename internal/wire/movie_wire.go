package wire

import (
	"github.com/sertech/movie-watchList-Porftolio/internal/adaptor"
	"github.com/sertech/movie-watchList-Porftolio/internal/data/repository"
	"github.com/sertech/movie-watchList-Porftolio/pkg/middleware"
	"github.com/sertech/movie-watchList-Porftolio/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Everything below requires a logged-in session
	r.Group(func(r chi.Router) {
		r.Use(middleware.LoginRequired(repo.Session, config.Session.Secret, log))

		r.Get("/", handler.Movie.Index)

		r.Get("/add", handler.Movie.ShowAdd)
		r.Post("/add", handler.Movie.Add)

		r.Get("/edit/{id}", handler.Movie.ShowEdit)
		r.Post("/edit/{id}", handler.Movie.Edit)

		r.Get("/movie/{id}", handler.Movie.Detail)
		r.Get("/movie/{id}/rate", handler.Movie.Rate)
		r.Get("/movie/{id}/watch", handler.Movie.Watch)
	})
}
