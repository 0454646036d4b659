package wire

import (
	"github.com/sertech/movie-watchList-Porftolio/internal/adaptor"
	"github.com/sertech/movie-watchList-Porftolio/internal/data/repository"
	"github.com/sertech/movie-watchList-Porftolio/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public routes, the handlers redirect logged-in users themselves
	r.Get("/register", handler.Auth.ShowRegister)
	r.Post("/register", handler.Auth.Register)
	r.Get("/login", handler.Auth.ShowLogin)
	r.Post("/login", handler.Auth.Login)

	// Logout clears whatever session state is present, valid or not
	r.Get("/logout", handler.Auth.Logout)

	// Theme toggle works for anonymous visitors too
	r.Get("/toggle-theme", handler.Theme.Toggle)
}
