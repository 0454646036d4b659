package wire

import (
	"net/http"

	"github.com/sertech/movie-watchList-Porftolio/internal/adaptor"
	"github.com/sertech/movie-watchList-Porftolio/internal/data/repository"
	"github.com/sertech/movie-watchList-Porftolio/internal/usecase"
	"github.com/sertech/movie-watchList-Porftolio/pkg/middleware"
	"github.com/sertech/movie-watchList-Porftolio/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	service := usecase.NewService(repo, config, logger)

	handler, err := adaptor.NewHandler(service, repo, config, logger)
	if err != nil {
		return nil, err
	}

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}, nil
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	wireAuth(r, handler, repo, config, logger)
	wireMovie(r, handler, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
