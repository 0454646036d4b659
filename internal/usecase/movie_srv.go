package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sertech/movie-watchList-Porftolio/internal/data/entity"
	"github.com/sertech/movie-watchList-Porftolio/internal/data/repository"
	"github.com/sertech/movie-watchList-Porftolio/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Movie, error)
	Get(ctx context.Context, movieID uuid.UUID) (*entity.Movie, error)
	Add(ctx context.Context, userID uuid.UUID, form *request.MovieForm) (*entity.Movie, error)
	Update(ctx context.Context, movieID uuid.UUID, form *request.ExtendedMovieForm) (*entity.Movie, error)
	Rate(ctx context.Context, movieID uuid.UUID, rating int) error
	MarkWatched(ctx context.Context, movieID uuid.UUID) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

// ListForUser returns only the movies whose ids appear in the user's list.
func (s *movieService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Movie, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load user for listing", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	movies, err := s.repo.Movie.FindByIDs(ctx, user.Movies)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list movies: %w", err)
	}

	return movies, nil
}

func (s *movieService) Get(ctx context.Context, movieID uuid.UUID) (*entity.Movie, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie", zap.Error(err), zap.String("movie_id", movieID.String()))
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	return movie, nil
}

// Add creates the movie, then appends its id to the user's list. Two writes,
// no transaction: a failure in between leaves an orphaned movie record that
// never shows up in the list view.
func (s *movieService) Add(ctx context.Context, userID uuid.UUID, form *request.MovieForm) (*entity.Movie, error) {
	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:    form.Title,
		Director: form.Director,
		Year:     form.Year,
		Cast:     []string{},
		Series:   []string{},
		Tags:     []string{},
		Rating:   0,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", form.Title))
		return nil, fmt.Errorf("create movie: %w", err)
	}

	if err := s.repo.User.AppendMovie(ctx, userID, movie.ID); err != nil {
		s.log.Error("Movie created but not linked to user",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
			zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("link movie to user: %w", err)
	}

	s.log.Info("Movie added",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
		zap.String("user_id", userID.String()))

	return movie, nil
}

// Update overwrites the editable fields of an existing movie in place.
func (s *movieService) Update(ctx context.Context, movieID uuid.UUID, form *request.ExtendedMovieForm) (*entity.Movie, error) {
	movie, err := s.Get(ctx, movieID)
	if err != nil {
		return nil, err
	}

	movie.Title = form.Title
	movie.Director = form.Director
	movie.Year = form.Year
	movie.Cast = form.Cast
	movie.Series = form.Series
	movie.Tags = form.Tags
	movie.Description = nil
	if form.Description != "" {
		movie.Description = &form.Description
	}
	movie.VideoLink = nil
	if form.VideoLink != "" {
		movie.VideoLink = &form.VideoLink
	}
	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to update movie", zap.Error(err), zap.String("movie_id", movieID.String()))
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title))

	return movie, nil
}

// Rate stores the rating as given; any integer is accepted.
func (s *movieService) Rate(ctx context.Context, movieID uuid.UUID, rating int) error {
	if err := s.repo.Movie.SetRating(ctx, movieID, rating); err != nil {
		s.log.Error("Failed to rate movie",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
			zap.Int("rating", rating))
		return fmt.Errorf("rate movie: %w", err)
	}

	return nil
}

func (s *movieService) MarkWatched(ctx context.Context, movieID uuid.UUID) error {
	if err := s.repo.Movie.SetLastWatched(ctx, movieID); err != nil {
		s.log.Error("Failed to mark movie watched",
			zap.Error(err),
			zap.String("movie_id", movieID.String()))
		return fmt.Errorf("mark watched: %w", err)
	}

	return nil
}
