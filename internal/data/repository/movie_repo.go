package repository

import (
	"context"
	"fmt"

	"github.com/sertech/movie-watchList-Porftolio/internal/data/entity"
	"github.com/sertech/movie-watchList-Porftolio/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	SetRating(ctx context.Context, id uuid.UUID, rating int) error
	SetLastWatched(ctx context.Context, id uuid.UUID) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `id, title, director, year, "cast", series, tags,
	       last_watched, rating, description, video_link, created_at, updated_at`

func (mr *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, title, director, year, "cast", series, tags,
		                    last_watched, rating, description, video_link,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := mr.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Director,
		movie.Year,
		movie.Cast,
		movie.Series,
		movie.Tags,
		movie.LastWatched,
		movie.Rating,
		movie.Description,
		movie.VideoLink,
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if err != nil {
		mr.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %s: %w", movie.Title, err)
	}

	return nil
}

func (mr *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := mr.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Director,
		&movie.Year,
		&movie.Cast,
		&movie.Series,
		&movie.Tags,
		&movie.LastWatched,
		&movie.Rating,
		&movie.Description,
		&movie.VideoLink,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		mr.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	return &movie, nil
}

// FindByIDs returns the movies whose id is a member of ids, newest first.
func (mr *movieRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Movie, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE id = ANY($1)
		ORDER BY created_at DESC
	`

	rows, err := mr.db.Query(ctx, query, ids)
	if err != nil {
		mr.log.Error("Failed to find movies by IDs",
			zap.Error(err),
			zap.Int("count", len(ids)),
		)
		return nil, fmt.Errorf("find movies by IDs: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Director,
			&movie.Year,
			&movie.Cast,
			&movie.Series,
			&movie.Tags,
			&movie.LastWatched,
			&movie.Rating,
			&movie.Description,
			&movie.VideoLink,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			mr.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		mr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}

// Update overwrites the editable fields in place; the id never changes.
func (mr *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, director = $3, year = $4, "cast" = $5, series = $6,
		    tags = $7, description = $8, video_link = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := mr.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Director,
		movie.Year,
		movie.Cast,
		movie.Series,
		movie.Tags,
		movie.Description,
		movie.VideoLink,
		movie.UpdatedAt,
	)

	if err != nil {
		mr.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("update movie %s: %w", movie.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s not found", movie.ID.String())
	}

	return nil
}

func (mr *movieRepository) SetRating(ctx context.Context, id uuid.UUID, rating int) error {
	query := `UPDATE movies SET rating = $2, updated_at = NOW() WHERE id = $1`

	result, err := mr.db.Exec(ctx, query, id, rating)
	if err != nil {
		mr.log.Error("Failed to set movie rating",
			zap.Error(err),
			zap.String("movie_id", id.String()),
			zap.Int("rating", rating),
		)
		return fmt.Errorf("set rating for movie %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s not found", id.String())
	}

	return nil
}

func (mr *movieRepository) SetLastWatched(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE movies SET last_watched = NOW(), updated_at = NOW() WHERE id = $1`

	result, err := mr.db.Exec(ctx, query, id)
	if err != nil {
		mr.log.Error("Failed to set last watched",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("set last watched for movie %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s not found", id.String())
	}

	return nil
}
