package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sertech/movie-watchList-Porftolio/internal/data/entity"
	"github.com/sertech/movie-watchList-Porftolio/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes so services can be exercised without a database.

type fakeUserRepo struct {
	users       map[uuid.UUID]*entity.User
	appendCalls []uuid.UUID
	failAppend  bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) AppendMovie(ctx context.Context, userID, movieID uuid.UUID) error {
	if f.failAppend {
		return fmt.Errorf("append movie %s to user %s: connection reset", movieID, userID)
	}

	user, ok := f.users[userID]
	if !ok {
		return fmt.Errorf("user %s not found", userID.String())
	}

	user.Movies = append(user.Movies, movieID)
	f.appendCalls = append(f.appendCalls, movieID)
	return nil
}

type fakeMovieRepo struct {
	movies map[uuid.UUID]*entity.Movie
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[uuid.UUID]*entity.Movie)}
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	copied := *movie
	f.movies[movie.ID] = &copied
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return nil, nil
	}
	copied := *movie
	return &copied, nil
}

func (f *fakeMovieRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Movie, error) {
	var out []*entity.Movie
	for _, id := range ids {
		if movie, ok := f.movies[id]; ok {
			copied := *movie
			out = append(out, &copied)
		}
	}

	// newest first, same as the real query
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (f *fakeMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	if _, ok := f.movies[movie.ID]; !ok {
		return fmt.Errorf("movie %s not found", movie.ID.String())
	}
	copied := *movie
	f.movies[movie.ID] = &copied
	return nil
}

func (f *fakeMovieRepo) SetRating(ctx context.Context, id uuid.UUID, rating int) error {
	movie, ok := f.movies[id]
	if !ok {
		return fmt.Errorf("movie %s not found", id.String())
	}
	movie.Rating = rating
	return nil
}

func (f *fakeMovieRepo) SetLastWatched(ctx context.Context, id uuid.UUID) error {
	movie, ok := f.movies[id]
	if !ok {
		return fmt.Errorf("movie %s not found", id.String())
	}
	now := time.Now()
	movie.LastWatched = &now
	return nil
}

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.Session // by token
	revoked  []uuid.UUID
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token uuid.UUID) error {
	if session, ok := f.sessions[token]; ok && session.RevokedAt == nil {
		now := time.Now()
		session.RevokedAt = &now
	}
	f.revoked = append(f.revoked, token)
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) error {
	return nil
}

func newFakeRepository() (*repository.Repository, *fakeUserRepo, *fakeMovieRepo, *fakeSessionRepo) {
	userRepo := newFakeUserRepo()
	movieRepo := newFakeMovieRepo()
	sessionRepo := newFakeSessionRepo()

	repo := &repository.Repository{
		User:    userRepo,
		Movie:   movieRepo,
		Session: sessionRepo,
	}

	return repo, userRepo, movieRepo, sessionRepo
}
