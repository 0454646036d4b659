package adaptor_test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sertech/movie-watchList-Porftolio/internal/adaptor"
	"github.com/sertech/movie-watchList-Porftolio/internal/data/entity"
	"github.com/sertech/movie-watchList-Porftolio/internal/dto/request"
	"github.com/sertech/movie-watchList-Porftolio/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const testSecret = "test-session-secret"

// fakeMovieService answers from an in-memory map so handlers can be driven
// through httptest without the real repositories.
type fakeMovieService struct {
	movies map[uuid.UUID]*entity.Movie
}

func newFakeMovieService() *fakeMovieService {
	return &fakeMovieService{movies: make(map[uuid.UUID]*entity.Movie)}
}

func (f *fakeMovieService) add(movie *entity.Movie) {
	f.movies[movie.ID] = movie
}

func (f *fakeMovieService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Movie, error) {
	var out []*entity.Movie
	for _, movie := range f.movies {
		out = append(out, movie)
	}
	return out, nil
}

func (f *fakeMovieService) Get(ctx context.Context, movieID uuid.UUID) (*entity.Movie, error) {
	movie, ok := f.movies[movieID]
	if !ok {
		return nil, fmt.Errorf("movie not found")
	}
	return movie, nil
}

func (f *fakeMovieService) Add(ctx context.Context, userID uuid.UUID, form *request.MovieForm) (*entity.Movie, error) {
	movie := &entity.Movie{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Title:    form.Title,
		Director: form.Director,
		Year:     form.Year,
	}
	f.movies[movie.ID] = movie
	return movie, nil
}

func (f *fakeMovieService) Update(ctx context.Context, movieID uuid.UUID, form *request.ExtendedMovieForm) (*entity.Movie, error) {
	movie, ok := f.movies[movieID]
	if !ok {
		return nil, fmt.Errorf("movie not found")
	}
	movie.Title = form.Title
	movie.Director = form.Director
	movie.Year = form.Year
	return movie, nil
}

func (f *fakeMovieService) Rate(ctx context.Context, movieID uuid.UUID, rating int) error {
	movie, ok := f.movies[movieID]
	if !ok {
		return fmt.Errorf("movie not found")
	}
	movie.Rating = rating
	return nil
}

func (f *fakeMovieService) MarkWatched(ctx context.Context, movieID uuid.UUID) error {
	movie, ok := f.movies[movieID]
	if !ok {
		return fmt.Errorf("movie not found")
	}
	now := time.Now()
	movie.LastWatched = &now
	return nil
}

// fakeAuthService scripts the outcome of each call.
type fakeAuthService struct {
	registerErr error
	loginErr    error
	session     *entity.Session
	revoked     []uuid.UUID
}

func (f *fakeAuthService) Register(ctx context.Context, form *request.RegisterForm) error {
	return f.registerErr
}

func (f *fakeAuthService) Login(ctx context.Context, form *request.LoginForm) (*entity.Session, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.session, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, token uuid.UUID) error {
	f.revoked = append(f.revoked, token)
	return nil
}

// fakeSessionStore backs the handler's logged-in check.
type fakeSessionStore struct {
	sessions map[uuid.UUID]*entity.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (f *fakeSessionStore) Create(ctx context.Context, session *entity.Session) error {
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionStore) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionStore) Revoke(ctx context.Context, token uuid.UUID) error {
	if session, ok := f.sessions[token]; ok {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

func (f *fakeSessionStore) CleanExpiredSessions(ctx context.Context) error {
	return nil
}

func testRenderer() *adaptor.Renderer {
	renderer, err := adaptor.NewRenderer(zap.NewNop())
	if err != nil {
		panic(err)
	}
	return renderer
}

// movieRouter mounts the movie routes behind a stub that injects the user
// context the auth gate would normally provide.
func movieRouter(svc *fakeMovieService, userID uuid.UUID, email string) *chi.Mux {
	handler := adaptor.NewMovieHandler(svc, testRenderer(), zap.NewNop())

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := utils.SetUserContext(req.Context(), userID, email)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})

	r.Get("/", handler.Index)
	r.Get("/add", handler.ShowAdd)
	r.Post("/add", handler.Add)
	r.Get("/edit/{id}", handler.ShowEdit)
	r.Post("/edit/{id}", handler.Edit)
	r.Get("/movie/{id}", handler.Detail)
	r.Get("/movie/{id}/rate", handler.Rate)
	r.Get("/movie/{id}/watch", handler.Watch)

	return r
}

func authRouter(svc *fakeAuthService, store *fakeSessionStore) *chi.Mux {
	handler := adaptor.NewAuthHandler(svc, store, testRenderer(),
		utils.SessionConfig{Secret: testSecret, ExpiryHours: 24}, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/register", handler.ShowRegister)
	r.Post("/register", handler.Register)
	r.Get("/login", handler.ShowLogin)
	r.Post("/login", handler.Login)
	r.Get("/logout", handler.Logout)

	return r
}
