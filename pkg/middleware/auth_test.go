package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sertech/movie-watchList-Porftolio/internal/data/entity"
	"github.com/sertech/movie-watchList-Porftolio/pkg/middleware"
	"github.com/sertech/movie-watchList-Porftolio/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const testSecret = "gate-test-secret"

type stubSessionRepo struct {
	session *entity.Session
	err     error
}

func (s *stubSessionRepo) Create(ctx context.Context, session *entity.Session) error { return nil }

func (s *stubSessionRepo) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	return s.session, s.err
}

func (s *stubSessionRepo) Revoke(ctx context.Context, token uuid.UUID) error { return nil }

func (s *stubSessionRepo) CleanExpiredSessions(ctx context.Context) error { return nil }

func protectedHandler(t *testing.T, invoked *bool, wantUserID uuid.UUID, wantEmail string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*invoked = true

		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok || userID != wantUserID {
			t.Errorf("expected user id %s in context, got %s (ok=%v)", wantUserID, userID, ok)
		}

		email, ok := utils.GetEmailFromContext(r.Context())
		if !ok || email != wantEmail {
			t.Errorf("expected email %q in context, got %q (ok=%v)", wantEmail, email, ok)
		}

		w.WriteHeader(http.StatusOK)
	})
}

func TestLoginRequiredWithoutCookieRedirects(t *testing.T) {
	invoked := false
	gate := middleware.LoginRequired(&stubSessionRepo{}, testSecret, zap.NewNop())
	handler := gate(protectedHandler(t, &invoked, uuid.Nil, ""))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/login" {
		t.Fatalf("expected redirect to /login, got %q", got)
	}
	if invoked {
		t.Fatalf("protected handler must not run without a session")
	}
}

func TestLoginRequiredRejectsTamperedCookie(t *testing.T) {
	invoked := false
	gate := middleware.LoginRequired(&stubSessionRepo{}, testSecret, zap.NewNop())
	handler := gate(protectedHandler(t, &invoked, uuid.Nil, ""))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{
		Name:  middleware.SessionCookieName,
		Value: utils.SignValue(uuid.NewString(), "some-other-secret"),
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if invoked {
		t.Fatalf("protected handler must not run with a tampered cookie")
	}
}

func TestLoginRequiredRejectsExpiredSession(t *testing.T) {
	token := uuid.New()
	// The store answers nil for expired or revoked sessions
	gate := middleware.LoginRequired(&stubSessionRepo{session: nil}, testSecret, zap.NewNop())

	invoked := false
	handler := gate(protectedHandler(t, &invoked, uuid.Nil, ""))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{
		Name:  middleware.SessionCookieName,
		Value: utils.SignValue(token.String(), testSecret),
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/login" {
		t.Fatalf("expected redirect to /login, got %q", got)
	}
	if invoked {
		t.Fatalf("protected handler must not run with an expired session")
	}
}

func TestLoginRequiredStoreErrorIs500(t *testing.T) {
	token := uuid.New()
	gate := middleware.LoginRequired(&stubSessionRepo{err: errors.New("connection refused")}, testSecret, zap.NewNop())

	invoked := false
	handler := gate(protectedHandler(t, &invoked, uuid.Nil, ""))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{
		Name:  middleware.SessionCookieName,
		Value: utils.SignValue(token.String(), testSecret),
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if invoked {
		t.Fatalf("protected handler must not run when the store fails")
	}
}

func TestLoginRequiredPassesUserContext(t *testing.T) {
	token := uuid.New()
	userID := uuid.New()
	repo := &stubSessionRepo{session: &entity.Session{
		UserID:    userID,
		Email:     "viewer@example.com",
		Token:     token,
		ExpiresAt: time.Now().Add(time.Hour),
	}}
	gate := middleware.LoginRequired(repo, testSecret, zap.NewNop())

	invoked := false
	handler := gate(protectedHandler(t, &invoked, userID, "viewer@example.com"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{
		Name:  middleware.SessionCookieName,
		Value: utils.SignValue(token.String(), testSecret),
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !invoked {
		t.Fatalf("expected the protected handler to run")
	}
}
