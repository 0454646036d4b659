package middleware

import (
	"net/http"

	"github.com/sertech/movie-watchList-Porftolio/internal/data/repository"
	"github.com/sertech/movie-watchList-Porftolio/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "watchlist_session"

// SessionTokenFromRequest extracts and verifies the session token cookie.
func SessionTokenFromRequest(r *http.Request, secret string) (uuid.UUID, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return uuid.Nil, false
	}

	value, ok := utils.UnsignValue(cookie.Value, secret)
	if !ok {
		return uuid.Nil, false
	}

	token, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false
	}

	return token, true
}

// LoginRequired guards a route: without a valid session the wrapped handler is
// never invoked and the client is redirected to the login page.
func LoginRequired(sessionRepo repository.SessionRepository, secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := SessionTokenFromRequest(r, secret)
			if !ok {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session",
					zap.String("token", token.String()),
					zap.Error(err))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("token", token.String()))
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.UserID, session.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
