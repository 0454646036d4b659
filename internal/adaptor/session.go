package adaptor

import (
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/sertech/movie-watchList-Porftolio/pkg/middleware"
	"github.com/sertech/movie-watchList-Porftolio/pkg/utils"

	"github.com/google/uuid"
)

const (
	themeCookieName = "theme"
	flashCookieName = "flash"

	themeDark  = "dark"
	themeLight = "light"
)

func setSessionCookie(w http.ResponseWriter, token uuid.UUID, secret string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    utils.SignValue(token.String(), secret),
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

func themeFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(themeCookieName)
	if err != nil || cookie.Value != themeDark {
		return themeLight
	}
	return themeDark
}

func setThemeCookie(w http.ResponseWriter, theme string) {
	http.SetCookie(w, &http.Cookie{
		Name:    themeCookieName,
		Value:   theme,
		Path:    "/",
		Expires: time.Now().Add(365 * 24 * time.Hour),
	})
}

// setFlash stores a one-shot message; popFlash consumes it on the next render.
func setFlash(w http.ResponseWriter, category, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(category + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
	})
}

func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	// clear it, flash messages show once
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	decoded, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	category, message, found := strings.Cut(string(decoded), "|")
	if !found {
		return nil
	}

	return &Flash{Category: category, Message: message}
}

// newPage assembles the cross-page template data: theme, logged-in email,
// pending flash message and the path the theme toggle returns to.
func newPage(w http.ResponseWriter, r *http.Request, title string) *Page {
	email, _ := utils.GetEmailFromContext(r.Context())

	return &Page{
		Title:       title,
		Theme:       themeFromRequest(r),
		Email:       email,
		Flash:       popFlash(w, r),
		CurrentPath: r.URL.Path,
	}
}
