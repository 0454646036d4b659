package adaptor

import (
	"net/http"

	"go.uber.org/zap"
)

type ThemeHandler struct {
	log *zap.Logger
}

func NewThemeHandler(log *zap.Logger) *ThemeHandler {
	return &ThemeHandler{
		log: log.With(zap.String("handler", "theme")),
	}
}

// Toggle handles GET /toggle-theme?current_page={url} - flips the theme
// cookie and bounces back. The redirect target is taken from the query
// parameter as-is.
func (h *ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	theme := themeDark
	if themeFromRequest(r) == themeDark {
		theme = themeLight
	}
	setThemeCookie(w, theme)

	target := r.URL.Query().Get("current_page")
	if target == "" {
		target = "/"
	}

	http.Redirect(w, r, target, http.StatusFound)
}
