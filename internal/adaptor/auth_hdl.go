package adaptor

import (
	"net/http"
	"strings"

	"github.com/sertech/movie-watchList-Porftolio/internal/data/repository"
	"github.com/sertech/movie-watchList-Porftolio/internal/dto/request"
	"github.com/sertech/movie-watchList-Porftolio/internal/usecase"
	"github.com/sertech/movie-watchList-Porftolio/pkg/middleware"
	"github.com/sertech/movie-watchList-Porftolio/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service     usecase.AuthService
	sessionRepo repository.SessionRepository
	renderer    *Renderer
	session     utils.SessionConfig
	log         *zap.Logger
}

func NewAuthHandler(
	service usecase.AuthService,
	sessionRepo repository.SessionRepository,
	renderer *Renderer,
	session utils.SessionConfig,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		service:     service,
		sessionRepo: sessionRepo,
		renderer:    renderer,
		session:     session,
		log:         log.With(zap.String("handler", "auth")),
	}
}

// loggedIn reports whether the request already carries a valid session.
func (h *AuthHandler) loggedIn(r *http.Request) bool {
	token, ok := middleware.SessionTokenFromRequest(r, h.session.Secret)
	if !ok {
		return false
	}

	session, err := h.sessionRepo.FindValidSession(r.Context(), token)
	if err != nil {
		h.log.Warn("Failed to check session", zap.Error(err))
		return false
	}

	return session != nil
}

// ShowRegister handles GET /register
func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	if h.loggedIn(r) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	page := newPage(w, r, "Movies Watchlist - Register")
	page.Form = &request.RegisterForm{}
	h.renderer.Render(w, http.StatusOK, "register.html", page)
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if h.loggedIn(r) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderer.RenderError(w, http.StatusBadRequest, newPage(w, r, ""), "Invalid form submission")
		return
	}

	form := request.NewRegisterForm(r.PostForm)

	// Re-render with field errors and the entered values preserved
	if errs := form.Validate(); len(errs) > 0 {
		page := newPage(w, r, "Movies Watchlist - Register")
		page.Form = form
		page.Errors = errs
		h.renderer.Render(w, http.StatusOK, "register.html", page)
		return
	}

	if err := h.service.Register(r.Context(), form); err != nil {
		if strings.Contains(err.Error(), "already in use") {
			setFlash(w, "danger", "Email already in use, please pick a different one")
			http.Redirect(w, r, "/register", http.StatusFound)
			return
		}

		h.log.Error("Failed to register", zap.Error(err))
		h.renderer.RenderError(w, http.StatusInternalServerError, newPage(w, r, ""), "Something went wrong, please try again")
		return
	}

	setFlash(w, "success", "User registered successfully")
	http.Redirect(w, r, "/login", http.StatusFound)
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if h.loggedIn(r) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	page := newPage(w, r, "Movies Watchlist - Login")
	page.Form = &request.LoginForm{}
	h.renderer.Render(w, http.StatusOK, "login.html", page)
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.loggedIn(r) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderer.RenderError(w, http.StatusBadRequest, newPage(w, r, ""), "Invalid form submission")
		return
	}

	form := request.NewLoginForm(r.PostForm)

	if errs := form.Validate(); len(errs) > 0 {
		page := newPage(w, r, "Movies Watchlist - Login")
		page.Form = form
		page.Errors = errs
		h.renderer.Render(w, http.StatusOK, "login.html", page)
		return
	}

	session, err := h.service.Login(r.Context(), form)
	if err != nil {
		// One generic message whether the email or the password was wrong
		if strings.Contains(err.Error(), "incorrect email or password") {
			page := newPage(w, r, "Movies Watchlist - Login")
			page.Form = form
			page.Flash = &Flash{Category: "danger", Message: "Login credentials not correct"}
			h.renderer.Render(w, http.StatusOK, "login.html", page)
			return
		}

		h.log.Error("Failed to login", zap.Error(err))
		h.renderer.RenderError(w, http.StatusInternalServerError, newPage(w, r, ""), "Something went wrong, please try again")
		return
	}

	setSessionCookie(w, session.Token, h.session.Secret, session.ExpiresAt)
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout handles GET /logout - clears session state unconditionally
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := middleware.SessionTokenFromRequest(r, h.session.Secret); ok {
		if err := h.service.Logout(r.Context(), token); err != nil {
			h.log.Warn("Failed to revoke session on logout", zap.Error(err))
		}
	}

	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}
