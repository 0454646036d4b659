package adaptor

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sertech/movie-watchList-Porftolio/internal/dto/request"
	"github.com/sertech/movie-watchList-Porftolio/internal/dto/response"
	"github.com/sertech/movie-watchList-Porftolio/internal/usecase"
	"github.com/sertech/movie-watchList-Porftolio/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service  usecase.MovieService
	renderer *Renderer
	log      *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, renderer *Renderer, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service:  service,
		renderer: renderer,
		log:      log.With(zap.String("handler", "movie")),
	}
}

// Index handles GET / - the current user's watchlist
func (h *MovieHandler) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	movies, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, r, err, "list movies")
		return
	}

	page := newPage(w, r, "Movies Watchlist")
	page.Data = response.MoviesToView(movies)
	h.renderer.Render(w, http.StatusOK, "index.html", page)
}

// ShowAdd handles GET /add
func (h *MovieHandler) ShowAdd(w http.ResponseWriter, r *http.Request) {
	page := newPage(w, r, "Movies Watchlist - Add Movie")
	page.Form = &request.MovieForm{}
	h.renderer.Render(w, http.StatusOK, "new_movie.html", page)
}

// Add handles POST /add
func (h *MovieHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderer.RenderError(w, http.StatusBadRequest, newPage(w, r, ""), "Invalid form submission")
		return
	}

	form := request.NewMovieForm(r.PostForm)

	if errs := form.Validate(); len(errs) > 0 {
		page := newPage(w, r, "Movies Watchlist - Add Movie")
		page.Form = form
		page.Errors = errs
		h.renderer.Render(w, http.StatusOK, "new_movie.html", page)
		return
	}

	if _, err := h.service.Add(r.Context(), userID, form); err != nil {
		h.handleServiceError(w, r, err, "add movie")
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// ShowEdit handles GET /edit/{id} - pre-fills the extended form
func (h *MovieHandler) ShowEdit(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.movieID(w, r)
	if !ok {
		return
	}

	movie, err := h.service.Get(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, r, err, "load movie for edit")
		return
	}

	page := newPage(w, r, "Movies Watchlist - Edit Movie")
	page.Form = request.ExtendedMovieFormFromEntity(movie)
	page.Data = response.MovieToView(movie)
	h.renderer.Render(w, http.StatusOK, "movie_form.html", page)
}

// Edit handles POST /edit/{id}
func (h *MovieHandler) Edit(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.movieID(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderer.RenderError(w, http.StatusBadRequest, newPage(w, r, ""), "Invalid form submission")
		return
	}

	form := request.NewExtendedMovieForm(r.PostForm)

	if errs := form.Validate(); len(errs) > 0 {
		page := newPage(w, r, "Movies Watchlist - Edit Movie")
		page.Form = form
		page.Errors = errs
		h.renderer.Render(w, http.StatusOK, "movie_form.html", page)
		return
	}

	movie, err := h.service.Update(r.Context(), movieID, form)
	if err != nil {
		h.handleServiceError(w, r, err, "update movie")
		return
	}

	http.Redirect(w, r, "/movie/"+movie.ID.String(), http.StatusFound)
}

// Detail handles GET /movie/{id}
func (h *MovieHandler) Detail(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.movieID(w, r)
	if !ok {
		return
	}

	movie, err := h.service.Get(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, r, err, "get movie")
		return
	}

	page := newPage(w, r, "Movies Watchlist - "+movie.Title)
	page.Data = response.MovieToView(movie)
	h.renderer.Render(w, http.StatusOK, "movie_details.html", page)
}

// Rate handles GET /movie/{id}/rate?rating={int}. Any integer is stored
// as-is; a non-integer parameter is rejected.
func (h *MovieHandler) Rate(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.movieID(w, r)
	if !ok {
		return
	}

	rating, err := strconv.Atoi(r.URL.Query().Get("rating"))
	if err != nil {
		h.log.Warn("Invalid rating parameter",
			zap.String("movie_id", movieID.String()),
			zap.String("rating", r.URL.Query().Get("rating")))
		h.renderer.RenderError(w, http.StatusBadRequest, newPage(w, r, ""), "Rating must be a whole number")
		return
	}

	if err := h.service.Rate(r.Context(), movieID, rating); err != nil {
		h.handleServiceError(w, r, err, "rate movie")
		return
	}

	http.Redirect(w, r, "/movie/"+movieID.String(), http.StatusFound)
}

// Watch handles GET /movie/{id}/watch - sets last watched to now
func (h *MovieHandler) Watch(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.movieID(w, r)
	if !ok {
		return
	}

	if err := h.service.MarkWatched(r.Context(), movieID); err != nil {
		h.handleServiceError(w, r, err, "mark watched")
		return
	}

	http.Redirect(w, r, "/movie/"+movieID.String(), http.StatusFound)
}

// movieID parses the {id} URL param; an unparseable id is a 404, the same as
// an unknown one.
func (h *MovieHandler) movieID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	movieID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.renderer.RenderError(w, http.StatusNotFound, newPage(w, r, ""), "Movie not found")
		return uuid.Nil, false
	}
	return movieID, true
}

// handleServiceError maps service errors for movie operations
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		h.renderer.RenderError(w, http.StatusNotFound, newPage(w, r, ""), "Movie not found")

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		h.renderer.RenderError(w, http.StatusInternalServerError, newPage(w, r, ""), "Something went wrong, please try again")
	}
}
