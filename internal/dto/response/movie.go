package response

import (
	"github.com/sertech/movie-watchList-Porftolio/internal/data/entity"
)

// Star is one of the five rating stars on the detail page.
type Star struct {
	N      int
	Filled bool
}

// MovieView is the template-facing shape of a movie record.
type MovieView struct {
	ID          string
	Title       string
	Director    string
	Year        int
	Cast        []string
	Series      []string
	Tags        []string
	Rating      int
	Stars       []Star
	LastWatched string
	Description string
	VideoLink   string
}

func MovieToView(movie *entity.Movie) MovieView {
	view := MovieView{
		ID:       movie.ID.String(),
		Title:    movie.Title,
		Director: movie.Director,
		Year:     movie.Year,
		Cast:     movie.Cast,
		Series:   movie.Series,
		Tags:     movie.Tags,
		Rating:   movie.Rating,
	}

	// five stars, filled up to the rating
	view.Stars = make([]Star, 5)
	for i := range view.Stars {
		view.Stars[i] = Star{N: i + 1, Filled: movie.Rating > i}
	}

	if movie.LastWatched != nil {
		view.LastWatched = movie.LastWatched.Format("2 Jan 2006")
	}
	if movie.Description != nil {
		view.Description = *movie.Description
	}
	if movie.VideoLink != nil {
		view.VideoLink = *movie.VideoLink
	}

	return view
}

func MoviesToView(movies []*entity.Movie) []MovieView {
	views := make([]MovieView, len(movies))
	for i, movie := range movies {
		views[i] = MovieToView(movie)
	}
	return views
}
