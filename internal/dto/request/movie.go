package request

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/sertech/movie-watchList-Porftolio/internal/data/entity"
	"github.com/sertech/movie-watchList-Porftolio/pkg/utils"
)

// MovieForm is the add-movie form: title, director and year only.
type MovieForm struct {
	Title    string `validate:"required"`
	Director string `validate:"required"`
	Year     int    `validate:"required,gte=1878"`
	YearRaw  string `validate:"-"`
}

func NewMovieForm(values url.Values) *MovieForm {
	form := &MovieForm{
		Title:    strings.TrimSpace(values.Get("title")),
		Director: strings.TrimSpace(values.Get("director")),
		YearRaw:  strings.TrimSpace(values.Get("year")),
	}

	if year, err := strconv.Atoi(form.YearRaw); err == nil {
		form.Year = year
	}

	return form
}

func (f *MovieForm) Validate() map[string]string {
	errs := utils.ValidateStruct(f)
	return f.overrideYearError(errs)
}

// overrideYearError replaces the generic message when the year field was
// filled in but is not a number.
func (f *MovieForm) overrideYearError(errs map[string]string) map[string]string {
	if f.YearRaw == "" {
		return errs
	}
	if _, err := strconv.Atoi(f.YearRaw); err == nil {
		return errs
	}

	if errs == nil {
		errs = make(map[string]string)
	}
	errs["Year"] = "Please enter a year in the format YYYY"
	return errs
}

// ExtendedMovieForm is the edit form: every editable movie field. Cast,
// series and tags arrive as multi-line text, one entry per line.
type ExtendedMovieForm struct {
	MovieForm
	Cast        []string `validate:"-"`
	Series      []string `validate:"-"`
	Tags        []string `validate:"-"`
	Description string   `validate:"-"`
	VideoLink   string   `validate:"omitempty,url"`
}

func NewExtendedMovieForm(values url.Values) *ExtendedMovieForm {
	return &ExtendedMovieForm{
		MovieForm:   *NewMovieForm(values),
		Cast:        SplitLines(values.Get("cast")),
		Series:      SplitLines(values.Get("series")),
		Tags:        SplitLines(values.Get("tags")),
		Description: strings.TrimSpace(values.Get("description")),
		VideoLink:   strings.TrimSpace(values.Get("video_link")),
	}
}

// ExtendedMovieFormFromEntity pre-fills the edit form from a stored movie.
func ExtendedMovieFormFromEntity(movie *entity.Movie) *ExtendedMovieForm {
	form := &ExtendedMovieForm{
		MovieForm: MovieForm{
			Title:    movie.Title,
			Director: movie.Director,
			Year:     movie.Year,
			YearRaw:  strconv.Itoa(movie.Year),
		},
		Cast:   movie.Cast,
		Series: movie.Series,
		Tags:   movie.Tags,
	}

	if movie.Description != nil {
		form.Description = *movie.Description
	}
	if movie.VideoLink != nil {
		form.VideoLink = *movie.VideoLink
	}

	return form
}

func (f *ExtendedMovieForm) Validate() map[string]string {
	errs := utils.ValidateStruct(f)
	return f.overrideYearError(errs)
}

// Textarea helpers for the multi-line list fields.

func (f *ExtendedMovieForm) CastText() string   { return JoinLines(f.Cast) }
func (f *ExtendedMovieForm) SeriesText() string { return JoinLines(f.Series) }
func (f *ExtendedMovieForm) TagsText() string   { return JoinLines(f.Tags) }

// SplitLines turns multi-line textarea input into an ordered list of trimmed
// strings. Empty input yields an empty list.
func SplitLines(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// JoinLines recreates the textarea text from the stored list.
func JoinLines(items []string) string {
	return strings.Join(items, "\n")
}
