package entity

import (
	"time"
)

type Movie struct {
	Base
	Title       string     `db:"title"`
	Director    string     `db:"director"`
	Year        int        `db:"year"`
	Cast        []string   `db:"cast"`
	Series      []string   `db:"series"`
	Tags        []string   `db:"tags"`
	LastWatched *time.Time `db:"last_watched"`
	Rating      int        `db:"rating"`
	Description *string    `db:"description"`
	VideoLink   *string    `db:"video_link"`
}
