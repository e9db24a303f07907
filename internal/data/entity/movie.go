package entity

import "time"

type Movie struct {
	Base
	Title       string  `db:"title"`
	Description string  `db:"description"`
	DurationMin int     `db:"duration_min"`
	PosterURL   *string `db:"poster_url"`
}

// Duration returns the running time as a time.Duration.
func (m *Movie) Duration() time.Duration {
	return time.Duration(m.DurationMin) * time.Minute
}
