package response

import "cinema-api/internal/data/entity"

type MovieResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min"`
	PosterURL   *string `json:"poster_url,omitempty"`
}

// BaseMovieResponse is the abbreviated movie shape embedded in screening
// detail responses.
type BaseMovieResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	DurationMin int     `json:"duration_min"`
	PosterURL   *string `json:"poster_url,omitempty"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Description: movie.Description,
		DurationMin: movie.DurationMin,
		PosterURL:   movie.PosterURL,
	}
}

func MovieToBaseResponse(movie *entity.Movie) BaseMovieResponse {
	return BaseMovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		DurationMin: movie.DurationMin,
		PosterURL:   movie.PosterURL,
	}
}
