package request

type CreateMovieRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"required"`
	DurationMin int     `json:"duration_min" validate:"required,gt=0"`
	PosterURL   *string `json:"poster_url,omitempty" validate:"omitempty,url"`
}
