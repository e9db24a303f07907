package wire

import (
	"cinema-api/internal/adaptor"
	"cinema-api/internal/data/repository"
	"cinema-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireScreening(
	r chi.Router,
	screeningHandler *adaptor.ScreeningHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public
	r.Get("/api/screenings", screeningHandler.GetScreenings)
	r.Get("/api/screenings/{id}", screeningHandler.GetScreeningDetail)
	r.Get("/api/screenings/{id}/seats", screeningHandler.GetScreeningSeats)

	// Admin
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/screenings", screeningHandler.CreateScreening)
		r.Delete("/api/screenings/{id}", screeningHandler.DeleteScreening)
		r.Post("/api/screenings/{id}/seats", screeningHandler.CreateSeat)
		r.Delete("/api/seats/{id}", screeningHandler.DeleteSeat)
	})
}
