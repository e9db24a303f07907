package wire

import (
	"cinema-api/internal/adaptor"
	"cinema-api/internal/data/repository"
	"cinema-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	screeningHandler *adaptor.ScreeningHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public
	r.Get("/api/rooms", roomHandler.GetRooms)
	r.Get("/api/rooms/{id}", roomHandler.GetRoom)
	r.Get("/api/rooms/{id}/seats", roomHandler.GetRoomSeats)
	r.Get("/api/rooms/{id}/screenings", screeningHandler.GetScreeningsByRoom)

	// Admin
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/rooms", roomHandler.CreateRoom)
		r.Delete("/api/rooms/{id}", roomHandler.DeleteRoom)
	})
}
