package usecase

import (
	"cinema-api/internal/data/repository"
	"cinema-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Room      RoomService
	Movie     MovieService
	Screening ScreeningService
	Booking   BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Room:      NewRoomService(repo, log),
		Movie:     NewMovieService(repo, log),
		Screening: NewScreeningService(repo, log),
		Booking:   NewBookingService(repo, log),
	}
}
