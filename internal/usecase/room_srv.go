package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomService interface {
	GetRooms(ctx context.Context) ([]response.RoomResponse, error)
	GetRoom(ctx context.Context, roomID string) (*response.RoomResponse, error)
	GetRoomSeats(ctx context.Context, roomID string) (*response.RoomSeatsResponse, error)
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) GetRooms(ctx context.Context) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]response.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		summaries, err := s.screeningSummaries(ctx, room.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, response.RoomToResponse(room, summaries))
	}

	return result, nil
}

func (s *roomService) GetRoom(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("room ID %q: %w", roomID, entity.ErrInvalidInput)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	summaries, err := s.screeningSummaries(ctx, room.ID)
	if err != nil {
		return nil, err
	}

	resp := response.RoomToResponse(room, summaries)
	return &resp, nil
}

func (s *roomService) GetRoomSeats(ctx context.Context, roomID string) (*response.RoomSeatsResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("room ID %q: %w", roomID, entity.ErrInvalidInput)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	screenings, err := s.repo.Screening.FindByRoomID(ctx, room.ID)
	if err != nil {
		return nil, err
	}

	screeningResponses := make([]response.ScreeningResponse, 0, len(screenings))
	for _, screening := range screenings {
		movie, err := s.repo.Movie.FindByID(ctx, screening.MovieID)
		if err != nil {
			return nil, err
		}
		screeningResponses = append(screeningResponses, response.ScreeningToResponse(screening, movie, room))
	}

	seats, err := s.repo.Seat.FindByRoomID(ctx, room.ID)
	if err != nil {
		return nil, err
	}

	summaries := make([]response.SeatSummary, len(seats))
	for i, seat := range seats {
		summaries[i] = response.SeatToSummary(seat)
	}

	return &response.RoomSeatsResponse{
		Screenings: screeningResponses,
		Seats:      summaries,
	}, nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:       req.Name,
		Rows:       req.Rows,
		SeatsInRow: req.SeatsInRow,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, err
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("name", room.Name),
		zap.Int("rows", room.Rows),
		zap.Int("seats_in_row", room.SeatsInRow),
	)

	resp := response.RoomToResponse(room, nil)
	return &resp, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return fmt.Errorf("room ID %q: %w", roomID, entity.ErrInvalidInput)
	}

	return s.repo.Room.Delete(ctx, id)
}

func (s *roomService) screeningSummaries(ctx context.Context, roomID uuid.UUID) ([]response.ScreeningSummary, error) {
	screenings, err := s.repo.Screening.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	summaries := make([]response.ScreeningSummary, 0, len(screenings))
	for _, screening := range screenings {
		movie, err := s.repo.Movie.FindByID(ctx, screening.MovieID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, response.ScreeningToSummary(screening, movie))
	}

	return summaries, nil
}
