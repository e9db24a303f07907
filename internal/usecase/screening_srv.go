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

type ScreeningService interface {
	GetScreenings(ctx context.Context) ([]response.ScreeningResponse, error)
	GetScreeningsByRoom(ctx context.Context, roomID string) ([]response.ScreeningResponse, error)
	// GetScreeningDetail resolves the screening and partitions its seat set
	// into available and booked.
	GetScreeningDetail(ctx context.Context, screeningID string) (*response.ScreeningDetailResponse, error)
	GetScreeningSeats(ctx context.Context, screeningID string) ([]response.SeatResponse, error)
	CreateScreening(ctx context.Context, req *request.CreateScreeningRequest) (*response.ScreeningResponse, error)
	DeleteScreening(ctx context.Context, screeningID string) error
	CreateSeat(ctx context.Context, screeningID string, req *request.CreateSeatRequest) (*response.SeatSummary, error)
	DeleteSeat(ctx context.Context, seatID string) error
}

type screeningService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewScreeningService(repo *repository.Repository, log *zap.Logger) ScreeningService {
	return &screeningService{
		repo: repo,
		log:  log.With(zap.String("service", "screening")),
	}
}

func (s *screeningService) GetScreenings(ctx context.Context) ([]response.ScreeningResponse, error) {
	screenings, err := s.repo.Screening.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return s.buildScreeningResponses(ctx, screenings)
}

func (s *screeningService) GetScreeningsByRoom(ctx context.Context, roomID string) ([]response.ScreeningResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("room ID %q: %w", roomID, entity.ErrInvalidInput)
	}

	// Resolve the room first so an unknown ID is NotFound, not an empty list.
	if _, err := s.repo.Room.FindByID(ctx, id); err != nil {
		return nil, err
	}

	screenings, err := s.repo.Screening.FindByRoomID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.buildScreeningResponses(ctx, screenings)
}

func (s *screeningService) GetScreeningDetail(ctx context.Context, screeningID string) (*response.ScreeningDetailResponse, error) {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return nil, fmt.Errorf("screening ID %q: %w", screeningID, entity.ErrInvalidInput)
	}

	screening, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, screening.MovieID)
	if err != nil {
		return nil, err
	}

	room, err := s.repo.Room.FindByID(ctx, screening.RoomID)
	if err != nil {
		return nil, err
	}

	statuses, err := s.repo.Seat.FindStatusByScreening(ctx, screening.ID, screening.RoomID)
	if err != nil {
		return nil, err
	}

	available, booked := partitionSeats(statuses)

	return &response.ScreeningDetailResponse{
		ID:             screening.ID.String(),
		Movie:          response.MovieToBaseResponse(movie),
		Room:           room.Name,
		StartTime:      screening.StartTime.Format(response.TimeLayout),
		EndTime:        screening.EndTime(movie).Format(response.TimeLayout),
		AvailableSeats: available,
		BookedSeats:    booked,
	}, nil
}

func (s *screeningService) GetScreeningSeats(ctx context.Context, screeningID string) ([]response.SeatResponse, error) {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return nil, fmt.Errorf("screening ID %q: %w", screeningID, entity.ErrInvalidInput)
	}

	screening, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, screening.MovieID)
	if err != nil {
		return nil, err
	}

	room, err := s.repo.Room.FindByID(ctx, screening.RoomID)
	if err != nil {
		return nil, err
	}

	statuses, err := s.repo.Seat.FindStatusByScreening(ctx, screening.ID, screening.RoomID)
	if err != nil {
		return nil, err
	}

	seats := make([]response.SeatResponse, len(statuses))
	for i, status := range statuses {
		seats[i] = response.SeatResponse{
			ID:          status.ID.String(),
			Row:         status.Row,
			SeatNumber:  status.SeatNumber,
			Screening:   movie.Title,
			Room:        room.Name,
			IsAvailable: !status.Booked,
		}
	}

	return seats, nil
}

func (s *screeningService) CreateScreening(ctx context.Context, req *request.CreateScreeningRequest) (*response.ScreeningResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create screening validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("movie ID %q: %w", req.MovieID, entity.ErrInvalidInput)
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("room ID %q: %w", req.RoomID, entity.ErrInvalidInput)
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("start time %q: %w", req.StartTime, entity.ErrInvalidInput)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	screening := &entity.Screening{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID:   movie.ID,
		RoomID:    room.ID,
		StartTime: startTime,
	}

	// Materialise the per-screening seat grid from the room layout. Seats
	// exist per screening, so every showing starts with a fresh inventory.
	seats := make([]*entity.Seat, 0, room.Rows*room.SeatsInRow)
	for row := 1; row <= room.Rows; row++ {
		for num := 1; num <= room.SeatsInRow; num++ {
			seats = append(seats, &entity.Seat{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: now,
				},
				RoomID:      room.ID,
				ScreeningID: &screening.ID,
				Row:         row,
				SeatNumber:  num,
			})
		}
	}

	if err := s.repo.Screening.CreateWithSeats(ctx, screening, seats); err != nil {
		return nil, err
	}

	s.log.Info("Screening created",
		zap.String("screening_id", screening.ID.String()),
		zap.String("movie", movie.Title),
		zap.String("room", room.Name),
		zap.Time("start_time", startTime),
		zap.Int("seats", len(seats)),
	)

	resp := response.ScreeningToResponse(screening, movie, room)
	return &resp, nil
}

func (s *screeningService) DeleteScreening(ctx context.Context, screeningID string) error {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return fmt.Errorf("screening ID %q: %w", screeningID, entity.ErrInvalidInput)
	}

	return s.repo.Screening.Delete(ctx, id)
}

func (s *screeningService) CreateSeat(ctx context.Context, screeningID string, req *request.CreateSeatRequest) (*response.SeatSummary, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create seat validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	id, err := uuid.Parse(screeningID)
	if err != nil {
		return nil, fmt.Errorf("screening ID %q: %w", screeningID, entity.ErrInvalidInput)
	}

	screening, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	seat := &entity.Seat{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		RoomID:      screening.RoomID,
		ScreeningID: &screening.ID,
		Row:         req.Row,
		SeatNumber:  req.SeatNumber,
	}

	if err := s.repo.Seat.Create(ctx, seat); err != nil {
		return nil, err
	}

	s.log.Info("Seat created",
		zap.String("seat_id", seat.ID.String()),
		zap.String("screening_id", screening.ID.String()),
		zap.Int("row", seat.Row),
		zap.Int("seat_number", seat.SeatNumber),
	)

	summary := response.SeatToSummary(seat)
	return &summary, nil
}

func (s *screeningService) DeleteSeat(ctx context.Context, seatID string) error {
	id, err := uuid.Parse(seatID)
	if err != nil {
		return fmt.Errorf("seat ID %q: %w", seatID, entity.ErrInvalidInput)
	}

	return s.repo.Seat.Delete(ctx, id)
}

func (s *screeningService) buildScreeningResponses(ctx context.Context, screenings []*entity.Screening) ([]response.ScreeningResponse, error) {
	result := make([]response.ScreeningResponse, 0, len(screenings))
	for _, screening := range screenings {
		movie, err := s.repo.Movie.FindByID(ctx, screening.MovieID)
		if err != nil {
			return nil, err
		}

		room, err := s.repo.Room.FindByID(ctx, screening.RoomID)
		if err != nil {
			return nil, err
		}

		result = append(result, response.ScreeningToResponse(screening, movie, room))
	}

	return result, nil
}

// partitionSeats splits a screening's seat set into available and booked.
// Every seat lands in exactly one half; the union is the full set.
func partitionSeats(statuses []*entity.SeatStatus) (available, booked []response.SeatSummary) {
	available = []response.SeatSummary{}
	booked = []response.SeatSummary{}

	for _, status := range statuses {
		summary := response.SeatToSummary(&status.Seat)
		if status.Booked {
			booked = append(booked, summary)
		} else {
			available = append(available, summary)
		}
	}

	return available, booked
}
