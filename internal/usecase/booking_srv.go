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

type BookingService interface {
	// CreateBooking books one seat for one screening on behalf of the
	// requester. Exactly one of any number of concurrent calls for the
	// same (screening, seat) pair succeeds; the rest get ErrConflict.
	CreateBooking(ctx context.Context, requesterID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, requesterID uuid.UUID, bookingID string) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, requesterID uuid.UUID) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, requesterID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Identity check comes before any storage access.
	if requesterID == uuid.Nil {
		return nil, entity.ErrUnauthorized
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	seatID, err := uuid.Parse(req.SeatID)
	if err != nil {
		return nil, fmt.Errorf("seat ID %q: %w", req.SeatID, entity.ErrInvalidInput)
	}

	screeningID, err := uuid.Parse(req.ScreeningID)
	if err != nil {
		return nil, fmt.Errorf("screening ID %q: %w", req.ScreeningID, entity.ErrInvalidInput)
	}

	seat, err := s.repo.Seat.FindByID(ctx, seatID)
	if err != nil {
		return nil, err
	}

	screening, err := s.repo.Screening.FindByID(ctx, screeningID)
	if err != nil {
		return nil, err
	}

	// The seat must be an instance of this screening, not of another one
	// and not a room template row.
	if seat.ScreeningID == nil || *seat.ScreeningID != screening.ID {
		return nil, fmt.Errorf("seat %s: %w", seatID.String(), entity.ErrSeatMismatch)
	}

	// Early exit. Advisory only: two requests can both pass this check,
	// in which case the unique index decides at insert time.
	taken, err := s.repo.Booking.ExistsForSeat(ctx, screeningID, seatID)
	if err != nil {
		s.log.Error("Failed to check seat availability", zap.Error(err))
		return nil, fmt.Errorf("check seat availability: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("seat already booked for this screening: %w", entity.ErrConflict)
	}

	booking := &entity.Booking{
		ID:           uuid.New(),
		ScreeningID:  screeningID,
		SeatID:       seatID,
		UserID:       &requesterID,
		PurchaseTime: time.Now(),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("screening_id", screeningID.String()),
		zap.String("seat_id", seatID.String()),
		zap.String("user_id", requesterID.String()),
	)

	resp := response.BookingToResponse(booking, s.displayName(ctx, booking.UserID))
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, requesterID uuid.UUID, bookingID string) (*response.BookingResponse, error) {
	if requesterID == uuid.Nil {
		return nil, entity.ErrUnauthorized
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking ID %q: %w", bookingID, entity.ErrInvalidInput)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking, s.displayName(ctx, booking.UserID))
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, requesterID uuid.UUID) ([]response.BookingResponse, error) {
	if requesterID == uuid.Nil {
		return nil, entity.ErrUnauthorized
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, requesterID)
	if err != nil {
		s.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("user_id", requesterID.String()),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	username := s.displayName(ctx, &requesterID)

	result := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		result[i] = response.BookingToResponse(booking, username)
	}

	return result, nil
}

// displayName resolves the booking owner's username, tolerating a missing
// user (bookings survive with a null owner reference in admin tooling).
func (s *bookingService) displayName(ctx context.Context, userID *uuid.UUID) string {
	if userID == nil {
		return ""
	}

	user, err := s.repo.User.FindByID(ctx, *userID)
	if err != nil {
		return ""
	}

	return user.Username
}
