package repository

import (
	"context"
	"errors"
	"fmt"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Create inserts the booking. A racing insert for the same
	// (screening, seat) pair loses against the unique index and comes back
	// as entity.ErrConflict, the same outcome the pre-check produces.
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	ExistsForSeat(ctx context.Context, screeningID, seatID uuid.UUID) (bool, error)
	FindByScreeningID(ctx context.Context, screeningID uuid.UUID) ([]*entity.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, screening_id, seat_id, user_id, purchase_time)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.ScreeningID,
		booking.SeatID,
		booking.UserID,
		booking.PurchaseTime,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("seat already booked for this screening: %w", entity.ErrConflict)
		}
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("screening_id", booking.ScreeningID.String()),
			zap.String("seat_id", booking.SeatID.String()),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, screening_id, seat_id, user_id, purchase_time
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.ScreeningID,
		&booking.SeatID,
		&booking.UserID,
		&booking.PurchaseTime,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("booking %s: %w", id.String(), entity.ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT id, screening_id, seat_id, user_id, purchase_time
		FROM bookings
		WHERE user_id = $1
		ORDER BY purchase_time DESC
	`

	return r.queryBookings(ctx, query, userID)
}

func (r *bookingRepository) ExistsForSeat(ctx context.Context, screeningID, seatID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM bookings WHERE screening_id = $1 AND seat_id = $2)`

	var exists bool
	err := r.db.QueryRow(ctx, query, screeningID, seatID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check booking existence",
			zap.Error(err),
			zap.String("screening_id", screeningID.String()),
			zap.String("seat_id", seatID.String()),
		)
		return false, fmt.Errorf("check booking existence: %w", err)
	}

	return exists, nil
}

func (r *bookingRepository) FindByScreeningID(ctx context.Context, screeningID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT id, screening_id, seat_id, user_id, purchase_time
		FROM bookings
		WHERE screening_id = $1
		ORDER BY purchase_time
	`

	return r.queryBookings(ctx, query, screeningID)
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.ScreeningID,
			&booking.SeatID,
			&booking.UserID,
			&booking.PurchaseTime,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", id.String(), entity.ErrNotFound)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}
