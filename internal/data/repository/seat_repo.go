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

type SeatRepository interface {
	Create(ctx context.Context, seat *entity.Seat) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Seat, error)
	// FindStatusByScreening returns every seat of the screening together
	// with its booked flag, computed by a single joined statement so the
	// result is one consistent snapshot relative to committing bookings.
	FindStatusByScreening(ctx context.Context, screeningID, roomID uuid.UUID) ([]*entity.SeatStatus, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) Create(ctx context.Context, seat *entity.Seat) error {
	query := `
		INSERT INTO seats (id, room_id, screening_id, seat_row, seat_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		seat.ID,
		seat.RoomID,
		seat.ScreeningID,
		seat.Row,
		seat.SeatNumber,
		seat.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("seat row %d number %d already defined for this screening: %w",
				seat.Row, seat.SeatNumber, entity.ErrConflict)
		}
		r.log.Error("Failed to create seat",
			zap.Error(err),
			zap.String("room_id", seat.RoomID.String()),
			zap.Int("row", seat.Row),
			zap.Int("seat_number", seat.SeatNumber),
		)
		return fmt.Errorf("create seat: %w", err)
	}

	return nil
}

func (r *seatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	query := `
		SELECT id, room_id, screening_id, seat_row, seat_number, created_at
		FROM seats
		WHERE id = $1
	`

	var seat entity.Seat
	err := r.db.QueryRow(ctx, query, id).Scan(
		&seat.ID,
		&seat.RoomID,
		&seat.ScreeningID,
		&seat.Row,
		&seat.SeatNumber,
		&seat.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("seat %s: %w", id.String(), entity.ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to find seat by ID",
			zap.Error(err),
			zap.String("seat_id", id.String()),
		)
		return nil, fmt.Errorf("find seat by ID %s: %w", id.String(), err)
	}

	return &seat, nil
}

func (r *seatRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Seat, error) {
	query := `
		SELECT id, room_id, screening_id, seat_row, seat_number, created_at
		FROM seats
		WHERE room_id = $1
		ORDER BY seat_row, seat_number
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to find seats by room ID",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find seats by room ID %s: %w", roomID.String(), err)
	}
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.RoomID,
			&seat.ScreeningID,
			&seat.Row,
			&seat.SeatNumber,
			&seat.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, &seat)
	}

	return seats, nil
}

func (r *seatRepository) FindStatusByScreening(ctx context.Context, screeningID, roomID uuid.UUID) ([]*entity.SeatStatus, error) {
	query := `
		SELECT s.id, s.room_id, s.screening_id, s.seat_row, s.seat_number, s.created_at,
		       b.id IS NOT NULL AS booked
		FROM seats s
		LEFT JOIN bookings b ON b.seat_id = s.id AND b.screening_id = $1
		WHERE s.screening_id = $1 AND s.room_id = $2
		ORDER BY s.seat_row, s.seat_number
	`

	rows, err := r.db.Query(ctx, query, screeningID, roomID)
	if err != nil {
		r.log.Error("Failed to find seat statuses",
			zap.Error(err),
			zap.String("screening_id", screeningID.String()),
		)
		return nil, fmt.Errorf("find seat statuses for screening %s: %w", screeningID.String(), err)
	}
	defer rows.Close()

	var statuses []*entity.SeatStatus
	for rows.Next() {
		var status entity.SeatStatus
		err := rows.Scan(
			&status.ID,
			&status.RoomID,
			&status.ScreeningID,
			&status.Row,
			&status.SeatNumber,
			&status.CreatedAt,
			&status.Booked,
		)
		if err != nil {
			r.log.Error("Failed to scan seat status row", zap.Error(err))
			return nil, fmt.Errorf("scan seat status row: %w", err)
		}
		statuses = append(statuses, &status)
	}

	return statuses, nil
}

// Delete removes the seat; its bookings cascade away.
func (r *seatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM seats WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete seat",
			zap.Error(err),
			zap.String("seat_id", id.String()),
		)
		return fmt.Errorf("delete seat %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seat %s: %w", id.String(), entity.ErrNotFound)
	}

	r.log.Info("Seat deleted", zap.String("seat_id", id.String()))
	return nil
}
