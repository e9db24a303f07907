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

type ScreeningRepository interface {
	// CreateWithSeats inserts the screening and its per-screening seat grid
	// in one transaction, so a screening never exists half-seeded.
	CreateWithSeats(ctx context.Context, screening *entity.Screening, seats []*entity.Seat) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error)
	FindAll(ctx context.Context) ([]*entity.Screening, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Screening, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type screeningRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScreeningRepository(db database.PgxIface, log *zap.Logger) ScreeningRepository {
	return &screeningRepository{
		db:  db,
		log: log.With(zap.String("repository", "screening")),
	}
}

func (r *screeningRepository) CreateWithSeats(ctx context.Context, screening *entity.Screening, seats []*entity.Seat) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create screening: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO screenings (id, movie_id, room_id, start_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = tx.Exec(ctx, query,
		screening.ID,
		screening.MovieID,
		screening.RoomID,
		screening.StartTime,
		screening.CreatedAt,
		screening.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("room %s already has a screening at %s: %w",
				screening.RoomID.String(), screening.StartTime, entity.ErrConflict)
		}
		r.log.Error("Failed to create screening",
			zap.Error(err),
			zap.String("movie_id", screening.MovieID.String()),
			zap.String("room_id", screening.RoomID.String()),
		)
		return fmt.Errorf("create screening: %w", err)
	}

	if len(seats) > 0 {
		seatQuery := `INSERT INTO seats (id, room_id, screening_id, seat_row, seat_number, created_at) VALUES `
		args := []interface{}{}

		for i, seat := range seats {
			if i > 0 {
				seatQuery += ", "
			}
			seatQuery += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
				i*6+1, i*6+2, i*6+3, i*6+4, i*6+5, i*6+6)

			args = append(args,
				seat.ID,
				seat.RoomID,
				seat.ScreeningID,
				seat.Row,
				seat.SeatNumber,
				seat.CreatedAt,
			)
		}

		if _, err := tx.Exec(ctx, seatQuery, args...); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("duplicate seat in screening %s: %w",
					screening.ID.String(), entity.ErrConflict)
			}
			r.log.Error("Failed to seed screening seats",
				zap.Error(err),
				zap.String("screening_id", screening.ID.String()),
				zap.Int("count", len(seats)),
			)
			return fmt.Errorf("seed screening seats: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create screening: %w", err)
	}

	return nil
}

func (r *screeningRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	query := `
		SELECT id, movie_id, room_id, start_time, created_at, updated_at
		FROM screenings
		WHERE id = $1
	`

	var screening entity.Screening
	err := r.db.QueryRow(ctx, query, id).Scan(
		&screening.ID,
		&screening.MovieID,
		&screening.RoomID,
		&screening.StartTime,
		&screening.CreatedAt,
		&screening.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("screening %s: %w", id.String(), entity.ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to find screening by ID",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return nil, fmt.Errorf("find screening by ID %s: %w", id.String(), err)
	}

	return &screening, nil
}

func (r *screeningRepository) FindAll(ctx context.Context) ([]*entity.Screening, error) {
	query := `
		SELECT id, movie_id, room_id, start_time, created_at, updated_at
		FROM screenings
		ORDER BY start_time
	`

	return r.queryScreenings(ctx, query)
}

func (r *screeningRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Screening, error) {
	query := `
		SELECT id, movie_id, room_id, start_time, created_at, updated_at
		FROM screenings
		WHERE room_id = $1
		ORDER BY start_time
	`

	return r.queryScreenings(ctx, query, roomID)
}

func (r *screeningRepository) queryScreenings(ctx context.Context, query string, args ...any) ([]*entity.Screening, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find screenings", zap.Error(err))
		return nil, fmt.Errorf("find screenings: %w", err)
	}
	defer rows.Close()

	var screenings []*entity.Screening
	for rows.Next() {
		var screening entity.Screening
		err := rows.Scan(
			&screening.ID,
			&screening.MovieID,
			&screening.RoomID,
			&screening.StartTime,
			&screening.CreatedAt,
			&screening.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan screening row", zap.Error(err))
			return nil, fmt.Errorf("scan screening row: %w", err)
		}
		screenings = append(screenings, &screening)
	}

	return screenings, nil
}

// Delete removes the screening; its seats and bookings cascade away.
func (r *screeningRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM screenings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete screening",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return fmt.Errorf("delete screening %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("screening %s: %w", id.String(), entity.ErrNotFound)
	}

	r.log.Info("Screening deleted", zap.String("screening_id", id.String()))
	return nil
}
