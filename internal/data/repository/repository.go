package repository

import (
	"errors"

	"cinema-api/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Postgres unique-constraint violation.
const pgUniqueViolationCode = "23505"

// isUniqueViolation reports whether err came from a unique index. Write
// paths use it to remap racing inserts to entity.ErrConflict instead of
// leaking the raw driver fault; the index stays the final arbiter for
// double bookings and duplicate definitions.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}

type Repository struct {
	User      UserRepository
	Session   SessionRepository
	Room      RoomRepository
	Movie     MovieRepository
	Screening ScreeningRepository
	Seat      SeatRepository
	Booking   BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Session:   NewSessionRepository(db, log),
		Room:      NewRoomRepository(db, log),
		Movie:     NewMovieRepository(db, log),
		Screening: NewScreeningRepository(db, log),
		Seat:      NewSeatRepository(db, log),
		Booking:   NewBookingRepository(db, log),
	}
}
