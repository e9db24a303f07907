package entity

import (
	"time"

	"github.com/google/uuid"
)

// Screening is a scheduled showing of a movie in a room. (room_id,
// start_time) is unique: a room cannot host two screenings starting at the
// same instant.
type Screening struct {
	Base
	MovieID   uuid.UUID `db:"movie_id"`
	RoomID    uuid.UUID `db:"room_id"`
	StartTime time.Time `db:"start_time"`
}

// EndTime derives the end of the screening from the movie's running time.
func (s *Screening) EndTime(movie *Movie) time.Time {
	return s.StartTime.Add(movie.Duration())
}
