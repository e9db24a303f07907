package entity

import "github.com/google/uuid"

// Seat is an addressable position in a room. Seats are instantiated per
// screening ((seat_row, seat_number, screening_id) is unique for
// screening-bound rows); a seat with a nil ScreeningID is a room template
// row not tied to any showing.
type Seat struct {
	BaseSimple
	RoomID      uuid.UUID  `db:"room_id"`
	ScreeningID *uuid.UUID `db:"screening_id"`
	Row         int        `db:"seat_row"`
	SeatNumber  int        `db:"seat_number"`
}

// SeatStatus pairs a seat with whether a booking exists for it in its
// screening. Produced by a single joined query so the availability
// partition reflects one consistent snapshot.
type SeatStatus struct {
	Seat
	Booked bool
}
