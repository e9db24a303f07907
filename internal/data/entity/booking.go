package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking binds one seat to one screening for one requester.
// (screening_id, seat_id) is unique; the storage-level index is the final
// arbiter against double booking even when the application pre-check races.
// Bookings are immutable after creation; PurchaseTime is set once.
type Booking struct {
	ID           uuid.UUID  `db:"id"`
	ScreeningID  uuid.UUID  `db:"screening_id"`
	SeatID       uuid.UUID  `db:"seat_id"`
	UserID       *uuid.UUID `db:"user_id"`
	PurchaseTime time.Time  `db:"purchase_time"`
}
