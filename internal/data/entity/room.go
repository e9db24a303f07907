package entity

// Room is a physical auditorium. Name is unique; rows and seats_in_row
// describe the seat grid materialised for each screening held in the room.
type Room struct {
	Base
	Name       string `db:"name"`
	Rows       int    `db:"rows"`
	SeatsInRow int    `db:"seats_in_row"`
}
