package request

type CreateScreeningRequest struct {
	MovieID   string `json:"movie" validate:"required,uuid4"`
	RoomID    string `json:"room" validate:"required,uuid4"`
	StartTime string `json:"start_time" validate:"required"` // RFC 3339
}

type CreateSeatRequest struct {
	Row        int `json:"row" validate:"required,gt=0"`
	SeatNumber int `json:"seat_number" validate:"required,min=1"`
}
