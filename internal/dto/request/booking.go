package request

type CreateBookingRequest struct {
	ScreeningID string `json:"screening" validate:"required,uuid4"`
	SeatID      string `json:"seat" validate:"required,uuid4"`
}
