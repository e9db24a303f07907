package response

import "cinema-api/internal/data/entity"

type BookingResponse struct {
	ID           string `json:"id"`
	Screening    string `json:"screening"`
	Seat         string `json:"seat"`
	User         string `json:"user"`
	PurchaseTime string `json:"purchase_time"`
}

func BookingToResponse(booking *entity.Booking, username string) BookingResponse {
	return BookingResponse{
		ID:           booking.ID.String(),
		Screening:    booking.ScreeningID.String(),
		Seat:         booking.SeatID.String(),
		User:         username,
		PurchaseTime: booking.PurchaseTime.Format(TimeLayout),
	}
}
