package response

import "cinema-api/internal/data/entity"

// SeatSummary identifies a seat position within a screening.
type SeatSummary struct {
	ID         string `json:"id"`
	Row        int    `json:"row"`
	SeatNumber int    `json:"seat_number"`
}

type SeatResponse struct {
	ID          string `json:"id"`
	Row         int    `json:"row"`
	SeatNumber  int    `json:"seat_number"`
	Screening   string `json:"screening"`
	Room        string `json:"room"`
	IsAvailable bool   `json:"is_available"`
}

func SeatToSummary(seat *entity.Seat) SeatSummary {
	return SeatSummary{
		ID:         seat.ID.String(),
		Row:        seat.Row,
		SeatNumber: seat.SeatNumber,
	}
}
