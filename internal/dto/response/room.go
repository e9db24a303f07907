package response

import "cinema-api/internal/data/entity"

type RoomResponse struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Rows       int                `json:"rows"`
	SeatsInRow int                `json:"seats_in_row"`
	Screenings []ScreeningSummary `json:"screenings"`
}

// RoomSeatsResponse combines a room's screenings with its seat inventory.
type RoomSeatsResponse struct {
	Screenings []ScreeningResponse `json:"screenings"`
	Seats      []SeatSummary       `json:"seats"`
}

func RoomToResponse(room *entity.Room, screenings []ScreeningSummary) RoomResponse {
	if screenings == nil {
		screenings = []ScreeningSummary{}
	}
	return RoomResponse{
		ID:         room.ID.String(),
		Name:       room.Name,
		Rows:       room.Rows,
		SeatsInRow: room.SeatsInRow,
		Screenings: screenings,
	}
}
