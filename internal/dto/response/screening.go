package response

import "cinema-api/internal/data/entity"

// TimeLayout is the wire format for screening and booking timestamps.
const TimeLayout = "2006-01-02 15:04"

// ScreeningSummary is the abbreviated shape embedded in room responses.
type ScreeningSummary struct {
	Movie     string `json:"movie"`
	StartTime string `json:"start_time"`
}

type ScreeningResponse struct {
	ID        string `json:"id"`
	Movie     string `json:"movie"`
	Room      string `json:"room"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ScreeningDetailResponse carries the availability partition: every seat of
// the screening appears in exactly one of AvailableSeats and BookedSeats.
type ScreeningDetailResponse struct {
	ID             string            `json:"id"`
	Movie          BaseMovieResponse `json:"movie"`
	Room           string            `json:"room"`
	StartTime      string            `json:"start_time"`
	EndTime        string            `json:"end_time"`
	AvailableSeats []SeatSummary     `json:"available_seats"`
	BookedSeats    []SeatSummary     `json:"booked_seats"`
}

func ScreeningToSummary(screening *entity.Screening, movie *entity.Movie) ScreeningSummary {
	return ScreeningSummary{
		Movie:     movie.Title,
		StartTime: screening.StartTime.Format(TimeLayout),
	}
}

func ScreeningToResponse(screening *entity.Screening, movie *entity.Movie, room *entity.Room) ScreeningResponse {
	return ScreeningResponse{
		ID:        screening.ID.String(),
		Movie:     movie.Title,
		Room:      room.Name,
		StartTime: screening.StartTime.Format(TimeLayout),
		EndTime:   screening.EndTime(movie).Format(TimeLayout),
	}
}
