package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-api/internal/dto/request"
	"cinema-api/internal/usecase"
	"cinema-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ScreeningHandler struct {
	service usecase.ScreeningService
	log     *zap.Logger
}

func NewScreeningHandler(service usecase.ScreeningService, log *zap.Logger) *ScreeningHandler {
	return &ScreeningHandler{
		service: service,
		log:     log.With(zap.String("handler", "screening")),
	}
}

// GetScreenings handles GET /api/screenings
func (h *ScreeningHandler) GetScreenings(w http.ResponseWriter, r *http.Request) {
	screenings, err := h.service.GetScreenings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get screenings")
		return
	}

	utils.ResponseSuccess(w, "success", screenings)
}

// GetScreeningsByRoom handles GET /api/rooms/{id}/screenings
func (h *ScreeningHandler) GetScreeningsByRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	screenings, err := h.service.GetScreeningsByRoom(r.Context(), roomID)
	if err != nil {
		handleServiceError(w, h.log, err, "get screenings by room")
		return
	}

	utils.ResponseSuccess(w, "success", screenings)
}

// GetScreeningDetail handles GET /api/screenings/{id}
func (h *ScreeningHandler) GetScreeningDetail(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "id")
	if screeningID == "" {
		utils.ResponseBadRequest(w, "Screening ID is required", nil)
		return
	}

	detail, err := h.service.GetScreeningDetail(r.Context(), screeningID)
	if err != nil {
		handleServiceError(w, h.log, err, "get screening detail")
		return
	}

	utils.ResponseSuccess(w, "success", detail)
}

// GetScreeningSeats handles GET /api/screenings/{id}/seats
func (h *ScreeningHandler) GetScreeningSeats(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "id")
	if screeningID == "" {
		utils.ResponseBadRequest(w, "Screening ID is required", nil)
		return
	}

	seats, err := h.service.GetScreeningSeats(r.Context(), screeningID)
	if err != nil {
		handleServiceError(w, h.log, err, "get screening seats")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}

// CreateScreening handles POST /api/screenings (admin only)
func (h *ScreeningHandler) CreateScreening(w http.ResponseWriter, r *http.Request) {
	var req request.CreateScreeningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	screening, err := h.service.CreateScreening(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create screening")
		return
	}

	utils.ResponseCreated(w, "success", screening)
}

// DeleteScreening handles DELETE /api/screenings/{id} (admin only)
func (h *ScreeningHandler) DeleteScreening(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "id")
	if screeningID == "" {
		utils.ResponseBadRequest(w, "Screening ID is required", nil)
		return
	}

	if err := h.service.DeleteScreening(r.Context(), screeningID); err != nil {
		handleServiceError(w, h.log, err, "delete screening")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateSeat handles POST /api/screenings/{id}/seats (admin only)
func (h *ScreeningHandler) CreateSeat(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "id")
	if screeningID == "" {
		utils.ResponseBadRequest(w, "Screening ID is required", nil)
		return
	}

	var req request.CreateSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	seat, err := h.service.CreateSeat(r.Context(), screeningID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create seat")
		return
	}

	utils.ResponseCreated(w, "success", seat)
}

// DeleteSeat handles DELETE /api/seats/{id} (admin only)
func (h *ScreeningHandler) DeleteSeat(w http.ResponseWriter, r *http.Request) {
	seatID := chi.URLParam(r, "id")
	if seatID == "" {
		utils.ResponseBadRequest(w, "Seat ID is required", nil)
		return
	}

	if err := h.service.DeleteSeat(r.Context(), seatID); err != nil {
		handleServiceError(w, h.log, err, "delete seat")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
