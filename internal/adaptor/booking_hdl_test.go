package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockBookingService is a mock implementation of usecase.BookingService
type MockBookingService struct {
	CreateBookingFunc func(ctx context.Context, requesterID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookingFunc    func(ctx context.Context, requesterID uuid.UUID, bookingID string) (*response.BookingResponse, error)
	ListBookingsFunc  func(ctx context.Context, requesterID uuid.UUID) ([]response.BookingResponse, error)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, requesterID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if m.CreateBookingFunc != nil {
		return m.CreateBookingFunc(ctx, requesterID, req)
	}
	return nil, entity.ErrNotFound
}

func (m *MockBookingService) GetBooking(ctx context.Context, requesterID uuid.UUID, bookingID string) (*response.BookingResponse, error) {
	if m.GetBookingFunc != nil {
		return m.GetBookingFunc(ctx, requesterID, bookingID)
	}
	return nil, entity.ErrNotFound
}

func (m *MockBookingService) ListBookings(ctx context.Context, requesterID uuid.UUID) ([]response.BookingResponse, error) {
	if m.ListBookingsFunc != nil {
		return m.ListBookingsFunc(ctx, requesterID)
	}
	return []response.BookingResponse{}, nil
}

func authedRequest(t *testing.T, method, target string, body any, userID uuid.UUID) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	ctx := utils.SetUserContext(req.Context(), userID, string(entity.RoleCustomer))
	return req.WithContext(ctx)
}

func TestCreateBookingHandler_RequiresAuth(t *testing.T) {
	handler := NewBookingHandler(&MockBookingService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateBookingHandler_Created(t *testing.T) {
	userID := uuid.New()
	bookingID := uuid.New()

	service := &MockBookingService{
		CreateBookingFunc: func(ctx context.Context, requesterID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
			assert.Equal(t, userID, requesterID)
			return &response.BookingResponse{
				ID:           bookingID.String(),
				Screening:    req.ScreeningID,
				Seat:         req.SeatID,
				User:         "alice",
				PurchaseTime: time.Now().Format(response.TimeLayout),
			}, nil
		},
	}
	handler := NewBookingHandler(service, zap.NewNop())

	body := request.CreateBookingRequest{
		ScreeningID: uuid.New().String(),
		SeatID:      uuid.New().String(),
	}
	req := authedRequest(t, http.MethodPost, "/api/bookings", body, userID)
	rec := httptest.NewRecorder()

	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Status)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, bookingID.String(), data["id"])
	assert.Equal(t, "alice", data["user"])
}

func TestCreateBookingHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"seat taken", fmt.Errorf("seat already booked: %w", entity.ErrConflict), http.StatusConflict},
		{"seat mismatch", fmt.Errorf("seat x: %w", entity.ErrSeatMismatch), http.StatusBadRequest},
		{"screening missing", fmt.Errorf("screening y: %w", entity.ErrNotFound), http.StatusNotFound},
		{"invalid payload", fmt.Errorf("validation failed: %w", entity.ErrInvalidInput), http.StatusBadRequest},
		{"unauthorized", entity.ErrUnauthorized, http.StatusUnauthorized},
		{"storage fault stays internal", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &MockBookingService{
				CreateBookingFunc: func(ctx context.Context, requesterID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
					return nil, tt.err
				},
			}
			handler := NewBookingHandler(service, zap.NewNop())

			body := request.CreateBookingRequest{
				ScreeningID: uuid.New().String(),
				SeatID:      uuid.New().String(),
			}
			req := authedRequest(t, http.MethodPost, "/api/bookings", body, uuid.New())
			rec := httptest.NewRecorder()

			handler.CreateBooking(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			var envelope utils.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.False(t, envelope.Status)
		})
	}
}

func TestCreateBookingHandler_MalformedBody(t *testing.T) {
	handler := NewBookingHandler(&MockBookingService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(`{not json`))
	ctx := utils.SetUserContext(req.Context(), uuid.New(), string(entity.RoleCustomer))
	rec := httptest.NewRecorder()

	handler.CreateBooking(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBookingsHandler(t *testing.T) {
	userID := uuid.New()

	service := &MockBookingService{
		ListBookingsFunc: func(ctx context.Context, requesterID uuid.UUID) ([]response.BookingResponse, error) {
			assert.Equal(t, userID, requesterID)
			return []response.BookingResponse{
				{ID: uuid.New().String(), User: "alice"},
				{ID: uuid.New().String(), User: "alice"},
			}, nil
		},
	}
	handler := NewBookingHandler(service, zap.NewNop())

	req := authedRequest(t, http.MethodGet, "/api/bookings", nil, userID)
	rec := httptest.NewRecorder()

	handler.GetBookings(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	data, ok := envelope.Data.([]any)
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestGetBookingsHandler_RequiresAuth(t *testing.T) {
	handler := NewBookingHandler(&MockBookingService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()

	handler.GetBookings(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
