package usecase

import (
	"context"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"

	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *entity.User) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*entity.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, entity.ErrNotFound
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, entity.ErrNotFound
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, entity.ErrNotFound
}

// MockSessionRepository is a mock implementation of repository.SessionRepository
type MockSessionRepository struct {
	CreateFunc           func(ctx context.Context, session *entity.Session) error
	FindValidSessionFunc func(ctx context.Context, token string) (*entity.Session, error)
	RevokeFunc           func(ctx context.Context, token string) error
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

func (m *MockSessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	if m.FindValidSessionFunc != nil {
		return m.FindValidSessionFunc(ctx, token)
	}
	return nil, entity.ErrNotFound
}

func (m *MockSessionRepository) Revoke(ctx context.Context, token string) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, token)
	}
	return nil
}

// MockRoomRepository is a mock implementation of repository.RoomRepository
type MockRoomRepository struct {
	CreateFunc   func(ctx context.Context, room *entity.Room) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindAllFunc  func(ctx context.Context) ([]*entity.Room, error)
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *MockRoomRepository) Create(ctx context.Context, room *entity.Room) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, room)
	}
	return nil
}

func (m *MockRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, entity.ErrNotFound
}

func (m *MockRoomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []*entity.Room{}, nil
}

func (m *MockRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockMovieRepository is a mock implementation of repository.MovieRepository
type MockMovieRepository struct {
	CreateFunc   func(ctx context.Context, movie *entity.Movie) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindAllFunc  func(ctx context.Context) ([]*entity.Movie, error)
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, movie)
	}
	return nil
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, entity.ErrNotFound
}

func (m *MockMovieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []*entity.Movie{}, nil
}

func (m *MockMovieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockScreeningRepository is a mock implementation of repository.ScreeningRepository
type MockScreeningRepository struct {
	CreateWithSeatsFunc func(ctx context.Context, screening *entity.Screening, seats []*entity.Seat) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*entity.Screening, error)
	FindAllFunc         func(ctx context.Context) ([]*entity.Screening, error)
	FindByRoomIDFunc    func(ctx context.Context, roomID uuid.UUID) ([]*entity.Screening, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
}

func (m *MockScreeningRepository) CreateWithSeats(ctx context.Context, screening *entity.Screening, seats []*entity.Seat) error {
	if m.CreateWithSeatsFunc != nil {
		return m.CreateWithSeatsFunc(ctx, screening, seats)
	}
	return nil
}

func (m *MockScreeningRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, entity.ErrNotFound
}

func (m *MockScreeningRepository) FindAll(ctx context.Context) ([]*entity.Screening, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []*entity.Screening{}, nil
}

func (m *MockScreeningRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Screening, error) {
	if m.FindByRoomIDFunc != nil {
		return m.FindByRoomIDFunc(ctx, roomID)
	}
	return []*entity.Screening{}, nil
}

func (m *MockScreeningRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockSeatRepository is a mock implementation of repository.SeatRepository
type MockSeatRepository struct {
	CreateFunc                func(ctx context.Context, seat *entity.Seat) error
	FindByIDFunc              func(ctx context.Context, id uuid.UUID) (*entity.Seat, error)
	FindByRoomIDFunc          func(ctx context.Context, roomID uuid.UUID) ([]*entity.Seat, error)
	FindStatusByScreeningFunc func(ctx context.Context, screeningID, roomID uuid.UUID) ([]*entity.SeatStatus, error)
	DeleteFunc                func(ctx context.Context, id uuid.UUID) error
}

func (m *MockSeatRepository) Create(ctx context.Context, seat *entity.Seat) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, seat)
	}
	return nil
}

func (m *MockSeatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, entity.ErrNotFound
}

func (m *MockSeatRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Seat, error) {
	if m.FindByRoomIDFunc != nil {
		return m.FindByRoomIDFunc(ctx, roomID)
	}
	return []*entity.Seat{}, nil
}

func (m *MockSeatRepository) FindStatusByScreening(ctx context.Context, screeningID, roomID uuid.UUID) ([]*entity.SeatStatus, error) {
	if m.FindStatusByScreeningFunc != nil {
		return m.FindStatusByScreeningFunc(ctx, screeningID, roomID)
	}
	return []*entity.SeatStatus{}, nil
}

func (m *MockSeatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockBookingRepository is a mock implementation of repository.BookingRepository
type MockBookingRepository struct {
	CreateFunc            func(ctx context.Context, booking *entity.Booking) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserIDFunc      func(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	ExistsForSeatFunc     func(ctx context.Context, screeningID, seatID uuid.UUID) (bool, error)
	FindByScreeningIDFunc func(ctx context.Context, screeningID uuid.UUID) ([]*entity.Booking, error)
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	return nil
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, entity.ErrNotFound
}

func (m *MockBookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return []*entity.Booking{}, nil
}

func (m *MockBookingRepository) ExistsForSeat(ctx context.Context, screeningID, seatID uuid.UUID) (bool, error) {
	if m.ExistsForSeatFunc != nil {
		return m.ExistsForSeatFunc(ctx, screeningID, seatID)
	}
	return false, nil
}

func (m *MockBookingRepository) FindByScreeningID(ctx context.Context, screeningID uuid.UUID) ([]*entity.Booking, error) {
	if m.FindByScreeningIDFunc != nil {
		return m.FindByScreeningIDFunc(ctx, screeningID)
	}
	return []*entity.Booking{}, nil
}

func (m *MockBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// newMockRepository builds a Repository with mock backends so individual
// tests only override the calls they care about.
func newMockRepository() (*repository.Repository, *MockUserRepository, *MockSessionRepository, *MockRoomRepository, *MockMovieRepository, *MockScreeningRepository, *MockSeatRepository, *MockBookingRepository) {
	user := &MockUserRepository{}
	session := &MockSessionRepository{}
	room := &MockRoomRepository{}
	movie := &MockMovieRepository{}
	screening := &MockScreeningRepository{}
	seat := &MockSeatRepository{}
	booking := &MockBookingRepository{}

	repo := &repository.Repository{
		User:      user,
		Session:   session,
		Room:      room,
		Movie:     movie,
		Screening: screening,
		Seat:      seat,
		Booking:   booking,
	}

	return repo, user, session, room, movie, screening, seat, booking
}
