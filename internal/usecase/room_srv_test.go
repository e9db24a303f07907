package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateRoom(t *testing.T) {
	repo, _, _, roomRepo, _, _, _, _ := newMockRepository()

	var created *entity.Room
	roomRepo.CreateFunc = func(ctx context.Context, room *entity.Room) error {
		created = room
		return nil
	}

	service := NewRoomService(repo, zap.NewNop())

	resp, err := service.CreateRoom(context.Background(), &request.CreateRoomRequest{
		Name:       "Hall A",
		Rows:       10,
		SeatsInRow: 12,
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "Hall A", created.Name)
	assert.Equal(t, 10, created.Rows)
	assert.Equal(t, 12, created.SeatsInRow)

	assert.Equal(t, created.ID.String(), resp.ID)
	assert.Empty(t, resp.Screenings)
}

func TestCreateRoom_DuplicateName(t *testing.T) {
	repo, _, _, roomRepo, _, _, _, _ := newMockRepository()

	roomRepo.CreateFunc = func(ctx context.Context, room *entity.Room) error {
		return fmt.Errorf("room name %q: %w", room.Name, entity.ErrConflict)
	}

	service := NewRoomService(repo, zap.NewNop())

	_, err := service.CreateRoom(context.Background(), &request.CreateRoomRequest{
		Name:       "Hall A",
		Rows:       10,
		SeatsInRow: 12,
	})
	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestCreateRoom_InvalidLayout(t *testing.T) {
	repo, _, _, _, _, _, _, _ := newMockRepository()
	service := NewRoomService(repo, zap.NewNop())

	tests := []struct {
		name string
		req  *request.CreateRoomRequest
	}{
		{"zero rows", &request.CreateRoomRequest{Name: "Hall A", Rows: 0, SeatsInRow: 12}},
		{"negative seats", &request.CreateRoomRequest{Name: "Hall A", Rows: 10, SeatsInRow: -1}},
		{"missing name", &request.CreateRoomRequest{Rows: 10, SeatsInRow: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateRoom(context.Background(), tt.req)
			assert.ErrorIs(t, err, entity.ErrInvalidInput)
		})
	}
}

func TestGetRoom_EmbedsScreenings(t *testing.T) {
	repo, _, _, roomRepo, movieRepo, screeningRepo, _, _ := newMockRepository()

	room := &entity.Room{
		Base:       entity.Base{ID: uuid.New()},
		Name:       "Hall A",
		Rows:       3,
		SeatsInRow: 4,
	}
	movie := &entity.Movie{
		Base:        entity.Base{ID: uuid.New()},
		Title:       "Interstellar",
		Description: "Space",
		DurationMin: 169,
	}

	roomRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
		if id == room.ID {
			return room, nil
		}
		return nil, fmt.Errorf("room %s: %w", id.String(), entity.ErrNotFound)
	}
	movieRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
		return movie, nil
	}
	screeningRepo.FindByRoomIDFunc = func(ctx context.Context, roomID uuid.UUID) ([]*entity.Screening, error) {
		return []*entity.Screening{
			{
				Base:      entity.Base{ID: uuid.New()},
				MovieID:   movie.ID,
				RoomID:    room.ID,
				StartTime: time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC),
			},
		}, nil
	}

	service := NewRoomService(repo, zap.NewNop())

	t.Run("found", func(t *testing.T) {
		resp, err := service.GetRoom(context.Background(), room.ID.String())
		require.NoError(t, err)

		assert.Equal(t, "Hall A", resp.Name)
		require.Len(t, resp.Screenings, 1)
		assert.Equal(t, "Interstellar", resp.Screenings[0].Movie)
		assert.Equal(t, "2026-03-01 20:00", resp.Screenings[0].StartTime)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := service.GetRoom(context.Background(), uuid.New().String())
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestDeleteRoom(t *testing.T) {
	repo, _, _, roomRepo, _, _, _, _ := newMockRepository()

	roomID := uuid.New()
	var deleted uuid.UUID
	roomRepo.DeleteFunc = func(ctx context.Context, id uuid.UUID) error {
		deleted = id
		return nil
	}

	service := NewRoomService(repo, zap.NewNop())

	require.NoError(t, service.DeleteRoom(context.Background(), roomID.String()))
	assert.Equal(t, roomID, deleted)

	assert.ErrorIs(t, service.DeleteRoom(context.Background(), "nope"), entity.ErrInvalidInput)
}
