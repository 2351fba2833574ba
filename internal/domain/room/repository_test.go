package room

import (
	"context"
	"testing"
	"time"

	"bookify/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoom(number int) *Room {
	now := time.Now().UTC()
	return &Room{ID: uuid.New(), Number: number, Name: "Room", Capacity: 4, CreatedAt: now, UpdatedAt: now}
}

func TestRepository_CRUD(t *testing.T) {
	repo := NewRepository(testutil.SQLite(t, &Room{}))
	ctx := context.Background()

	b := newRoom(202)
	a := newRoom(101)
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 101, got.Number)

	byNumber, err := repo.GetByNumber(ctx, 202)
	require.NoError(t, err)
	assert.Equal(t, b.ID, byNumber.ID)

	missing, err := repo.GetByNumber(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 101, list[0].Number)

	a.Name = "Renamed"
	require.NoError(t, repo.Update(ctx, a))
	got, err = repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
}

func TestRepository_NotFound(t *testing.T) {
	repo := NewRepository(testutil.SQLite(t, &Room{}))
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrRoomNotFound)

	assert.ErrorIs(t, repo.Update(ctx, newRoom(1)), ErrRoomNotFound)
}

func TestRepository_UniqueNumber(t *testing.T) {
	repo := NewRepository(testutil.SQLite(t, &Room{}))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newRoom(5)))
	assert.ErrorIs(t, repo.Create(ctx, newRoom(5)), ErrNumberTaken)
}
