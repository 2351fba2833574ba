package reservation

import (
	"context"
	"testing"

	"bookify/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_RoundTrip(t *testing.T) {
	db := testutil.SQLite(t, &reservationModel{})
	repo := NewRepository(db)
	ctx := context.Background()

	roomID := uuid.New()
	offerID := uuid.New()
	res := &Reservation{
		ID:       uuid.New(),
		RoomID:   roomID,
		Start:    at(10, 0),
		End:      at(11, 0),
		Customer: Person{FirstName: "Ewa", LastName: "Nowak", Email: "ewa@example.com"},
		Guest:    &Person{FirstName: "Jan", LastName: "Kowalski", Email: "jan@example.com"},
		Invoice: &Invoice{
			CompanyName: "Acme", NIP: "1234567890", Street: "Prosta 1",
			PostalCode: "00-001", City: "Warszawa", Country: "PL",
		},
		OfferID:   &offerID,
		Notes:     "projector",
		CreatedAt: at(7, 0),
		UpdatedAt: at(7, 0),
	}
	require.NoError(t, repo.Create(ctx, res))

	got, err := repo.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.True(t, got.Start.Equal(res.Start))
	assert.True(t, got.End.Equal(res.End))
	assert.Equal(t, res.Customer, got.Customer)
	assert.Equal(t, res.Guest, got.Guest)
	assert.Equal(t, res.Invoice, got.Invoice)
	require.NotNil(t, got.OfferID)
	assert.Equal(t, offerID, *got.OfferID)
	assert.Nil(t, got.EmployeeID)
	assert.Equal(t, "projector", got.Notes)

	got.Guest = nil
	got.Invoice = nil
	got.OfferID = nil
	got.Start = at(12, 0)
	got.End = at(13, 0)
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Nil(t, again.Guest)
	assert.Nil(t, again.Invoice)
	assert.Nil(t, again.OfferID)
	assert.True(t, again.Start.Equal(at(12, 0)))
}

func TestRepository_ListByRoomSorted(t *testing.T) {
	db := testutil.SQLite(t, &reservationModel{})
	repo := NewRepository(db)
	ctx := context.Background()

	roomID, otherRoom := uuid.New(), uuid.New()
	for _, p := range []Interval{period(14, 0, 15, 0), period(8, 0, 9, 0), period(11, 0, 12, 0)} {
		require.NoError(t, repo.Create(ctx, &Reservation{
			ID: uuid.New(), RoomID: roomID, Start: p.Start, End: p.End,
			Customer: Person{FirstName: "A", LastName: "B", Email: "a@b.pl"},
		}))
	}
	require.NoError(t, repo.Create(ctx, &Reservation{
		ID: uuid.New(), RoomID: otherRoom, Start: at(9, 0), End: at(10, 0),
		Customer: Person{FirstName: "A", LastName: "B", Email: "a@b.pl"},
	}))

	list, err := repo.ListByRoom(ctx, roomID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, list[0].Start.Equal(at(8, 0)))
	assert.True(t, list[1].Start.Equal(at(11, 0)))
	assert.True(t, list[2].Start.Equal(at(14, 0)))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestRepository_NotFound(t *testing.T) {
	db := testutil.SQLite(t, &reservationModel{})
	repo := NewRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrReservationNotFound)

	err = repo.Update(context.Background(), &Reservation{ID: uuid.New(), Start: at(8, 0), End: at(9, 0)})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
