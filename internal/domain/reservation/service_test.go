package reservation

import (
	"context"
	"testing"

	"bookify/internal/domain/employee"
	"bookify/internal/domain/offer"
	"bookify/internal/domain/room"
	"bookify/internal/pkg/apperr"
	"bookify/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Reservation), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Reservation), args.Error(1)
}

func (m *MockRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]Reservation, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).([]Reservation), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, r *Reservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRepository) Update(ctx context.Context, r *Reservation) error {
	return m.Called(ctx, r).Error(0)
}

type stubRooms map[uuid.UUID]room.Room

func (s stubRooms) Get(_ context.Context, id uuid.UUID) (*room.Room, error) {
	r, ok := s[id]
	if !ok {
		return nil, room.ErrRoomNotFound
	}
	return &r, nil
}

func (s stubRooms) GetAll(context.Context) ([]room.Room, error) {
	out := make([]room.Room, 0, len(s))
	for _, r := range s {
		out = append(out, r)
	}
	return out, nil
}

type stubOffers map[uuid.UUID]bool

func (s stubOffers) Get(_ context.Context, id uuid.UUID) (*offer.Offer, error) {
	if !s[id] {
		return nil, offer.ErrOfferNotFound
	}
	return &offer.Offer{ID: id}, nil
}

type stubEmployees map[uuid.UUID]bool

func (s stubEmployees) Get(_ context.Context, id uuid.UUID) (*employee.Employee, error) {
	if !s[id] {
		return nil, employee.ErrEmployeeNotFound
	}
	return &employee.Employee{ID: id}, nil
}

// passthroughTx runs fn without a database.
type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingPublisher struct {
	events []Event
}

func (p *recordingPublisher) Publish(e Event) {
	p.events = append(p.events, e)
}

type fixture struct {
	repo   *MockRepository
	events *recordingPublisher
	svc    *Service
	roomID uuid.UUID
}

func newFixture() *fixture {
	roomID := uuid.New()
	f := &fixture{
		repo:   new(MockRepository),
		events: &recordingPublisher{},
		roomID: roomID,
	}
	f.svc = NewService(Deps{
		Repo:      f.repo,
		Rooms:     stubRooms{roomID: {ID: roomID, Number: 1, Capacity: 4}},
		Offers:    stubOffers{},
		Employees: stubEmployees{},
		Tx:        passthroughTx{},
		Events:    f.events,
		Clock:     clock.NewFixed(at(7, 0)),
	})
	return f
}

func request(p Interval) ReservationRequest {
	return ReservationRequest{
		Start:    p.Start,
		End:      p.End,
		Customer: Person{FirstName: "Ewa", LastName: "Nowak", Email: "Ewa@Example.com"},
	}
}

func TestService_Create_RejectsOverlap(t *testing.T) {
	f := newFixture()
	booked := Reservation{ID: uuid.New(), RoomID: f.roomID, Start: at(10, 30), End: at(11, 30)}
	f.repo.On("ListByRoom", mock.Anything, f.roomID).Return([]Reservation{booked}, nil)

	_, err := f.svc.Create(context.Background(), f.roomID, request(period(10, 0, 11, 0)))

	assert.ErrorIs(t, err, ErrReservationOverlap)
	assert.ErrorIs(t, err, apperr.ErrConflict)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, f.events.events)
}

func TestService_Create_TouchingIntervalsSucceed(t *testing.T) {
	f := newFixture()
	booked := Reservation{ID: uuid.New(), RoomID: f.roomID, Start: at(9, 0), End: at(10, 0)}
	f.repo.On("ListByRoom", mock.Anything, f.roomID).Return([]Reservation{booked}, nil)
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*reservation.Reservation")).Return(nil)

	res, err := f.svc.Create(context.Background(), f.roomID, request(period(10, 0, 11, 0)))

	require.NoError(t, err)
	assert.Equal(t, f.roomID, res.RoomID)
	assert.Equal(t, "ewa@example.com", res.Customer.Email)
	assert.Equal(t, at(7, 0), res.CreatedAt)

	require.Len(t, f.events.events, 1)
	assert.Equal(t, EventReservationCreated, f.events.events[0].Type)
	assert.Equal(t, f.roomID.String(), f.events.events[0].RoomID)
}

func TestService_Create_UnknownReferences(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Create(context.Background(), uuid.New(), request(period(10, 0, 11, 0)))
	assert.ErrorIs(t, err, room.ErrRoomNotFound)

	req := request(period(10, 0, 11, 0))
	missingOffer := uuid.New()
	req.OfferID = &missingOffer
	_, err = f.svc.Create(context.Background(), f.roomID, req)
	assert.ErrorIs(t, err, offer.ErrOfferNotFound)

	req = request(period(10, 0, 11, 0))
	missingEmployee := uuid.New()
	req.EmployeeID = &missingEmployee
	_, err = f.svc.Create(context.Background(), f.roomID, req)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_InvalidInterval(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Create(context.Background(), f.roomID, request(period(11, 0, 10, 0)))

	assert.ErrorIs(t, err, ErrInvalidInterval)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	f.repo.AssertNotCalled(t, "ListByRoom", mock.Anything, mock.Anything)
}

func TestService_Update_UnknownIDMutatesNothing(t *testing.T) {
	f := newFixture()
	id := uuid.New()
	f.repo.On("GetByID", mock.Anything, id).Return(nil, ErrReservationNotFound)

	_, err := f.svc.Update(context.Background(), id, request(period(10, 0, 11, 0)))

	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Empty(t, f.events.events)
}

func TestService_Update_IgnoresItsOwnPeriod(t *testing.T) {
	f := newFixture()
	current := &Reservation{ID: uuid.New(), RoomID: f.roomID, Start: at(10, 0), End: at(11, 0)}
	f.repo.On("GetByID", mock.Anything, current.ID).Return(current, nil)
	f.repo.On("ListByRoom", mock.Anything, f.roomID).Return([]Reservation{*current}, nil)
	f.repo.On("Update", mock.Anything, current).Return(nil)

	res, err := f.svc.Update(context.Background(), current.ID, request(period(10, 30, 11, 30)))

	require.NoError(t, err)
	assert.Equal(t, at(10, 30), res.Start)
	assert.Equal(t, f.roomID, res.RoomID)
	require.Len(t, f.events.events, 1)
	assert.Equal(t, EventReservationUpdated, f.events.events[0].Type)
}

func TestService_Update_RejectsOverlapWithNeighbour(t *testing.T) {
	f := newFixture()
	current := &Reservation{ID: uuid.New(), RoomID: f.roomID, Start: at(8, 0), End: at(9, 0)}
	neighbour := Reservation{ID: uuid.New(), RoomID: f.roomID, Start: at(10, 0), End: at(11, 0)}
	f.repo.On("GetByID", mock.Anything, current.ID).Return(current, nil)
	f.repo.On("ListByRoom", mock.Anything, f.roomID).Return([]Reservation{*current, neighbour}, nil)

	_, err := f.svc.Update(context.Background(), current.ID, request(period(8, 30, 10, 30)))

	assert.ErrorIs(t, err, ErrReservationOverlap)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_SearchRooms(t *testing.T) {
	busy, free, small := uuid.New(), uuid.New(), uuid.New()
	repo := new(MockRepository)
	repo.On("List", mock.Anything).Return([]Reservation{
		{ID: uuid.New(), RoomID: busy, Start: at(10, 0), End: at(12, 0)},
		{ID: uuid.New(), RoomID: free, Start: at(8, 0), End: at(10, 0)},
	}, nil)

	svc := NewService(Deps{
		Repo: repo,
		Rooms: stubRooms{
			busy:  {ID: busy, Capacity: 10},
			free:  {ID: free, Capacity: 10},
			small: {ID: small, Capacity: 2},
		},
		Tx:    passthroughTx{},
		Clock: clock.NewFixed(at(7, 0)),
	})

	rooms, err := svc.SearchRooms(context.Background(), period(10, 0, 11, 0), 4)

	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, free, rooms[0].ID)
}
