package reservation

import (
	"context"

	"bookify/internal/database"
	"bookify/internal/domain/employee"
	"bookify/internal/domain/offer"
	"bookify/internal/domain/room"
	"bookify/internal/pkg/clock"

	"github.com/google/uuid"
)

type RoomFinder interface {
	Get(ctx context.Context, id uuid.UUID) (*room.Room, error)
	GetAll(ctx context.Context) ([]room.Room, error)
}

type OfferFinder interface {
	Get(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
}

type EmployeeFinder interface {
	Get(ctx context.Context, id uuid.UUID) (*employee.Employee, error)
}

type Service struct {
	repo      Repository
	rooms     RoomFinder
	offers    OfferFinder
	employees EmployeeFinder
	tx        database.Transactor
	events    Publisher
	clock     clock.Clock
}

type Deps struct {
	Repo      Repository
	Rooms     RoomFinder
	Offers    OfferFinder
	Employees EmployeeFinder
	Tx        database.Transactor
	Events    Publisher
	Clock     clock.Clock
}

func NewService(d Deps) *Service {
	if d.Clock == nil {
		d.Clock = clock.NewSystem()
	}
	return &Service{
		repo:      d.Repo,
		rooms:     d.Rooms,
		offers:    d.Offers,
		employees: d.Employees,
		tx:        d.Tx,
		events:    d.Events,
		clock:     d.Clock,
	}
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAll returns every reservation in start order.
func (s *Service) GetAll(ctx context.Context) ([]Reservation, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	SortByStart(out)
	return out, nil
}

// Create books roomID for the requested period. The overlap check and the
// insert share one transaction.
func (s *Service) Create(ctx context.Context, roomID uuid.UUID, req ReservationRequest) (*Reservation, error) {
	period, err := NewInterval(req.Start, req.End)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	res := &Reservation{
		ID:        uuid.New(),
		RoomID:    roomID,
		CreatedAt: now,
	}
	req.apply(res, period, now)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.rooms.Get(ctx, roomID); err != nil {
			return err
		}
		if err := s.checkReferences(ctx, req); err != nil {
			return err
		}

		existing, err := s.repo.ListByRoom(ctx, roomID)
		if err != nil {
			return err
		}
		if FindConflict(existing, period, uuid.Nil) != nil {
			return ErrReservationOverlap
		}
		return s.repo.Create(ctx, res)
	})
	if err != nil {
		return nil, err
	}

	s.publish(EventReservationCreated, res)
	return res, nil
}

// Update replaces the period and details of an existing reservation. The
// room cannot change; the reservation's own period is ignored by the
// overlap check.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req ReservationRequest) (*Reservation, error) {
	period, err := NewInterval(req.Start, req.End)
	if err != nil {
		return nil, err
	}

	var res *Reservation
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.checkReferences(ctx, req); err != nil {
			return err
		}

		existing, err := s.repo.ListByRoom(ctx, current.RoomID)
		if err != nil {
			return err
		}
		if FindConflict(existing, period, id) != nil {
			return ErrReservationOverlap
		}

		req.apply(current, period, s.clock.Now())
		if err := s.repo.Update(ctx, current); err != nil {
			return err
		}
		res = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(EventReservationUpdated, res)
	return res, nil
}

// GetOccupation returns every room with its reservations in start order.
func (s *Service) GetOccupation(ctx context.Context) (Occupation, error) {
	_, occ, err := s.snapshot(ctx)
	return occ, err
}

// SearchRooms returns rooms holding at least capacity people that are free
// for the whole period.
func (s *Service) SearchRooms(ctx context.Context, period Interval, capacity int) ([]room.Room, error) {
	rooms, occ, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]room.Room, 0, len(rooms))
	for _, r := range rooms {
		if !r.Fits(capacity) {
			continue
		}
		if FindConflict(occ[r.ID], period, uuid.Nil) != nil {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// snapshot reads rooms and reservations in one transaction.
func (s *Service) snapshot(ctx context.Context) ([]room.Room, Occupation, error) {
	var (
		rooms []room.Room
		occ   Occupation
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		rooms, err = s.rooms.GetAll(ctx)
		if err != nil {
			return err
		}
		all, err := s.repo.List(ctx)
		if err != nil {
			return err
		}

		ids := make([]uuid.UUID, 0, len(rooms))
		for i := range rooms {
			ids = append(ids, rooms[i].ID)
		}
		occ = BuildOccupation(ids, all)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return rooms, occ, nil
}

func (s *Service) checkReferences(ctx context.Context, req ReservationRequest) error {
	if req.OfferID != nil {
		if _, err := s.offers.Get(ctx, *req.OfferID); err != nil {
			return err
		}
	}
	if req.EmployeeID != nil {
		if _, err := s.employees.Get(ctx, *req.EmployeeID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) publish(eventType string, res *Reservation) {
	if s.events == nil {
		return
	}
	s.events.Publish(Event{
		Type:    eventType,
		RoomID:  res.RoomID.String(),
		Payload: toResponse(res, nil),
	})
}
