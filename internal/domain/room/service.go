package room

import (
	"context"

	"bookify/internal/pkg/clock"

	"github.com/google/uuid"
)

type Service struct {
	repo  Repository
	clock clock.Clock
}

func NewService(repo Repository, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &Service{repo: repo, clock: clk}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]Room, error) {
	return s.repo.List(ctx)
}

// Create assigns a fresh id and stores the room. Numbers are unique.
func (s *Service) Create(ctx context.Context, req RoomRequest) (*Room, error) {
	existing, err := s.repo.GetByNumber(ctx, req.Number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNumberTaken
	}

	now := s.clock.Now()
	room := &Room{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	req.apply(room)

	if err := s.repo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req RoomRequest) (*Room, error) {
	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Number != room.Number {
		other, err := s.repo.GetByNumber(ctx, req.Number)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, ErrNumberTaken
		}
	}

	req.apply(room)
	room.UpdatedAt = s.clock.Now()
	if err := s.repo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}
