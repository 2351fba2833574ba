package offer

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

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Offer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]Offer, error) {
	return s.repo.List(ctx)
}

// GetActive returns flagged offers whose validity window contains the
// current time.
func (s *Service) GetActive(ctx context.Context) ([]Offer, error) {
	flagged, err := s.repo.ListFlaggedActive(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	out := make([]Offer, 0, len(flagged))
	for i := range flagged {
		if flagged[i].IsActiveAt(now) {
			out = append(out, flagged[i])
		}
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, req OfferRequest) (*Offer, error) {
	now := s.clock.Now()
	o := &Offer{
		ID:        uuid.New(),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	req.apply(o)

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req OfferRequest) (*Offer, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.apply(o)
	o.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
