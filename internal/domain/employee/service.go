package employee

import (
	"context"
	"log"
	"strings"

	"bookify/internal/pkg/clock"
	"bookify/internal/pkg/validator"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer signs access tokens for authenticated employees.
type TokenIssuer interface {
	GenerateToken(employeeID uuid.UUID, role string) (string, error)
}

type Service struct {
	repo   Repository
	tokens TokenIssuer
	clock  clock.Clock
}

func NewService(repo Repository, tokens TokenIssuer, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &Service{repo: repo, tokens: tokens, clock: clk}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]Employee, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateEmployeeRequest) (*Employee, error) {
	email := normalizeEmail(req.Email)
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = RoleEmployee
	}

	now := s.clock.Now()
	e := &Employee{
		ID:           uuid.New(),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateEmployeeRequest) (*Employee, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)
	if email != e.Email {
		other, err := s.repo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, ErrEmailExists
		}
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		e.PasswordHash = string(hash)
	}

	e.FirstName = strings.TrimSpace(req.FirstName)
	e.LastName = strings.TrimSpace(req.LastName)
	e.Email = email
	e.Role = req.Role
	if req.Active != nil {
		e.Active = *req.Active
	}
	e.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// CheckEmail reports whether address can be used for a new employee. It
// never fails: malformed, taken, or unverifiable addresses report false.
func (s *Service) CheckEmail(ctx context.Context, address string) bool {
	email := normalizeEmail(address)
	if !validator.Email(email) {
		return false
	}
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		log.Printf("check_email_failed email=%q error=%v", email, err)
		return false
	}
	return existing == nil
}

// Login verifies credentials and issues an access token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, *Employee, error) {
	e, err := s.repo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return "", nil, err
	}
	if e == nil || !e.Active {
		return "", nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(req.Password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(e.ID, string(e.Role))
	if err != nil {
		return "", nil, err
	}
	return token, e, nil
}
