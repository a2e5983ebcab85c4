package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"localstore/internal/domain"
	acctrepo "localstore/internal/repository/account"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the username exists but the
// password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Outcome tags how a Resolve call produced its account id.
type Outcome int

const (
	// OutcomeCreated means no account existed for the username and one
	// was provisioned.
	OutcomeCreated Outcome = iota
	// OutcomeAuthenticated means an existing account matched the
	// supplied credentials.
	OutcomeAuthenticated
)

// Resolution is the result of a successful Resolve call.
type Resolution struct {
	AccountID string
	Outcome   Outcome
}

// Service handles the login-or-register identity flow.
type Service struct {
	repo acctrepo.Repository
	cost int
}

// New creates a Service using the given account repository.
func New(repo acctrepo.Repository) *Service {
	return &Service{repo: repo, cost: bcrypt.DefaultCost}
}

// Resolve authenticates an existing account or provisions a new one.
// An unknown username creates an account with the hashed password and
// an empty cart; a known username must match its stored hash or the
// call fails with ErrInvalidCredentials.
func (s *Service) Resolve(ctx context.Context, username, password string) (*Resolution, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username required")
	}
	if password == "" {
		return nil, errors.New("password required")
	}

	existing, err := s.repo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return s.authenticate(existing, password)
	case errors.Is(err, domain.ErrNotFound):
		return s.provision(ctx, username, password)
	default:
		return nil, fmt.Errorf("lookup account: %w", err)
	}
}

func (s *Service) provision(ctx context.Context, username, password string) (*Resolution, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, domain.Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hashed),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// A concurrent Resolve won the insert race; authenticate
			// against the account it created.
			winner, getErr := s.repo.GetByUsername(ctx, username)
			if getErr != nil {
				return nil, fmt.Errorf("lookup account after insert race: %w", getErr)
			}
			return s.authenticate(winner, password)
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	return &Resolution{AccountID: created.ID, Outcome: OutcomeCreated}, nil
}

func (s *Service) authenticate(a *domain.Account, password string) (*Resolution, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &Resolution{AccountID: a.ID, Outcome: OutcomeAuthenticated}, nil
}

// CreateInput captures fields for direct account creation.
type CreateInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Create provisions an account directly with an explicit admin flag.
// Unlike Resolve it fails when the username is taken.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Account, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, errors.New("username required")
	}
	if in.Password == "" {
		return nil, errors.New("password required")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hashed),
		IsAdmin:      in.IsAdmin,
	})
}

// List returns every account with its cart.
func (s *Service) List(ctx context.Context) ([]domain.Account, error) {
	return s.repo.List(ctx)
}
