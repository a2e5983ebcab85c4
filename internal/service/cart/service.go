package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"localstore/internal/domain"
)

// ErrInvalidQuantity is returned when a supplied quantity is negative.
var ErrInvalidQuantity = errors.New("quantity must be positive")

// Service merges line items into per-account carts and projects them
// back out. All state lives in the account store; the service itself
// holds nothing between calls.
type Service struct {
	repo accountRepo
}

type accountRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	MergeCartLine(ctx context.Context, accountID string, line domain.CartLine) error
}

// New creates a Service using the given account repository.
func New(repo accountRepo) *Service {
	return &Service{repo: repo}
}

// AddInput is one line-item request. Quantity zero means "not
// supplied" and defaults to 1.
type AddInput struct {
	ProductID int64
	Quantity  int
	Name      string
	Price     float64
}

// Add merges the item into the account's cart. If a line for the
// product already exists its quantity accumulates and the stored name
// and price are left untouched; otherwise a new line is appended.
func (s *Service) Add(ctx context.Context, accountID string, in AddInput) error {
	if strings.TrimSpace(accountID) == "" {
		return domain.ErrNotFound
	}
	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return ErrInvalidQuantity
	}

	if _, err := s.repo.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("load account: %w", err)
	}

	line := domain.CartLine{
		ProductID: in.ProductID,
		Quantity:  qty,
		Name:      in.Name,
		Price:     in.Price,
	}
	if err := s.repo.MergeCartLine(ctx, accountID, line); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("merge cart line: %w", err)
	}
	return nil
}

// Get returns the account's cart lines in insertion order.
func (s *Service) Get(ctx context.Context, accountID string) ([]domain.CartLine, error) {
	a, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if a.Cart == nil {
		return []domain.CartLine{}, nil
	}
	return a.Cart, nil
}
