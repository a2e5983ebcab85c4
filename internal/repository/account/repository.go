package account

import (
	"context"

	"localstore/internal/domain"
)

// Repository persists and fetches accounts and their embedded carts.
type Repository interface {
	Create(ctx context.Context, a domain.Account) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	// MergeCartLine inserts the line into the account's cart, or adds
	// its quantity to the existing line for the same product. The
	// operation is atomic against the cart line itself, so concurrent
	// merges for one account never lose an increment.
	MergeCartLine(ctx context.Context, accountID string, line domain.CartLine) error
}
