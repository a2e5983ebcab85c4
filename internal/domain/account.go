package domain

import "time"

// Account is a user identity record with its embedded cart.
type Account struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	IsAdmin      bool       `json:"isAdmin"`
	CreatedAt    time.Time  `json:"createdAt"`
	Cart         []CartLine `json:"cart"`
}

// CartLine is one product's quantity entry within an account's cart.
// Name and Price are a snapshot of the product at the time the line
// was added; they are not re-synced when the catalog changes.
type CartLine struct {
	ProductID int64     `json:"productId"`
	Quantity  int       `json:"quantity"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	AddedAt   time.Time `json:"-"`
}
