package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type accountSeed struct {
	Username string
	Password string
	IsAdmin  bool
}

// Apply inserts a default admin account for manual testing. It is
// idempotent via ON CONFLICT, so an existing account keeps its
// original credentials.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	accounts := []accountSeed{
		{Username: "admin", Password: "admin", IsAdmin: true},
	}

	for _, a := range accounts {
		if err := insertAccount(ctx, pool, a); err != nil {
			return fmt.Errorf("insert account %s: %w", a.Username, err)
		}
	}
	return nil
}

func insertAccount(ctx context.Context, pool *pgxpool.Pool, a accountSeed) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO accounts (id, username, password_hash, is_admin)
VALUES ($1, $2, $3, $4)
ON CONFLICT (username) DO NOTHING
`
	_, err = pool.Exec(ctx, q, uuid.NewString(), a.Username, string(hashed), a.IsAdmin)
	return err
}
