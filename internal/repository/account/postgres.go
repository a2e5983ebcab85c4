package account

import (
	"context"
	"errors"
	"io"

	"localstore/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger logrus.FieldLogger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger logrus.FieldLogger) Repository {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, a domain.Account) (*domain.Account, error) {
	const q = `
INSERT INTO accounts (id, username, password_hash, is_admin)
VALUES ($1, $2, $3, $4)
RETURNING id::text, username, password_hash, is_admin, created_at
`
	return r.scanAccount(ctx, r.pool.QueryRow(ctx, q, a.ID, a.Username, a.PasswordHash, a.IsAdmin))
}

func (r *postgresRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	const q = `
SELECT id::text, username, password_hash, is_admin, created_at
FROM accounts
WHERE username = $1
LIMIT 1
`
	return r.scanAccount(ctx, r.pool.QueryRow(ctx, q, username))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	const q = `
SELECT id::text, username, password_hash, is_admin, created_at
FROM accounts
WHERE id = $1
LIMIT 1
`
	return r.scanAccount(ctx, r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Account, error) {
	const q = `
SELECT id::text, username, password_hash, is_admin, created_at
FROM accounts
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	index := make(map[string]int)
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.IsAdmin, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Cart = []domain.CartLine{}
		index[a.ID] = len(accounts)
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const linesQ = `
SELECT account_id::text, product_id, quantity, name, price, added_at
FROM cart_lines
ORDER BY added_at ASC
`
	lineRows, err := r.pool.Query(ctx, linesQ)
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var accountID string
		var line domain.CartLine
		if err := lineRows.Scan(&accountID, &line.ProductID, &line.Quantity, &line.Name, &line.Price, &line.AddedAt); err != nil {
			return nil, err
		}
		if i, ok := index[accountID]; ok {
			accounts[i].Cart = append(accounts[i].Cart, line)
		}
	}
	if err := lineRows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (r *postgresRepo) MergeCartLine(ctx context.Context, accountID string, line domain.CartLine) error {
	// Insert-or-increment in a single statement, so two concurrent
	// merges for the same product both land instead of one overwriting
	// the other. Name and price stay as they were on first insert.
	const q = `
INSERT INTO cart_lines (account_id, product_id, quantity, name, price)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (account_id, product_id)
DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity
`
	if _, err := r.pool.Exec(ctx, q, accountID, line.ProductID, line.Quantity, line.Name, line.Price); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrNotFound
		}
		r.logger.WithError(err).WithField("accountId", accountID).Error("account repo: merge cart line")
		return err
	}
	return nil
}

func (r *postgresRepo) scanAccount(ctx context.Context, row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.IsAdmin, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.WithError(err).Error("account repo: scan account")
		return nil, err
	}

	cart, err := r.cartLines(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	a.Cart = cart
	return &a, nil
}

func (r *postgresRepo) cartLines(ctx context.Context, accountID string) ([]domain.CartLine, error) {
	const q = `
SELECT product_id, quantity, name, price, added_at
FROM cart_lines
WHERE account_id = $1
ORDER BY added_at ASC
`
	rows, err := r.pool.Query(ctx, q, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []domain.CartLine{}
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ProductID, &line.Quantity, &line.Name, &line.Price, &line.AddedAt); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
