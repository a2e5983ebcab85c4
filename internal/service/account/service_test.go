package account

import (
	"context"
	"errors"
	"testing"

	"localstore/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// memoryRepo is a lightweight in-memory account repository for tests.
type memoryRepo struct {
	byUsername map[string]domain.Account
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byUsername: make(map[string]domain.Account)}
}

func (r *memoryRepo) Create(_ context.Context, a domain.Account) (*domain.Account, error) {
	if _, exists := r.byUsername[a.Username]; exists {
		return nil, domain.ErrAlreadyExists
	}
	clone := a
	r.byUsername[a.Username] = clone
	return &clone, nil
}

func (r *memoryRepo) GetByUsername(_ context.Context, username string) (*domain.Account, error) {
	if a, ok := r.byUsername[username]; ok {
		clone := a
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Account, error) {
	for _, a := range r.byUsername {
		if a.ID == id {
			clone := a
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(r.byUsername))
	for _, a := range r.byUsername {
		out = append(out, a)
	}
	return out, nil
}

func (r *memoryRepo) MergeCartLine(_ context.Context, _ string, _ domain.CartLine) error {
	return nil
}

// raceRepo simulates losing the insert race: the first lookup misses,
// the insert collides, and the retry lookup sees the winner's row.
type raceRepo struct {
	*memoryRepo
	missedOnce bool
}

func (r *raceRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	if !r.missedOnce {
		r.missedOnce = true
		return nil, domain.ErrNotFound
	}
	return r.memoryRepo.GetByUsername(ctx, username)
}

func TestResolve_CreatesThenAuthenticates(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo)
	ctx := context.Background()

	first, err := svc.Resolve(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	if first.Outcome != OutcomeCreated {
		t.Fatalf("expected created outcome, got %v", first.Outcome)
	}
	if first.AccountID == "" {
		t.Fatal("expected non-empty account id")
	}

	second, err := svc.Resolve(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if second.Outcome != OutcomeAuthenticated {
		t.Fatalf("expected authenticated outcome, got %v", second.Outcome)
	}
	if second.AccountID != first.AccountID {
		t.Fatalf("expected same account id, got %s and %s", first.AccountID, second.AccountID)
	}
	if len(repo.byUsername) != 1 {
		t.Fatalf("expected exactly one account, got %d", len(repo.byUsername))
	}
}

func TestResolve_WrongPasswordRejected(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo)
	ctx := context.Background()

	if _, err := svc.Resolve(ctx, "alice", "pw1"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, err := svc.Resolve(ctx, "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	// A single-character variant must fail too.
	if _, err := svc.Resolve(ctx, "alice", "pw2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for variant, got %v", err)
	}
}

func TestResolve_StoredHashIsNotPlaintext(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo)

	if _, err := svc.Resolve(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	stored := repo.byUsername["alice"]
	if stored.PasswordHash == "pw1" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw1")); err != nil {
		t.Fatalf("hash does not verify the original password: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw!")); err == nil {
		t.Fatal("hash verified a different password")
	}
}

func TestResolve_LostInsertRaceAuthenticates(t *testing.T) {
	mem := newMemoryRepo()
	hashed, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	mem.byUsername["alice"] = domain.Account{ID: "winner", Username: "alice", PasswordHash: string(hashed)}

	svc := New(&raceRepo{memoryRepo: mem})
	res, err := svc.Resolve(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.AccountID != "winner" || res.Outcome != OutcomeAuthenticated {
		t.Fatalf("expected winner account authenticated, got %+v", res)
	}
}

func TestResolve_RequiresCredentials(t *testing.T) {
	svc := New(newMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Resolve(ctx, "  ", "pw"); err == nil {
		t.Fatal("expected error for blank username")
	}
	if _, err := svc.Resolve(ctx, "alice", ""); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestCreate_DuplicateUsername(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Username: "admin", Password: "secret", IsAdmin: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.IsAdmin {
		t.Fatal("expected admin flag to be set")
	}

	if _, err := svc.Create(ctx, CreateInput{Username: "admin", Password: "other"}); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}
