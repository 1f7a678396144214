package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

type memoryUserRepo struct {
	byEmail map[string]user.User
	byID    map[uuid.UUID]user.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byEmail: map[string]user.User{}, byID: map[uuid.UUID]user.User{}}
}

func (m *memoryUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *memoryUserRepo) CreateUser(_ context.Context, u user.User) error {
	m.byEmail[u.Email] = u
	m.byID[u.ID] = u
	return nil
}

func (m *memoryUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memoryUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memoryUserRepo) GetOrCreateDemo(ctx context.Context) (user.User, error) {
	if u, err := m.GetUserByEmail(ctx, user.DemoEmail); err == nil {
		return u, nil
	}
	u := user.User{ID: uuid.New(), Email: user.DemoEmail}
	_ = m.CreateUser(ctx, u)
	return u, nil
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo)

	created, err := svc.Register(context.Background(), RegisterInput{Email: " Alice@Example.COM ", Password: "secret-pass"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}
	if created.PasswordHash != "" {
		t.Fatalf("returned user must not carry the hash")
	}

	stored := repo.byEmail["alice@example.com"]
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret-pass")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}

	logged, err := svc.Login(context.Background(), LoginInput{Email: "alice@example.com", Password: "secret-pass"})
	if err != nil {
		t.Fatalf("unexpected login err: %v", err)
	}
	if logged.ID != created.ID {
		t.Fatalf("login returned a different user")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "bob@example.com", Password: "secret-pass"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := svc.Register(context.Background(), RegisterInput{Email: "BOB@example.com", Password: "another-pass"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(newMemoryUserRepo())

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "", Password: "secret-pass"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty email, got %v", err)
	}
	if _, err := svc.Register(context.Background(), RegisterInput{Email: "c@example.com", Password: "short"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short password, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "dana@example.com", Password: "secret-pass"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err := svc.Login(context.Background(), LoginInput{Email: "dana@example.com", Password: "wrong-pass"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	_, err = svc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "secret-pass"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
