package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

// DemoEmail identifies the shared demo account the unauthenticated CRUD
// surface operates on.
const DemoEmail = "demo@example.com"

type Repository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, u User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetOrCreateDemo(ctx context.Context) (User, error)
}
