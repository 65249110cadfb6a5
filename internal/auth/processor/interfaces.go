package processor

import (
	"context"

	"marketplace-server/internal/store"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

// AuthStore defines the database operations required by AuthProcessor
type AuthStore interface {
	CheckIfEmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, params store.CreateUserParams) (store.User, error)
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
}

// WelcomeNotifier sends the post-signup welcome email
type WelcomeNotifier interface {
	SendWelcomeEmail(ctx context.Context, email, firstName, referralCode string) error
}
