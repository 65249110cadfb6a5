package processor

import (
	"context"
	"errors"
	"strings"

	"marketplace-server/internal/observability"
	"marketplace-server/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrEmailDoesNotExist  = errors.New("email does not exist")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid user role")
)

type AuthProcessor struct {
	store     AuthStore
	notifier  WelcomeNotifier
	jwtSecret string
	logger    *observability.Logger
}

func New(store AuthStore, notifier WelcomeNotifier, jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:     store,
		notifier:  notifier,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// SignedUpUser is the public view of a freshly created account
type SignedUpUser struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ReferralCode string    `json:"referral_code"`
}

var validRoles = map[string]bool{
	store.UserRoleVendor:     true,
	store.UserRoleOps:        true,
	store.UserRoleSuperadmin: true,
}

// Signup creates a user account with a bcrypt-hashed password and a fresh
// referral code. Role defaults to vendor.
func (p *AuthProcessor) Signup(ctx context.Context, firstName, lastName, email, password, role string) (SignedUpUser, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	if role == "" {
		role = store.UserRoleVendor
	}
	if !validRoles[role] {
		return SignedUpUser{}, ErrInvalidRole
	}

	exists, err := p.store.CheckIfEmailExists(ctx, email)
	if err != nil {
		p.logger.Error(ctx, "failed to check if email exists", err)
		return SignedUpUser{}, err
	}
	if exists {
		return SignedUpUser{}, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return SignedUpUser{}, err
	}

	user, err := p.store.CreateUser(ctx, store.CreateUserParams{
		Email:          email,
		HashedPassword: string(hashedPassword),
		FirstName:      firstName,
		LastName:       lastName,
		Role:           role,
		ReferralCode:   GenerateReferralCode(),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create user", err)
		return SignedUpUser{}, err
	}

	if err := p.notifier.SendWelcomeEmail(ctx, user.Email, user.FirstName, user.ReferralCode); err != nil {
		p.logger.Warn(ctx, "failed to send welcome email")
	}

	p.logger.Info(ctx, "user signed up")
	return SignedUpUser{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		Role:         user.Role,
		ReferralCode: user.ReferralCode,
	}, nil
}

// Login verifies credentials and returns a signed JWT carrying the user's
// id and role.
func (p *AuthProcessor) Login(ctx context.Context, email, password string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrEmailDoesNotExist
		}
		p.logger.Error(ctx, "failed to get user by email", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", ErrIncorrectPassword
	}

	token, err := p.generateJWTToken(ctx, user)
	if err != nil {
		return "", err
	}

	p.logger.Info(ctx, "user logged in")
	return token, nil
}

// GetUserByID retrieves a user's public profile
func (p *AuthProcessor) GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error) {
	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user by id", err)
		return store.User{}, err
	}
	return user, nil
}

// GenerateReferralCode returns a short human-shareable code: the first 8 hex
// characters of a fresh UUID, uppercased.
func GenerateReferralCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
}
