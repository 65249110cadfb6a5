package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlCheckIfEmailExists = `
SELECT EXISTS(SELECT 1
              FROM users
              WHERE email = $1
              )`

func (s *Store) CheckIfEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlCheckIfEmailExists, email)
	if err != nil {
		s.logger.Error(ctx, "failed to check email exists", err)
		return false, fmt.Errorf("failed to check email exists: %w", err)
	}
	return exists, nil
}

// CreateUserParams represents parameters for creating a user
type CreateUserParams struct {
	Email          string
	HashedPassword string
	FirstName      string
	LastName       string
	Role           string
	ReferralCode   string
}

const sqlCreateUser = `
INSERT INTO users (email, hashed_password, first_name, last_name, role, referral_code)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, email, hashed_password, first_name, last_name, role, referral_code, created_at
`

func (s *Store) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlCreateUser,
		params.Email,
		params.HashedPassword,
		params.FirstName,
		params.LastName,
		params.Role,
		params.ReferralCode)
	if err != nil {
		s.logger.Error(ctx, "failed to create user", err)
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

const sqlGetUserByEmail = `
SELECT id, email, hashed_password, first_name, last_name, role, referral_code, created_at
FROM users
WHERE email = $1
`

func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by email", err)
		return User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

const sqlGetUserByID = `
SELECT id, email, hashed_password, first_name, last_name, role, referral_code, created_at
FROM users
WHERE id = $1
`

func (s *Store) GetUserByID(ctx context.Context, userID uuid.UUID) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by id", err)
		return User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}
