package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const sqlGetActiveProgram = `
SELECT id, name, reward_percentage, max_reward_amount, min_payout_amount, attribution_window_days, is_active, created_at, updated_at
FROM referral_programs
WHERE is_active = true
ORDER BY created_at ASC
LIMIT 1
`

// GetActiveProgram retrieves the single active referral program. First match
// wins when more than one row is flagged active.
func (s *Store) GetActiveProgram(ctx context.Context) (ReferralProgram, error) {
	var program ReferralProgram
	err := s.db.GetContext(ctx, &program, sqlGetActiveProgram)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralProgram{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get active program", err)
		return ReferralProgram{}, fmt.Errorf("failed to get active program: %w", err)
	}
	return program, nil
}

const sqlListPrograms = `
SELECT id, name, reward_percentage, max_reward_amount, min_payout_amount, attribution_window_days, is_active, created_at, updated_at
FROM referral_programs
ORDER BY created_at DESC
`

// ListPrograms retrieves all referral programs
func (s *Store) ListPrograms(ctx context.Context) ([]ReferralProgram, error) {
	var programs []ReferralProgram
	err := s.db.SelectContext(ctx, &programs, sqlListPrograms)
	if err != nil {
		s.logger.Error(ctx, "failed to list programs", err)
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	return programs, nil
}

// CreateProgramParams represents parameters for creating a referral program
type CreateProgramParams struct {
	Name                  string
	RewardPercentage      decimal.Decimal
	MaxRewardAmount       decimal.NullDecimal
	MinPayoutAmount       decimal.Decimal
	AttributionWindowDays int
	IsActive              bool
}

const sqlDeactivatePrograms = `
UPDATE referral_programs
SET is_active = false,
    updated_at = CURRENT_TIMESTAMP
WHERE is_active = true
`

const sqlCreateProgram = `
INSERT INTO referral_programs (name, reward_percentage, max_reward_amount, min_payout_amount, attribution_window_days, is_active)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, name, reward_percentage, max_reward_amount, min_payout_amount, attribution_window_days, is_active, created_at, updated_at
`

// CreateProgram creates a referral program. Activating a program deactivates
// every other program in the same transaction.
func (s *Store) CreateProgram(ctx context.Context, params CreateProgramParams) (ReferralProgram, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return ReferralProgram{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if params.IsActive {
		if _, err = tx.ExecContext(ctx, sqlDeactivatePrograms); err != nil {
			s.logger.Error(ctx, "failed to deactivate programs", err)
			return ReferralProgram{}, fmt.Errorf("failed to deactivate programs: %w", err)
		}
	}

	var program ReferralProgram
	err = tx.GetContext(ctx, &program, sqlCreateProgram,
		params.Name,
		params.RewardPercentage,
		params.MaxRewardAmount,
		params.MinPayoutAmount,
		params.AttributionWindowDays,
		params.IsActive)
	if err != nil {
		s.logger.Error(ctx, "failed to create program", err)
		return ReferralProgram{}, fmt.Errorf("failed to create program: %w", err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return ReferralProgram{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return program, nil
}

// UpdateProgramParams represents parameters for updating a referral program
type UpdateProgramParams struct {
	Name                  *string
	RewardPercentage      *decimal.Decimal
	MaxRewardAmount       *decimal.NullDecimal
	MinPayoutAmount       *decimal.Decimal
	AttributionWindowDays *int
	IsActive              *bool
}

const sqlUpdateProgram = `
UPDATE referral_programs
SET name = COALESCE($2, name),
    reward_percentage = COALESCE($3, reward_percentage),
    max_reward_amount = COALESCE($4, max_reward_amount),
    min_payout_amount = COALESCE($5, min_payout_amount),
    attribution_window_days = COALESCE($6, attribution_window_days),
    is_active = COALESCE($7, is_active),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING id, name, reward_percentage, max_reward_amount, min_payout_amount, attribution_window_days, is_active, created_at, updated_at
`

const sqlDeactivateOtherPrograms = `
UPDATE referral_programs
SET is_active = false,
    updated_at = CURRENT_TIMESTAMP
WHERE is_active = true AND id != $1
`

// UpdateProgram updates a referral program
func (s *Store) UpdateProgram(ctx context.Context, programID uuid.UUID, params UpdateProgramParams) (ReferralProgram, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return ReferralProgram{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if params.IsActive != nil && *params.IsActive {
		if _, err = tx.ExecContext(ctx, sqlDeactivateOtherPrograms, programID); err != nil {
			s.logger.Error(ctx, "failed to deactivate other programs", err)
			return ReferralProgram{}, fmt.Errorf("failed to deactivate other programs: %w", err)
		}
	}

	// shopspring decimals are structs, so optional params are passed through
	// NullDecimal to keep the COALESCE pattern working.
	var pct, minPayout decimal.NullDecimal
	if params.RewardPercentage != nil {
		pct = decimal.NullDecimal{Decimal: *params.RewardPercentage, Valid: true}
	}
	if params.MinPayoutAmount != nil {
		minPayout = decimal.NullDecimal{Decimal: *params.MinPayoutAmount, Valid: true}
	}
	var maxReward interface{}
	if params.MaxRewardAmount != nil {
		maxReward = *params.MaxRewardAmount
	}

	var program ReferralProgram
	err = tx.GetContext(ctx, &program, sqlUpdateProgram,
		programID,
		params.Name,
		pct,
		maxReward,
		minPayout,
		params.AttributionWindowDays,
		params.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralProgram{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update program", err)
		return ReferralProgram{}, fmt.Errorf("failed to update program: %w", err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return ReferralProgram{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return program, nil
}
