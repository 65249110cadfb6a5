package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePayoutParams represents a withdrawal request with the APPROVED
// rewards backing it.
type CreatePayoutParams struct {
	UserID         uuid.UUID
	Amount         decimal.Decimal
	PaymentMethod  string
	PaymentDetails JSONB
	RewardIDs      []uuid.UUID
}

const sqlCreatePayout = `
INSERT INTO referral_payouts (user_id, amount, payment_method, payment_details)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, amount, payment_method, payment_details, status, rejection_reason, processed_by, processed_at, created_at
`

const sqlLinkPayoutReward = `
INSERT INTO referral_payout_rewards (payout_id, reward_id)
VALUES ($1, $2)
`

// CreatePayout inserts a PENDING payout and its reward links in one
// transaction. No balance or reward rows change here.
func (s *Store) CreatePayout(ctx context.Context, params CreatePayoutParams) (ReferralPayout, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return ReferralPayout{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var payout ReferralPayout
	err = tx.GetContext(ctx, &payout, sqlCreatePayout,
		params.UserID,
		params.Amount,
		params.PaymentMethod,
		params.PaymentDetails)
	if err != nil {
		s.logger.Error(ctx, "failed to create payout", err)
		return ReferralPayout{}, fmt.Errorf("failed to create payout: %w", err)
	}

	for _, rewardID := range params.RewardIDs {
		if _, err = tx.ExecContext(ctx, sqlLinkPayoutReward, payout.ID, rewardID); err != nil {
			s.logger.Error(ctx, "failed to link payout reward", err)
			return ReferralPayout{}, fmt.Errorf("failed to link payout reward: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return ReferralPayout{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return payout, nil
}

const sqlGetPayoutByID = `
SELECT id, user_id, amount, payment_method, payment_details, status, rejection_reason, processed_by, processed_at, created_at
FROM referral_payouts
WHERE id = $1
`

// GetPayoutByID retrieves a payout by ID
func (s *Store) GetPayoutByID(ctx context.Context, payoutID uuid.UUID) (ReferralPayout, error) {
	var payout ReferralPayout
	err := s.db.GetContext(ctx, &payout, sqlGetPayoutByID, payoutID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralPayout{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get payout by id", err)
		return ReferralPayout{}, fmt.Errorf("failed to get payout by id: %w", err)
	}
	return payout, nil
}

const sqlGetPayoutsByUser = `
SELECT id, user_id, amount, payment_method, payment_details, status, rejection_reason, processed_by, processed_at, created_at
FROM referral_payouts
WHERE user_id = $1
ORDER BY created_at DESC
`

// GetPayoutsByUser retrieves all payouts requested by a user
func (s *Store) GetPayoutsByUser(ctx context.Context, userID uuid.UUID) ([]ReferralPayout, error) {
	var payouts []ReferralPayout
	err := s.db.SelectContext(ctx, &payouts, sqlGetPayoutsByUser, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to get payouts by user", err)
		return nil, fmt.Errorf("failed to get payouts by user: %w", err)
	}
	return payouts, nil
}

const sqlListPayouts = `
SELECT id, user_id, amount, payment_method, payment_details, status, rejection_reason, processed_by, processed_at, created_at
FROM referral_payouts
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

// ListPayouts retrieves payouts across all users with pagination
func (s *Store) ListPayouts(ctx context.Context, limit, offset int) ([]ReferralPayout, error) {
	var payouts []ReferralPayout
	err := s.db.SelectContext(ctx, &payouts, sqlListPayouts, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list payouts", err)
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	return payouts, nil
}

const sqlGetPayoutRewardIDs = `
SELECT reward_id
FROM referral_payout_rewards
WHERE payout_id = $1
`

// GetPayoutRewardIDs retrieves the reward rows linked to a payout
func (s *Store) GetPayoutRewardIDs(ctx context.Context, payoutID uuid.UUID) ([]uuid.UUID, error) {
	var rewardIDs []uuid.UUID
	err := s.db.SelectContext(ctx, &rewardIDs, sqlGetPayoutRewardIDs, payoutID)
	if err != nil {
		s.logger.Error(ctx, "failed to get payout reward ids", err)
		return nil, fmt.Errorf("failed to get payout reward ids: %w", err)
	}
	return rewardIDs, nil
}

const sqlCompletePayout = `
UPDATE referral_payouts
SET status = 'COMPLETED',
    processed_by = $2,
    processed_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'PENDING'
RETURNING id, user_id, amount, payment_method, payment_details, status, rejection_reason, processed_by, processed_at, created_at
`

const sqlMarkLinkedRewardsPaidOut = `
UPDATE referral_rewards
SET status = 'PAID_OUT'
WHERE status = 'APPROVED'
  AND id IN (SELECT reward_id FROM referral_payout_rewards WHERE payout_id = $1)
`

const sqlCountPayoutRewards = `
SELECT COUNT(*)
FROM referral_payout_rewards
WHERE payout_id = $1
`

// ErrPayoutRewardsNotPayable is returned when a linked reward is no longer
// APPROVED at completion time, e.g. it was reversed after the request.
var ErrPayoutRewardsNotPayable = errors.New("payout rewards are not payable")

// CompletePayout marks a PENDING payout COMPLETED, flips its linked rewards
// from APPROVED to PAID_OUT, and recomputes the balance, all in one
// transaction. Every linked reward must still be APPROVED or the whole
// transaction aborts with ErrPayoutRewardsNotPayable; money never leaves
// against a reversed reward. Balance changes flow through reward status only;
// the payout path never does balance arithmetic. Returns ErrNotFound when the
// payout is missing or not PENDING.
func (s *Store) CompletePayout(ctx context.Context, payoutID, processedBy uuid.UUID) (ReferralPayout, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return ReferralPayout{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var payout ReferralPayout
	err = tx.GetContext(ctx, &payout, sqlCompletePayout, payoutID, processedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralPayout{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to complete payout", err)
		return ReferralPayout{}, fmt.Errorf("failed to complete payout: %w", err)
	}

	res, err := tx.ExecContext(ctx, sqlMarkLinkedRewardsPaidOut, payoutID)
	if err != nil {
		s.logger.Error(ctx, "failed to mark linked rewards paid out", err)
		return ReferralPayout{}, fmt.Errorf("failed to mark linked rewards paid out: %w", err)
	}
	transitioned, err := res.RowsAffected()
	if err != nil {
		return ReferralPayout{}, fmt.Errorf("failed to get rows affected: %w", err)
	}

	var linked int64
	if err = tx.GetContext(ctx, &linked, sqlCountPayoutRewards, payoutID); err != nil {
		s.logger.Error(ctx, "failed to count payout rewards", err)
		return ReferralPayout{}, fmt.Errorf("failed to count payout rewards: %w", err)
	}
	if transitioned != linked {
		return ReferralPayout{}, ErrPayoutRewardsNotPayable
	}

	if _, err = recomputeBalanceTx(ctx, tx, payout.UserID); err != nil {
		s.logger.Error(ctx, "failed to recompute balance", err)
		return ReferralPayout{}, err
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return ReferralPayout{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return payout, nil
}

const sqlRejectPayout = `
UPDATE referral_payouts
SET status = 'REJECTED',
    rejection_reason = $3,
    processed_by = $2,
    processed_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'PENDING'
RETURNING id, user_id, amount, payment_method, payment_details, status, rejection_reason, processed_by, processed_at, created_at
`

// RejectPayout marks a PENDING payout REJECTED. Reward rows are untouched, so
// the funds stay withdrawable for a future request. Returns ErrNotFound when
// the payout is missing or not PENDING.
func (s *Store) RejectPayout(ctx context.Context, payoutID, processedBy uuid.UUID, reason string) (ReferralPayout, error) {
	var payout ReferralPayout
	err := s.db.GetContext(ctx, &payout, sqlRejectPayout, payoutID, processedBy, reason)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralPayout{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to reject payout", err)
		return ReferralPayout{}, fmt.Errorf("failed to reject payout: %w", err)
	}
	return payout, nil
}
