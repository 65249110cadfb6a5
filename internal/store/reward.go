package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateRewardParams represents parameters for creating a referral reward
type CreateRewardParams struct {
	ReferralLinkID   uuid.UUID
	UserID           uuid.UUID
	OrderID          uuid.UUID
	ProductID        uuid.UUID
	OrderAmount      decimal.Decimal
	RewardPercentage decimal.Decimal
	RewardAmount     decimal.Decimal
	FraudScore       float64
	IPAddress        *string
	UserAgent        *string
}

const sqlRewardExists = `
SELECT EXISTS(SELECT 1
              FROM referral_rewards
              WHERE order_id = $1 AND product_id = $2 AND referral_link_id = $3
              )`

// RewardExists reports whether a reward already exists for
// (order, product, referral_link).
func (s *Store) RewardExists(ctx context.Context, orderID, productID, linkID uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlRewardExists, orderID, productID, linkID)
	if err != nil {
		s.logger.Error(ctx, "failed to check reward exists", err)
		return false, fmt.Errorf("failed to check reward exists: %w", err)
	}
	return exists, nil
}

const sqlCountRecentRewardsByLink = `
SELECT COUNT(*)
FROM referral_rewards
WHERE referral_link_id = $1 AND created_at >= $2
`

// CountRecentRewardsByLink counts rewards created for a link since the cutoff.
// Feeds the velocity fraud signal.
func (s *Store) CountRecentRewardsByLink(ctx context.Context, linkID uuid.UUID, since time.Time) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountRecentRewardsByLink, linkID, since)
	if err != nil {
		s.logger.Error(ctx, "failed to count recent rewards", err)
		return 0, fmt.Errorf("failed to count recent rewards: %w", err)
	}
	return count, nil
}

const sqlInsertReward = `
INSERT INTO referral_rewards (referral_link_id, user_id, order_id, product_id, order_amount, reward_percentage, reward_amount, locked_amount, available_amount, fraud_score, ip_address, user_agent, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7, 0, $8, $9, $10, 'PENDING')
ON CONFLICT (order_id, product_id, referral_link_id) DO NOTHING
RETURNING id, referral_link_id, user_id, order_id, product_id, order_amount, reward_percentage, reward_amount, locked_amount, available_amount, fraud_score, ip_address, user_agent, status, approved_at, reversed_at, created_at
`

const sqlIncrementLinkConversion = `
UPDATE referral_links
SET total_conversions = total_conversions + 1,
    total_rewards = total_rewards + $2
WHERE id = $1
`

// CreateOrderRewards inserts the reward rows for one order in a single
// transaction, bumps the link counters, and recomputes the balance of every
// credited user. The unique index on (order, product, referral_link) makes a
// concurrent duplicate insert a no-op rather than an error.
func (s *Store) CreateOrderRewards(ctx context.Context, params []CreateRewardParams) ([]ReferralReward, error) {
	if len(params) == 0 {
		return nil, nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rewards := make([]ReferralReward, 0, len(params))
	touchedUsers := make(map[uuid.UUID]struct{})
	for _, p := range params {
		var reward ReferralReward
		err = tx.GetContext(ctx, &reward, sqlInsertReward,
			p.ReferralLinkID,
			p.UserID,
			p.OrderID,
			p.ProductID,
			p.OrderAmount,
			p.RewardPercentage,
			p.RewardAmount,
			p.FraudScore,
			p.IPAddress,
			p.UserAgent)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// Conflict: a concurrent call already created this reward.
				continue
			}
			s.logger.Error(ctx, "failed to insert reward", err)
			return nil, fmt.Errorf("failed to insert reward: %w", err)
		}

		if _, err = tx.ExecContext(ctx, sqlIncrementLinkConversion, p.ReferralLinkID, p.RewardAmount); err != nil {
			s.logger.Error(ctx, "failed to increment link conversion counters", err)
			return nil, fmt.Errorf("failed to increment link conversion counters: %w", err)
		}

		rewards = append(rewards, reward)
		touchedUsers[p.UserID] = struct{}{}
	}

	for userID := range touchedUsers {
		if _, err = recomputeBalanceTx(ctx, tx, userID); err != nil {
			s.logger.Error(ctx, "failed to recompute balance", err)
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return rewards, nil
}

const sqlGetRewardByID = `
SELECT id, referral_link_id, user_id, order_id, product_id, order_amount, reward_percentage, reward_amount, locked_amount, available_amount, fraud_score, ip_address, user_agent, status, approved_at, reversed_at, created_at
FROM referral_rewards
WHERE id = $1
`

// GetRewardByID retrieves a reward by ID
func (s *Store) GetRewardByID(ctx context.Context, rewardID uuid.UUID) (ReferralReward, error) {
	var reward ReferralReward
	err := s.db.GetContext(ctx, &reward, sqlGetRewardByID, rewardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralReward{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get reward by id", err)
		return ReferralReward{}, fmt.Errorf("failed to get reward by id: %w", err)
	}
	return reward, nil
}

const sqlGetRewardsByUser = `
SELECT id, referral_link_id, user_id, order_id, product_id, order_amount, reward_percentage, reward_amount, locked_amount, available_amount, fraud_score, ip_address, user_agent, status, approved_at, reversed_at, created_at
FROM referral_rewards
WHERE user_id = $1
ORDER BY created_at DESC
`

// GetRewardsByUser retrieves all rewards credited to a user
func (s *Store) GetRewardsByUser(ctx context.Context, userID uuid.UUID) ([]ReferralReward, error) {
	var rewards []ReferralReward
	err := s.db.SelectContext(ctx, &rewards, sqlGetRewardsByUser, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to get rewards by user", err)
		return nil, fmt.Errorf("failed to get rewards by user: %w", err)
	}
	return rewards, nil
}

const sqlApproveReward = `
UPDATE referral_rewards
SET status = 'APPROVED',
    available_amount = locked_amount,
    locked_amount = 0,
    approved_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'PENDING'
RETURNING id, referral_link_id, user_id, order_id, product_id, order_amount, reward_percentage, reward_amount, locked_amount, available_amount, fraud_score, ip_address, user_agent, status, approved_at, reversed_at, created_at
`

// ApproveReward moves a PENDING reward's locked amount into available and
// recomputes the owner's balance in the same transaction. Returns ErrNotFound
// when the row is missing or not PENDING; callers distinguish the two by
// fetching the reward first.
func (s *Store) ApproveReward(ctx context.Context, rewardID uuid.UUID) (ReferralReward, error) {
	return s.transitionReward(ctx, rewardID, sqlApproveReward)
}

const sqlReverseReward = `
UPDATE referral_rewards
SET status = 'REVERSED',
    locked_amount = 0,
    available_amount = 0,
    reversed_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status IN ('PENDING', 'APPROVED')
RETURNING id, referral_link_id, user_id, order_id, product_id, order_amount, reward_percentage, reward_amount, locked_amount, available_amount, fraud_score, ip_address, user_agent, status, approved_at, reversed_at, created_at
`

// ReverseReward voids a PENDING or APPROVED reward. The money returns to
// neither pool.
func (s *Store) ReverseReward(ctx context.Context, rewardID uuid.UUID) (ReferralReward, error) {
	return s.transitionReward(ctx, rewardID, sqlReverseReward)
}

// transitionReward runs a guarded status UPDATE followed by a balance
// recompute in one transaction.
func (s *Store) transitionReward(ctx context.Context, rewardID uuid.UUID, query string) (ReferralReward, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return ReferralReward{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var reward ReferralReward
	err = tx.GetContext(ctx, &reward, query, rewardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralReward{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to transition reward", err)
		return ReferralReward{}, fmt.Errorf("failed to transition reward: %w", err)
	}

	if _, err = recomputeBalanceTx(ctx, tx, reward.UserID); err != nil {
		s.logger.Error(ctx, "failed to recompute balance", err)
		return ReferralReward{}, err
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return ReferralReward{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return reward, nil
}

const sqlApproveRewardsForOrder = `
UPDATE referral_rewards
SET status = 'APPROVED',
    available_amount = locked_amount,
    locked_amount = 0,
    approved_at = CURRENT_TIMESTAMP
WHERE order_id = $1 AND status = 'PENDING'
RETURNING user_id
`

// ApproveRewardsForOrder bulk-approves the PENDING rewards of an order.
// Driven by the order transitioning to confirmed.
func (s *Store) ApproveRewardsForOrder(ctx context.Context, orderID uuid.UUID) (int, error) {
	return s.transitionRewardsForOrder(ctx, orderID, sqlApproveRewardsForOrder)
}

const sqlReverseRewardsForOrder = `
UPDATE referral_rewards
SET status = 'REVERSED',
    locked_amount = 0,
    available_amount = 0,
    reversed_at = CURRENT_TIMESTAMP
WHERE order_id = $1 AND status IN ('PENDING', 'APPROVED')
RETURNING user_id
`

// ReverseRewardsForOrder bulk-reverses the live rewards of an order.
// Driven by the order transitioning to cancelled or refunded.
func (s *Store) ReverseRewardsForOrder(ctx context.Context, orderID uuid.UUID) (int, error) {
	return s.transitionRewardsForOrder(ctx, orderID, sqlReverseRewardsForOrder)
}

func (s *Store) transitionRewardsForOrder(ctx context.Context, orderID uuid.UUID, query string) (int, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var userIDs []uuid.UUID
	if err = tx.SelectContext(ctx, &userIDs, query, orderID); err != nil {
		s.logger.Error(ctx, "failed to transition order rewards", err)
		return 0, fmt.Errorf("failed to transition order rewards: %w", err)
	}

	touchedUsers := make(map[uuid.UUID]struct{}, len(userIDs))
	for _, userID := range userIDs {
		touchedUsers[userID] = struct{}{}
	}
	for userID := range touchedUsers {
		if _, err = recomputeBalanceTx(ctx, tx, userID); err != nil {
			s.logger.Error(ctx, "failed to recompute balance", err)
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return len(userIDs), nil
}

const sqlGetPayableRewards = `
SELECT id, referral_link_id, user_id, order_id, product_id, order_amount, reward_percentage, reward_amount, locked_amount, available_amount, fraud_score, ip_address, user_agent, status, approved_at, reversed_at, created_at
FROM referral_rewards
WHERE user_id = $1 AND status = 'APPROVED'
ORDER BY created_at ASC
`

// GetPayableRewards retrieves a user's APPROVED rewards oldest first, the
// order in which payout requests consume them.
func (s *Store) GetPayableRewards(ctx context.Context, userID uuid.UUID) ([]ReferralReward, error) {
	var rewards []ReferralReward
	err := s.db.SelectContext(ctx, &rewards, sqlGetPayableRewards, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to get payable rewards", err)
		return nil, fmt.Errorf("failed to get payable rewards: %w", err)
	}
	return rewards, nil
}
