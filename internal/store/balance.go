package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// The balance cache is fully derived from reward rows; this statement is its
// only writer. Safe to run redundantly.
const sqlRecomputeBalance = `
INSERT INTO referral_balances (user_id, total_earned, locked_amount, available_amount, total_paid_out, updated_at)
SELECT $1,
       COALESCE(SUM(reward_amount), 0),
       COALESCE(SUM(locked_amount) FILTER (WHERE status = 'PENDING'), 0),
       COALESCE(SUM(available_amount) FILTER (WHERE status IN ('APPROVED', 'PAID_OUT')), 0),
       COALESCE(SUM(available_amount) FILTER (WHERE status = 'PAID_OUT'), 0),
       CURRENT_TIMESTAMP
FROM referral_rewards
WHERE user_id = $1
ON CONFLICT (user_id)
DO UPDATE SET total_earned = EXCLUDED.total_earned,
              locked_amount = EXCLUDED.locked_amount,
              available_amount = EXCLUDED.available_amount,
              total_paid_out = EXCLUDED.total_paid_out,
              updated_at = EXCLUDED.updated_at
RETURNING user_id, total_earned, locked_amount, available_amount, total_paid_out, updated_at
`

// recomputeBalanceTx re-derives a user's balance inside an open transaction.
func recomputeBalanceTx(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID) (ReferralBalance, error) {
	var balance ReferralBalance
	if err := tx.GetContext(ctx, &balance, sqlRecomputeBalance, userID); err != nil {
		return ReferralBalance{}, fmt.Errorf("failed to recompute balance: %w", err)
	}
	return balance, nil
}

// RecomputeBalance re-derives a user's balance from their reward rows.
func (s *Store) RecomputeBalance(ctx context.Context, userID uuid.UUID) (ReferralBalance, error) {
	var balance ReferralBalance
	err := s.db.GetContext(ctx, &balance, sqlRecomputeBalance, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to recompute balance", err)
		return ReferralBalance{}, fmt.Errorf("failed to recompute balance: %w", err)
	}
	return balance, nil
}
