package processor

import (
	"context"
	"errors"
	"fmt"

	"marketplace-server/internal/observability"
	"marketplace-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPayoutNotFound      = errors.New("payout not found")
	ErrInvalidPayoutAmount = errors.New("payout amount must be positive")
	ErrInvalidPayoutMethod = errors.New("invalid payout method")
	ErrInsufficientFunds   = errors.New("insufficient withdrawable funds")
	ErrBelowMinimumPayout  = errors.New("payout amount below program minimum")
	ErrInvalidPayoutState  = errors.New("payout is not pending")
	ErrPermissionDenied    = errors.New("permission denied")
)

var payoutMethods = map[string]struct{}{
	store.PayoutMethodBankTransfer: {},
	store.PayoutMethodPaypal:       {},
	store.PayoutMethodStripe:       {},
}

// PayoutProcessor owns balance reads and the payout request/review flow
type PayoutProcessor struct {
	store    PayoutStore
	notifier PayoutNotifier
	logger   *observability.Logger
}

func New(store PayoutStore, notifier PayoutNotifier, logger *observability.Logger) PayoutProcessor {
	return PayoutProcessor{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// BalanceResult is a freshly recomputed balance plus the derived
// withdrawable figure.
type BalanceResult struct {
	Balance      store.ReferralBalance
	Withdrawable decimal.Decimal
}

// GetBalance recomputes and returns a user's balance. Reward rows are the
// source of truth; the stored balance is only a cache of their aggregation.
func (p *PayoutProcessor) GetBalance(ctx context.Context, userID uuid.UUID) (BalanceResult, error) {
	balance, err := p.store.RecomputeBalance(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to recompute balance", err)
		return BalanceResult{}, fmt.Errorf("failed to recompute balance: %w", err)
	}
	return BalanceResult{
		Balance:      balance,
		Withdrawable: withdrawable(balance),
	}, nil
}

// RequestPayout creates a pending payout backed by the user's oldest approved
// rewards. Whole rewards are selected until they cover the requested amount,
// so the payout can come out slightly above the request. Funds stay approved
// until an operator completes the payout.
func (p *PayoutProcessor) RequestPayout(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, method string, details store.JSONB) (store.ReferralPayout, error) {
	if !amount.IsPositive() {
		return store.ReferralPayout{}, ErrInvalidPayoutAmount
	}
	if _, ok := payoutMethods[method]; !ok {
		return store.ReferralPayout{}, ErrInvalidPayoutMethod
	}

	balance, err := p.store.RecomputeBalance(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to recompute balance", err)
		return store.ReferralPayout{}, fmt.Errorf("failed to recompute balance: %w", err)
	}
	if amount.GreaterThan(withdrawable(balance)) {
		return store.ReferralPayout{}, ErrInsufficientFunds
	}

	program, err := p.store.GetActiveProgram(ctx)
	if err == nil {
		if amount.LessThan(program.MinPayoutAmount) {
			return store.ReferralPayout{}, ErrBelowMinimumPayout
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to load active referral program", err)
		return store.ReferralPayout{}, fmt.Errorf("failed to load active referral program: %w", err)
	}

	rewards, err := p.store.GetPayableRewards(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to load payable rewards", err)
		return store.ReferralPayout{}, fmt.Errorf("failed to load payable rewards: %w", err)
	}

	selected := make([]uuid.UUID, 0, len(rewards))
	covered := decimal.Zero
	for _, reward := range rewards {
		if covered.GreaterThanOrEqual(amount) {
			break
		}
		selected = append(selected, reward.ID)
		covered = covered.Add(reward.AvailableAmount)
	}
	if covered.LessThan(amount) {
		return store.ReferralPayout{}, ErrInsufficientFunds
	}

	payout, err := p.store.CreatePayout(ctx, store.CreatePayoutParams{
		UserID:         userID,
		Amount:         covered,
		PaymentMethod:  method,
		PaymentDetails: details,
		RewardIDs:      selected,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create payout", err)
		return store.ReferralPayout{}, fmt.Errorf("failed to create payout: %w", err)
	}
	return payout, nil
}

// ApprovePayout completes a pending payout, marking its backing rewards as
// paid out. The notification email is best effort.
func (p *PayoutProcessor) ApprovePayout(ctx context.Context, callerRole string, payoutID, processedBy uuid.UUID) (store.ReferralPayout, error) {
	if callerRole != store.UserRoleOps && callerRole != store.UserRoleSuperadmin {
		return store.ReferralPayout{}, ErrPermissionDenied
	}

	existing, err := p.store.GetPayoutByID(ctx, payoutID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ReferralPayout{}, ErrPayoutNotFound
		}
		p.logger.Error(ctx, "failed to load payout", err)
		return store.ReferralPayout{}, fmt.Errorf("failed to load payout: %w", err)
	}
	if existing.Status != store.PayoutStatusPending {
		return store.ReferralPayout{}, ErrInvalidPayoutState
	}

	payout, err := p.store.CompletePayout(ctx, payoutID, processedBy)
	if err != nil {
		// A reward reversed after the request makes the payout uncompletable.
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrPayoutRewardsNotPayable) {
			return store.ReferralPayout{}, ErrInvalidPayoutState
		}
		p.logger.Error(ctx, "failed to complete payout", err)
		return store.ReferralPayout{}, fmt.Errorf("failed to complete payout: %w", err)
	}

	p.notifyPayoutApproved(ctx, payout)
	return payout, nil
}

// RejectPayout rejects a pending payout with a reason. The backing rewards
// stay approved and remain withdrawable.
func (p *PayoutProcessor) RejectPayout(ctx context.Context, callerRole string, payoutID, processedBy uuid.UUID, reason string) (store.ReferralPayout, error) {
	if callerRole != store.UserRoleOps && callerRole != store.UserRoleSuperadmin {
		return store.ReferralPayout{}, ErrPermissionDenied
	}

	existing, err := p.store.GetPayoutByID(ctx, payoutID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ReferralPayout{}, ErrPayoutNotFound
		}
		p.logger.Error(ctx, "failed to load payout", err)
		return store.ReferralPayout{}, fmt.Errorf("failed to load payout: %w", err)
	}
	if existing.Status != store.PayoutStatusPending {
		return store.ReferralPayout{}, ErrInvalidPayoutState
	}

	payout, err := p.store.RejectPayout(ctx, payoutID, processedBy, reason)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ReferralPayout{}, ErrInvalidPayoutState
		}
		p.logger.Error(ctx, "failed to reject payout", err)
		return store.ReferralPayout{}, fmt.Errorf("failed to reject payout: %w", err)
	}

	p.notifyPayoutRejected(ctx, payout, reason)
	return payout, nil
}

// PayoutDetail is a payout together with the rewards backing it
type PayoutDetail struct {
	Payout    store.ReferralPayout `json:"payout"`
	RewardIDs []uuid.UUID          `json:"reward_ids"`
}

// GetPayout returns one payout and its backing reward ids, visible to its
// owner and to operators.
func (p *PayoutProcessor) GetPayout(ctx context.Context, callerID uuid.UUID, callerRole string, payoutID uuid.UUID) (PayoutDetail, error) {
	payout, err := p.store.GetPayoutByID(ctx, payoutID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PayoutDetail{}, ErrPayoutNotFound
		}
		p.logger.Error(ctx, "failed to load payout", err)
		return PayoutDetail{}, fmt.Errorf("failed to load payout: %w", err)
	}
	if payout.UserID != callerID && callerRole != store.UserRoleOps && callerRole != store.UserRoleSuperadmin {
		return PayoutDetail{}, ErrPermissionDenied
	}

	rewardIDs, err := p.store.GetPayoutRewardIDs(ctx, payoutID)
	if err != nil {
		p.logger.Error(ctx, "failed to load payout rewards", err)
		return PayoutDetail{}, fmt.Errorf("failed to load payout rewards: %w", err)
	}
	return PayoutDetail{Payout: payout, RewardIDs: rewardIDs}, nil
}

// ListUserPayouts returns the caller's payout history
func (p *PayoutProcessor) ListUserPayouts(ctx context.Context, userID uuid.UUID) ([]store.ReferralPayout, error) {
	payouts, err := p.store.GetPayoutsByUser(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to list payouts", err)
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	return payouts, nil
}

// ListAllPayouts returns a page of payouts across all users, for review
func (p *PayoutProcessor) ListAllPayouts(ctx context.Context, callerRole string, limit, offset int) ([]store.ReferralPayout, error) {
	if callerRole != store.UserRoleOps && callerRole != store.UserRoleSuperadmin {
		return nil, ErrPermissionDenied
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	payouts, err := p.store.ListPayouts(ctx, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list payouts", err)
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	return payouts, nil
}

func (p *PayoutProcessor) notifyPayoutApproved(ctx context.Context, payout store.ReferralPayout) {
	user, err := p.store.GetUserByID(ctx, payout.UserID)
	if err != nil {
		p.logger.Warn(ctx, "failed to load user for payout notification")
		return
	}
	if err := p.notifier.SendPayoutApprovedEmail(ctx, user.Email, user.FirstName, payout.Amount); err != nil {
		p.logger.Warn(ctx, "failed to send payout approved email")
	}
}

func (p *PayoutProcessor) notifyPayoutRejected(ctx context.Context, payout store.ReferralPayout, reason string) {
	user, err := p.store.GetUserByID(ctx, payout.UserID)
	if err != nil {
		p.logger.Warn(ctx, "failed to load user for payout notification")
		return
	}
	if err := p.notifier.SendPayoutRejectedEmail(ctx, user.Email, user.FirstName, payout.Amount, reason); err != nil {
		p.logger.Warn(ctx, "failed to send payout rejected email")
	}
}

// withdrawable is what a user can still request: funds in APPROVED rewards.
// available_amount also counts paid-out rewards, so those come back off.
func withdrawable(balance store.ReferralBalance) decimal.Decimal {
	return balance.AvailableAmount.Sub(balance.TotalPaidOut)
}
