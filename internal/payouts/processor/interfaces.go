package processor

import (
	"context"

	"marketplace-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

// PayoutStore defines the database operations required by PayoutProcessor
type PayoutStore interface {
	RecomputeBalance(ctx context.Context, userID uuid.UUID) (store.ReferralBalance, error)
	GetActiveProgram(ctx context.Context) (store.ReferralProgram, error)
	GetPayableRewards(ctx context.Context, userID uuid.UUID) ([]store.ReferralReward, error)
	CreatePayout(ctx context.Context, params store.CreatePayoutParams) (store.ReferralPayout, error)
	GetPayoutByID(ctx context.Context, payoutID uuid.UUID) (store.ReferralPayout, error)
	GetPayoutRewardIDs(ctx context.Context, payoutID uuid.UUID) ([]uuid.UUID, error)
	GetPayoutsByUser(ctx context.Context, userID uuid.UUID) ([]store.ReferralPayout, error)
	ListPayouts(ctx context.Context, limit, offset int) ([]store.ReferralPayout, error)
	CompletePayout(ctx context.Context, payoutID, processedBy uuid.UUID) (store.ReferralPayout, error)
	RejectPayout(ctx context.Context, payoutID, processedBy uuid.UUID, reason string) (store.ReferralPayout, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
}

// PayoutNotifier sends payout outcome notifications to users
type PayoutNotifier interface {
	SendPayoutApprovedEmail(ctx context.Context, email, firstName string, amount decimal.Decimal) error
	SendPayoutRejectedEmail(ctx context.Context, email, firstName string, amount decimal.Decimal, reason string) error
}
