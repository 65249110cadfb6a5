package processor

import (
	"context"
	"time"

	"marketplace-server/internal/store"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

// RewardsStore defines the database operations required by RewardsProcessor
type RewardsStore interface {
	GetActiveProgram(ctx context.Context) (store.ReferralProgram, error)
	GetAttributionForProduct(ctx context.Context, anonymousID string, userID *uuid.UUID, productID uuid.UUID) (store.ReferralAttribution, error)
	GetSiteWideAttribution(ctx context.Context, anonymousID string, userID *uuid.UUID) (store.ReferralAttribution, error)
	GetReferralLinkByID(ctx context.Context, linkID uuid.UUID) (store.ReferralLink, error)
	GetVisitByID(ctx context.Context, visitID uuid.UUID) (store.ReferralVisit, error)
	RewardExists(ctx context.Context, orderID, productID, linkID uuid.UUID) (bool, error)
	CountRecentRewardsByLink(ctx context.Context, linkID uuid.UUID, since time.Time) (int, error)
	CreateOrder(ctx context.Context, params store.CreateOrderParams) (store.Order, error)
	CreateOrderRewards(ctx context.Context, params []store.CreateRewardParams) ([]store.ReferralReward, error)
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (store.Order, error)
	GetOrderItems(ctx context.Context, orderID uuid.UUID) ([]store.OrderItem, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) error
	ApproveRewardsForOrder(ctx context.Context, orderID uuid.UUID) (int, error)
	ReverseRewardsForOrder(ctx context.Context, orderID uuid.UUID) (int, error)
	GetRewardByID(ctx context.Context, rewardID uuid.UUID) (store.ReferralReward, error)
	GetRewardsByUser(ctx context.Context, userID uuid.UUID) ([]store.ReferralReward, error)
	ApproveReward(ctx context.Context, rewardID uuid.UUID) (store.ReferralReward, error)
	ReverseReward(ctx context.Context, rewardID uuid.UUID) (store.ReferralReward, error)
}
