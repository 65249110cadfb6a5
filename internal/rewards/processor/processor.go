package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-server/internal/observability"
	"marketplace-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrRewardNotFound          = errors.New("reward not found")
	ErrInvalidTargetStatus     = errors.New("invalid target reward status")
	ErrInvalidStatusTransition = errors.New("invalid reward status transition")
	ErrInvalidOrderStatus      = errors.New("invalid order status")
	ErrPermissionDenied        = errors.New("permission denied")
)

var oneHundred = decimal.NewFromInt(100)

// RewardsProcessor turns attributed purchases into reward rows and drives
// the reward lifecycle.
type RewardsProcessor struct {
	store  RewardsStore
	logger *observability.Logger
}

func New(store RewardsStore, logger *observability.Logger) RewardsProcessor {
	return RewardsProcessor{
		store:  store,
		logger: logger,
	}
}

// PurchaseItem is one line of an incoming order
type PurchaseItem struct {
	ProductID uuid.UUID
	Price     decimal.Decimal
	Quantity  int
}

// CreateOrderParams describes an order to store. At least one of UserID and
// AnonymousID identifies the buyer.
type CreateOrderParams struct {
	UserID      *uuid.UUID
	AnonymousID *string
	Items       []PurchaseItem
}

// CreateOrder stores an externally placed order and its line items with
// status pending. Reward processing is a separate step keyed on the order id.
func (p *RewardsProcessor) CreateOrder(ctx context.Context, params CreateOrderParams) (store.Order, error) {
	total := decimal.Zero
	itemParams := make([]store.CreateOrderItemParams, 0, len(params.Items))
	for _, item := range params.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		itemParams = append(itemParams, store.CreateOrderItemParams{
			ProductID: item.ProductID,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	order, err := p.store.CreateOrder(ctx, store.CreateOrderParams{
		UserID:      params.UserID,
		AnonymousID: params.AnonymousID,
		Status:      store.OrderStatusPending,
		TotalAmount: total,
		Items:       itemParams,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create order", err)
		return store.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

// ProcessPurchaseParams identifies a stored order and the purchase context
// used for fraud screening. UserID and AnonymousID default to the buyer
// recorded on the order.
type ProcessPurchaseParams struct {
	OrderID     uuid.UUID
	UserID      *uuid.UUID
	AnonymousID *string
	IPAddress   string
	UserAgent   string
}

// ProcessPurchase creates pending rewards for every attributed line of a
// stored order. A line scoped to a product uses the product attribution;
// otherwise the buyer's site-wide attribution is consumed, at most once per
// order. Lines that fail fraud screening are skipped without failing the
// call. Reprocessing the same order creates no duplicates.
func (p *RewardsProcessor) ProcessPurchase(ctx context.Context, params ProcessPurchaseParams) ([]store.ReferralReward, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: params.OrderID.String()})

	order, err := p.store.GetOrderByID(ctx, params.OrderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		p.logger.Error(ctx, "failed to load order", err)
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	return p.processOrderRewards(ctx, order, params)
}

// ReprocessOrder re-runs reward processing for a stored order on behalf of a
// caller. Operators may reprocess any order; everyone else only an order they
// are recorded as the buyer of.
func (p *RewardsProcessor) ReprocessOrder(ctx context.Context, callerID uuid.UUID, callerRole string, params ProcessPurchaseParams) ([]store.ReferralReward, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: params.OrderID.String()})

	order, err := p.store.GetOrderByID(ctx, params.OrderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		p.logger.Error(ctx, "failed to load order", err)
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	if callerRole != store.UserRoleOps && callerRole != store.UserRoleSuperadmin {
		if order.UserID == nil || *order.UserID != callerID {
			return nil, ErrPermissionDenied
		}
	}

	return p.processOrderRewards(ctx, order, params)
}

func (p *RewardsProcessor) processOrderRewards(ctx context.Context, order store.Order, params ProcessPurchaseParams) ([]store.ReferralReward, error) {
	userID := params.UserID
	if userID == nil {
		userID = order.UserID
	}
	anonymousID := ""
	if params.AnonymousID != nil {
		anonymousID = *params.AnonymousID
	} else if order.AnonymousID != nil {
		anonymousID = *order.AnonymousID
	}
	if anonymousID == "" && userID == nil {
		return nil, nil
	}

	program, err := p.store.GetActiveProgram(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// No active program: the order stands, no rewards accrue.
			return nil, nil
		}
		p.logger.Error(ctx, "failed to load active referral program", err)
		return nil, fmt.Errorf("failed to load active referral program: %w", err)
	}

	items, err := p.store.GetOrderItems(ctx, order.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to load order items", err)
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}

	rewardParams := make([]store.CreateRewardParams, 0, len(items))
	siteWideConsumed := false
	for _, item := range items {
		attribution, ok, err := p.attributeLine(ctx, anonymousID, userID, item.ProductID, &siteWideConsumed)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		link, err := p.store.GetReferralLinkByID(ctx, attribution.ReferralLinkID)
		if err != nil {
			p.logger.Error(ctx, "failed to load referral link for attribution", err)
			return nil, fmt.Errorf("failed to load referral link: %w", err)
		}
		// Buying through your own link earns nothing.
		if userID != nil && link.UserID == *userID {
			continue
		}

		exists, err := p.store.RewardExists(ctx, order.ID, item.ProductID, link.ID)
		if err != nil {
			p.logger.Error(ctx, "failed to check reward existence", err)
			return nil, fmt.Errorf("failed to check reward existence: %w", err)
		}
		if exists {
			continue
		}

		orderAmount := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		rewardAmount := orderAmount.Mul(program.RewardPercentage).Div(oneHundred)
		if program.MaxRewardAmount.Valid && rewardAmount.GreaterThan(program.MaxRewardAmount.Decimal) {
			rewardAmount = program.MaxRewardAmount.Decimal
		}

		score, err := p.scoreLine(ctx, link.ID, attribution.LastVisitID, params.IPAddress, params.UserAgent)
		if err != nil {
			return nil, err
		}
		if score > FraudThreshold {
			p.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "referral_link_id", Value: link.ID.String()},
				observability.Field{Key: "product_id", Value: item.ProductID.String()},
				observability.Field{Key: "fraud_score", Value: fmt.Sprintf("%.2f", score)},
			), "reward rejected by fraud screening")
			continue
		}

		rewardParams = append(rewardParams, store.CreateRewardParams{
			ReferralLinkID:   link.ID,
			UserID:           link.UserID,
			OrderID:          order.ID,
			ProductID:        item.ProductID,
			OrderAmount:      orderAmount,
			RewardPercentage: program.RewardPercentage,
			RewardAmount:     rewardAmount,
			FraudScore:       score,
			IPAddress:        strPtr(params.IPAddress),
			UserAgent:        strPtr(params.UserAgent),
		})
	}

	if len(rewardParams) == 0 {
		return nil, nil
	}

	rewards, err := p.store.CreateOrderRewards(ctx, rewardParams)
	if err != nil {
		p.logger.Error(ctx, "failed to create order rewards", err)
		return nil, fmt.Errorf("failed to create order rewards: %w", err)
	}
	return rewards, nil
}

// attributeLine resolves the attribution for one order line. Product-scoped
// attributions win; the site-wide one is a fallback spent on the first line
// that needs it.
func (p *RewardsProcessor) attributeLine(ctx context.Context, anonymousID string, userID *uuid.UUID, productID uuid.UUID, siteWideConsumed *bool) (store.ReferralAttribution, bool, error) {
	attribution, err := p.store.GetAttributionForProduct(ctx, anonymousID, userID, productID)
	if err == nil {
		return attribution, true, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to resolve product attribution", err)
		return store.ReferralAttribution{}, false, fmt.Errorf("failed to resolve product attribution: %w", err)
	}

	if *siteWideConsumed {
		return store.ReferralAttribution{}, false, nil
	}
	attribution, err = p.store.GetSiteWideAttribution(ctx, anonymousID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ReferralAttribution{}, false, nil
		}
		p.logger.Error(ctx, "failed to resolve site-wide attribution", err)
		return store.ReferralAttribution{}, false, fmt.Errorf("failed to resolve site-wide attribution: %w", err)
	}
	*siteWideConsumed = true
	return attribution, true, nil
}

// scoreLine gathers fraud signals for one reward line and scores them
func (p *RewardsProcessor) scoreLine(ctx context.Context, linkID, visitID uuid.UUID, purchaseIP, purchaseUA string) (float64, error) {
	visit, err := p.store.GetVisitByID(ctx, visitID)
	if err != nil {
		p.logger.Error(ctx, "failed to load attributed visit", err)
		return 0, fmt.Errorf("failed to load attributed visit: %w", err)
	}

	recentCount, err := p.store.CountRecentRewardsByLink(ctx, linkID, time.Now().UTC().Add(-velocityWindow))
	if err != nil {
		p.logger.Error(ctx, "failed to count recent rewards", err)
		return 0, fmt.Errorf("failed to count recent rewards: %w", err)
	}

	return ScoreFraud(FraudSignals{
		IPMismatch:        purchaseIP != "" && visit.IPAddress != "" && purchaseIP != visit.IPAddress,
		UserAgentMismatch: purchaseUA != "" && visit.UserAgent != "" && purchaseUA != visit.UserAgent,
		TimeSinceVisit:    time.Since(visit.CreatedAt),
		RecentRewardCount: recentCount,
	}), nil
}

// UpdateRewardStatus moves a single reward to APPROVED or REVERSED.
// Pending rewards may be approved or reversed; approved rewards may only be
// reversed. Paid-out and reversed rewards are terminal.
func (p *RewardsProcessor) UpdateRewardStatus(ctx context.Context, callerRole string, rewardID uuid.UUID, targetStatus string) (store.ReferralReward, error) {
	if callerRole != store.UserRoleSuperadmin {
		return store.ReferralReward{}, ErrPermissionDenied
	}
	if targetStatus != store.RewardStatusApproved && targetStatus != store.RewardStatusReversed {
		return store.ReferralReward{}, ErrInvalidTargetStatus
	}

	reward, err := p.store.GetRewardByID(ctx, rewardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ReferralReward{}, ErrRewardNotFound
		}
		p.logger.Error(ctx, "failed to load reward", err)
		return store.ReferralReward{}, fmt.Errorf("failed to load reward: %w", err)
	}

	var updated store.ReferralReward
	switch targetStatus {
	case store.RewardStatusApproved:
		if reward.Status != store.RewardStatusPending {
			return store.ReferralReward{}, ErrInvalidStatusTransition
		}
		updated, err = p.store.ApproveReward(ctx, rewardID)
	case store.RewardStatusReversed:
		if reward.Status != store.RewardStatusPending && reward.Status != store.RewardStatusApproved {
			return store.ReferralReward{}, ErrInvalidStatusTransition
		}
		updated, err = p.store.ReverseReward(ctx, rewardID)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Lost the race with a concurrent transition.
			return store.ReferralReward{}, ErrInvalidStatusTransition
		}
		p.logger.Error(ctx, "failed to transition reward", err)
		return store.ReferralReward{}, fmt.Errorf("failed to transition reward: %w", err)
	}
	return updated, nil
}

// OrderStatusChangeResult reports a processed order status change
type OrderStatusChangeResult struct {
	OrderID             uuid.UUID
	Status              string
	RewardsTransitioned int
}

var orderStatuses = map[string]struct{}{
	store.OrderStatusPending:   {},
	store.OrderStatusConfirmed: {},
	store.OrderStatusShipped:   {},
	store.OrderStatusDelivered: {},
	store.OrderStatusCancelled: {},
	store.OrderStatusRefunded:  {},
}

// HandleOrderStatusChange updates an order's status and cascades to its
// rewards: confirmation approves pending rewards, cancellation or refund
// reverses whatever is still reversible.
func (p *RewardsProcessor) HandleOrderStatusChange(ctx context.Context, callerRole string, orderID uuid.UUID, status string) (OrderStatusChangeResult, error) {
	if callerRole != store.UserRoleOps && callerRole != store.UserRoleSuperadmin {
		return OrderStatusChangeResult{}, ErrPermissionDenied
	}
	if _, ok := orderStatuses[status]; !ok {
		return OrderStatusChangeResult{}, ErrInvalidOrderStatus
	}

	if err := p.store.UpdateOrderStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return OrderStatusChangeResult{}, ErrOrderNotFound
		}
		p.logger.Error(ctx, "failed to update order status", err)
		return OrderStatusChangeResult{}, fmt.Errorf("failed to update order status: %w", err)
	}

	result := OrderStatusChangeResult{OrderID: orderID, Status: status}
	var transitioned int
	var err error
	switch status {
	case store.OrderStatusConfirmed:
		transitioned, err = p.store.ApproveRewardsForOrder(ctx, orderID)
	case store.OrderStatusCancelled, store.OrderStatusRefunded:
		transitioned, err = p.store.ReverseRewardsForOrder(ctx, orderID)
	default:
		return result, nil
	}
	if err != nil {
		p.logger.Error(ctx, "failed to transition rewards for order", err)
		return OrderStatusChangeResult{}, fmt.Errorf("failed to transition rewards for order: %w", err)
	}
	result.RewardsTransitioned = transitioned
	return result, nil
}

// GetOrder returns an order and its items
func (p *RewardsProcessor) GetOrder(ctx context.Context, orderID uuid.UUID) (store.Order, []store.OrderItem, error) {
	order, err := p.store.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Order{}, nil, ErrOrderNotFound
		}
		p.logger.Error(ctx, "failed to load order", err)
		return store.Order{}, nil, fmt.Errorf("failed to load order: %w", err)
	}
	items, err := p.store.GetOrderItems(ctx, orderID)
	if err != nil {
		p.logger.Error(ctx, "failed to load order items", err)
		return store.Order{}, nil, fmt.Errorf("failed to load order items: %w", err)
	}
	return order, items, nil
}

// ListRewards returns all rewards earned by a user
func (p *RewardsProcessor) ListRewards(ctx context.Context, userID uuid.UUID) ([]store.ReferralReward, error) {
	rewards, err := p.store.GetRewardsByUser(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to list rewards", err)
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}
	return rewards, nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
