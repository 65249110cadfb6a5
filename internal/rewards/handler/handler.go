package handler

import (
	"errors"
	"io"
	"net/http"

	"marketplace-server/internal/apierrors"
	authHandler "marketplace-server/internal/auth/handler"
	"marketplace-server/internal/observability"
	"marketplace-server/internal/rewards/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Handler exposes purchase ingestion and reward lifecycle endpoints
type Handler struct {
	rewardsProcessor processor.RewardsProcessor
	logger           *observability.Logger
}

func New(rewardsProcessor processor.RewardsProcessor, logger *observability.Logger) *Handler {
	return &Handler{
		rewardsProcessor: rewardsProcessor,
		logger:           logger,
	}
}

type purchaseItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
}

type createOrderRequest struct {
	AnonymousID *string               `json:"anonymous_id"`
	Items       []purchaseItemRequest `json:"items" binding:"required,min=1,dive"`
}

// HandleCreateOrder ingests an order and immediately processes it for
// rewards.
func (h *Handler) HandleCreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	var userID *uuid.UUID
	if id, ok := authHandler.CallerID(c); ok {
		userID = &id
	}

	items := make([]processor.PurchaseItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, processor.PurchaseItem{
			ProductID: item.ProductID,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.rewardsProcessor.CreateOrder(c.Request.Context(), processor.CreateOrderParams{
		UserID:      userID,
		AnonymousID: req.AnonymousID,
		Items:       items,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	rewards, err := h.rewardsProcessor.ProcessPurchase(c.Request.Context(), processor.ProcessPurchaseParams{
		OrderID:     order.ID,
		UserID:      userID,
		AnonymousID: req.AnonymousID,
		IPAddress:   observability.GetRealClientIP(c),
		UserAgent:   observability.GetRealUserAgent(c),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"order":   order,
		"rewards": rewards,
	})
}

type processPurchaseRequest struct {
	AnonymousID *string `json:"anonymous_id"`
}

// HandleProcessPurchase reprocesses a stored order for rewards. Only an
// operator or the order's recorded buyer may call it. Idempotent: lines that
// already earned a reward are skipped.
func (h *Handler) HandleProcessPurchase(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid order id"))
		return
	}

	// Body is optional; an absent one means reuse the buyer stored on the order.
	var req processPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	callerID, ok := authHandler.CallerID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("authentication required"))
		return
	}

	rewards, err := h.rewardsProcessor.ReprocessOrder(c.Request.Context(), callerID, authHandler.CallerRole(c), processor.ProcessPurchaseParams{
		OrderID:     orderID,
		AnonymousID: req.AnonymousID,
		IPAddress:   observability.GetRealClientIP(c),
		UserAgent:   observability.GetRealUserAgent(c),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}

// HandleGetOrder returns an order with its items
func (h *Handler) HandleGetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid order id"))
		return
	}

	order, items, err := h.rewardsProcessor.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order": order,
		"items": items,
	})
}

type orderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// HandleOrderStatusChange updates an order's status and cascades the
// resulting reward transitions.
func (h *Handler) HandleOrderStatusChange(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid order id"))
		return
	}

	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.rewardsProcessor.HandleOrderStatusChange(c.Request.Context(), authHandler.CallerRole(c), orderID, req.Status)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order_id":             result.OrderID,
		"status":               result.Status,
		"rewards_transitioned": result.RewardsTransitioned,
	})
}

type rewardStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// HandleUpdateRewardStatus approves or reverses a single reward
func (h *Handler) HandleUpdateRewardStatus(c *gin.Context) {
	rewardID, err := uuid.Parse(c.Param("rewardID"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid reward id"))
		return
	}

	var req rewardStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	reward, err := h.rewardsProcessor.UpdateRewardStatus(c.Request.Context(), authHandler.CallerRole(c), rewardID, req.Status)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reward)
}

// HandleListRewards returns the authenticated user's rewards
func (h *Handler) HandleListRewards(c *gin.Context) {
	userID, ok := authHandler.CallerID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("authentication required"))
		return
	}

	rewards, err := h.rewardsProcessor.ListRewards(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}
