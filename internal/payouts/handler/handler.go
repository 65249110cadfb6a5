package handler

import (
	"net/http"
	"strconv"

	"marketplace-server/internal/apierrors"
	authHandler "marketplace-server/internal/auth/handler"
	"marketplace-server/internal/observability"
	"marketplace-server/internal/payouts/processor"
	"marketplace-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Handler exposes balance and payout endpoints
type Handler struct {
	payoutProcessor processor.PayoutProcessor
	logger          *observability.Logger
}

func New(payoutProcessor processor.PayoutProcessor, logger *observability.Logger) *Handler {
	return &Handler{
		payoutProcessor: payoutProcessor,
		logger:          logger,
	}
}

// HandleGetBalance returns the caller's freshly recomputed balance
func (h *Handler) HandleGetBalance(c *gin.Context) {
	userID, ok := authHandler.CallerID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("authentication required"))
		return
	}

	result, err := h.payoutProcessor.GetBalance(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":          result.Balance.UserID,
		"total_earned":     result.Balance.TotalEarned,
		"locked_amount":    result.Balance.LockedAmount,
		"available_amount": result.Balance.AvailableAmount,
		"total_paid_out":   result.Balance.TotalPaidOut,
		"withdrawable":     result.Withdrawable,
		"updated_at":       result.Balance.UpdatedAt,
	})
}

type requestPayoutRequest struct {
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod  string          `json:"payment_method" binding:"required"`
	PaymentDetails store.JSONB     `json:"payment_details"`
}

// HandleRequestPayout creates a payout request for the caller
func (h *Handler) HandleRequestPayout(c *gin.Context) {
	userID, ok := authHandler.CallerID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("authentication required"))
		return
	}

	var req requestPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	payout, err := h.payoutProcessor.RequestPayout(c.Request.Context(), userID, req.Amount, req.PaymentMethod, req.PaymentDetails)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payout)
}

// HandleApprovePayout completes a pending payout
func (h *Handler) HandleApprovePayout(c *gin.Context) {
	callerID, ok := authHandler.CallerID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("authentication required"))
		return
	}

	payoutID, err := uuid.Parse(c.Param("payoutID"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid payout id"))
		return
	}

	payout, err := h.payoutProcessor.ApprovePayout(c.Request.Context(), authHandler.CallerRole(c), payoutID, callerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, payout)
}

type rejectPayoutRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// HandleRejectPayout rejects a pending payout with a reason
func (h *Handler) HandleRejectPayout(c *gin.Context) {
	callerID, ok := authHandler.CallerID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("authentication required"))
		return
	}

	payoutID, err := uuid.Parse(c.Param("payoutID"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid payout id"))
		return
	}

	var req rejectPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	payout, err := h.payoutProcessor.RejectPayout(c.Request.Context(), authHandler.CallerRole(c), payoutID, callerID, req.Reason)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, payout)
}

// HandleGetPayout returns a single payout
func (h *Handler) HandleGetPayout(c *gin.Context) {
	callerID, ok := authHandler.CallerID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("authentication required"))
		return
	}

	payoutID, err := uuid.Parse(c.Param("payoutID"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid payout id"))
		return
	}

	detail, err := h.payoutProcessor.GetPayout(c.Request.Context(), callerID, authHandler.CallerRole(c), payoutID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// HandleListMyPayouts returns the caller's payout history
func (h *Handler) HandleListMyPayouts(c *gin.Context) {
	userID, ok := authHandler.CallerID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("authentication required"))
		return
	}

	payouts, err := h.payoutProcessor.ListUserPayouts(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payouts": payouts})
}

// HandleListAllPayouts returns a page of payouts across users for review
func (h *Handler) HandleListAllPayouts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	payouts, err := h.payoutProcessor.ListAllPayouts(c.Request.Context(), authHandler.CallerRole(c), limit, offset)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payouts": payouts})
}
