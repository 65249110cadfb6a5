package handler

import (
	"net/http"
	"time"

	"marketplace-server/internal/apierrors"
	authHandler "marketplace-server/internal/auth/handler"
	"marketplace-server/internal/observability"
	"marketplace-server/internal/referral/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Handler exposes referral tracking, link and program endpoints
type Handler struct {
	referralProcessor processor.ReferralProcessor
	logger            *observability.Logger
}

func New(referralProcessor processor.ReferralProcessor, logger *observability.Logger) *Handler {
	return &Handler{
		referralProcessor: referralProcessor,
		logger:            logger,
	}
}

type trackVisitRequest struct {
	Code        string  `json:"code" binding:"required"`
	AnonymousID string  `json:"anonymous_id" binding:"required"`
	Referrer    *string `json:"referrer"`
	UTMSource   *string `json:"utm_source"`
	UTMMedium   *string `json:"utm_medium"`
	UTMCampaign *string `json:"utm_campaign"`
}

// HandleTrackVisit records a click on a referral link. The endpoint is
// public: the visitor is usually not signed in yet.
func (h *Handler) HandleTrackVisit(c *gin.Context) {
	var req trackVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	var userID *uuid.UUID
	if id, ok := authHandler.CallerID(c); ok {
		userID = &id
	}

	result, err := h.referralProcessor.TrackVisit(c.Request.Context(), processor.TrackVisitParams{
		Code:        req.Code,
		AnonymousID: req.AnonymousID,
		UserID:      userID,
		IPAddress:   observability.GetRealClientIP(c),
		UserAgent:   observability.GetRealUserAgent(c),
		Referrer:    req.Referrer,
		UTMSource:   req.UTMSource,
		UTMMedium:   req.UTMMedium,
		UTMCampaign: req.UTMCampaign,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	resp := gin.H{"visit": result.Visit}
	if result.Attribution != nil {
		resp["attribution"] = result.Attribution
	}
	c.JSON(http.StatusCreated, resp)
}

// HandleGetAttribution resolves the effective attribution for a visitor and
// product.
func (h *Handler) HandleGetAttribution(c *gin.Context) {
	anonymousID := c.Query("anonymous_id")
	productID, err := uuid.Parse(c.Query("product_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid product_id"))
		return
	}

	var userID *uuid.UUID
	if id, ok := authHandler.CallerID(c); ok {
		userID = &id
	}

	attribution, err := h.referralProcessor.ResolveAttribution(c.Request.Context(), anonymousID, userID, productID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, attribution)
}

type createLinkRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// HandleCreateLink creates a referral link for the authenticated user
func (h *Handler) HandleCreateLink(c *gin.Context) {
	userID, ok := authHandler.CallerID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("authentication required"))
		return
	}

	var req createLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	link, err := h.referralProcessor.CreateLink(c.Request.Context(), userID, req.ProductID, req.ExpiresAt)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// HandleListLinks returns the authenticated user's referral links
func (h *Handler) HandleListLinks(c *gin.Context) {
	userID, ok := authHandler.CallerID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("authentication required"))
		return
	}

	links, err := h.referralProcessor.ListLinks(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"links": links})
}

// HandleGetLinkStats returns click/conversion statistics for one link
func (h *Handler) HandleGetLinkStats(c *gin.Context) {
	userID, ok := authHandler.CallerID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("authentication required"))
		return
	}

	linkID, err := uuid.Parse(c.Param("linkID"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid link id"))
		return
	}

	stats, err := h.referralProcessor.GetLinkStats(c.Request.Context(), userID, linkID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"referral_link_id":  stats.ReferralLinkID,
		"total_clicks":      stats.TotalClicks,
		"total_conversions": stats.TotalConversions,
		"reward_count":      stats.RewardCount,
		"conversion_rate":   stats.ConversionRate,
	})
}

// HandleDeactivateLink deactivates one of the caller's links
func (h *Handler) HandleDeactivateLink(c *gin.Context) {
	userID, ok := authHandler.CallerID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("authentication required"))
		return
	}

	linkID, err := uuid.Parse(c.Param("linkID"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid link id"))
		return
	}

	if err := h.referralProcessor.DeactivateLink(c.Request.Context(), userID, linkID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleListPrograms lists all referral programs
func (h *Handler) HandleListPrograms(c *gin.Context) {
	programs, err := h.referralProcessor.ListPrograms(c.Request.Context(), authHandler.CallerRole(c))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"programs": programs})
}

type createProgramRequest struct {
	Name                  string           `json:"name" binding:"required"`
	RewardPercentage      decimal.Decimal  `json:"reward_percentage" binding:"required"`
	MaxRewardAmount       *decimal.Decimal `json:"max_reward_amount"`
	MinPayoutAmount       decimal.Decimal  `json:"min_payout_amount"`
	AttributionWindowDays int              `json:"attribution_window_days" binding:"required,min=1"`
	IsActive              bool             `json:"is_active"`
}

// HandleCreateProgram creates a referral program
func (h *Handler) HandleCreateProgram(c *gin.Context) {
	var req createProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	program, err := h.referralProcessor.CreateProgram(c.Request.Context(), authHandler.CallerRole(c), processor.CreateProgramParams{
		Name:                  req.Name,
		RewardPercentage:      req.RewardPercentage,
		MaxRewardAmount:       req.MaxRewardAmount,
		MinPayoutAmount:       req.MinPayoutAmount,
		AttributionWindowDays: req.AttributionWindowDays,
		IsActive:              req.IsActive,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, program)
}

type updateProgramRequest struct {
	Name                  *string          `json:"name"`
	RewardPercentage      *decimal.Decimal `json:"reward_percentage"`
	MaxRewardAmount       *decimal.Decimal `json:"max_reward_amount"`
	MinPayoutAmount       *decimal.Decimal `json:"min_payout_amount"`
	AttributionWindowDays *int             `json:"attribution_window_days"`
	IsActive              *bool            `json:"is_active"`
}

// HandleUpdateProgram applies a partial update to a referral program
func (h *Handler) HandleUpdateProgram(c *gin.Context) {
	programID, err := uuid.Parse(c.Param("programID"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid program id"))
		return
	}

	var req updateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	program, err := h.referralProcessor.UpdateProgram(c.Request.Context(), authHandler.CallerRole(c), programID, processor.UpdateProgramParams{
		Name:                  req.Name,
		RewardPercentage:      req.RewardPercentage,
		MaxRewardAmount:       req.MaxRewardAmount,
		MinPayoutAmount:       req.MinPayoutAmount,
		AttributionWindowDays: req.AttributionWindowDays,
		IsActive:              req.IsActive,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, program)
}
