package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace-server/internal/observability"
	"marketplace-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrReferralCodeRequired = errors.New("referral code is required")
	ErrAnonymousIDRequired  = errors.New("anonymous id is required")
	ErrLinkNotFound         = errors.New("referral link not found")
	ErrLinkAlreadyExists    = errors.New("referral link already exists")
	ErrAttributionNotFound  = errors.New("no attribution for visitor")
	ErrProgramNotFound      = errors.New("referral program not found")
	ErrInvalidProgramConfig = errors.New("invalid referral program configuration")
	ErrPermissionDenied     = errors.New("permission denied")
)

// ReferralProcessor owns visit tracking, attribution and link management
type ReferralProcessor struct {
	store  ReferralStore
	logger *observability.Logger
}

func New(store ReferralStore, logger *observability.Logger) ReferralProcessor {
	return ReferralProcessor{
		store:  store,
		logger: logger,
	}
}

// TrackVisitParams carries everything captured from one landing-page hit
type TrackVisitParams struct {
	Code        string
	AnonymousID string
	UserID      *uuid.UUID
	IPAddress   string
	UserAgent   string
	Referrer    *string
	UTMSource   *string
	UTMMedium   *string
	UTMCampaign *string
}

// TrackVisitResult reports the recorded visit and the attribution it produced,
// if an active program made one possible.
type TrackVisitResult struct {
	Visit       store.ReferralVisit
	Attribution *store.ReferralAttribution
}

// TrackVisit records a click on a referral link and refreshes the visitor's
// attribution under last-touch semantics. Visits are recorded even when no
// program is active; only the attribution step is skipped in that case.
func (p *ReferralProcessor) TrackVisit(ctx context.Context, params TrackVisitParams) (TrackVisitResult, error) {
	if strings.TrimSpace(params.Code) == "" {
		return TrackVisitResult{}, ErrReferralCodeRequired
	}
	if strings.TrimSpace(params.AnonymousID) == "" {
		return TrackVisitResult{}, ErrAnonymousIDRequired
	}

	link, err := p.store.GetActiveReferralLinkByCode(ctx, params.Code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TrackVisitResult{}, ErrLinkNotFound
		}
		ctx = observability.WithFields(ctx, observability.Field{Key: "referral_code", Value: params.Code})
		p.logger.Error(ctx, "failed to look up referral link", err)
		return TrackVisitResult{}, fmt.Errorf("failed to look up referral link: %w", err)
	}

	visit, err := p.store.RecordVisit(ctx, store.RecordVisitParams{
		ReferralLinkID: link.ID,
		AnonymousID:    params.AnonymousID,
		IPAddress:      params.IPAddress,
		UserAgent:      params.UserAgent,
		Referrer:       params.Referrer,
		UTMSource:      params.UTMSource,
		UTMMedium:      params.UTMMedium,
		UTMCampaign:    params.UTMCampaign,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to record referral visit", err)
		return TrackVisitResult{}, fmt.Errorf("failed to record referral visit: %w", err)
	}

	program, err := p.store.GetActiveProgram(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// No active program: the click is kept for analytics but cannot
			// create an attribution.
			return TrackVisitResult{Visit: visit}, nil
		}
		p.logger.Error(ctx, "failed to load active referral program", err)
		return TrackVisitResult{}, fmt.Errorf("failed to load active referral program: %w", err)
	}

	expiresAt := time.Now().UTC().Add(time.Duration(program.AttributionWindowDays) * 24 * time.Hour)
	attribution, err := p.store.UpsertAttribution(ctx, store.UpsertAttributionParams{
		AnonymousID:    params.AnonymousID,
		UserID:         params.UserID,
		ProductID:      link.ProductID,
		ReferralLinkID: link.ID,
		LastVisitID:    visit.ID,
		ExpiresAt:      expiresAt,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to upsert attribution", err)
		return TrackVisitResult{}, fmt.Errorf("failed to upsert attribution: %w", err)
	}

	return TrackVisitResult{Visit: visit, Attribution: &attribution}, nil
}

// ResolveAttribution returns the effective attribution for a visitor and
// product: a product-scoped match wins, then a site-wide one.
func (p *ReferralProcessor) ResolveAttribution(ctx context.Context, anonymousID string, userID *uuid.UUID, productID uuid.UUID) (store.ReferralAttribution, error) {
	if strings.TrimSpace(anonymousID) == "" {
		return store.ReferralAttribution{}, ErrAnonymousIDRequired
	}

	attribution, err := p.store.GetAttributionForProduct(ctx, anonymousID, userID, productID)
	if err == nil {
		return attribution, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to resolve product attribution", err)
		return store.ReferralAttribution{}, fmt.Errorf("failed to resolve product attribution: %w", err)
	}

	attribution, err = p.store.GetSiteWideAttribution(ctx, anonymousID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ReferralAttribution{}, ErrAttributionNotFound
		}
		p.logger.Error(ctx, "failed to resolve site-wide attribution", err)
		return store.ReferralAttribution{}, fmt.Errorf("failed to resolve site-wide attribution: %w", err)
	}
	return attribution, nil
}

// CreateLink creates a referral link for a user, optionally scoped to one
// product. A nil product makes the link site-wide.
func (p *ReferralProcessor) CreateLink(ctx context.Context, userID uuid.UUID, productID *uuid.UUID, expiresAt *time.Time) (store.ReferralLink, error) {
	code := GenerateLinkCode()
	link, err := p.store.CreateReferralLink(ctx, store.CreateReferralLinkParams{
		UserID:    userID,
		ProductID: productID,
		Code:      code,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateLink) {
			return store.ReferralLink{}, ErrLinkAlreadyExists
		}
		p.logger.Error(ctx, "failed to create referral link", err)
		return store.ReferralLink{}, fmt.Errorf("failed to create referral link: %w", err)
	}
	return link, nil
}

// ListLinks returns all referral links belonging to a user
func (p *ReferralProcessor) ListLinks(ctx context.Context, userID uuid.UUID) ([]store.ReferralLink, error) {
	links, err := p.store.GetReferralLinksByUser(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to list referral links", err)
		return nil, fmt.Errorf("failed to list referral links: %w", err)
	}
	return links, nil
}

// LinkStatsResult augments raw link counters with the derived conversion rate
type LinkStatsResult struct {
	ReferralLinkID   uuid.UUID
	TotalClicks      int
	TotalConversions int
	RewardCount      int
	ConversionRate   float64
}

// GetLinkStats returns click and conversion statistics for one of the
// caller's links.
func (p *ReferralProcessor) GetLinkStats(ctx context.Context, userID, linkID uuid.UUID) (LinkStatsResult, error) {
	stats, err := p.store.GetLinkStats(ctx, linkID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LinkStatsResult{}, ErrLinkNotFound
		}
		p.logger.Error(ctx, "failed to load link stats", err)
		return LinkStatsResult{}, fmt.Errorf("failed to load link stats: %w", err)
	}

	result := LinkStatsResult{
		ReferralLinkID:   stats.ReferralLinkID,
		TotalClicks:      stats.TotalClicks,
		TotalConversions: stats.TotalConversions,
		RewardCount:      stats.RewardCount,
	}
	if stats.TotalClicks > 0 {
		result.ConversionRate = float64(stats.TotalConversions) / float64(stats.TotalClicks)
	}
	return result, nil
}

// DeactivateLink deactivates one of the caller's links
func (p *ReferralProcessor) DeactivateLink(ctx context.Context, userID, linkID uuid.UUID) error {
	err := p.store.DeactivateReferralLink(ctx, linkID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLinkNotFound
		}
		p.logger.Error(ctx, "failed to deactivate referral link", err)
		return fmt.Errorf("failed to deactivate referral link: %w", err)
	}
	return nil
}

// GetActiveProgram returns the currently active referral program
func (p *ReferralProcessor) GetActiveProgram(ctx context.Context) (store.ReferralProgram, error) {
	program, err := p.store.GetActiveProgram(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ReferralProgram{}, ErrProgramNotFound
		}
		p.logger.Error(ctx, "failed to load active referral program", err)
		return store.ReferralProgram{}, fmt.Errorf("failed to load active referral program: %w", err)
	}
	return program, nil
}

// ListPrograms returns all referral programs, active and inactive
func (p *ReferralProcessor) ListPrograms(ctx context.Context, callerRole string) ([]store.ReferralProgram, error) {
	if callerRole != store.UserRoleSuperadmin {
		return nil, ErrPermissionDenied
	}
	programs, err := p.store.ListPrograms(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list referral programs", err)
		return nil, fmt.Errorf("failed to list referral programs: %w", err)
	}
	return programs, nil
}

// CreateProgramParams defines a new referral program
type CreateProgramParams struct {
	Name                  string
	RewardPercentage      decimal.Decimal
	MaxRewardAmount       *decimal.Decimal
	MinPayoutAmount       decimal.Decimal
	AttributionWindowDays int
	IsActive              bool
}

// CreateProgram creates a referral program. Activating the new program
// deactivates any other active one so at most one program is live.
func (p *ReferralProcessor) CreateProgram(ctx context.Context, callerRole string, params CreateProgramParams) (store.ReferralProgram, error) {
	if callerRole != store.UserRoleSuperadmin {
		return store.ReferralProgram{}, ErrPermissionDenied
	}
	if err := validateProgramConfig(params.RewardPercentage, params.MaxRewardAmount, params.MinPayoutAmount, params.AttributionWindowDays); err != nil {
		return store.ReferralProgram{}, err
	}

	maxReward := decimal.NullDecimal{}
	if params.MaxRewardAmount != nil {
		maxReward = decimal.NewNullDecimal(*params.MaxRewardAmount)
	}
	program, err := p.store.CreateProgram(ctx, store.CreateProgramParams{
		Name:                  params.Name,
		RewardPercentage:      params.RewardPercentage,
		MaxRewardAmount:       maxReward,
		MinPayoutAmount:       params.MinPayoutAmount,
		AttributionWindowDays: params.AttributionWindowDays,
		IsActive:              params.IsActive,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create referral program", err)
		return store.ReferralProgram{}, fmt.Errorf("failed to create referral program: %w", err)
	}
	return program, nil
}

// UpdateProgramParams carries a partial referral program update. Nil fields
// are left unchanged.
type UpdateProgramParams struct {
	Name                  *string
	RewardPercentage      *decimal.Decimal
	MaxRewardAmount       *decimal.Decimal
	MinPayoutAmount       *decimal.Decimal
	AttributionWindowDays *int
	IsActive              *bool
}

// UpdateProgram applies a partial update to an existing program. Existing
// attributions keep the window they were created with; the new window only
// applies to visits tracked after the change.
func (p *ReferralProcessor) UpdateProgram(ctx context.Context, callerRole string, programID uuid.UUID, params UpdateProgramParams) (store.ReferralProgram, error) {
	if callerRole != store.UserRoleSuperadmin {
		return store.ReferralProgram{}, ErrPermissionDenied
	}
	if params.RewardPercentage != nil && params.RewardPercentage.IsNegative() {
		return store.ReferralProgram{}, ErrInvalidProgramConfig
	}
	if params.MaxRewardAmount != nil && params.MaxRewardAmount.IsNegative() {
		return store.ReferralProgram{}, ErrInvalidProgramConfig
	}
	if params.MinPayoutAmount != nil && params.MinPayoutAmount.IsNegative() {
		return store.ReferralProgram{}, ErrInvalidProgramConfig
	}
	if params.AttributionWindowDays != nil && *params.AttributionWindowDays <= 0 {
		return store.ReferralProgram{}, ErrInvalidProgramConfig
	}

	var maxReward *decimal.NullDecimal
	if params.MaxRewardAmount != nil {
		d := decimal.NewNullDecimal(*params.MaxRewardAmount)
		maxReward = &d
	}
	program, err := p.store.UpdateProgram(ctx, programID, store.UpdateProgramParams{
		Name:                  params.Name,
		RewardPercentage:      params.RewardPercentage,
		MaxRewardAmount:       maxReward,
		MinPayoutAmount:       params.MinPayoutAmount,
		AttributionWindowDays: params.AttributionWindowDays,
		IsActive:              params.IsActive,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ReferralProgram{}, ErrProgramNotFound
		}
		p.logger.Error(ctx, "failed to update referral program", err)
		return store.ReferralProgram{}, fmt.Errorf("failed to update referral program: %w", err)
	}
	return program, nil
}

func validateProgramConfig(rewardPct decimal.Decimal, maxReward *decimal.Decimal, minPayout decimal.Decimal, windowDays int) error {
	if rewardPct.IsNegative() {
		return ErrInvalidProgramConfig
	}
	if maxReward != nil && maxReward.IsNegative() {
		return ErrInvalidProgramConfig
	}
	if minPayout.IsNegative() {
		return ErrInvalidProgramConfig
	}
	if windowDays <= 0 {
		return ErrInvalidProgramConfig
	}
	return nil
}

// GenerateLinkCode produces a short shareable referral code
func GenerateLinkCode() string {
	id := uuid.New().String()
	return strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}
