package processor

import (
	"context"

	"marketplace-server/internal/store"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

// ReferralStore defines the database operations required by ReferralProcessor
type ReferralStore interface {
	GetActiveReferralLinkByCode(ctx context.Context, code string) (store.ReferralLink, error)
	RecordVisit(ctx context.Context, params store.RecordVisitParams) (store.ReferralVisit, error)
	GetActiveProgram(ctx context.Context) (store.ReferralProgram, error)
	UpsertAttribution(ctx context.Context, params store.UpsertAttributionParams) (store.ReferralAttribution, error)
	GetAttributionForProduct(ctx context.Context, anonymousID string, userID *uuid.UUID, productID uuid.UUID) (store.ReferralAttribution, error)
	GetSiteWideAttribution(ctx context.Context, anonymousID string, userID *uuid.UUID) (store.ReferralAttribution, error)
	CreateReferralLink(ctx context.Context, params store.CreateReferralLinkParams) (store.ReferralLink, error)
	GetReferralLinksByUser(ctx context.Context, userID uuid.UUID) ([]store.ReferralLink, error)
	GetLinkStats(ctx context.Context, linkID, userID uuid.UUID) (store.LinkStats, error)
	DeactivateReferralLink(ctx context.Context, linkID, userID uuid.UUID) error
	ListPrograms(ctx context.Context) ([]store.ReferralProgram, error)
	CreateProgram(ctx context.Context, params store.CreateProgramParams) (store.ReferralProgram, error)
	UpdateProgram(ctx context.Context, programID uuid.UUID, params store.UpdateProgramParams) (store.ReferralProgram, error)
}
