package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UpsertAttributionParams represents parameters for the last-touch upsert
type UpsertAttributionParams struct {
	AnonymousID    string
	UserID         *uuid.UUID
	ProductID      *uuid.UUID
	ReferralLinkID uuid.UUID
	LastVisitID    uuid.UUID
	ExpiresAt      time.Time
}

const sqlUpsertAttribution = `
INSERT INTO referral_attributions (anonymous_id, user_id, product_id, referral_link_id, last_visit_id, expires_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (anonymous_id, product_id)
DO UPDATE SET user_id = EXCLUDED.user_id,
              referral_link_id = EXCLUDED.referral_link_id,
              last_visit_id = EXCLUDED.last_visit_id,
              expires_at = EXCLUDED.expires_at,
              updated_at = CURRENT_TIMESTAMP
RETURNING id, anonymous_id, user_id, product_id, referral_link_id, last_visit_id, expires_at, created_at, updated_at
`

// UpsertAttribution creates or refreshes the attribution for
// (anonymous_id, product). Last touch wins.
func (s *Store) UpsertAttribution(ctx context.Context, params UpsertAttributionParams) (ReferralAttribution, error) {
	var attribution ReferralAttribution
	err := s.db.GetContext(ctx, &attribution, sqlUpsertAttribution,
		params.AnonymousID,
		params.UserID,
		params.ProductID,
		params.ReferralLinkID,
		params.LastVisitID,
		params.ExpiresAt)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert attribution", err)
		return ReferralAttribution{}, fmt.Errorf("failed to upsert attribution: %w", err)
	}
	return attribution, nil
}

const sqlGetAttributionForProduct = `
SELECT id, anonymous_id, user_id, product_id, referral_link_id, last_visit_id, expires_at, created_at, updated_at
FROM referral_attributions
WHERE product_id = $3
  AND expires_at > CURRENT_TIMESTAMP
  AND (anonymous_id = $1 OR ($2::uuid IS NOT NULL AND user_id = $2))
-- Anonymous rows carry a NULL user_id, making the bare sort key NULL rather
-- than false; NULL sorts first under DESC and would outrank the user match.
ORDER BY COALESCE($2::uuid IS NOT NULL AND user_id = $2, false) DESC, updated_at DESC
LIMIT 1
`

// GetAttributionForProduct returns the non-expired attribution for an
// identity and product, preferring an authenticated-user match when both the
// anonymous and the user row exist. Read-only.
func (s *Store) GetAttributionForProduct(ctx context.Context, anonymousID string, userID *uuid.UUID, productID uuid.UUID) (ReferralAttribution, error) {
	var attribution ReferralAttribution
	err := s.db.GetContext(ctx, &attribution, sqlGetAttributionForProduct, anonymousID, userID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralAttribution{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get attribution for product", err)
		return ReferralAttribution{}, fmt.Errorf("failed to get attribution for product: %w", err)
	}
	return attribution, nil
}

const sqlGetSiteWideAttribution = `
SELECT id, anonymous_id, user_id, product_id, referral_link_id, last_visit_id, expires_at, created_at, updated_at
FROM referral_attributions
WHERE product_id IS NULL
  AND expires_at > CURRENT_TIMESTAMP
  AND (anonymous_id = $1 OR ($2::uuid IS NOT NULL AND user_id = $2))
-- Anonymous rows carry a NULL user_id, making the bare sort key NULL rather
-- than false; NULL sorts first under DESC and would outrank the user match.
ORDER BY COALESCE($2::uuid IS NOT NULL AND user_id = $2, false) DESC, updated_at DESC
LIMIT 1
`

// GetSiteWideAttribution returns the non-expired product-less attribution for
// an identity. Visits through unscoped links land here and are consumed by
// the purchase path.
func (s *Store) GetSiteWideAttribution(ctx context.Context, anonymousID string, userID *uuid.UUID) (ReferralAttribution, error) {
	var attribution ReferralAttribution
	err := s.db.GetContext(ctx, &attribution, sqlGetSiteWideAttribution, anonymousID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralAttribution{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get site-wide attribution", err)
		return ReferralAttribution{}, fmt.Errorf("failed to get site-wide attribution: %w", err)
	}
	return attribution, nil
}

const sqlDeleteExpiredAttributions = `
DELETE FROM referral_attributions
WHERE expires_at < CURRENT_TIMESTAMP
`

// DeleteExpiredAttributions removes attribution rows past their window.
// Housekeeping only; reward creation never sees these rows because every
// lookup filters on expires_at.
func (s *Store) DeleteExpiredAttributions(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlDeleteExpiredAttributions)
	if err != nil {
		s.logger.Error(ctx, "failed to delete expired attributions", err)
		return 0, fmt.Errorf("failed to delete expired attributions: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}
