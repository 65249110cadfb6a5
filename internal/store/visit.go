package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecordVisitParams represents parameters for recording a referral visit
type RecordVisitParams struct {
	ReferralLinkID uuid.UUID
	AnonymousID    string
	IPAddress      string
	UserAgent      string
	Referrer       *string
	UTMSource      *string
	UTMMedium      *string
	UTMCampaign    *string
}

const sqlCreateVisit = `
INSERT INTO referral_visits (referral_link_id, anonymous_id, ip_address, user_agent, referrer, utm_source, utm_medium, utm_campaign)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, referral_link_id, anonymous_id, ip_address, user_agent, referrer, utm_source, utm_medium, utm_campaign, created_at
`

const sqlIncrementLinkClicks = `
UPDATE referral_links
SET total_clicks = total_clicks + 1
WHERE id = $1
`

// RecordVisit inserts an immutable visit row and increments the link's click
// counter in one transaction.
func (s *Store) RecordVisit(ctx context.Context, params RecordVisitParams) (ReferralVisit, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return ReferralVisit{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var visit ReferralVisit
	err = tx.GetContext(ctx, &visit, sqlCreateVisit,
		params.ReferralLinkID,
		params.AnonymousID,
		params.IPAddress,
		params.UserAgent,
		params.Referrer,
		params.UTMSource,
		params.UTMMedium,
		params.UTMCampaign)
	if err != nil {
		s.logger.Error(ctx, "failed to create visit", err)
		return ReferralVisit{}, fmt.Errorf("failed to create visit: %w", err)
	}

	if _, err = tx.ExecContext(ctx, sqlIncrementLinkClicks, params.ReferralLinkID); err != nil {
		s.logger.Error(ctx, "failed to increment link clicks", err)
		return ReferralVisit{}, fmt.Errorf("failed to increment link clicks: %w", err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return ReferralVisit{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return visit, nil
}

const sqlGetVisitByID = `
SELECT id, referral_link_id, anonymous_id, ip_address, user_agent, referrer, utm_source, utm_medium, utm_campaign, created_at
FROM referral_visits
WHERE id = $1
`

// GetVisitByID retrieves a visit by ID
func (s *Store) GetVisitByID(ctx context.Context, visitID uuid.UUID) (ReferralVisit, error) {
	var visit ReferralVisit
	err := s.db.GetContext(ctx, &visit, sqlGetVisitByID, visitID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralVisit{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get visit by id", err)
		return ReferralVisit{}, fmt.Errorf("failed to get visit by id: %w", err)
	}
	return visit, nil
}

const sqlDeleteVisitsBefore = `
DELETE FROM referral_visits
WHERE created_at < $1
  AND id NOT IN (SELECT last_visit_id FROM referral_attributions)
`

// DeleteVisitsBefore removes visit rows older than the cutoff, keeping any
// visit a live attribution still points at. Used by the retention job only.
func (s *Store) DeleteVisitsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlDeleteVisitsBefore, cutoff)
	if err != nil {
		s.logger.Error(ctx, "failed to delete old visits", err)
		return 0, fmt.Errorf("failed to delete old visits: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}
