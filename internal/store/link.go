package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateReferralLinkParams represents parameters for creating a referral link
type CreateReferralLinkParams struct {
	UserID    uuid.UUID
	ProductID *uuid.UUID
	Code      string
	ExpiresAt *time.Time
}

const sqlCreateReferralLink = `
INSERT INTO referral_links (user_id, product_id, code, expires_at)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, product_id, code, is_active, expires_at, total_clicks, total_conversions, total_rewards, created_at
`

// ErrDuplicateLink is returned when the (user, product) pair already has a link
// or the generated code collides.
var ErrDuplicateLink = errors.New("referral link already exists")

// CreateReferralLink creates a new referral link
func (s *Store) CreateReferralLink(ctx context.Context, params CreateReferralLinkParams) (ReferralLink, error) {
	var link ReferralLink
	err := s.db.GetContext(ctx, &link, sqlCreateReferralLink,
		params.UserID,
		params.ProductID,
		params.Code,
		params.ExpiresAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ReferralLink{}, ErrDuplicateLink
		}
		s.logger.Error(ctx, "failed to create referral link", err)
		return ReferralLink{}, fmt.Errorf("failed to create referral link: %w", err)
	}
	return link, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}

const sqlGetActiveReferralLinkByCode = `
SELECT id, user_id, product_id, code, is_active, expires_at, total_clicks, total_conversions, total_rewards, created_at
FROM referral_links
WHERE code = $1
  AND is_active = true
  AND (expires_at IS NULL OR expires_at > CURRENT_TIMESTAMP)
`

// GetActiveReferralLinkByCode retrieves a live referral link by its share code
func (s *Store) GetActiveReferralLinkByCode(ctx context.Context, code string) (ReferralLink, error) {
	var link ReferralLink
	err := s.db.GetContext(ctx, &link, sqlGetActiveReferralLinkByCode, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralLink{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get referral link by code", err)
		return ReferralLink{}, fmt.Errorf("failed to get referral link by code: %w", err)
	}
	return link, nil
}

const sqlGetReferralLinkByID = `
SELECT id, user_id, product_id, code, is_active, expires_at, total_clicks, total_conversions, total_rewards, created_at
FROM referral_links
WHERE id = $1
`

// GetReferralLinkByID retrieves a referral link by ID
func (s *Store) GetReferralLinkByID(ctx context.Context, linkID uuid.UUID) (ReferralLink, error) {
	var link ReferralLink
	err := s.db.GetContext(ctx, &link, sqlGetReferralLinkByID, linkID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralLink{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get referral link by id", err)
		return ReferralLink{}, fmt.Errorf("failed to get referral link by id: %w", err)
	}
	return link, nil
}

const sqlGetReferralLinksByUser = `
SELECT id, user_id, product_id, code, is_active, expires_at, total_clicks, total_conversions, total_rewards, created_at
FROM referral_links
WHERE user_id = $1
ORDER BY created_at DESC
`

// GetReferralLinksByUser retrieves all referral links owned by a user
func (s *Store) GetReferralLinksByUser(ctx context.Context, userID uuid.UUID) ([]ReferralLink, error) {
	var links []ReferralLink
	err := s.db.SelectContext(ctx, &links, sqlGetReferralLinksByUser, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to get referral links by user", err)
		return nil, fmt.Errorf("failed to get referral links by user: %w", err)
	}
	return links, nil
}

const sqlDeactivateReferralLink = `
UPDATE referral_links
SET is_active = false
WHERE id = $1 AND user_id = $2
`

// DeactivateReferralLink soft-disables a link owned by the given user
func (s *Store) DeactivateReferralLink(ctx context.Context, linkID, userID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeactivateReferralLink, linkID, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to deactivate referral link", err)
		return fmt.Errorf("failed to deactivate referral link: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// LinkStats aggregates a link's counters with the number of reward rows that
// actually materialized.
type LinkStats struct {
	ReferralLinkID   uuid.UUID `db:"referral_link_id"`
	TotalClicks      int       `db:"total_clicks"`
	TotalConversions int       `db:"total_conversions"`
	RewardCount      int       `db:"reward_count"`
}

const sqlGetLinkStats = `
SELECT l.id AS referral_link_id,
       l.total_clicks,
       l.total_conversions,
       COUNT(r.id) AS reward_count
FROM referral_links l
LEFT JOIN referral_rewards r ON r.referral_link_id = l.id AND r.status != 'REVERSED'
WHERE l.id = $1 AND l.user_id = $2
GROUP BY l.id, l.total_clicks, l.total_conversions
`

// GetLinkStats retrieves click/conversion statistics for one link
func (s *Store) GetLinkStats(ctx context.Context, linkID, userID uuid.UUID) (LinkStats, error) {
	var stats LinkStats
	err := s.db.GetContext(ctx, &stats, sqlGetLinkStats, linkID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LinkStats{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get link stats", err)
		return LinkStats{}, fmt.Errorf("failed to get link stats: %w", err)
	}
	return stats, nil
}
