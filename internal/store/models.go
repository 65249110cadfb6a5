package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	if len(data) == 0 {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(data, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// User represents a marketplace account able to own referral links
type User struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	HashedPassword string    `db:"hashed_password" json:"-"`
	FirstName      string    `db:"first_name" json:"first_name"`
	LastName       string    `db:"last_name" json:"last_name"`
	Role           string    `db:"role" json:"role"`
	ReferralCode   string    `db:"referral_code" json:"referral_code"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// ReferralProgram is the admin-editable commission configuration.
// At most one row is treated as active at a time.
type ReferralProgram struct {
	ID                     uuid.UUID           `db:"id" json:"id"`
	Name                   string              `db:"name" json:"name"`
	RewardPercentage       decimal.Decimal     `db:"reward_percentage" json:"reward_percentage"`
	MaxRewardAmount        decimal.NullDecimal `db:"max_reward_amount" json:"max_reward_amount"`
	MinPayoutAmount        decimal.Decimal     `db:"min_payout_amount" json:"min_payout_amount"`
	AttributionWindowDays  int                 `db:"attribution_window_days" json:"attribution_window_days"`
	IsActive               bool                `db:"is_active" json:"is_active"`
	CreatedAt              time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time           `db:"updated_at" json:"updated_at"`
}

// ReferralLink is a shareable code owned by one user, optionally scoped to
// one product. Counters are eventually-consistent eye candy, never payout
// authoritative.
type ReferralLink struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	UserID           uuid.UUID       `db:"user_id" json:"user_id"`
	ProductID        *uuid.UUID      `db:"product_id" json:"product_id,omitempty"`
	Code             string          `db:"code" json:"code"`
	IsActive         bool            `db:"is_active" json:"is_active"`
	ExpiresAt        *time.Time      `db:"expires_at" json:"expires_at,omitempty"`
	TotalClicks      int             `db:"total_clicks" json:"total_clicks"`
	TotalConversions int             `db:"total_conversions" json:"total_conversions"`
	TotalRewards     decimal.Decimal `db:"total_rewards" json:"total_rewards"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}

// ReferralVisit is an immutable click event. Never mutated after creation.
type ReferralVisit struct {
	ID             uuid.UUID `db:"id" json:"id"`
	ReferralLinkID uuid.UUID `db:"referral_link_id" json:"referral_link_id"`
	AnonymousID    string    `db:"anonymous_id" json:"anonymous_id"`
	IPAddress      string    `db:"ip_address" json:"ip_address"`
	UserAgent      string    `db:"user_agent" json:"user_agent"`
	Referrer       *string   `db:"referrer" json:"referrer,omitempty"`
	UTMSource      *string   `db:"utm_source" json:"utm_source,omitempty"`
	UTMMedium      *string   `db:"utm_medium" json:"utm_medium,omitempty"`
	UTMCampaign    *string   `db:"utm_campaign" json:"utm_campaign,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// ReferralAttribution assigns purchase credit for (anonymous_id, product) to
// a referral link. Last touch wins. A NULL product is the site-wide fallback.
type ReferralAttribution struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	AnonymousID    string     `db:"anonymous_id" json:"anonymous_id"`
	UserID         *uuid.UUID `db:"user_id" json:"user_id,omitempty"`
	ProductID      *uuid.UUID `db:"product_id" json:"product_id,omitempty"`
	ReferralLinkID uuid.UUID  `db:"referral_link_id" json:"referral_link_id"`
	LastVisitID    uuid.UUID  `db:"last_visit_id" json:"last_visit_id"`
	ExpiresAt      time.Time  `db:"expires_at" json:"expires_at"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// IsExpired reports whether the attribution window has closed.
func (a ReferralAttribution) IsExpired(now time.Time) bool {
	return now.After(a.ExpiresAt)
}

// ReferralReward is one commission row per (order line, referral link).
// locked_amount and available_amount are mutually exclusive views of
// reward_amount depending on status.
type ReferralReward struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	ReferralLinkID   uuid.UUID       `db:"referral_link_id" json:"referral_link_id"`
	UserID           uuid.UUID       `db:"user_id" json:"user_id"`
	OrderID          uuid.UUID       `db:"order_id" json:"order_id"`
	ProductID        uuid.UUID       `db:"product_id" json:"product_id"`
	OrderAmount      decimal.Decimal `db:"order_amount" json:"order_amount"`
	RewardPercentage decimal.Decimal `db:"reward_percentage" json:"reward_percentage"`
	RewardAmount     decimal.Decimal `db:"reward_amount" json:"reward_amount"`
	LockedAmount     decimal.Decimal `db:"locked_amount" json:"locked_amount"`
	AvailableAmount  decimal.Decimal `db:"available_amount" json:"available_amount"`
	FraudScore       float64         `db:"fraud_score" json:"fraud_score"`
	IPAddress        *string         `db:"ip_address" json:"ip_address,omitempty"`
	UserAgent        *string         `db:"user_agent" json:"user_agent,omitempty"`
	Status           string          `db:"status" json:"status"`
	ApprovedAt       *time.Time      `db:"approved_at" json:"approved_at,omitempty"`
	ReversedAt       *time.Time      `db:"reversed_at" json:"reversed_at,omitempty"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}

// ReferralBalance is a per-user cache fully derived from reward rows.
// The recompute statement is its only writer.
type ReferralBalance struct {
	UserID          uuid.UUID       `db:"user_id" json:"user_id"`
	TotalEarned     decimal.Decimal `db:"total_earned" json:"total_earned"`
	LockedAmount    decimal.Decimal `db:"locked_amount" json:"locked_amount"`
	AvailableAmount decimal.Decimal `db:"available_amount" json:"available_amount"`
	TotalPaidOut    decimal.Decimal `db:"total_paid_out" json:"total_paid_out"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// ReferralPayout is a withdrawal request against a user's withdrawable funds.
type ReferralPayout struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	UserID          uuid.UUID       `db:"user_id" json:"user_id"`
	Amount          decimal.Decimal `db:"amount" json:"amount"`
	PaymentMethod   string          `db:"payment_method" json:"payment_method"`
	PaymentDetails  JSONB           `db:"payment_details" json:"payment_details,omitempty"`
	Status          string          `db:"status" json:"status"`
	RejectionReason *string         `db:"rejection_reason" json:"rejection_reason,omitempty"`
	ProcessedBy     *uuid.UUID      `db:"processed_by" json:"processed_by,omitempty"`
	ProcessedAt     *time.Time      `db:"processed_at" json:"processed_at,omitempty"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}

// Order is an externally supplied finalized purchase.
type Order struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	UserID      *uuid.UUID      `db:"user_id" json:"user_id,omitempty"`
	AnonymousID *string         `db:"anonymous_id" json:"anonymous_id,omitempty"`
	Status      string          `db:"status" json:"status"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"total_amount"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	OrderID   uuid.UUID       `db:"order_id" json:"order_id"`
	ProductID uuid.UUID       `db:"product_id" json:"product_id"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Quantity  int             `db:"quantity" json:"quantity"`
}
