package store

// User ENUMs
const (
	UserRoleVendor     = "vendor"
	UserRoleOps        = "ops"
	UserRoleSuperadmin = "superadmin"
)

// Reward ENUMs
const (
	RewardStatusPending  = "PENDING"
	RewardStatusApproved = "APPROVED"
	RewardStatusPaidOut  = "PAID_OUT"
	RewardStatusReversed = "REVERSED"
)

// Payout ENUMs
const (
	PayoutStatusPending    = "PENDING"
	PayoutStatusProcessing = "PROCESSING"
	PayoutStatusCompleted  = "COMPLETED"
	PayoutStatusRejected   = "REJECTED"
)

const (
	PayoutMethodBankTransfer = "bank_transfer"
	PayoutMethodPaypal       = "paypal"
	PayoutMethodStripe       = "stripe"
)

// Order ENUMs
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
	OrderStatusRefunded  = "refunded"
)
