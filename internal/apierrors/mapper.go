package apierrors

import (
	"errors"
	"strings"

	authProcessor "marketplace-server/internal/auth/processor"
	payoutsProcessor "marketplace-server/internal/payouts/processor"
	referralProcessor "marketplace-server/internal/referral/processor"
	rewardsProcessor "marketplace-server/internal/rewards/processor"
	"marketplace-server/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	// Check if already an APIError
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Map auth processor errors
	case errors.Is(err, authProcessor.ErrEmailAlreadyExists):
		return Conflict(CodeEmailExists, "Email already exists")

	case errors.Is(err, authProcessor.ErrEmailDoesNotExist):
		return NotFound(CodeEmailNotFound, "Email does not exist")

	case errors.Is(err, authProcessor.ErrIncorrectPassword):
		return Unauthorized("Invalid email or password")

	case errors.Is(err, authProcessor.ErrUserNotFound):
		return NotFound(CodeUserNotFound, "User not found")

	case errors.Is(err, authProcessor.ErrInvalidRole):
		return BadRequest(CodeInvalidInput, "Role must be one of: vendor, ops, superadmin")

	case errors.Is(err, authProcessor.ErrInvalidJWTToken),
		errors.Is(err, authProcessor.ErrExpiredToken),
		errors.Is(err, authProcessor.ErrParseJWTToken):
		return Unauthorized("Authorization token is missing or invalid")

	// Map referral processor errors
	case errors.Is(err, referralProcessor.ErrReferralCodeRequired):
		return BadRequest(CodeInvalidInput, "Referral code is required")

	case errors.Is(err, referralProcessor.ErrAnonymousIDRequired):
		return BadRequest(CodeInvalidInput, "Anonymous id is required")

	case errors.Is(err, referralProcessor.ErrLinkNotFound):
		return NotFound(CodeLinkNotFound, "Referral link not found or inactive")

	case errors.Is(err, referralProcessor.ErrLinkAlreadyExists):
		return Conflict(CodeLinkExists, "A referral link already exists for this product")

	case errors.Is(err, referralProcessor.ErrAttributionNotFound):
		return NotFound(CodeAttributionNotFound, "No attribution found")

	case errors.Is(err, referralProcessor.ErrProgramNotFound):
		return NotFound(CodeProgramNotFound, "Referral program not found")

	case errors.Is(err, referralProcessor.ErrInvalidProgramConfig):
		return BadRequest(CodeInvalidProgram, "Reward percentage and attribution window must be non-negative")

	case errors.Is(err, referralProcessor.ErrPermissionDenied):
		return Forbidden("You do not have access to this resource")

	// Map rewards processor errors
	case errors.Is(err, rewardsProcessor.ErrOrderNotFound):
		return NotFound(CodeOrderNotFound, "Order not found")

	case errors.Is(err, rewardsProcessor.ErrRewardNotFound):
		return NotFound(CodeRewardNotFound, "Reward not found")

	case errors.Is(err, rewardsProcessor.ErrInvalidTargetStatus):
		return BadRequest(CodeInvalidStateTransition, "Target status must be APPROVED or REVERSED")

	case errors.Is(err, rewardsProcessor.ErrInvalidStatusTransition):
		return BadRequest(CodeInvalidStateTransition, "Reward is not in an eligible state for this transition")

	case errors.Is(err, rewardsProcessor.ErrInvalidOrderStatus):
		return BadRequest(CodeInvalidOrderStatus, "Invalid order status")

	case errors.Is(err, rewardsProcessor.ErrPermissionDenied):
		return Forbidden("You do not have access to this resource")

	// Map payouts processor errors
	case errors.Is(err, payoutsProcessor.ErrPayoutNotFound):
		return NotFound(CodePayoutNotFound, "Payout not found")

	case errors.Is(err, payoutsProcessor.ErrInvalidPayoutAmount):
		return BadRequest(CodeInvalidInput, "Payout amount must be greater than zero")

	case errors.Is(err, payoutsProcessor.ErrInvalidPayoutMethod):
		return BadRequest(CodeInvalidPayoutMethod, "Payment method must be one of: bank_transfer, paypal, stripe")

	case errors.Is(err, payoutsProcessor.ErrInsufficientFunds):
		return BadRequest(CodeInsufficientFunds, "Payout amount exceeds available balance")

	case errors.Is(err, payoutsProcessor.ErrBelowMinimumPayout):
		return BadRequest(CodeBelowMinimumPayout, "Payout amount is below the program minimum")

	case errors.Is(err, payoutsProcessor.ErrInvalidPayoutState):
		return BadRequest(CodeInvalidStateTransition, "Payout is not in a pending state")

	case errors.Is(err, payoutsProcessor.ErrPermissionDenied):
		return Forbidden("You do not have access to this resource")

	// Map store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError attempts to identify external service errors
// and map them to appropriate service-specific error responses.
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	// Email service errors (Resend)
	if strings.Contains(errMsg, "resend") || strings.Contains(errMsg, "email service") {
		return ServiceUnavailable(
			CodeEmailServiceError,
			"Email service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	// Default: Unknown error - return sanitized 500
	return InternalError(err)
}
