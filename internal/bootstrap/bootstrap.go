package bootstrap

import (
	"context"
	"fmt"

	"marketplace-server/internal/config"
	"marketplace-server/internal/observability"
	"marketplace-server/internal/store"

	authHandler "marketplace-server/internal/auth/handler"
	authProcessor "marketplace-server/internal/auth/processor"
	"marketplace-server/internal/clients/mail"
	"marketplace-server/internal/email"
	"marketplace-server/internal/jobs/scheduler"
	"marketplace-server/internal/jobs/scheduler/jobs"
	payoutHandler "marketplace-server/internal/payouts/handler"
	payoutProcessor "marketplace-server/internal/payouts/processor"
	referralHandler "marketplace-server/internal/referral/handler"
	referralProcessor "marketplace-server/internal/referral/processor"
	rewardHandler "marketplace-server/internal/rewards/handler"
	rewardProcessor "marketplace-server/internal/rewards/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler     authHandler.Handler
	ReferralHandler *referralHandler.Handler
	RewardHandler   *rewardHandler.Handler
	PayoutHandler   *payoutHandler.Handler

	// Background jobs
	Scheduler *scheduler.Scheduler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}

	// Initialize email service
	emailService := email.New(mailClient, cfg.Services.DefaultEmailSender, logger)

	// Initialize auth processor and handler
	authProc := authProcessor.New(&deps.Store, emailService, cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(authProc, logger)

	// Initialize referral processor and handler
	referralProc := referralProcessor.New(&deps.Store, logger)
	deps.ReferralHandler = referralHandler.New(referralProc, logger)

	// Initialize rewards processor and handler
	rewardProc := rewardProcessor.New(&deps.Store, logger)
	deps.RewardHandler = rewardHandler.New(rewardProc, logger)

	// Initialize payout processor and handler
	payoutProc := payoutProcessor.New(&deps.Store, emailService, logger)
	deps.PayoutHandler = payoutHandler.New(payoutProc, logger)

	// Initialize background jobs
	deps.Scheduler = scheduler.New(logger)
	deps.Scheduler.Register(jobs.NewAttributionCleanupJob(&deps.Store, logger, cfg.Jobs.AttributionCleanupInterval))
	deps.Scheduler.Register(jobs.NewVisitRetentionJob(&deps.Store, logger, cfg.Jobs.VisitRetentionInterval, cfg.Jobs.VisitRetentionDays))

	return deps, nil
}
