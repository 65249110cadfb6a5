package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"

	"marketplace-server/internal/clients/mail"
	"marketplace-server/internal/observability"

	"github.com/shopspring/decimal"
)

var (
	ErrSendingEmail  = errors.New("error sending email")
	ErrEmptyTemplate = errors.New("email template is empty")
)

// EmailService handles sending transactional emails
type EmailService struct {
	mailClient    *mail.ResendClient
	logger        *observability.Logger
	defaultSender string
	templates     map[string]string
}

// TemplateData represents the data that can be used in templates
type TemplateData struct {
	FirstName       string
	Email           string
	Amount          string
	RejectionReason string
	ReferralCode    string
}

// New creates a new EmailService
func New(mailClient *mail.ResendClient, defaultSender string, logger *observability.Logger) *EmailService {
	return &EmailService{
		mailClient:    mailClient,
		logger:        logger,
		defaultSender: defaultSender,
		templates: map[string]string{
			"welcome": `
			<html>
				<body>
					<h1>Welcome, {{.FirstName}}!</h1>
					<p>Thank you for joining the marketplace. Your referral code is <strong>{{.ReferralCode}}</strong>.</p>
					<p>Share your referral links to start earning rewards on attributed purchases.</p>
				</body>
			</html>
			`,
			"payout_approved": `
			<html>
				<body>
					<h1>Payout Approved</h1>
					<p>Hi {{.FirstName}},</p>
					<p>Your payout request for <strong>{{.Amount}}</strong> has been approved and is on its way.</p>
					<p>Depending on your payment method it may take a few business days to arrive.</p>
				</body>
			</html>
			`,
			"payout_rejected": `
			<html>
				<body>
					<h1>Payout Rejected</h1>
					<p>Hi {{.FirstName}},</p>
					<p>Your payout request for <strong>{{.Amount}}</strong> was rejected.</p>
					<p>Reason: {{.RejectionReason}}</p>
					<p>The funds remain in your balance and you can submit a new request at any time.</p>
				</body>
			</html>
			`,
		},
	}
}

// renderTemplate renders a template with the provided data
func (s *EmailService) renderTemplate(templateName string, data TemplateData) (string, error) {
	tmplStr, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	tmpl, err := template.New(templateName).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// SendWelcomeEmail sends a welcome email to a new user
func (s *EmailService) SendWelcomeEmail(ctx context.Context, to, firstName, referralCode string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "welcome"},
		observability.Field{Key: "recipient", Value: to},
	)

	subject := "Welcome to the marketplace"

	data := TemplateData{
		FirstName:    firstName,
		Email:        to,
		ReferralCode: referralCode,
	}

	htmlContent, err := s.renderTemplate("welcome", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render welcome email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	_, err = s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send welcome email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}

// SendPayoutApprovedEmail notifies a user that their payout was approved
func (s *EmailService) SendPayoutApprovedEmail(ctx context.Context, to, firstName string, amount decimal.Decimal) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "payout_approved"},
		observability.Field{Key: "recipient", Value: to},
	)

	subject := "Your payout has been approved"

	data := TemplateData{
		FirstName: firstName,
		Email:     to,
		Amount:    amount.StringFixed(2),
	}

	htmlContent, err := s.renderTemplate("payout_approved", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render payout approved email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	_, err = s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send payout approved email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}

// SendPayoutRejectedEmail notifies a user that their payout was rejected
func (s *EmailService) SendPayoutRejectedEmail(ctx context.Context, to, firstName string, amount decimal.Decimal, reason string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "payout_rejected"},
		observability.Field{Key: "recipient", Value: to},
	)

	subject := "Your payout request was rejected"

	data := TemplateData{
		FirstName:       firstName,
		Email:           to,
		Amount:          amount.StringFixed(2),
		RejectionReason: reason,
	}

	htmlContent, err := s.renderTemplate("payout_rejected", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render payout rejected email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	_, err = s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send payout rejected email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}
