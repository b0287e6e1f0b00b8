package utils

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/keighl/postmark"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer delivers a single HTML email
type Mailer interface {
	SendEmail(ctx context.Context, toEmail, subject, htmlContent string) error
}

// SendGridMailer sends through the SendGrid v3 API
type SendGridMailer struct {
	client *sendgrid.Client
	sender string
}

func NewSendGridMailer(apiKey, sender string) *SendGridMailer {
	return &SendGridMailer{client: sendgrid.NewSendClient(apiKey), sender: sender}
}

func (m *SendGridMailer) SendEmail(ctx context.Context, toEmail, subject, htmlContent string) error {
	from := mail.NewEmail("Wholesale Delivery", m.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlContent, htmlContent)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("failed to send email: sendgrid status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// PostmarkMailer sends through a Postmark server token
type PostmarkMailer struct {
	client *postmark.Client
	sender string
}

func NewPostmarkMailer(serverToken, sender string) *PostmarkMailer {
	return &PostmarkMailer{client: postmark.NewClient(serverToken, ""), sender: sender}
}

func (m *PostmarkMailer) SendEmail(_ context.Context, toEmail, subject, htmlContent string) error {
	_, err := m.client.SendEmail(postmark.Email{
		From:     m.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// LogMailer only logs, for development.
type LogMailer struct{}

func (LogMailer) SendEmail(_ context.Context, toEmail, subject, htmlContent string) error {
	log.Printf("mail to=%s subject=%q body=%s", toEmail, subject, htmlContent)
	return nil
}

// EmailService renders the application's emails and hands them to a Mailer
type EmailService struct {
	mailer      Mailer
	frontendURL string
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService(mailer Mailer, frontendURL string) *EmailService {
	return &EmailService{mailer: mailer, frontendURL: frontendURL}
}

// VerificationLink is the dashboard URL that confirms an admin address.
func (es *EmailService) VerificationLink(toEmail, token string) string {
	q := url.Values{}
	q.Set("token", token)
	q.Set("email", toEmail)
	return fmt.Sprintf("%s/verifymail?%s", es.frontendURL, q.Encode())
}

// SendVerificationEmail sends an email verification link to the admin
func (es *EmailService) SendVerificationEmail(ctx context.Context, toEmail, token string) error {
	subject := "Account Verification"
	htmlContent := fmt.Sprintf(
		"<p>Click this <a href=\"%s\">link</a> to verify your account.</p>",
		es.VerificationLink(toEmail, token),
	)
	return es.mailer.SendEmail(ctx, toEmail, subject, htmlContent)
}
