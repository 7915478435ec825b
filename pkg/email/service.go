package email

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	baseURL     string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service.
// If sendGridAPIKey is provided, emails will be sent via SendGrid.
// Otherwise, emails will be logged to console (development mode).
func NewService(fromEmail, fromName, baseURL, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		baseURL:     baseURL,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SendMagicLinkEmail sends a one-time password setup link to a client.
func (s *Service) SendMagicLinkEmail(toEmail, toName, token string) error {
	linkURL := fmt.Sprintf("%s/set-password/%s", s.baseURL, token)

	subject := "Set up your AgencyDesk password"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to AgencyDesk</h2>
			<p>Hi %s,</p>
			<p>Your client portal account is ready. Click the button below to choose a password:</p>
			<p><a href="%s" style="background-color: #4A90E2; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Set Password</a></p>
			<p>Or copy and paste this link into your browser:</p>
			<p><a href="%s">%s</a></p>
			<p><strong>This link can be used once and expires in 15 minutes.</strong></p>
			<p>If you didn't request access, you can safely ignore this email.</p>
			<p>Thanks,<br>The AgencyDesk Team</p>
		</body>
		</html>
	`, toName, linkURL, linkURL, linkURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your client portal account is ready. Click the link below to choose a password:

%s

This link can be used once and expires in 15 minutes.

If you didn't request access, you can safely ignore this email.

Thanks,
The AgencyDesk Team
	`, toName, linkURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, toName, subject, linkURL)
}

// SendSubmissionReviewedEmail tells the submitter how a review went.
func (s *Service) SendSubmissionReviewedEmail(toEmail, toName, submissionNumber, title, status, reviewNotes string) error {
	submissionURL := fmt.Sprintf("%s/submissions/%s", s.baseURL, submissionNumber)

	subject := fmt.Sprintf("Submission %s was %s", submissionNumber, humanStatus(status))
	notesBlock := ""
	if reviewNotes != "" {
		notesBlock = fmt.Sprintf("<p><strong>Review notes:</strong></p><blockquote>%s</blockquote>", reviewNotes)
	}
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Submission Reviewed</h2>
			<p>Hi %s,</p>
			<p>Your submission <strong>%s — %s</strong> was <strong>%s</strong>.</p>
			%s
			<p><a href="%s" style="background-color: #4A90E2; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">View Submission</a></p>
			<p>Thanks,<br>The AgencyDesk Team</p>
		</body>
		</html>
	`, toName, submissionNumber, title, humanStatus(status), notesBlock, submissionURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your submission %s — %s was %s.

%s

View it here: %s

Thanks,
The AgencyDesk Team
	`, toName, submissionNumber, title, humanStatus(status), reviewNotes, submissionURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, toName, subject, submissionURL)
}

// SendFeedbackRequestEmail asks a client to rate an approved submission.
func (s *Service) SendFeedbackRequestEmail(toEmail, toName, submissionNumber, title string) error {
	feedbackURL := fmt.Sprintf("%s/feedback/new?submission=%s", s.baseURL, submissionNumber)

	subject := "How did we do?"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Tell us what you think</h2>
			<p>Hi %s,</p>
			<p>You recently approved <strong>%s — %s</strong>. We'd love a quick rating of the work.</p>
			<p><a href="%s" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Leave Feedback</a></p>
			<p>It only takes a minute and helps the team improve.</p>
			<p>Thanks,<br>The AgencyDesk Team</p>
		</body>
		</html>
	`, toName, submissionNumber, title, feedbackURL)

	plainText := fmt.Sprintf(`
Hi %s,

You recently approved %s — %s. We'd love a quick rating of the work.

Leave feedback here: %s

Thanks,
The AgencyDesk Team
	`, toName, submissionNumber, title, feedbackURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, toName, subject, feedbackURL)
}

// SendRawEmail sends an email with custom subject and body content.
// Uses SendGrid in production, logs to console in development.
func (s *Service) SendRawEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody)
	}

	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	return nil
}

// sendViaSendGrid sends email using SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)

	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("✅ Email sent successfully to %s (SendGrid status: %d)", toEmail, response.StatusCode)
	return nil
}

// logEmailToConsole logs email details to console (development mode)
func (s *Service) logEmailToConsole(toEmail, toName, subject, actionURL string) error {
	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   Action URL: %s", actionURL)
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	return nil
}

func humanStatus(status string) string {
	switch status {
	case "approved":
		return "approved"
	case "rejected":
		return "rejected"
	case "changes_requested":
		return "returned with change requests"
	default:
		return status
	}
}
