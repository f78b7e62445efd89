package email

import (
	"fmt"
	"net/smtp"

	"github.com/creditdesk/credit-service/internal/config"
	"github.com/creditdesk/credit-service/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendCreditDecision notifies a client that a credit request was approved
// or rejected
func (s *Sender) SendCreditDecision(to, name string, credit *models.Credit) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}

	body := fmt.Sprintf("Dear %s,\n\n", name)
	switch credit.Status {
	case models.CreditStatusAccepted:
		e.Subject = "Your credit request has been approved"
		body += fmt.Sprintf(
			"Your credit request #%d for %.2f over %d months has been approved "+
				"on %s at a rate of %.2f%%.\n",
			credit.ID, credit.Amount, credit.Duration,
			credit.AcceptanceDate.Format("2006-01-02"), credit.InterestRate,
		)
	case models.CreditStatusRejected:
		e.Subject = "Your credit request has been rejected"
		body += fmt.Sprintf(
			"We are sorry to inform you that your credit request #%d for %.2f "+
				"has been rejected.\n",
			credit.ID, credit.Amount,
		)
	default:
		return fmt.Errorf("no decision to notify for credit %d in status %s", credit.ID, credit.Status)
	}
	body += "\nBest regards,\nCredit Service"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
