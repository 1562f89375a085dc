package notification

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/vgrishin/CourtBooker/internal/config"
	"github.com/vgrishin/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type EmailSender struct {
	cfg config.MailConfig
	log logger.Logger
}

func NewEmailSender(cfg config.MailConfig, log logger.Logger) *EmailSender {
	if cfg.SMTPHost == "" {
		log.Warn("smtp host is empty, email channel disabled")
	}
	return &EmailSender{cfg: cfg, log: log}
}

func (s *EmailSender) Channel() domain.Channel {
	return domain.ChannelEmail
}

func (s *EmailSender) Render(event domain.CancellationEvent) domain.Message {
	return CancellationEmail(event)
}

func (s *EmailSender) Send(ctx context.Context, destination string, msg domain.Message) error {
	if s.cfg.SMTPHost == "" {
		s.log.Debug("email skipped (channel disabled)",
			logger.String("to", destination),
		)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	raw := []byte(fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"\r\n"+
			"%s\r\n",
		s.cfg.FromName, s.cfg.From, destination, msg.Subject, msg.Body,
	))

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.SMTPHost)
	}

	s.log.Debug("sending email notification",
		logger.String("to", destination),
	)

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{destination}, raw); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}
