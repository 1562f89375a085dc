package notification

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/vgrishin/CourtBooker/internal/config"
	"github.com/vgrishin/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const twilioAPIBase = "https://api.twilio.com"

// TwilioSender delivers short texts through the Twilio Messages API.
// One instance serves exactly one channel: SMS or WhatsApp.
type TwilioSender struct {
	cfg     config.TwilioConfig
	channel domain.Channel
	client  *http.Client
	baseURL string
	log     logger.Logger
}

func NewTwilioSender(cfg config.TwilioConfig, channel domain.Channel, log logger.Logger) *TwilioSender {
	s := &TwilioSender{
		cfg:     cfg,
		channel: channel,
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: twilioAPIBase,
		log:     log,
	}
	if !s.enabled() {
		log.Warn("twilio credentials are empty, channel disabled",
			logger.String("channel", string(channel)),
		)
	}
	return s
}

func (s *TwilioSender) enabled() bool {
	return s.cfg.AccountSID != "" && s.cfg.AuthToken != ""
}

func (s *TwilioSender) Channel() domain.Channel {
	return s.channel
}

func (s *TwilioSender) Render(event domain.CancellationEvent) domain.Message {
	return CancellationShortText(event)
}

func (s *TwilioSender) Send(ctx context.Context, destination string, msg domain.Message) error {
	if !s.enabled() {
		s.log.Debug("message skipped (channel disabled)",
			logger.String("channel", string(s.channel)),
			logger.String("to", destination),
		)
		return nil
	}

	form := url.Values{}
	form.Set("To", s.formatDestination(destination))
	form.Set("Body", msg.Body)

	switch {
	case s.cfg.MessagingServiceSID != "":
		form.Set("MessagingServiceSid", s.cfg.MessagingServiceSID)
	case s.channel == domain.ChannelWhatsApp && s.cfg.WhatsAppFrom != "":
		form.Set("From", s.cfg.WhatsAppFrom)
	case s.cfg.SMSFrom != "":
		form.Set("From", s.cfg.SMSFrom)
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json",
		s.baseURL, url.PathEscape(s.cfg.AccountSID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build twilio request: %w", err)
	}
	req.SetBasicAuth(s.cfg.AccountSID, s.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	s.log.Debug("sending twilio message",
		logger.String("channel", string(s.channel)),
		logger.String("to", destination),
	)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("twilio request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("twilio responded %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// formatDestination adds the transport prefix Twilio expects for WhatsApp
// numbers ("whatsapp:+4912345...").
func (s *TwilioSender) formatDestination(destination string) string {
	if s.channel == domain.ChannelWhatsApp && !strings.HasPrefix(destination, "whatsapp:") {
		return "whatsapp:" + destination
	}
	return destination
}
