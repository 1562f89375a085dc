package notification

import (
	"context"
	"testing"

	"github.com/vgrishin/CourtBooker/internal/config"
	"github.com/vgrishin/CourtBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailSender_Disabled_NoOp(t *testing.T) {
	s := NewEmailSender(config.MailConfig{}, newTestLogger(t))

	err := s.Send(context.Background(), "alice@example.com", domain.Message{Subject: "s", Body: "b"})

	require.NoError(t, err)
	assert.Equal(t, domain.ChannelEmail, s.Channel())
}

func TestEmailSender_RendersFullMail(t *testing.T) {
	s := NewEmailSender(config.MailConfig{}, newTestLogger(t))

	msg := s.Render(testEvent())

	assert.Equal(t, "A free slot is now available", msg.Subject)
	assert.NotEmpty(t, msg.Body)
}

func TestTelegramSender_Disabled_NoOp(t *testing.T) {
	s, err := NewTelegramSender("", newTestLogger(t))
	require.NoError(t, err)

	err = s.Send(context.Background(), "123456", domain.Message{Body: "hi"})

	require.NoError(t, err)
	assert.Equal(t, domain.ChannelTelegram, s.Channel())
}

func TestTelegramSender_RendersShortText(t *testing.T) {
	s, err := NewTelegramSender("", newTestLogger(t))
	require.NoError(t, err)

	msg := s.Render(testEvent())

	assert.Contains(t, msg.Body, "Court 2")
}
