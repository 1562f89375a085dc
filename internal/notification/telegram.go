package notification

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vgrishin/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramSender struct {
	bot *tgbotapi.BotAPI
	log logger.Logger
}

func NewTelegramSender(token string, log logger.Logger) (*TelegramSender, error) {
	if token == "" {
		log.Warn("telegram bot token is empty, telegram channel disabled")
		return &TelegramSender{bot: nil, log: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramSender{bot: bot, log: log}, nil
}

func (s *TelegramSender) Channel() domain.Channel {
	return domain.ChannelTelegram
}

func (s *TelegramSender) Render(event domain.CancellationEvent) domain.Message {
	return CancellationShortText(event)
}

// Send expects the destination to be a Telegram chat id in decimal form.
func (s *TelegramSender) Send(ctx context.Context, destination string, msg domain.Message) error {
	if s.bot == nil {
		s.log.Debug("telegram skipped (bot disabled)",
			logger.String("to", destination),
		)
		return nil
	}

	chatID, err := strconv.ParseInt(destination, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid telegram chat id %q: %w", destination, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	s.log.Debug("sending telegram notification",
		logger.Int64("chat_id", chatID),
	)

	if _, err := s.bot.Send(tgbotapi.NewMessage(chatID, msg.Body)); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}

	return nil
}
