package notifier

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

// TelegramNotifier mirrors daily posts to a Telegram chat and answers
// status commands.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier authorizes the bot against the Telegram API.
func NewTelegramNotifier(botToken string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	log.Info().Str("username", bot.Self.UserName).Msg("telegram bot authorized")
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (t *TelegramNotifier) Name() string { return "telegram" }

// Post sends the text to the configured chat and returns the message ID.
func (t *TelegramNotifier) Post(_ context.Context, text string) (string, error) {
	msg := tgbotapi.NewMessage(t.chatID, text)
	sent, err := t.bot.Send(msg)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(sent.MessageID), nil
}

// CommandHandler is called when a user command is received.
type CommandHandler func(command string) string

// StartPolling begins long-polling for Telegram commands. Blocks until
// ctx is cancelled.
func (t *TelegramNotifier) StartPolling(ctx context.Context, handler CommandHandler) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := t.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			log.Info().Msg("telegram polling stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			reply := t.handleUpdate(update, handler)
			if reply == "" {
				continue
			}
			msg := tgbotapi.NewMessage(t.chatID, reply)
			if _, err := t.bot.Send(msg); err != nil {
				log.Error().Err(err).Msg("failed to send telegram reply")
			}
		}
	}
}

// handleUpdate dispatches a single update and returns the reply text,
// or "" when the update should be ignored. Only the configured chat may
// issue commands; /post would otherwise be open to anyone who finds
// the bot.
func (t *TelegramNotifier) handleUpdate(update tgbotapi.Update, handler CommandHandler) string {
	if update.Message == nil || update.Message.Text == "" {
		return ""
	}
	if update.Message.Chat.ID != t.chatID {
		log.Warn().Int64("chat_id", update.Message.Chat.ID).Msg("ignoring command from unexpected chat")
		return ""
	}
	text := strings.TrimSpace(update.Message.Text)
	log.Info().Str("command", text).Msg("received telegram command")
	return handler(text)
}
