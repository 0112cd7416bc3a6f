package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot sends run notifications to a single chat. Optional: the scrape result
// does not depend on it.
type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

func (b *Bot) SendSummary(count int, path string) error {
	msg := tgbotapi.NewMessage(b.chatID, fmt.Sprintf("✅ Scrape finished: %d jobs exported to %s", count, path))
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) SendError(err error) error {
	msg := tgbotapi.NewMessage(b.chatID, fmt.Sprintf("❌ Scrape failed: %v", err))
	_, sendErr := b.api.Send(msg)
	return sendErr
}
