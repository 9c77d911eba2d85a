package storage

import (
	"context"
	"fmt"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/JotaJota96/mysqldumpgz/internal/config"
)

// Telegram's bot API rejects documents above 50 MB; larger backups fall back
// to a notification message.
const telegramMaxFileSize = 50 * 1024 * 1024

// TelegramStorage delivers finished backups, or a notification about them, to
// a Telegram chat.
type TelegramStorage struct {
	bot        *tgbotapi.BotAPI
	chatID     int64
	sendFile   bool
	notifyOnly bool
}

func NewTelegram(cfg *config.UploadTarget) (*TelegramStorage, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	var chatID int64
	fmt.Sscanf(cfg.ChatID, "%d", &chatID)

	return &TelegramStorage{
		bot:        bot,
		chatID:     chatID,
		sendFile:   cfg.SendFile,
		notifyOnly: cfg.NotifyOnly,
	}, nil
}

func (t *TelegramStorage) Upload(ctx context.Context, localPath string, remoteName string) error {
	info, err := os.Stat(localPath)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	if t.notifyOnly || !t.sendFile || info.Size() > telegramMaxFileSize {
		text := fmt.Sprintf("Backup completed: %s (%.2f MB)",
			remoteName, float64(info.Size())/(1024*1024))
		msg := tgbotapi.NewMessage(t.chatID, text)
		if _, err := t.bot.Send(msg); err != nil {
			return fmt.Errorf("failed to send telegram message: %w", err)
		}
		return nil
	}

	doc := tgbotapi.NewDocument(t.chatID, tgbotapi.FilePath(localPath))
	doc.Caption = remoteName
	if _, err := t.bot.Send(doc); err != nil {
		return fmt.Errorf("failed to send telegram document: %w", err)
	}

	return nil
}
