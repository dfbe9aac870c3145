package notification

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/playbase/backend/internal/domain/identity"
	"github.com/playbase/backend/internal/domain/repair"
	"github.com/playbase/backend/internal/infrastructure/config"
)

// TelegramNotifier alerts staff about new repair requests through a Telegram
// bot. Like the mailer, failures are returned to the caller but the business
// operation never depends on delivery.
type TelegramNotifier struct {
	client   *resty.Client
	botToken string
	chatID   string
}

// NewTelegramNotifier creates a TelegramNotifier from configuration
func NewTelegramNotifier(cfg config.TelegramConfig) *TelegramNotifier {
	return &TelegramNotifier{
		client:   resty.New().SetBaseURL(cfg.BaseURL),
		botToken: cfg.BotToken,
		chatID:   cfg.ChatID,
	}
}

// RepairRequested posts a new-repair alert to the staff chat
func (n *TelegramNotifier) RepairRequested(ctx context.Context, user *identity.User, r *repair.Repair) error {
	text := fmt.Sprintf(
		"🔧 New repair request %s\nDevice: %s %s\nUrgency: %s\nCustomer: %s (%s)",
		r.RepairNumber, r.DeviceType, r.DeviceModel, r.Urgency, user.Name, user.Email,
	)
	if r.IsEasyMailIn {
		text += "\nEasyMail-In: yes"
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"chat_id": n.chatID,
			"text":    text,
		}).
		Post(fmt.Sprintf("/bot%s/sendMessage", n.botToken))
	if err != nil {
		return fmt.Errorf("failed to send telegram alert: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("telegram alert rejected: %s", resp.Status())
	}
	return nil
}
