package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avoropai/library-service/internal/config"
	"github.com/avoropai/library-service/pkg/clients"
)

const defaultAPIURL = "https://api.telegram.org"

// Telegram delivers operator messages to the admin chat. Delivery is
// best-effort: callers log failures and move on.
type Telegram struct {
	apiURL string
	token  string
	chatID string
	client clients.HTTPClientI
}

func NewTelegram(cfg *config.Config, client clients.HTTPClientI) *Telegram {
	return &Telegram{
		apiURL: defaultAPIURL,
		token:  cfg.BotToken,
		chatID: cfg.AdminChatID,
		client: client,
	}
}

func (t *Telegram) Notify(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(map[string]string{
		"chat_id": t.chatID,
		"text":    text,
	})
	if err != nil {
		return err
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiURL, t.token)
	statusCode, _, err := t.client.Post(url, headers, body)
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	if statusCode != http.StatusOK {
		return fmt.Errorf("failed to send telegram message: unexpected status %d", statusCode)
	}
	return nil
}
