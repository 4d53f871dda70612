package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

type TelegramClient struct {
	*BaseClient
	baseURL string
	chatID  string
}

func NewTelegramClient(botToken, chatID string, config ClientConfig, logger *zap.Logger) *TelegramClient {
	baseClient := NewBaseClient("telegram", config, logger)
	return &TelegramClient{
		BaseClient: baseClient,
		baseURL:    "https://api.telegram.org/bot" + botToken,
		chatID:     chatID,
	}
}

// SendMessage delivers the report text verbatim to the configured chat. No
// parse mode is set, so Telegram performs no markup interpretation and the
// composed bytes arrive untouched.
func (c *TelegramClient) SendMessage(ctx context.Context, text string) error {
	form := url.Values{}
	form.Set("chat_id", c.chatID)
	form.Set("text", text)

	data, err := c.PostFormWithRetry(ctx, c.baseURL+"/sendMessage", form)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	var result struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("failed to parse telegram response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram rejected message: %s", result.Description)
	}

	return nil
}
