package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const apiBaseURL = "https://api.telegram.org/bot"

// Client is a minimal Telegram Bot API client covering the calls the bot
// integration needs: replying to chats and registering the webhook.
type Client struct {
	token      string
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Telegram client for the given bot token.
func NewClient(token string) *Client {
	return &Client{
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    apiBaseURL,
	}
}

// BotInfo is the bot identity returned by getMe.
type BotInfo struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

func (c *Client) call(ctx context.Context, method string, payload any) error {
	_, err := c.callResult(ctx, method, payload)
	return err
}

func (c *Client) callResult(ctx context.Context, method string, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", method, err)
	}

	url := c.baseURL + c.token + "/" + method
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", method, err)
	}
	if !result.OK {
		return nil, fmt.Errorf("telegram %s failed: %s", method, result.Description)
	}
	return result.Result, nil
}

// GetMe returns the bot's identity. Used by the management surface to verify
// the configured token.
func (c *Client) GetMe(ctx context.Context) (*BotInfo, error) {
	raw, err := c.callResult(ctx, "getMe", map[string]any{})
	if err != nil {
		return nil, err
	}
	var info BotInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("decode getMe result: %w", err)
	}
	return &info, nil
}

// SendMessage sends a text message to a chat.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	return c.call(ctx, "sendMessage", map[string]any{
		"chat_id": chatID,
		"text":    text,
	})
}

// SetWebhook registers the webhook URL updates are delivered to.
func (c *Client) SetWebhook(ctx context.Context, webhookURL string) error {
	return c.call(ctx, "setWebhook", map[string]any{
		"url": webhookURL,
	})
}
