package client

import (
	"context"
	"fmt"
	"time"

	"fabricshop/bot/internal/config"
	"fabricshop/bot/internal/message"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// MessengerClient delivers outbound messages through the Messenger Send API.
type MessengerClient interface {
	Send(ctx context.Context, recipientID string, msg message.Message) error
}

type messengerClient struct {
	rl         ratelimit.Limiter
	config     config.MessengerConfig
	httpClient *resty.Client
}

// sendRequest is the Send API request body.
type sendRequest struct {
	Recipient     recipient       `json:"recipient"`
	Message       message.Message `json:"message"`
	MessagingType string          `json:"messaging_type"`
}

type recipient struct {
	ID string `json:"id"`
}

func NewMessengerClient(cfg config.MessengerConfig) MessengerClient {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json")

	sendsPerSecond := cfg.MaxSendsPerSecond
	if sendsPerSecond <= 0 {
		sendsPerSecond = 10
	}

	return &messengerClient{
		rl:         ratelimit.New(sendsPerSecond),
		config:     cfg,
		httpClient: httpClient,
	}
}

// Send posts one message to the recipient. On failure it attempts exactly one
// best-effort plain-text apology send, then returns the original error so the
// caller can log the delivery failure.
func (c *messengerClient) Send(ctx context.Context, recipientID string, msg message.Message) error {
	if recipientID == "" {
		return fmt.Errorf("missing recipient id")
	}

	if err := c.post(ctx, recipientID, msg); err != nil {
		log.Errorf("❌ Failed to send message to %s: %v", recipientID, err)

		if apologyErr := c.post(ctx, recipientID, message.NewText(message.TextApology)); apologyErr != nil {
			log.Errorf("Failed to send error message to user %s: %v", recipientID, apologyErr)
		}

		return err
	}

	log.Debugf("Message sent successfully to %s", recipientID)
	return nil
}

func (c *messengerClient) post(ctx context.Context, recipientID string, msg message.Message) error {
	c.rl.Take()

	body := sendRequest{
		Recipient:     recipient{ID: recipientID},
		Message:       msg,
		MessagingType: "RESPONSE",
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("access_token", c.config.PageAccessToken).
		SetBody(body).
		Post("/me/messages")

	if err != nil {
		return fmt.Errorf("send API request failed: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("send API error: %d %s", resp.StatusCode(), resp.String())
	}

	return nil
}
