package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/avoropai/library-service/internal/config"
	"github.com/avoropai/library-service/pkg/clients"
)

// SessionRequest describes one payable charge for the provider.
// Amounts are in minor currency units (cents).
type SessionRequest struct {
	AmountMinor   int64
	Description   string
	CorrelationID string
}

type Session struct {
	ID  string
	URL string
}

// Gateway creates provider checkout sessions. Any transport or
// provider error is retriable.
type Gateway interface {
	CreateSession(ctx context.Context, req SessionRequest) (*Session, error)
}

type Client struct {
	url        string
	apiKey     string
	successURL string
	cancelURL  string
	client     clients.HTTPClientI
}

func NewClient(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:        cfg.CheckoutAddress,
		apiKey:     cfg.PaymentAPIKey,
		successURL: cfg.PaymentSuccessURL,
		cancelURL:  cfg.PaymentCancelURL,
		client:     client,
	}
}

// CreateSession requests a checkout session. The call is bounded by
// the shared HTTP client timeout.
func (c *Client) CreateSession(ctx context.Context, req SessionRequest) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(map[string]any{
		"amount":         req.AmountMinor,
		"currency":       "usd",
		"description":    req.Description,
		"correlation_id": req.CorrelationID,
		"success_url":    c.successURL,
		"cancel_url":     c.cancelURL,
	})
	if err != nil {
		return nil, err
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Bearer "+c.apiKey)

	statusCode, respBody, err := c.client.Post(c.url+"/v1/checkout/sessions", headers, body)
	if err != nil {
		return nil, fmt.Errorf("checkout session request failed: %w", err)
	}
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("checkout session request failed: unexpected status %d", statusCode)
	}

	var resp struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse session response: %w", err)
	}
	if resp.ID == "" {
		return nil, errors.New("checkout session response has empty id")
	}

	return &Session{ID: resp.ID, URL: resp.URL}, nil
}
