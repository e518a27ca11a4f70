// Package payment holds the adapter for the external payment processor.
// Only the payment-intent boundary is implemented; everything past "create
// an intent, return a client secret" belongs to the processor.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const stripeAPIBase = "https://api.stripe.com/v1"

// ErrMissingAPIKey is returned by NewStripeProvider when no secret key is
// configured.
var ErrMissingAPIKey = errors.New("payment: stripe secret key is empty")

// StripeProvider creates payment intents against the Stripe REST API.
type StripeProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewStripeProvider builds a provider. The API key is mandatory.
func NewStripeProvider(apiKey string) (*StripeProvider, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &StripeProvider{
		apiKey:  apiKey,
		baseURL: stripeAPIBase,
		client:  &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type paymentIntent struct {
	ClientSecret string `json:"client_secret"`
}

type stripeError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateIntent creates a card payment intent and returns its client secret.
func (p *StripeProvider) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("create payment intent: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var se stripeError
		if json.Unmarshal(body, &se) == nil && se.Error.Message != "" {
			return "", fmt.Errorf("create payment intent: stripe: %s", se.Error.Message)
		}
		return "", fmt.Errorf("create payment intent: stripe returned %d", resp.StatusCode)
	}

	var pi paymentIntent
	if err := json.Unmarshal(body, &pi); err != nil {
		return "", fmt.Errorf("create payment intent: decode response: %w", err)
	}
	if pi.ClientSecret == "" {
		return "", fmt.Errorf("create payment intent: missing client secret")
	}
	return pi.ClientSecret, nil
}
