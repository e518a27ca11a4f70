package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubPaymentProvider struct {
	createFn func(ctx context.Context, amountCents int64, currency string) (string, error)
}

func (p *stubPaymentProvider) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	return p.createFn(ctx, amountCents, currency)
}

func TestPaymentHandler_CreateIntent(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubPaymentProvider{
		createFn: func(_ context.Context, amountCents int64, currency string) (string, error) {
			if amountCents != 12550 {
				t.Fatalf("expected amount in cents, got %d", amountCents)
			}
			if currency != "usd" {
				t.Fatalf("expected default currency usd, got %s", currency)
			}
			return "pi_secret_123", nil
		},
	}
	h := NewPaymentHandler(stub, zerolog.Nop())

	c, rec := newJSONContext(e, http.MethodPost, "/api/payment/create-payment-intent", `{"amount":125.50}`)

	if err := h.CreateIntent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["clientSecret"] != "pi_secret_123" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPaymentHandler_CreateIntent_InvalidAmount(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubPaymentProvider{
		createFn: func(context.Context, int64, string) (string, error) {
			t.Fatalf("provider should not be called")
			return "", nil
		},
	}
	h := NewPaymentHandler(stub, zerolog.Nop())

	c, _ := newJSONContext(e, http.MethodPost, "/api/payment/create-payment-intent", `{"amount":0}`)

	err := h.CreateIntent(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestPaymentHandler_CreateIntent_ProviderError(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubPaymentProvider{
		createFn: func(context.Context, int64, string) (string, error) {
			return "", errors.New("stripe: card_declined")
		},
	}
	h := NewPaymentHandler(stub, zerolog.Nop())

	c, _ := newJSONContext(e, http.MethodPost, "/api/payment/create-payment-intent", `{"amount":10}`)

	err := h.CreateIntent(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %v", err)
	}
	// The processor's error detail stays server side.
	if he.Message != "failed to create payment intent" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}
