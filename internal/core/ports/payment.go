package ports

import "context"

// PaymentProvider creates payment intents with the external processor.
// The amount is in the currency's smallest unit (cents).
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (clientSecret string, err error)
}
