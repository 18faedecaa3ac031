package payment

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// IntentCreator creates a payment intent with an external processor and
// returns the client secret used to complete payment client-side.
type IntentCreator interface {
	CreateIntent(amountMinorUnits int64, currency string) (string, error)
}

// Stripe is the IntentCreator backed by the Stripe API.
type Stripe struct{}

// NewStripe configures the Stripe client with the given secret key.
func NewStripe(secretKey string) *Stripe {
	stripe.Key = secretKey
	return &Stripe{}
}

func (s *Stripe) CreateIntent(amountMinorUnits int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinorUnits),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
