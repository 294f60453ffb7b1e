package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type createIntentRequest struct {
	UserID        string          `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
}

type createIntentResponse struct {
	PaymentIntentID string `json:"payment_intent_id"`
}

type payoutRequest struct {
	UserID      string          `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Destination string          `json:"destination"`
}

// CreatePaymentIntent asks the payment processor to open an intent for the
// deposit. The wallet is only credited once the processor confirms it.
func (g *PaymentGW) CreatePaymentIntent(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, method string) (string, error) {
	req := createIntentRequest{
		UserID:        userID.String(),
		Amount:        amount,
		PaymentMethod: method,
	}

	var resp createIntentResponse
	if err := g.processorClient.PostJSON(ctx, "/v1/intents", req, &resp); err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	if resp.PaymentIntentID == "" {
		return "", fmt.Errorf("payment processor returned an empty intent id")
	}
	return resp.PaymentIntentID, nil
}

// RequestPayout asks the payout rail to transfer withdrawn funds
func (g *PaymentGW) RequestPayout(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, destination string) error {
	req := payoutRequest{
		UserID:      userID.String(),
		Amount:      amount,
		Destination: destination,
	}

	if err := g.payoutClient.PostJSON(ctx, "/v1/payouts", req, nil); err != nil {
		return fmt.Errorf("failed to request payout: %w", err)
	}
	return nil
}
