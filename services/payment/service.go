// File: services/payment/service.go
package payment

import (
	"context"
	"fmt"

	"detailify/models"
	"detailify/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentService holds and releases booking deposits. Satisfies the
// scheduling service's DepositHandler.
type PaymentService interface {
	CollectDeposit(ctx context.Context, booking models.Booking, amountCents int64) (string, error)
	ReleaseDeposit(ctx context.Context, depositID string) error
}

// StripePaymentService creates deposit PaymentIntents. The Stripe API
// key is set globally at startup.
type StripePaymentService struct{}

func NewStripePaymentService() *StripePaymentService {
	return &StripePaymentService{}
}

// CollectDeposit opens a PaymentIntent for the deposit amount and
// returns its id. The intent is confirmed client-side by the customer.
func (s *StripePaymentService) CollectDeposit(ctx context.Context, booking models.Booking, amountCents int64) (string, error) {
	if amountCents <= 0 {
		return "", fmt.Errorf("deposit amount must be positive, got %d", amountCents)
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amountCents),
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Description: stripe.String(fmt.Sprintf("Detailing deposit: %s for %s", booking.Package, booking.Vehicle)),
	}
	params.Context = ctx
	params.AddMetadata("customerName", booking.CustomerName)
	params.AddMetadata("scheduledAt", booking.ScheduledAt)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("create deposit intent: %w", err)
	}

	utils.GetLogger().Info("Deposit intent created",
		zap.String("intentId", pi.ID), zap.Int64("amountCents", amountCents))
	return pi.ID, nil
}

// ReleaseDeposit cancels an uncaptured deposit intent.
func (s *StripePaymentService) ReleaseDeposit(ctx context.Context, depositID string) error {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx

	if _, err := paymentintent.Cancel(depositID, params); err != nil {
		return fmt.Errorf("cancel deposit intent %s: %w", depositID, err)
	}

	utils.GetLogger().Info("Deposit intent cancelled", zap.String("intentId", depositID))
	return nil
}
