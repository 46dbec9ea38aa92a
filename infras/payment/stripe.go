package payment

import (
	"context"
	"fmt"

	"hoteloncall/config"
	"hoteloncall/infras/otel"
	"hoteloncall/shared/constant"
	"hoteloncall/shared/logger"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

//go:generate go run go.uber.org/mock/mockgen -source=stripe.go -destination=mock/stripe.go -package=payment_mock

// LineItem is one billable entry on a checkout page.
type LineItem struct {
	Name        string
	AmountCents int64
	Quantity    int64
}

// Gateway creates hosted payment sessions for guest checkout bills.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, customerEmail string, items []LineItem) (sessionID, url string, err error)
}

type stripeGateway struct {
	currency   string
	successURL string
	cancelURL  string
	otel       otel.Otel
}

func New(conf *config.Config, otl otel.Otel) Gateway {
	stripe.Key = conf.Stripe.SecretKey

	return &stripeGateway{
		currency:   conf.Stripe.Currency,
		successURL: conf.Stripe.SuccessURL,
		cancelURL:  conf.Stripe.CancelURL,
		otel:       otl,
	}
}

func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, customerEmail string, items []LineItem) (string, string, error) {
	_, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".payment.CreateCheckoutSession")
	defer scope.End()

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))

	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(g.currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(item.AmountCents),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(customerEmail),
		LineItems:     lineItems,
		SuccessURL:    stripe.String(g.successURL),
		CancelURL:     stripe.String(g.cancelURL),
	}

	result, err := session.New(params)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return "", "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	return result.ID, result.URL, nil
}
