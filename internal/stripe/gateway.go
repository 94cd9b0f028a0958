package stripe

import (
	"context"
	"fmt"

	stripego "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/nikolayk812/checkout/internal/port"
)

type gateway struct {
	api *client.API
}

// New builds a payment gateway backed by the Stripe API. The secret key
// stays inside the returned client, there is no package-level key state.
func New(secretKey string) (port.PaymentGateway, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("secretKey is empty")
	}

	api := &client.API{}
	api.Init(secretKey, nil)

	return &gateway{api: api}, nil
}

func (g *gateway) CreateCoupon(ctx context.Context, req port.CouponRequest) (string, error) {
	params := &stripego.CouponParams{
		Name:      stripego.String(req.Name),
		AmountOff: stripego.Int64(req.AmountOff),
		Currency:  stripego.String(req.Currency),
		Duration:  stripego.String(string(stripego.CouponDurationOnce)),
	}
	params.Context = ctx

	coupon, err := g.api.Coupons.New(params)
	if err != nil {
		return "", fmt.Errorf("api.Coupons.New: %w", err)
	}

	return coupon.ID, nil
}

func (g *gateway) CreateTaxRate(ctx context.Context, req port.TaxRateRequest) (string, error) {
	params := &stripego.TaxRateParams{
		DisplayName: stripego.String(req.DisplayName),
		Percentage:  stripego.Float64(req.Percentage),
		Inclusive:   stripego.Bool(false),
	}
	params.Context = ctx

	taxRate, err := g.api.TaxRates.New(params)
	if err != nil {
		return "", fmt.Errorf("api.TaxRates.New: %w", err)
	}

	return taxRate.ID, nil
}

func (g *gateway) CreateSession(ctx context.Context, req port.CheckoutRequest) (string, error) {
	lineItems := make([]*stripego.CheckoutSessionLineItemParams, 0, len(req.LineItems))

	for _, li := range req.LineItems {
		productData := &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripego.String(li.Name),
		}
		if li.Description != "" {
			productData.Description = stripego.String(li.Description)
		}

		lineItem := &stripego.CheckoutSessionLineItemParams{
			PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripego.String(li.Currency),
				ProductData: productData,
				UnitAmount:  stripego.Int64(li.UnitAmount),
			},
			Quantity: stripego.Int64(li.Quantity),
		}
		if len(li.TaxRateIDs) > 0 {
			lineItem.TaxRates = stripego.StringSlice(li.TaxRateIDs)
		}

		lineItems = append(lineItems, lineItem)
	}

	params := &stripego.CheckoutSessionParams{
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripego.String(string(stripego.CheckoutSessionModePayment)),
		SuccessURL:         stripego.String(req.SuccessURL),
		CancelURL:          stripego.String(req.CancelURL),
	}
	params.Context = ctx

	for _, couponID := range req.CouponIDs {
		params.Discounts = append(params.Discounts, &stripego.CheckoutSessionDiscountParams{
			Coupon: stripego.String(couponID),
		})
	}

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("api.CheckoutSessions.New: %w", err)
	}

	return session.ID, nil
}
