package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nikolayk812/checkout/internal/domain"
	"github.com/nikolayk812/checkout/internal/port"
)

// CheckoutService drives the payment-provider checkout flow: it turns a
// catalog item or an order into a checkout session and hands the session
// id back to the storefront.
type CheckoutService interface {
	CheckoutItem(ctx context.Context, itemID uuid.UUID) (string, error)

	// CheckoutOrder registers ad-hoc coupon and tax-rate objects for the
	// order's active modifiers, creates the session and persists its id
	// on the order.
	CheckoutOrder(ctx context.Context, orderID uuid.UUID) (string, error)
}

type checkoutService struct {
	items   port.ItemRepository
	orders  port.OrderRepository
	gateway port.PaymentGateway

	successURL string
	cancelURL  string
}

func NewCheckout(items port.ItemRepository, orders port.OrderRepository,
	gateway port.PaymentGateway, publicBaseURL string) (CheckoutService, error) {
	if items == nil {
		return nil, fmt.Errorf("items repository is nil")
	}
	if orders == nil {
		return nil, fmt.Errorf("orders repository is nil")
	}
	if gateway == nil {
		return nil, fmt.Errorf("gateway is nil")
	}

	base := strings.TrimSuffix(publicBaseURL, "/")

	return &checkoutService{
		items:      items,
		orders:     orders,
		gateway:    gateway,
		successURL: base + "/success/",
		cancelURL:  base + "/cancel/",
	}, nil
}

func (s *checkoutService) CheckoutItem(ctx context.Context, itemID uuid.UUID) (string, error) {
	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return "", fmt.Errorf("items.GetItem: %w", err)
	}

	req := port.CheckoutRequest{
		LineItems:  []port.LineItem{itemLineItem(item, nil)},
		SuccessURL: s.successURL,
		CancelURL:  s.cancelURL,
	}

	sessionID, err := s.gateway.CreateSession(ctx, req)
	if err != nil {
		return "", fmt.Errorf("gateway.CreateSession: %w", err)
	}

	return sessionID, nil
}

func (s *checkoutService) CheckoutOrder(ctx context.Context, orderID uuid.UUID) (string, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("orders.GetOrder: %w", err)
	}

	req := port.CheckoutRequest{
		SuccessURL: s.successURL,
		CancelURL:  s.cancelURL,
	}

	// Register the modifiers with the provider first, the session request
	// references them by id. There is no rollback: a coupon created before
	// a later call fails stays orphaned at the provider.
	if order.Discount != nil && order.Discount.Active {
		amountOff := domain.Money{
			Amount:   order.DiscountAmount(),
			Currency: order.Currency(),
		}.MinorUnits()

		if amountOff > 0 {
			couponID, err := s.gateway.CreateCoupon(ctx, port.CouponRequest{
				Name:      order.Discount.Name,
				AmountOff: amountOff,
				Currency:  currencyCode(order),
			})
			if err != nil {
				return "", fmt.Errorf("gateway.CreateCoupon: %w", err)
			}

			req.CouponIDs = []string{couponID}
		}
	}

	var taxRateIDs []string

	if order.Tax != nil && order.Tax.Active {
		rate, _ := order.Tax.Rate.Float64()

		taxRateID, err := s.gateway.CreateTaxRate(ctx, port.TaxRateRequest{
			DisplayName: order.Tax.Name,
			Percentage:  rate,
		})
		if err != nil {
			return "", fmt.Errorf("gateway.CreateTaxRate: %w", err)
		}

		taxRateIDs = []string{taxRateID}
	}

	// One line item per attached item, quantity 1, duplicates not aggregated.
	for _, item := range order.Items {
		req.LineItems = append(req.LineItems, itemLineItem(item, taxRateIDs))
	}

	sessionID, err := s.gateway.CreateSession(ctx, req)
	if err != nil {
		return "", fmt.Errorf("gateway.CreateSession: %w", err)
	}

	if err := s.orders.SetCheckoutSession(ctx, orderID, sessionID); err != nil {
		return "", fmt.Errorf("orders.SetCheckoutSession: %w", err)
	}

	return sessionID, nil
}

func itemLineItem(item domain.Item, taxRateIDs []string) port.LineItem {
	return port.LineItem{
		Name:        item.Name,
		Description: item.Description,
		UnitAmount:  item.Price.MinorUnits(),
		Currency:    strings.ToLower(item.Price.Currency.String()),
		Quantity:    1,
		TaxRateIDs:  taxRateIDs,
	}
}

// currencyCode is the lower-case ISO code the provider expects.
func currencyCode(order domain.Order) string {
	return strings.ToLower(order.Currency().String())
}
