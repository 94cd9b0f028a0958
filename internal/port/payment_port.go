package port

import "context"

// CheckoutRequest is the full payload for one checkout session.
// It replaces the loosely-typed parameter dictionaries of the payment
// provider SDK with named fields for each concept this system uses.
type CheckoutRequest struct {
	LineItems  []LineItem
	CouponIDs  []string
	SuccessURL string
	CancelURL  string
}

type LineItem struct {
	Name        string
	Description string

	// UnitAmount is in minor currency units, e.g. cents for USD.
	UnitAmount int64
	Currency   string
	Quantity   int64

	TaxRateIDs []string
}

// CouponRequest registers a one-time amount-off coupon with the provider.
type CouponRequest struct {
	Name string

	// AmountOff is in minor currency units.
	AmountOff int64
	Currency  string
}

// TaxRateRequest registers an exclusive percentage tax rate with the provider.
type TaxRateRequest struct {
	DisplayName string
	Percentage  float64
}

// PaymentGateway is the boundary to the external payment provider.
// Implementations hold their own API credentials; callers never touch
// provider globals.
type PaymentGateway interface {
	CreateCoupon(ctx context.Context, req CouponRequest) (string, error)
	CreateTaxRate(ctx context.Context, req TaxRateRequest) (string, error)

	// CreateSession returns the opaque session identifier handed back
	// to the storefront client.
	CreateSession(ctx context.Context, req CheckoutRequest) (string, error)
}
