package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Order aggregates catalog items with an optional discount and tax.
// Totals are computed on demand, never cached on the struct.
type Order struct {
	ID       uuid.UUID
	Items    []Item
	Discount *Discount
	Tax      *Tax
	Status   OrderStatus

	// Identifier of the payment-provider checkout session, set once a
	// checkout has been initiated for this order.
	CheckoutSessionID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o Order) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero

	for _, item := range o.Items {
		subtotal = subtotal.Add(item.Price.Amount)
	}

	return subtotal
}

// DiscountAmount is zero when the discount is absent or inactive.
func (o Order) DiscountAmount() decimal.Decimal {
	if o.Discount == nil || !o.Discount.Active {
		return decimal.Zero
	}

	return o.Discount.Apply(o.Subtotal())
}

// TaxAmount applies the tax rate to the post-discount amount,
// not the raw subtotal. Zero when the tax is absent or inactive.
func (o Order) TaxAmount() decimal.Decimal {
	if o.Tax == nil || !o.Tax.Active {
		return decimal.Zero
	}

	afterDiscount := o.Subtotal().Sub(o.DiscountAmount())

	return o.Tax.Apply(afterDiscount)
}

// Total is subtotal - discount + tax. A fixed discount larger than the
// subtotal is not clamped, so the total may go negative.
func (o Order) Total() decimal.Decimal {
	return o.Subtotal().Sub(o.DiscountAmount()).Add(o.TaxAmount())
}

// Currency is taken from the first item in the order, which assumes all
// items share one currency. Empty orders fall back to DefaultCurrency.
func (o Order) Currency() currency.Unit {
	if len(o.Items) == 0 {
		return DefaultCurrency
	}

	return o.Items[0].Price.Currency
}
