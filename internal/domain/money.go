package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// DefaultCurrency is used for orders with no items.
var DefaultCurrency = currency.USD

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

var hundred = decimal.NewFromInt(100)

// MinorUnits converts the amount to the smallest denomination of its
// currency, e.g. 299.99 USD -> 29999 cents.
func (m Money) MinorUnits() int64 {
	return m.Amount.Mul(hundred).Round(0).IntPart()
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
}

// Display formats the amount with a currency symbol, falling back to the
// ISO code when no symbol is known.
func (m Money) Display() string {
	code := m.Currency.String()

	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = code
	}

	return fmt.Sprintf("%s%s", symbol, m.Amount.StringFixed(2))
}
