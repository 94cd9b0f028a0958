package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountType string

// remember to add new types to the validDiscountTypes map
const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

var validDiscountTypes = map[DiscountType]struct{}{
	DiscountTypePercentage: {},
	DiscountTypeFixed:      {},
}

func ToDiscountType(s string) (DiscountType, error) {
	discountType := DiscountType(s)
	if _, ok := validDiscountTypes[discountType]; ok {
		return discountType, nil
	}

	return "", errors.New("invalid discount type")
}

type Discount struct {
	ID     uuid.UUID
	Name   string
	Code   string
	Type   DiscountType
	Value  decimal.Decimal
	Active bool

	CreatedAt time.Time
}

// Apply computes the discount amount for the given base amount.
// A fixed discount is not clamped, so it may exceed the base.
func (d Discount) Apply(amount decimal.Decimal) decimal.Decimal {
	if d.Type == DiscountTypePercentage {
		return amount.Mul(d.Value).Div(hundred)
	}

	return d.Value
}

func (d Discount) String() string {
	if d.Type == DiscountTypePercentage {
		return fmt.Sprintf("%s (%s) - %s%%", d.Name, d.Code, d.Value)
	}

	return fmt.Sprintf("%s (%s) - $%s", d.Name, d.Code, d.Value)
}
