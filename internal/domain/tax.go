package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tax is a percentage rate for one country, e.g. VAT or Sales Tax.
type Tax struct {
	ID      uuid.UUID
	Name    string
	Rate    decimal.Decimal
	Country string
	Active  bool

	CreatedAt time.Time
}

func (t Tax) Validate() error {
	if t.Rate.IsNegative() || t.Rate.GreaterThan(hundred) {
		return errors.New("tax rate must be between 0 and 100")
	}

	if len(t.Country) != 2 {
		return errors.New("tax country must be an ISO-2 code")
	}

	return nil
}

// Apply computes the tax amount for the given base amount.
func (t Tax) Apply(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(t.Rate).Div(hundred)
}

func (t Tax) String() string {
	return fmt.Sprintf("%s (%s) - %s%%", t.Name, t.Country, t.Rate)
}
