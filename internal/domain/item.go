package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Item struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       Money

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (i Item) Validate() error {
	if i.Name == "" {
		return errors.New("item name is empty")
	}

	if !i.Price.Amount.IsPositive() {
		return errors.New("item price must be positive")
	}

	return nil
}

// DisplayPrice is the formatted price shown on item pages, e.g. "$299.99".
func (i Item) DisplayPrice() string {
	return i.Price.Display()
}
