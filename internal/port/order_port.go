package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/checkout/internal/domain"
)

type OrderRepository interface {
	// GetOrder loads the order with its items and, when referenced,
	// its discount and tax.
	GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error)

	InsertOrder(ctx context.Context, order domain.Order) (uuid.UUID, error)

	// AddItem attaches a catalog item to an existing order.
	AddItem(ctx context.Context, orderID, itemID uuid.UUID) error

	// SetCheckoutSession stores the payment-provider session id on the order.
	// Concurrent checkouts for one order are last-write-wins.
	SetCheckoutSession(ctx context.Context, orderID uuid.UUID, sessionID string) error

	// UpdateStatus is driven externally, e.g. by a payment webhook consumer.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error
}
