package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/checkout/internal/domain"
)

type ItemRepository interface {
	GetItem(ctx context.Context, itemID uuid.UUID) (domain.Item, error)

	// ListItems returns the catalog, newest first.
	ListItems(ctx context.Context) ([]domain.Item, error)

	InsertItem(ctx context.Context, item domain.Item) (uuid.UUID, error)
}
