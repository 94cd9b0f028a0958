package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/checkout/internal/domain"
)

type DiscountRepository interface {
	GetDiscount(ctx context.Context, discountID uuid.UUID) (domain.Discount, error)
	GetDiscountByCode(ctx context.Context, code string) (domain.Discount, error)
	InsertDiscount(ctx context.Context, discount domain.Discount) (uuid.UUID, error)
	SetDiscountActive(ctx context.Context, discountID uuid.UUID, active bool) error
}

type TaxRepository interface {
	GetTax(ctx context.Context, taxID uuid.UUID) (domain.Tax, error)
	InsertTax(ctx context.Context, tax domain.Tax) (uuid.UUID, error)
	SetTaxActive(ctx context.Context, taxID uuid.UUID, active bool) error
}
