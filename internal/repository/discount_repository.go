package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/checkout/internal/domain"
	"github.com/nikolayk812/checkout/internal/port"
)

type discountRepository struct {
	pool *pgxpool.Pool
}

func NewDiscount(pool *pgxpool.Pool) port.DiscountRepository {
	return &discountRepository{pool: pool}
}

func (r *discountRepository) GetDiscount(ctx context.Context, discountID uuid.UUID) (domain.Discount, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, code, discount_type, value, active, created_at
		 FROM discounts WHERE id = $1`, discountID)

	return scanDiscount(row)
}

func (r *discountRepository) GetDiscountByCode(ctx context.Context, code string) (domain.Discount, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, code, discount_type, value, active, created_at
		 FROM discounts WHERE code = $1`, code)

	return scanDiscount(row)
}

func (r *discountRepository) InsertDiscount(ctx context.Context, discount domain.Discount) (uuid.UUID, error) {
	if _, err := domain.ToDiscountType(string(discount.Type)); err != nil {
		return uuid.Nil, fmt.Errorf("domain.ToDiscountType[%s]: %w", discount.Type, err)
	}

	var discountID uuid.UUID

	err := r.pool.QueryRow(ctx,
		`INSERT INTO discounts (name, code, discount_type, value, active)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		discount.Name, discount.Code, string(discount.Type), discount.Value, discount.Active,
	).Scan(&discountID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("pool.QueryRow: %w", err)
	}

	return discountID, nil
}

func (r *discountRepository) SetDiscountActive(ctx context.Context, discountID uuid.UUID, active bool) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE discounts SET active = $2 WHERE id = $1`, discountID, active)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func scanDiscount(row pgx.Row) (domain.Discount, error) {
	var (
		d            domain.Discount
		discountType string
	)

	err := row.Scan(&d.ID, &d.Name, &d.Code, &discountType, &d.Value, &d.Active, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return d, fmt.Errorf("row.Scan: %w", ErrNotFound)
		}
		return d, fmt.Errorf("row.Scan: %w", err)
	}

	d.Type, err = domain.ToDiscountType(discountType)
	if err != nil {
		return d, fmt.Errorf("domain.ToDiscountType[%s]: %w", discountType, err)
	}

	return d, nil
}
