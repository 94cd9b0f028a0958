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

type taxRepository struct {
	pool *pgxpool.Pool
}

func NewTax(pool *pgxpool.Pool) port.TaxRepository {
	return &taxRepository{pool: pool}
}

func (r *taxRepository) GetTax(ctx context.Context, taxID uuid.UUID) (domain.Tax, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, rate, country, active, created_at
		 FROM taxes WHERE id = $1`, taxID)

	return scanTax(row)
}

func (r *taxRepository) InsertTax(ctx context.Context, tax domain.Tax) (uuid.UUID, error) {
	if err := tax.Validate(); err != nil {
		return uuid.Nil, fmt.Errorf("tax.Validate: %w", err)
	}

	var taxID uuid.UUID

	err := r.pool.QueryRow(ctx,
		`INSERT INTO taxes (name, rate, country, active)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		tax.Name, tax.Rate, tax.Country, tax.Active,
	).Scan(&taxID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("pool.QueryRow: %w", err)
	}

	return taxID, nil
}

func (r *taxRepository) SetTaxActive(ctx context.Context, taxID uuid.UUID, active bool) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE taxes SET active = $2 WHERE id = $1`, taxID, active)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func scanTax(row pgx.Row) (domain.Tax, error) {
	var t domain.Tax

	err := row.Scan(&t.ID, &t.Name, &t.Rate, &t.Country, &t.Active, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return t, fmt.Errorf("row.Scan: %w", ErrNotFound)
		}
		return t, fmt.Errorf("row.Scan: %w", err)
	}

	return t, nil
}
