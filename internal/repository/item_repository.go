package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/checkout/internal/domain"
	"github.com/nikolayk812/checkout/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var (
	ErrNotFound = errors.New("entity not found")
)

type itemRepository struct {
	pool *pgxpool.Pool
}

func NewItem(pool *pgxpool.Pool) port.ItemRepository {
	return &itemRepository{pool: pool}
}

func (r *itemRepository) GetItem(ctx context.Context, itemID uuid.UUID) (domain.Item, error) {
	var i domain.Item

	row := r.pool.QueryRow(ctx,
		`SELECT id, name, description, price_amount, price_currency, created_at, updated_at
		 FROM items WHERE id = $1`, itemID)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return i, fmt.Errorf("scanItem: %w", ErrNotFound)
		}
		return i, fmt.Errorf("scanItem: %w", err)
	}

	return item, nil
}

func (r *itemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, price_amount, price_currency, created_at, updated_at
		 FROM items ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var items []domain.Item

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanItem: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return items, nil
}

func (r *itemRepository) InsertItem(ctx context.Context, item domain.Item) (uuid.UUID, error) {
	if err := item.Validate(); err != nil {
		return uuid.Nil, fmt.Errorf("item.Validate: %w", err)
	}

	var itemID uuid.UUID

	err := r.pool.QueryRow(ctx,
		`INSERT INTO items (name, description, price_amount, price_currency)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		item.Name, item.Description, item.Price.Amount, item.Price.Currency.String(),
	).Scan(&itemID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("pool.QueryRow: %w", err)
	}

	return itemID, nil
}

func scanItem(row pgx.Row) (domain.Item, error) {
	var (
		i             domain.Item
		priceAmount   decimal.Decimal
		priceCurrency string
		createdAt     time.Time
		updatedAt     time.Time
	)

	if err := row.Scan(&i.ID, &i.Name, &i.Description, &priceAmount, &priceCurrency,
		&createdAt, &updatedAt); err != nil {
		return i, err
	}

	parsedCurrency, err := currency.ParseISO(priceCurrency)
	if err != nil {
		return i, fmt.Errorf("currency[%s] is not valid: %w", priceCurrency, err)
	}

	i.Price = domain.Money{Amount: priceAmount, Currency: parsedCurrency}
	i.CreatedAt = createdAt
	i.UpdatedAt = updatedAt

	return i, nil
}
