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
	"github.com/samber/lo"
)

type orderRepository struct {
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	var o domain.Order

	order, err := withTx(ctx, r.pool, func(tx pgx.Tx) (domain.Order, error) {
		var (
			status     string
			sessionID  *string
			discountID *uuid.UUID
			taxID      *uuid.UUID
		)

		err := tx.QueryRow(ctx,
			`SELECT id, discount_id, tax_id, status, checkout_session_id, created_at, updated_at
			 FROM orders WHERE id = $1`, orderID,
		).Scan(&o.ID, &discountID, &taxID, &status, &sessionID, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return o, fmt.Errorf("tx.QueryRow: %w", ErrNotFound)
			}
			return o, fmt.Errorf("tx.QueryRow: %w", err)
		}

		o.Status, err = domain.ToOrderStatus(status)
		if err != nil {
			return o, fmt.Errorf("domain.ToOrderStatus[%s]: %w", status, err)
		}
		o.CheckoutSessionID = lo.FromPtr(sessionID)

		o.Items, err = getOrderItems(ctx, tx, orderID)
		if err != nil {
			return o, fmt.Errorf("getOrderItems: %w", err)
		}

		if discountID != nil {
			discount, err := scanDiscount(tx.QueryRow(ctx,
				`SELECT id, name, code, discount_type, value, active, created_at
				 FROM discounts WHERE id = $1`, *discountID))
			if err != nil {
				return o, fmt.Errorf("scanDiscount: %w", err)
			}
			o.Discount = &discount
		}

		if taxID != nil {
			tax, err := scanTax(tx.QueryRow(ctx,
				`SELECT id, name, rate, country, active, created_at
				 FROM taxes WHERE id = $1`, *taxID))
			if err != nil {
				return o, fmt.Errorf("scanTax: %w", err)
			}
			o.Tax = &tax
		}

		return o, nil
	})
	if err != nil {
		return o, fmt.Errorf("withTx: %w", err)
	}

	return order, nil
}

func (r *orderRepository) InsertOrder(ctx context.Context, order domain.Order) (uuid.UUID, error) {
	orderID, err := withTx(ctx, r.pool, func(tx pgx.Tx) (uuid.UUID, error) {
		var discountID, taxID *uuid.UUID
		if order.Discount != nil {
			discountID = lo.ToPtr(order.Discount.ID)
		}
		if order.Tax != nil {
			taxID = lo.ToPtr(order.Tax.ID)
		}

		var orderID uuid.UUID

		err := tx.QueryRow(ctx,
			`INSERT INTO orders (discount_id, tax_id) VALUES ($1, $2) RETURNING id`,
			discountID, taxID,
		).Scan(&orderID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("tx.QueryRow: %w", err)
		}

		// TODO: batch with pgx.Batch once orders grow beyond a handful of items
		for _, item := range order.Items {
			if _, err := tx.Exec(ctx,
				`INSERT INTO order_items (order_id, item_id) VALUES ($1, $2)`,
				orderID, item.ID); err != nil {
				return uuid.Nil, fmt.Errorf("tx.Exec: %w", err)
			}
		}

		return orderID, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("withTx: %w", err)
	}

	return orderID, nil
}

func (r *orderRepository) AddItem(ctx context.Context, orderID, itemID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx,
		`INSERT INTO order_items (order_id, item_id) VALUES ($1, $2)`,
		orderID, itemID); err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (r *orderRepository) SetCheckoutSession(ctx context.Context, orderID uuid.UUID, sessionID string) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE orders SET checkout_session_id = $2, updated_at = now() WHERE id = $1`,
		orderID, sessionID)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error {
	if _, err := domain.ToOrderStatus(string(status)); err != nil {
		return fmt.Errorf("domain.ToOrderStatus[%s]: %w", status, err)
	}

	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`,
		orderID, string(status))
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// getOrderItems preserves attachment order so that the first attached
// item stays first, which decides the order's currency.
func getOrderItems(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) ([]domain.Item, error) {
	rows, err := tx.Query(ctx,
		`SELECT i.id, i.name, i.description, i.price_amount, i.price_currency, i.created_at, i.updated_at
		 FROM order_items oi
		 JOIN items i ON i.id = oi.item_id
		 WHERE oi.order_id = $1
		 ORDER BY oi.seq`, orderID)
	if err != nil {
		return nil, fmt.Errorf("tx.Query: %w", err)
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
