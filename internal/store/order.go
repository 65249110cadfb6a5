package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const sqlGetOrderByID = `
SELECT id, user_id, anonymous_id, status, total_amount, created_at
FROM orders
WHERE id = $1
`

// GetOrderByID retrieves an order by ID
func (s *Store) GetOrderByID(ctx context.Context, orderID uuid.UUID) (Order, error) {
	var order Order
	err := s.db.GetContext(ctx, &order, sqlGetOrderByID, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get order by id", err)
		return Order{}, fmt.Errorf("failed to get order by id: %w", err)
	}
	return order, nil
}

const sqlGetOrderItems = `
SELECT id, order_id, product_id, price, quantity
FROM order_items
WHERE order_id = $1
ORDER BY id ASC
`

// GetOrderItems retrieves the line items of an order in stable order
func (s *Store) GetOrderItems(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error) {
	var items []OrderItem
	err := s.db.SelectContext(ctx, &items, sqlGetOrderItems, orderID)
	if err != nil {
		s.logger.Error(ctx, "failed to get order items", err)
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	return items, nil
}

const sqlUpdateOrderStatus = `
UPDATE orders
SET status = $2
WHERE id = $1
`

// UpdateOrderStatus persists an externally driven order status change
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateOrderStatus, orderID, status)
	if err != nil {
		s.logger.Error(ctx, "failed to update order status", err)
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// CreateOrderParams represents an externally ingested order
type CreateOrderParams struct {
	UserID      *uuid.UUID
	AnonymousID *string
	Status      string
	TotalAmount decimal.Decimal
	Items       []CreateOrderItemParams
}

// CreateOrderItemParams represents one line of an ingested order
type CreateOrderItemParams struct {
	ProductID uuid.UUID
	Price     decimal.Decimal
	Quantity  int
}

const sqlCreateOrder = `
INSERT INTO orders (user_id, anonymous_id, status, total_amount)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, anonymous_id, status, total_amount, created_at
`

const sqlCreateOrderItem = `
INSERT INTO order_items (order_id, product_id, price, quantity)
VALUES ($1, $2, $3, $4)
`

// CreateOrder inserts an order and its line items in one transaction
func (s *Store) CreateOrder(ctx context.Context, params CreateOrderParams) (Order, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Order{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var order Order
	err = tx.GetContext(ctx, &order, sqlCreateOrder,
		params.UserID,
		params.AnonymousID,
		params.Status,
		params.TotalAmount)
	if err != nil {
		s.logger.Error(ctx, "failed to create order", err)
		return Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	for _, item := range params.Items {
		if _, err = tx.ExecContext(ctx, sqlCreateOrderItem, order.ID, item.ProductID, item.Price, item.Quantity); err != nil {
			s.logger.Error(ctx, "failed to create order item", err)
			return Order{}, fmt.Errorf("failed to create order item: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return Order{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return order, nil
}
