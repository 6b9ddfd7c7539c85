package repository

import (
	"context"

	"rebooks/internal/domain/entity"
)

type OrderRepository interface {
	// Book places the order and marks the product unavailable in one
	// transaction. Fails with a conflict error when the product already
	// has an active order or is sold.
	Book(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByBuyer(ctx context.Context, email string) ([]*entity.Order, error)
	ListBySeller(ctx context.Context, email string) ([]*entity.Order, error)
	// Cancel deletes the order and restores product and wishlist
	// availability in one transaction.
	Cancel(ctx context.Context, id string) error
}

type PaymentRepository interface {
	// Record writes the payment document and marks the order and product
	// paid (advertisement cleared) atomically.
	Record(ctx context.Context, payment *entity.Payment) error
	GetByOrderID(ctx context.Context, orderID string) (*entity.Payment, error)
}
