package repository

import (
	"context"

	"rebooks/internal/domain/entity"
)

type WishlistRepository interface {
	// Add stores the item keyed by (userEmail, productID). Returns a
	// conflict error on a duplicate add.
	Add(ctx context.Context, userEmail, productID string) (*entity.WishlistItem, error)
	Remove(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userEmail string) ([]entity.WishlistItemWithProduct, error)
}
