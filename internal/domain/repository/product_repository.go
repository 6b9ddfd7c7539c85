package repository

import (
	"context"

	"rebooks/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// List returns products matching the equality filter, newest first.
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error)
	// SetAdvertisement flips the advertisement flag. Idempotent.
	SetAdvertisement(ctx context.Context, id string, advertised bool) error
	SetReported(ctx context.Context, id string, reported bool) error
	Delete(ctx context.Context, id string) error
}

type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
}
