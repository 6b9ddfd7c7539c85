package usecase

import (
	"context"
	"time"

	"rebooks/internal/domain/entity"
	"rebooks/internal/domain/repository"
	"rebooks/internal/infrastructure/cache"
	"rebooks/pkg/logger"
)

const categoriesCacheKey = "categories:all"

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	cache        *cache.Cache
	cacheTTL     time.Duration
}

func NewCategoryUseCase(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	c *cache.Cache,
	cacheTTL time.Duration,
) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		cache:        c,
		cacheTTL:     cacheTTL,
	}
}

// List returns the category reference data, served from Redis when warm.
func (uc *CategoryUseCase) List(ctx context.Context) ([]*entity.Category, error) {
	var cached []*entity.Category
	hit, err := uc.cache.Get(ctx, categoriesCacheKey, &cached)
	if err != nil {
		logger.Warn("Category cache read failed: %v", err)
	}
	if hit {
		return cached, nil
	}

	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, categoriesCacheKey, categories, uc.cacheTTL); err != nil {
		logger.Warn("Category cache write failed: %v", err)
	}

	return categories, nil
}

// Products returns the still-available products filed under a category.
func (uc *CategoryUseCase) Products(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	if _, err := uc.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	products, _, err := uc.productRepo.List(ctx, map[string]interface{}{
		"categoryId": categoryID,
		"available":  true,
	}, 0, 0)
	if err != nil {
		return nil, err
	}

	return products, nil
}
