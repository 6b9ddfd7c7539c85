package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebooks/internal/domain/entity"
	"rebooks/pkg/errors"
)

func TestCategoryList(t *testing.T) {
	categoryRepo := newFakeCategoryRepo(
		&entity.Category{ID: "cat-1", Name: "Fiction"},
		&entity.Category{ID: "cat-2", Name: "Science"},
	)
	uc := NewCategoryUseCase(categoryRepo, newFakeProductRepo(), nil, time.Minute)

	categories, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	// A nil cache is a permanent miss, so the repo is hit every time.
	_, err = uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, categoryRepo.listCalls)
}

func TestCategoryProducts(t *testing.T) {
	categoryRepo := newFakeCategoryRepo(&entity.Category{ID: "cat-1", Name: "Fiction"})

	inCategory := testProduct("p1", "seller@example.com")
	inCategory.CategoryID = "cat-1"
	otherCategory := testProduct("p2", "seller@example.com")
	otherCategory.CategoryID = "cat-2"
	booked := testProduct("p3", "seller@example.com")
	booked.CategoryID = "cat-1"
	booked.Available = false

	uc := NewCategoryUseCase(categoryRepo, newFakeProductRepo(inCategory, otherCategory, booked), nil, time.Minute)

	products, err := uc.Products(context.Background(), "cat-1")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestCategoryProductsUnknownCategory(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepo(), newFakeProductRepo(), nil, time.Minute)

	_, err := uc.Products(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
