package usecase

import (
	"context"

	"rebooks/internal/domain/entity"
	"rebooks/internal/domain/repository"
	"rebooks/pkg/errors"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistUseCase(
	wishlistRepo repository.WishlistRepository,
	productRepo repository.ProductRepository,
) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// Add puts a product on the user's wishlist. A duplicate add surfaces as a
// conflict error without writing a second entry.
func (uc *WishlistUseCase) Add(ctx context.Context, userEmail, productID string) (*entity.WishlistItem, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.SellerEmail == userEmail {
		return nil, errors.BadRequest("You cannot wishlist your own product", nil)
	}

	return uc.wishlistRepo.Add(ctx, userEmail, productID)
}

func (uc *WishlistUseCase) List(ctx context.Context, userEmail string) ([]entity.WishlistItemWithProduct, error) {
	return uc.wishlistRepo.ListByUser(ctx, userEmail)
}

// Remove deletes a wishlist entry by its ID; only the owner may remove it.
func (uc *WishlistUseCase) Remove(ctx context.Context, id, callerEmail string) error {
	items, err := uc.wishlistRepo.ListByUser(ctx, callerEmail)
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.ID == id {
			return uc.wishlistRepo.Remove(ctx, id)
		}
	}
	return errors.NotFound("Wishlist item", nil)
}
