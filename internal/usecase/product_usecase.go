package usecase

import (
	"context"
	"time"

	"rebooks/internal/domain/entity"
	"rebooks/internal/domain/repository"
	"rebooks/pkg/errors"
)

type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

type CreateProductInput struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	CategoryID    string  `json:"category_id"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
	Condition     string  `json:"condition"`
	Location      string  `json:"location"`
	ImageURL      string  `json:"image_url"`
}

func (uc *ProductUseCase) Create(ctx context.Context, sellerEmail string, input CreateProductInput) (*entity.Product, error) {
	if _, err := uc.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, errors.BadRequest("Invalid category", err)
	}

	seller, err := uc.userRepo.GetByEmail(ctx, sellerEmail)
	if err != nil {
		return nil, errors.BadRequest("Invalid seller", err)
	}

	product := &entity.Product{
		Title:          input.Title,
		Description:    input.Description,
		CategoryID:     input.CategoryID,
		SellerEmail:    seller.Email,
		SellerName:     seller.Name,
		Price:          input.Price,
		OriginalPrice:  input.OriginalPrice,
		Condition:      input.Condition,
		Location:       input.Location,
		ImageURL:       input.ImageURL,
		Advertisement:  false,
		Paid:           false,
		Reported:       false,
		Available:      true,
		SellerVerified: seller.Verified,
		CreatedAt:      time.Now(),
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// List returns available products, newest first.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error) {
	return uc.productRepo.List(ctx, map[string]interface{}{"available": true}, limit, offset)
}

// ListAdvertised returns promoted products that can still be bought.
func (uc *ProductUseCase) ListAdvertised(ctx context.Context) ([]*entity.Product, error) {
	products, _, err := uc.productRepo.List(ctx, map[string]interface{}{
		"advertisement": true,
		"available":     true,
	}, 0, 0)
	return products, err
}

func (uc *ProductUseCase) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Product, error) {
	products, _, err := uc.productRepo.List(ctx, map[string]interface{}{"sellerEmail": sellerEmail}, 0, 0)
	return products, err
}

// ListSold returns a seller's products whose sale completed.
func (uc *ProductUseCase) ListSold(ctx context.Context, sellerEmail string) ([]*entity.Product, error) {
	products, _, err := uc.productRepo.List(ctx, map[string]interface{}{
		"sellerEmail": sellerEmail,
		"paid":        true,
	}, 0, 0)
	return products, err
}

// Advertise promotes a product. Repeated calls are a no-op.
func (uc *ProductUseCase) Advertise(ctx context.Context, id, sellerEmail string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product.SellerEmail != sellerEmail {
		return errors.Forbidden("You don't own this product", nil)
	}
	if product.Paid {
		return errors.BadRequest("Sold products cannot be advertised", nil)
	}
	return uc.productRepo.SetAdvertisement(ctx, id, true)
}

// Report flags a product for admin review.
func (uc *ProductUseCase) Report(ctx context.Context, id string) error {
	return uc.productRepo.SetReported(ctx, id, true)
}

func (uc *ProductUseCase) ListReported(ctx context.Context) ([]*entity.Product, error) {
	products, _, err := uc.productRepo.List(ctx, map[string]interface{}{"reported": true}, 0, 0)
	return products, err
}

// Delete removes a product. Sellers may only remove their own; admins may
// remove any (reported-product cleanup).
func (uc *ProductUseCase) Delete(ctx context.Context, id, callerEmail string, isAdmin bool) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && product.SellerEmail != callerEmail {
		return errors.Forbidden("You don't own this product", nil)
	}
	return uc.productRepo.Delete(ctx, id)
}
