package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"rebooks/internal/domain/entity"
	"rebooks/internal/domain/repository"
	"rebooks/pkg/errors"
)

type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{client: client}
}

// The document ID is the (user, product) pair, so a duplicate add fails on
// the create precondition without a separate existence check.
func wishlistID(userEmail, productID string) string {
	return fmt.Sprintf("%s_%s", userEmail, productID)
}

func (r *firestoreWishlistRepository) Add(ctx context.Context, userEmail, productID string) (*entity.WishlistItem, error) {
	item := entity.WishlistItem{
		ID:        wishlistID(userEmail, productID),
		UserEmail: userEmail,
		ProductID: productID,
		Available: true,
		CreatedAt: time.Now(),
	}

	_, err := r.client.Collection("wishlists").Doc(item.ID).Create(ctx, item)
	if err != nil {
		if IsAlreadyExists(err) {
			return nil, errors.Conflict("Product already in wishlist")
		}
		return nil, errors.Internal("Failed to add to wishlist", err)
	}

	return &item, nil
}

func (r *firestoreWishlistRepository) Remove(ctx context.Context, id string) error {
	_, err := r.client.Collection("wishlists").Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Wishlist item", err)
		}
		return errors.Internal("Failed to remove from wishlist", err)
	}
	return nil
}

func (r *firestoreWishlistRepository) ListByUser(ctx context.Context, userEmail string) ([]entity.WishlistItemWithProduct, error) {
	docs, err := r.client.Collection("wishlists").
		Where("userEmail", "==", userEmail).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to get wishlist", err)
	}

	items := make([]entity.WishlistItem, 0, len(docs))
	refs := make([]*firestore.DocumentRef, 0, len(docs))
	for _, doc := range docs {
		var item entity.WishlistItem
		if err := doc.DataTo(&item); err != nil {
			continue
		}
		items = append(items, item)
		refs = append(refs, r.client.Collection("products").Doc(item.ProductID))
	}

	if len(items) == 0 {
		return []entity.WishlistItemWithProduct{}, nil
	}

	productDocs, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Internal("Failed to fetch wishlist products", err)
	}

	result := make([]entity.WishlistItemWithProduct, 0, len(items))
	for i, item := range items {
		entry := entity.WishlistItemWithProduct{
			ID:        item.ID,
			UserEmail: item.UserEmail,
			ProductID: item.ProductID,
			Available: item.Available,
			CreatedAt: item.CreatedAt,
		}
		if productDocs[i].Exists() {
			var product entity.Product
			if err := productDocs[i].DataTo(&product); err == nil {
				entry.Product = &product
			}
		}
		result = append(result, entry)
	}

	return result, nil
}
