package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"rebooks/internal/domain/entity"
	"rebooks/internal/domain/repository"
	"rebooks/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

// Book reserves the product for the buyer. The availability check, order
// write and product flip happen in one transaction so a product can never
// carry two active orders.
func (r *firestoreOrderRepository) Book(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = r.client.Collection("orders").NewDoc().ID
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	orderRef := r.client.Collection("orders").Doc(order.ID)
	productRef := r.client.Collection("products").Doc(order.ProductID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// Firestore requires all reads before any write.
		productDoc, err := tx.Get(productRef)
		if err != nil {
			return err
		}

		var product entity.Product
		if err := productDoc.DataTo(&product); err != nil {
			return err
		}

		if !product.Available || product.Paid {
			return errors.Conflict("Product already booked")
		}

		wishlistDocs, err := tx.Documents(
			r.client.Collection("wishlists").Where("productId", "==", order.ProductID),
		).GetAll()
		if err != nil {
			return err
		}

		if err := tx.Create(orderRef, order); err != nil {
			return err
		}
		if err := tx.Update(productRef, []firestore.Update{
			{Path: "available", Value: false},
		}); err != nil {
			return err
		}
		for _, doc := range wishlistDocs {
			if err := tx.Update(doc.Ref, []firestore.Update{
				{Path: "available", Value: false},
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, "CONFLICT") {
			return err
		}
		if IsNotFound(err) {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to book product", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) ListByBuyer(ctx context.Context, email string) ([]*entity.Order, error) {
	return r.list(ctx, "userEmail", email)
}

func (r *firestoreOrderRepository) ListBySeller(ctx context.Context, email string) ([]*entity.Order, error) {
	return r.list(ctx, "sellerEmail", email)
}

func (r *firestoreOrderRepository) list(ctx context.Context, field, email string) ([]*entity.Order, error) {
	iter := r.client.Collection("orders").Where(field, "==", email).Documents(ctx)
	defer iter.Stop()

	var orders []*entity.Order
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list orders", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, errors.Internal("Failed to parse order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, nil
}

// Cancel removes the order and restores product and wishlist availability.
func (r *firestoreOrderRepository) Cancel(ctx context.Context, id string) error {
	orderRef := r.client.Collection("orders").Doc(id)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		orderDoc, err := tx.Get(orderRef)
		if err != nil {
			return err
		}

		var order entity.Order
		if err := orderDoc.DataTo(&order); err != nil {
			return err
		}

		productRef := r.client.Collection("products").Doc(order.ProductID)
		_, err = tx.Get(productRef)
		productExists := err == nil
		if err != nil && !IsNotFound(err) {
			return err
		}

		wishlistDocs, err := tx.Documents(
			r.client.Collection("wishlists").Where("productId", "==", order.ProductID),
		).GetAll()
		if err != nil {
			return err
		}

		if err := tx.Delete(orderRef); err != nil {
			return err
		}
		if productExists {
			if err := tx.Update(productRef, []firestore.Update{
				{Path: "available", Value: true},
			}); err != nil {
				return err
			}
		}
		for _, doc := range wishlistDocs {
			if err := tx.Update(doc.Ref, []firestore.Update{
				{Path: "available", Value: true},
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Order", err)
		}
		return errors.Internal("Failed to cancel order", err)
	}

	return nil
}
