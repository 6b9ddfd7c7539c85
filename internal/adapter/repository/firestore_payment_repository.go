package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"rebooks/internal/domain/entity"
	"rebooks/internal/domain/repository"
	"rebooks/pkg/errors"
)

type firestorePaymentRepository struct {
	client *firestore.Client
}

func NewFirestorePaymentRepository(client *firestore.Client) repository.PaymentRepository {
	return &firestorePaymentRepository{
		client: client,
	}
}

// Record writes the payment and flips the order and product paid flags in
// one transaction; a partial write can never leave the three documents
// disagreeing about whether the sale happened.
func (r *firestorePaymentRepository) Record(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == "" {
		payment.ID = r.client.Collection("payments").NewDoc().ID
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}

	paymentRef := r.client.Collection("payments").Doc(payment.ID)
	orderRef := r.client.Collection("orders").Doc(payment.OrderID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		orderDoc, err := tx.Get(orderRef)
		if err != nil {
			return err
		}

		var order entity.Order
		if err := orderDoc.DataTo(&order); err != nil {
			return err
		}
		if order.Paid {
			return errors.Conflict("Order already paid")
		}

		productRef := r.client.Collection("products").Doc(order.ProductID)
		if _, err := tx.Get(productRef); err != nil {
			return err
		}

		if err := tx.Create(paymentRef, payment); err != nil {
			return err
		}
		if err := tx.Update(orderRef, []firestore.Update{
			{Path: "paid", Value: true},
			{Path: "transactionId", Value: payment.TransactionID},
		}); err != nil {
			return err
		}
		return tx.Update(productRef, []firestore.Update{
			{Path: "paid", Value: true},
			{Path: "advertisement", Value: false},
			{Path: "available", Value: false},
		})
	})
	if err != nil {
		if errors.Is(err, "CONFLICT") {
			return err
		}
		if IsNotFound(err) {
			return errors.NotFound("Order", err)
		}
		return errors.Internal("Failed to record payment", err)
	}

	return nil
}

func (r *firestorePaymentRepository) GetByOrderID(ctx context.Context, orderID string) (*entity.Payment, error) {
	iter := r.client.Collection("payments").Where("orderId", "==", orderID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err != nil {
		return nil, errors.NotFound("Payment", err)
	}

	var payment entity.Payment
	if err := doc.DataTo(&payment); err != nil {
		return nil, errors.Internal("Failed to parse payment data", err)
	}

	return &payment, nil
}
