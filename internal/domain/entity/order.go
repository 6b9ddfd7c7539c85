package entity

import (
	"time"
)

// Order is a booked product: a buyer's reservation of a single product,
// pending or following payment.
type Order struct {
	ID            string  `json:"id" firestore:"id"`
	ProductID     string  `json:"product_id" firestore:"productId"`
	ProductTitle  string  `json:"product_title" firestore:"productTitle"`
	Price         float64 `json:"price" firestore:"price"`
	UserEmail     string  `json:"user_email" firestore:"userEmail"`
	SellerEmail   string  `json:"seller_email" firestore:"sellerEmail"`
	MeetingPoint  string  `json:"meeting_point,omitempty" firestore:"meetingPoint,omitempty"`
	Phone         string  `json:"phone,omitempty" firestore:"phone,omitempty"`
	Paid          bool    `json:"paid" firestore:"paid"`
	TransactionID string  `json:"transaction_id,omitempty" firestore:"transactionId,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// Payment records a completed payment for an order. Immutable once written.
type Payment struct {
	ID            string    `json:"id" firestore:"id"`
	OrderID       string    `json:"order_id" firestore:"orderId"`
	ProductID     string    `json:"product_id" firestore:"productId"`
	TransactionID string    `json:"transaction_id" firestore:"transactionId"`
	Amount        float64   `json:"amount" firestore:"amount"`
	Email         string    `json:"email" firestore:"email"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
}
