package entity

import (
	"time"
)

type Product struct {
	ID            string  `json:"id" firestore:"id"`
	Title         string  `json:"title" firestore:"title"`
	Description   string  `json:"description,omitempty" firestore:"description,omitempty"`
	CategoryID    string  `json:"category_id" firestore:"categoryId"`
	SellerEmail   string  `json:"seller_email" firestore:"sellerEmail"`
	SellerName    string  `json:"seller_name,omitempty" firestore:"sellerName,omitempty"`
	Price         float64 `json:"price" firestore:"price"`
	OriginalPrice float64 `json:"original_price,omitempty" firestore:"originalPrice,omitempty"`
	Condition     string  `json:"condition,omitempty" firestore:"condition,omitempty"`
	Location      string  `json:"location,omitempty" firestore:"location,omitempty"`
	ImageURL      string  `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`

	// Lifecycle flags. Available flips to false when an order is placed
	// and back to true when that order is cancelled.
	Advertisement bool `json:"advertisement" firestore:"advertisement"`
	Paid          bool `json:"paid" firestore:"paid"`
	Reported      bool `json:"reported" firestore:"reported"`
	Available     bool `json:"available" firestore:"available"`

	SellerVerified bool `json:"seller_verified" firestore:"sellerVerified"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

type Category struct {
	ID   string `json:"id" firestore:"id"`
	Name string `json:"name" firestore:"name"`
}
