package entity

import (
	"time"
)

type WishlistItem struct {
	ID        string    `json:"id" firestore:"id"`
	UserEmail string    `json:"user_email" firestore:"userEmail"`
	ProductID string    `json:"product_id" firestore:"productId"`
	Available bool      `json:"available" firestore:"available"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

type WishlistItemWithProduct struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	ProductID string    `json:"product_id"`
	Available bool      `json:"available"`
	Product   *Product  `json:"product"`
	CreatedAt time.Time `json:"created_at"`
}
