package model

import "time"

// Cart holds a user's pending purchases. Each user has at most one cart;
// the unique index on UserID lets concurrent first-adds race safely at
// the database instead of the application.
type Cart struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Items []CartItem `json:"items,omitempty" gorm:"foreignKey:CartID"`
}

// CartItem is a single product line inside a cart.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CartID    uint      `json:"cart_id" gorm:"not null;index:idx_cart_product,unique"`
	ProductID uint      `json:"product_id" gorm:"not null;index:idx_cart_product,unique"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
