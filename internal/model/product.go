package model

import "time"

// Product represents a catalog item available for purchase.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null;index"`
	Description string    `json:"description" gorm:"size:1000;not null"`
	Price       float64   `json:"price" gorm:"not null"`
	ImageURL    string    `json:"image_url" gorm:"size:2048"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
