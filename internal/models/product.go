package models

import "gorm.io/gorm"

// Categories the catalog recognizes.
var Categories = []string{"Clothing", "Painting", "Accessories", "Decor"}

// Product represents a sellable piece in the catalog. Price is a positive
// integer in the smallest currency unit. Stock and Sales are only mutated by
// order placement or an explicit admin edit.
type Product struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string  `json:"name" validate:"required,min=3,max=100"`
	Price      int64   `json:"price" validate:"required,gt=0"`
	Category   string  `json:"category" validate:"required,oneof=Clothing Painting Accessories Decor"`
	Image      string  `json:"image" validate:"omitempty,url"`
	Rating     float64 `json:"rating" validate:"gte=0,lte=5"`
	Stock      int     `json:"stock" validate:"gte=0"`
	Sales      int     `json:"sales" validate:"gte=0"`
	gorm.Model `json:"-"` // CreatedAt, UpdatedAt, DeletedAt
}
