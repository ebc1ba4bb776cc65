package models

import "time"

// Order statuses. There is no enforced forward-only progression: status is
// admin-driven and any status may be set from any other, Delivered included.
const (
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
)

// ValidStatus reports whether s is one of the recognized order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusProcessing, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// OrderItem records one product line of a placed order. Price is the unit
// price at the time of order.
type OrderItem struct {
	ID        uint   `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID   string `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

// Order is an immutable record of a completed cart checkout; only Status is
// mutable afterwards. ItemCount and Total are computed from the cart at the
// moment of placement.
type Order struct {
	ID        string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Customer  string      `json:"customer"`
	Email     string      `json:"email"`
	Address   string      `json:"address"`
	City      string      `json:"city"`
	Zip       string      `json:"zip"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	ItemCount int         `json:"item_count"`
	Total     int64       `json:"total"`
	Status    string      `json:"status"`
	PlacedAt  time.Time   `json:"placed_at"`
}
