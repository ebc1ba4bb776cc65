package repositories

import (
	"atelier/internal/models"
)

// CartRepository defines the interface for cart persistence, keyed by the
// shopper's user ID. Get of an unknown cart returns an empty cart rather than
// an error; a malformed persisted cart also loads as empty.
type CartRepository interface {
	Get(cartID string) (*models.Cart, error)
	Save(cart *models.Cart) error
	Clear(cartID string) error
}
