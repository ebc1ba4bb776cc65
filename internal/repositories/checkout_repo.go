package repositories

import (
	"atelier/internal/models"
)

// CheckoutRepository commits an order as one atomic state transition: the
// order is prepended to the ledger, each ordered product's stock is
// decremented by its quantity (floored at zero, no backorders) and its sales
// incremented by the same amount, and the cart is cleared. Either all of
// these effects are observable afterwards or none are.
type CheckoutRepository interface {
	PlaceOrder(order *models.Order, cartID string) error
}
