package repositories

import (
	"atelier/internal/models"
)

// OrderRepository defines the interface for the order ledger. GetAll returns
// orders most-recent-first. UpdateStatus on an unknown order is a silent
// no-op: the ledger is never left partially written and nothing is surfaced.
// Orders enter the ledger only through CheckoutRepository.PlaceOrder.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	UpdateStatus(id string, status string) error
}
