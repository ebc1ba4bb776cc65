package repositories

import (
	"atelier/internal/models"
)

// ProductRepository defines the interface for catalog data access. Update is
// a full-record replace; partial-merge semantics live in the catalog service.
// Delete of an absent product is a no-op, not an error.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
