package repositories

import (
	"atelier/internal/models"
)

// CustomerRepository serves the read-only customer reference rows shown on
// the admin dashboard.
type CustomerRepository interface {
	GetAll() ([]models.Customer, error)
}

// StaticCustomerRepository holds a fixed customer list in memory.
type StaticCustomerRepository struct {
	customers []models.Customer
}

// NewStaticCustomerRepository creates a repository over the given rows.
func NewStaticCustomerRepository(customers []models.Customer) *StaticCustomerRepository {
	return &StaticCustomerRepository{customers: customers}
}

// GetAll returns all customers.
func (r *StaticCustomerRepository) GetAll() ([]models.Customer, error) {
	out := make([]models.Customer, len(r.customers))
	copy(out, r.customers)
	return out, nil
}
