package services

import (
	"atelier/internal/models"
	"atelier/internal/repositories"
)

// StoreStats is the overview block of the admin dashboard.
type StoreStats struct {
	Revenue   int64 `json:"revenue"`
	UnitsSold int   `json:"units_sold"`
	Orders    int   `json:"orders"`
	Products  int   `json:"products"`
	Customers int   `json:"customers"`
}

// AdminService aggregates the read models the back-office needs.
type AdminService struct {
	products  repositories.ProductRepository
	orders    repositories.OrderRepository
	customers repositories.CustomerRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(products repositories.ProductRepository, orders repositories.OrderRepository, customers repositories.CustomerRepository) *AdminService {
	return &AdminService{
		products:  products,
		orders:    orders,
		customers: customers,
	}
}

// Stats computes the dashboard overview. Revenue is the sum of price times
// cumulative units sold over the catalog.
func (s *AdminService) Stats() (*StoreStats, error) {
	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.GetAll()
	if err != nil {
		return nil, err
	}
	customers, err := s.customers.GetAll()
	if err != nil {
		return nil, err
	}

	stats := &StoreStats{
		Orders:    len(orders),
		Products:  len(products),
		Customers: len(customers),
	}
	for _, p := range products {
		stats.Revenue += p.Price * int64(p.Sales)
		stats.UnitsSold += p.Sales
	}
	return stats, nil
}

// Customers returns the read-only customer reference rows.
func (s *AdminService) Customers() ([]models.Customer, error) {
	return s.customers.GetAll()
}
