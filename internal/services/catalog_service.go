package services

import (
	"fmt"
	"strings"

	"atelier/internal/models"
	"atelier/internal/repositories"
)

// ProductPatch is a partial update of a product. Nil fields keep the stored
// value, so an admin edit only has to carry the fields it changes.
type ProductPatch struct {
	Name     *string  `json:"name" validate:"omitempty,min=3,max=100"`
	Price    *int64   `json:"price" validate:"omitempty,gt=0"`
	Category *string  `json:"category" validate:"omitempty,oneof=Clothing Painting Accessories Decor"`
	Image    *string  `json:"image" validate:"omitempty,url"`
	Rating   *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Stock    *int     `json:"stock" validate:"omitempty,gte=0"`
	Sales    *int     `json:"sales" validate:"omitempty,gte=0"`
}

// CatalogService handles business logic for the product catalog.
type CatalogService struct {
	repo repositories.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products, newest first.
func (s *CatalogService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// Browse filters the catalog. category narrows to one category ("" keeps
// all), search matches case-insensitively against name or category, and
// maxPrice is an inclusive price ceiling (0 means no ceiling). The store only
// exposes plain reads, so the filter runs here.
func (s *CatalogService) Browse(category, search string, maxPrice int64) ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(search)
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Category), search) {
			continue
		}
		if maxPrice > 0 && p.Price > maxPrice {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

// CreateProduct catalogs a new product. New pieces always start unrated and
// unsold, whatever the caller supplied.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	product.Rating = 0
	product.Sales = 0
	return s.repo.Create(product)
}

// UpdateProduct merges the patch into the stored record and writes the
// result back. The merge keeps every field the patch leaves nil.
func (s *CatalogService) UpdateProduct(id string, patch ProductPatch) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product for update: %w", err)
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Category != nil {
		product.Category = *patch.Category
	}
	if patch.Image != nil {
		product.Image = *patch.Image
	}
	if patch.Rating != nil {
		product.Rating = *patch.Rating
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	if patch.Sales != nil {
		product.Sales = *patch.Sales
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product by its ID. Deleting an absent product is a
// no-op.
func (s *CatalogService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
