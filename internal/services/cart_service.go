package services

import (
	"fmt"

	"atelier/internal/models"
	"atelier/internal/repositories"
)

// CartService handles business logic for shopper carts. A cart holds at most
// one line per product; adding an already-carted product increments its
// quantity, and removing a product drops the whole line regardless of
// quantity. Every mutation is persisted through the cart repository.
type CartService struct {
	carts    repositories.CartRepository
	products repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(carts repositories.CartRepository, products repositories.ProductRepository) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
	}
}

// Get returns the cart for cartID. A shopper without a cart gets an empty one.
func (s *CartService) Get(cartID string) (*models.Cart, error) {
	return s.carts.Get(cartID)
}

// Add puts one unit of the product into the cart. The stored line carries a
// snapshot of the product as it was when first added.
func (s *CartService) Add(cartID, productID string) (*models.Cart, error) {
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("cannot add to cart: %w", err)
	}

	cart, err := s.carts.Get(cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	found := false
	for i := range cart.Lines {
		if cart.Lines[i].Product.ID == productID {
			cart.Lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart.Lines = append(cart.Lines, models.CartLine{Product: *product, Quantity: 1})
	}

	if err := s.carts.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

// Remove deletes the product's line from the cart entirely. Removing a
// product that is not in the cart is a no-op.
func (s *CartService) Remove(cartID, productID string) (*models.Cart, error) {
	cart, err := s.carts.Get(cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	for i := range cart.Lines {
		if cart.Lines[i].Product.ID == productID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			if err := s.carts.Save(cart); err != nil {
				return nil, fmt.Errorf("failed to save cart: %w", err)
			}
			break
		}
	}
	return cart, nil
}

// Total returns the sum of price times quantity over the cart's lines. An
// empty cart totals zero.
func (s *CartService) Total(cartID string) (int64, error) {
	cart, err := s.carts.Get(cartID)
	if err != nil {
		return 0, fmt.Errorf("failed to load cart: %w", err)
	}
	return cart.Total(), nil
}

// Clear empties the cart.
func (s *CartService) Clear(cartID string) error {
	return s.carts.Clear(cartID)
}
