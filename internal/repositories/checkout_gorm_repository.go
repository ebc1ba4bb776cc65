package repositories

import (
	"fmt"

	"atelier/internal/models"

	"gorm.io/gorm"
)

// GORMCheckoutRepository commits checkouts against the relational backend.
// The order insert and the stock/sales adjustments run in one database
// transaction. The cart lives in the session-local store in this backend too,
// so it is cleared through the cart repository once the transaction commits.
type GORMCheckoutRepository struct {
	db    *gorm.DB
	carts CartRepository
}

// NewGORMCheckoutRepository creates a new instance of GORMCheckoutRepository.
func NewGORMCheckoutRepository(db *gorm.DB, carts CartRepository) *GORMCheckoutRepository {
	return &GORMCheckoutRepository{
		db:    db,
		carts: carts,
	}
}

// PlaceOrder writes the order and applies the inventory deltas atomically,
// then clears the cart.
func (r *GORMCheckoutRepository) PlaceOrder(order *models.Order, cartID string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, item := range order.Items {
			var product models.Product
			if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					// Product removed from the catalog since it was carted;
					// the order still records the line as priced.
					continue
				}
				return fmt.Errorf("failed to load product %s: %w", item.ProductID, err)
			}

			product.Stock -= item.Quantity
			if product.Stock < 0 {
				product.Stock = 0
			}
			product.Sales += item.Quantity

			if err := tx.Save(&product).Error; err != nil {
				return fmt.Errorf("failed to adjust inventory for product %s: %w", item.ProductID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return r.carts.Clear(cartID)
}
