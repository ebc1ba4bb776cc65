package repositories

import (
	"fmt"
	"log"
	"sync"

	"atelier/internal/models"
	"atelier/pkg/snapshot"

	"github.com/google/uuid"
)

// Snapshot names used by the memory store.
const (
	ProductsSnapshot = "products"
	OrdersSnapshot   = "orders"
	CartsSnapshot    = "carts"
)

// MemoryStore holds the catalog, the order ledger, and all carts behind a
// single mutex. The per-entity repositories returned by Products, Orders and
// Carts are views over this shared state, so PlaceOrder is atomic by
// construction: no reader can observe the ledger, the stock levels, and the
// cart between its effects.
//
// When constructed with a snapshot store, every mutation rewrites the
// affected collection's snapshot. Snapshot writes are fire-and-forget: a
// failed write is logged and the in-memory state stays authoritative for the
// rest of the session.
type MemoryStore struct {
	mu       sync.RWMutex
	products []models.Product
	orders   []models.Order
	carts    map[string]models.Cart
	snaps    *snapshot.Store
}

// NewMemoryStore creates a MemoryStore, loading any existing snapshots when
// snaps is non-nil. Missing or malformed snapshots load as empty collections.
func NewMemoryStore(snaps *snapshot.Store) *MemoryStore {
	s := &MemoryStore{
		carts: make(map[string]models.Cart),
		snaps: snaps,
	}
	if snaps != nil {
		if err := snaps.Load(ProductsSnapshot, &s.products); err != nil {
			log.Printf("Failed to load products snapshot: %v", err)
		}
		if err := snaps.Load(OrdersSnapshot, &s.orders); err != nil {
			log.Printf("Failed to load orders snapshot: %v", err)
		}
		if err := snaps.Load(CartsSnapshot, &s.carts); err != nil {
			log.Printf("Failed to load carts snapshot: %v", err)
		}
		if s.carts == nil {
			s.carts = make(map[string]models.Cart)
		}
	}
	return s
}

// Products returns the catalog view of the store.
func (s *MemoryStore) Products() ProductRepository { return &memoryProductRepo{s} }

// Orders returns the order-ledger view of the store.
func (s *MemoryStore) Orders() OrderRepository { return &memoryOrderRepo{s} }

// Carts returns the cart view of the store.
func (s *MemoryStore) Carts() CartRepository { return &memoryCartRepo{s} }

// persist rewrites one collection's snapshot. Callers hold the write lock.
func (s *MemoryStore) persist(name string, v any) {
	if s.snaps == nil {
		return
	}
	if err := s.snaps.Save(name, v); err != nil {
		log.Printf("Failed to persist %s snapshot: %v", name, err)
	}
}

// PlaceOrder commits a checkout under one lock acquisition: the order is
// prepended to the ledger, stock is decremented per item (floored at zero),
// sales are incremented by the ordered quantity, and the cart is cleared.
func (s *MemoryStore) PlaceOrder(order *models.Order, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append([]models.Order{*order}, s.orders...)

	for _, item := range order.Items {
		for i := range s.products {
			if s.products[i].ID == item.ProductID {
				s.products[i].Stock -= item.Quantity
				if s.products[i].Stock < 0 {
					s.products[i].Stock = 0
				}
				s.products[i].Sales += item.Quantity
				break
			}
		}
	}

	delete(s.carts, cartID)

	s.persist(OrdersSnapshot, s.orders)
	s.persist(ProductsSnapshot, s.products)
	s.persist(CartsSnapshot, s.carts)
	return nil
}

// --- catalog view ---

type memoryProductRepo struct {
	s *MemoryStore
}

// GetAll returns all products, newest first.
func (r *memoryProductRepo) GetAll() ([]models.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Product, len(r.s.products))
	copy(out, r.s.products)
	return out, nil
}

// GetByID returns a product by its ID.
func (r *memoryProductRepo) GetByID(id string) (*models.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.products {
		if r.s.products[i].ID == id {
			p := r.s.products[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product with ID %s not found", id)
}

// Create prepends a new product to the catalog.
func (r *memoryProductRepo) Create(product *models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.s.products = append([]models.Product{*product}, r.s.products...)
	r.s.persist(ProductsSnapshot, r.s.products)
	return nil
}

// Update replaces the stored record matching the product's ID.
func (r *memoryProductRepo) Update(product *models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.products {
		if r.s.products[i].ID == product.ID {
			r.s.products[i] = *product
			r.s.persist(ProductsSnapshot, r.s.products)
			return nil
		}
	}
	return fmt.Errorf("product with ID %s not found for update", product.ID)
}

// Delete removes a product by its ID. Absent products are a no-op.
func (r *memoryProductRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.products {
		if r.s.products[i].ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			r.s.persist(ProductsSnapshot, r.s.products)
			return nil
		}
	}
	return nil
}

// --- ledger view ---

type memoryOrderRepo struct {
	s *MemoryStore
}

// GetAll returns all orders, most recent first.
func (r *memoryOrderRepo) GetAll() ([]models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Order, len(r.s.orders))
	copy(out, r.s.orders)
	return out, nil
}

// GetByID returns an order by its ID.
func (r *memoryOrderRepo) GetByID(id string) (*models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.orders {
		if r.s.orders[i].ID == id {
			o := r.s.orders[i]
			return &o, nil
		}
	}
	return nil, fmt.Errorf("order with ID %s not found", id)
}

// UpdateStatus sets the status of an order. Unknown orders are a no-op.
func (r *memoryOrderRepo) UpdateStatus(id string, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.orders {
		if r.s.orders[i].ID == id {
			r.s.orders[i].Status = status
			r.s.persist(OrdersSnapshot, r.s.orders)
			return nil
		}
	}
	return nil
}

// --- cart view ---

type memoryCartRepo struct {
	s *MemoryStore
}

// Get returns the cart for cartID, or an empty cart when none exists.
func (r *memoryCartRepo) Get(cartID string) (*models.Cart, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	cart, ok := r.s.carts[cartID]
	if !ok {
		return &models.Cart{ID: cartID}, nil
	}
	out := models.Cart{ID: cart.ID, Lines: make([]models.CartLine, len(cart.Lines))}
	copy(out.Lines, cart.Lines)
	return &out, nil
}

// Save stores the cart, replacing any previous contents.
func (r *memoryCartRepo) Save(cart *models.Cart) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := models.Cart{ID: cart.ID, Lines: make([]models.CartLine, len(cart.Lines))}
	copy(stored.Lines, cart.Lines)
	r.s.carts[cart.ID] = stored
	r.s.persist(CartsSnapshot, r.s.carts)
	return nil
}

// Clear empties the cart for cartID.
func (r *memoryCartRepo) Clear(cartID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.carts, cartID)
	r.s.persist(CartsSnapshot, r.s.carts)
	return nil
}
