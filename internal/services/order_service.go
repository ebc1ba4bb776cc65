package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"atelier/internal/models"
	"atelier/internal/repositories"
	"atelier/pkg/rabbitmq"

	"github.com/google/uuid"
)

// ErrEmptyCart is returned when checkout is attempted with nothing carted.
var ErrEmptyCart = errors.New("cart is empty")

// CheckoutDetails carries the shopper's contact and shipping information
// collected at checkout. No payment data is taken.
type CheckoutDetails struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Zip     string `json:"zip" validate:"required"`
}

// OrderService handles business logic for the order ledger.
type OrderService struct {
	orders   repositories.OrderRepository
	carts    repositories.CartRepository
	checkout repositories.CheckoutRepository
	mq       rabbitmq.Publisher
}

// NewOrderService creates a new OrderService. mq may be nil, in which case
// order events are not published.
func NewOrderService(orders repositories.OrderRepository, carts repositories.CartRepository, checkout repositories.CheckoutRepository, mq rabbitmq.Publisher) *OrderService {
	return &OrderService{
		orders:   orders,
		carts:    carts,
		checkout: checkout,
		mq:       mq,
	}
}

// GetAllOrders retrieves all orders, most recent first.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orders.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orders.GetByID(id)
}

// PlaceOrder turns the shopper's cart into an order. The item count and total
// are computed from the cart at the moment of call, the order enters the
// ledger as Processing, stock and sales are adjusted, and the cart is
// cleared; the checkout repository commits all of that as one transition.
// An empty cart is rejected before anything is written.
func (s *OrderService) PlaceOrder(cartID string, details CheckoutDetails) (*models.Order, error) {
	cart, err := s.carts.Get(cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, models.OrderItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
		})
	}

	order := &models.Order{
		ID:        uuid.New().String(),
		Customer:  details.Name,
		Email:     details.Email,
		Address:   details.Address,
		City:      details.City,
		Zip:       details.Zip,
		Items:     items,
		ItemCount: cart.ItemCount(),
		Total:     cart.Total(),
		Status:    models.StatusProcessing,
		PlacedAt:  time.Now(),
	}

	if err := s.checkout.PlaceOrder(order, cartID); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	// Event publication is best-effort: a broker outage must not undo a
	// committed order.
	if s.mq != nil {
		event := rabbitmq.OrderPlacedEvent{
			OrderID:   order.ID,
			Customer:  order.Customer,
			ItemCount: order.ItemCount,
			Total:     order.Total,
			Status:    order.Status,
		}
		if err := s.mq.PublishOrderPlaced(event); err != nil {
			log.Printf("Warning: failed to publish order placed event for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

// UpdateOrderStatus sets the status of an order. Status must be one of
// Processing, Shipped or Delivered; transitions are otherwise unrestricted,
// so an order can move between any two statuses. An unknown order ID is a
// silent no-op.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("invalid order status: %s", status)
	}
	if err := s.orders.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return nil
}
