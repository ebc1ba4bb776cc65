package services_test

import (
	"testing"

	"atelier/internal/models"
	"atelier/internal/repositories"
	"atelier/internal/services"
	"atelier/pkg/rabbitmq"

	"github.com/stretchr/testify/assert"
)

// recordingPublisher captures order events instead of talking to a broker.
type recordingPublisher struct {
	events []rabbitmq.OrderPlacedEvent
	err    error
}

func (p *recordingPublisher) PublishOrderPlaced(event rabbitmq.OrderPlacedEvent) error {
	p.events = append(p.events, event)
	return p.err
}

var checkoutDetails = services.CheckoutDetails{
	Name:    "Oscar Wilde",
	Email:   "oscar@london.uk",
	Address: "16 Tite Street",
	City:    "London",
	Zip:     "SW3 4JA",
}

func newOrderFixture(t *testing.T, products ...models.Product) (*services.OrderService, *services.CartService, *repositories.MemoryStore, *recordingPublisher) {
	t.Helper()
	store := repositories.NewMemoryStore(nil)
	for i := range products {
		assert.NoError(t, store.Products().Create(&products[i]))
	}
	pub := &recordingPublisher{}
	orderSvc := services.NewOrderService(store.Orders(), store.Carts(), store, pub)
	cartSvc := services.NewCartService(store.Carts(), store.Products())
	return orderSvc, cartSvc, store, pub
}

func TestOrderService_PlaceOrderIsAtomic(t *testing.T) {
	orderSvc, cartSvc, store, pub := newOrderFixture(t,
		models.Product{ID: "1", Name: "Velvet Renaissance Gown", Price: 85000, Category: "Clothing", Stock: 2, Sales: 4},
		models.Product{ID: "2", Name: "Embroidered Silk Cape", Price: 45000, Category: "Clothing", Stock: 5, Sales: 12},
	)

	_, err := cartSvc.Add("shopper-1", "1")
	assert.NoError(t, err)
	_, err = cartSvc.Add("shopper-1", "2")
	assert.NoError(t, err)
	_, err = cartSvc.Add("shopper-1", "2")
	assert.NoError(t, err)

	order, err := orderSvc.PlaceOrder("shopper-1", checkoutDetails)
	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "Oscar Wilde", order.Customer)
	assert.Equal(t, models.StatusProcessing, order.Status)
	assert.Equal(t, 3, order.ItemCount)
	assert.Equal(t, int64(175000), order.Total)

	// Ledger has the order at the front.
	orders, err := orderSvc.GetAllOrders()
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	// Cart is empty.
	cart, err := cartSvc.Get("shopper-1")
	assert.NoError(t, err)
	assert.Empty(t, cart.Lines)

	// Inventory moved: stock down, sales up by the ordered quantity.
	gown, err := store.Products().GetByID("1")
	assert.NoError(t, err)
	assert.Equal(t, 1, gown.Stock)
	assert.Equal(t, 5, gown.Sales)

	cape, err := store.Products().GetByID("2")
	assert.NoError(t, err)
	assert.Equal(t, 3, cape.Stock)
	assert.Equal(t, 14, cape.Sales)

	// Event published for the committed order.
	assert.Len(t, pub.events, 1)
	assert.Equal(t, order.ID, pub.events[0].OrderID)
	assert.Equal(t, int64(175000), pub.events[0].Total)
}

func TestOrderService_PlaceOrderRejectsEmptyCart(t *testing.T) {
	orderSvc, _, _, pub := newOrderFixture(t)

	_, err := orderSvc.PlaceOrder("shopper-1", checkoutDetails)
	assert.ErrorIs(t, err, services.ErrEmptyCart)

	orders, err := orderSvc.GetAllOrders()
	assert.NoError(t, err)
	assert.Empty(t, orders)
	assert.Empty(t, pub.events)
}

func TestOrderService_StockFloorsAtZero(t *testing.T) {
	orderSvc, cartSvc, store, _ := newOrderFixture(t,
		models.Product{ID: "p1", Name: "Linen Poet Shirt", Price: 12000, Category: "Clothing", Stock: 3, Sales: 40},
	)

	// Order 5 units of a product with stock 3.
	for i := 0; i < 5; i++ {
		_, err := cartSvc.Add("shopper-1", "p1")
		assert.NoError(t, err)
	}

	_, err := orderSvc.PlaceOrder("shopper-1", checkoutDetails)
	assert.NoError(t, err)

	// Stock is 0, not -2; sales still count all 5 units.
	shirt, err := store.Products().GetByID("p1")
	assert.NoError(t, err)
	assert.Equal(t, 0, shirt.Stock)
	assert.Equal(t, 45, shirt.Sales)
}

func TestOrderService_LastUnitSale(t *testing.T) {
	orderSvc, cartSvc, store, _ := newOrderFixture(t,
		models.Product{ID: "5", Name: "Victorian Lace Dress", Price: 92000, Category: "Clothing", Stock: 1, Sales: 2},
	)

	_, err := cartSvc.Add("shopper-1", "5")
	assert.NoError(t, err)

	_, err = orderSvc.PlaceOrder("shopper-1", checkoutDetails)
	assert.NoError(t, err)

	dress, err := store.Products().GetByID("5")
	assert.NoError(t, err)
	assert.Equal(t, 0, dress.Stock)
	assert.Equal(t, 3, dress.Sales)
}

func TestOrderService_OrdersAreMostRecentFirst(t *testing.T) {
	orderSvc, cartSvc, _, _ := newOrderFixture(t,
		models.Product{ID: "p1", Name: "Gilded Hand Fan", Price: 8500, Category: "Accessories", Stock: 12},
	)

	_, err := cartSvc.Add("shopper-1", "p1")
	assert.NoError(t, err)
	first, err := orderSvc.PlaceOrder("shopper-1", checkoutDetails)
	assert.NoError(t, err)

	_, err = cartSvc.Add("shopper-1", "p1")
	assert.NoError(t, err)
	second, err := orderSvc.PlaceOrder("shopper-1", checkoutDetails)
	assert.NoError(t, err)

	orders, err := orderSvc.GetAllOrders()
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	orderSvc, cartSvc, _, _ := newOrderFixture(t,
		models.Product{ID: "p1", Name: "Marble Bust", Price: 65000, Category: "Decor", Stock: 2},
	)

	_, err := cartSvc.Add("shopper-1", "p1")
	assert.NoError(t, err)
	order, err := orderSvc.PlaceOrder("shopper-1", checkoutDetails)
	assert.NoError(t, err)

	assert.NoError(t, orderSvc.UpdateOrderStatus(order.ID, models.StatusShipped))
	got, err := orderSvc.GetOrderByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusShipped, got.Status)

	// No forward-only rule: Delivered can go back to Processing.
	assert.NoError(t, orderSvc.UpdateOrderStatus(order.ID, models.StatusDelivered))
	assert.NoError(t, orderSvc.UpdateOrderStatus(order.ID, models.StatusProcessing))
	got, err = orderSvc.GetOrderByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, got.Status)
}

func TestOrderService_UpdateStatusUnknownOrderIsNoOp(t *testing.T) {
	orderSvc, cartSvc, _, _ := newOrderFixture(t,
		models.Product{ID: "p1", Name: "Persian Rug", Price: 125000, Category: "Decor", Stock: 1},
	)

	_, err := cartSvc.Add("shopper-1", "p1")
	assert.NoError(t, err)
	order, err := orderSvc.PlaceOrder("shopper-1", checkoutDetails)
	assert.NoError(t, err)

	before, err := orderSvc.GetAllOrders()
	assert.NoError(t, err)

	assert.NoError(t, orderSvc.UpdateOrderStatus("no-such-order", models.StatusShipped))

	after, err := orderSvc.GetAllOrders()
	assert.NoError(t, err)
	assert.Equal(t, before, after)

	got, err := orderSvc.GetOrderByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, got.Status)
}

func TestOrderService_UpdateStatusRejectsUnknownStatus(t *testing.T) {
	orderSvc, _, _, _ := newOrderFixture(t)

	err := orderSvc.UpdateOrderStatus("any", "Cancelled")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")
}

func TestOrderService_PublishFailureDoesNotFailOrder(t *testing.T) {
	store := repositories.NewMemoryStore(nil)
	product := models.Product{ID: "p1", Name: "Pearl Drop Earrings", Price: 15000, Category: "Accessories", Stock: 8}
	assert.NoError(t, store.Products().Create(&product))

	pub := &recordingPublisher{err: assert.AnError}
	orderSvc := services.NewOrderService(store.Orders(), store.Carts(), store, pub)
	cartSvc := services.NewCartService(store.Carts(), store.Products())

	_, err := cartSvc.Add("shopper-1", "p1")
	assert.NoError(t, err)

	order, err := orderSvc.PlaceOrder("shopper-1", checkoutDetails)
	assert.NoError(t, err)

	orders, err := orderSvc.GetAllOrders()
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}
