package handlers

import (
	"fmt"
	"log"
	"strings"

	"atelier/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopper's cart. The cart is keyed
// by the authenticated user, so all routes require a valid token.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Delete("/items/:productId", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
}

// cartID resolves the shopper's cart key from the auth claims.
func cartID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

// HandleGetCart returns the cart with its running total.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.service.Get(cartID(c))
	if err != nil {
		log.Printf("Error loading cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"cart":  cart,
		"total": cart.Total(),
	})
}

// AddItemRequest represents the request body for adding to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// HandleAddItem puts one unit of a product into the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add item body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	cart, err := h.service.Add(cartID(c), req.ProductID)
	if err != nil {
		log.Printf("Error adding product %s to cart: %v", req.ProductID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", req.ProductID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add to cart",
			"error":   err.Error(),
		})
	}

	// Echo what was acquired, the storefront shows this as a toast.
	var added string
	for _, line := range cart.Lines {
		if line.Product.ID == req.ProductID {
			added = line.Product.Name
			break
		}
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Acquired %s", added),
		"cart":    cart,
		"total":   cart.Total(),
	})
}

// HandleRemoveItem drops a product's line from the cart entirely.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	productID := c.Params("productId")
	cart, err := h.service.Remove(cartID(c), productID)
	if err != nil {
		log.Printf("Error removing product %s from cart: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove from cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"cart":  cart,
		"total": cart.Total(),
	})
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.service.Clear(cartID(c)); err != nil {
		log.Printf("Error clearing cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
