package handlers

import (
	"log"

	"atelier/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the back-office dashboard reads.
type AdminHandler struct {
	service *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{
		service: service,
	}
}

// RegisterRoutes registers the dashboard routes on the admin router.
func (h *AdminHandler) RegisterRoutes(admin fiber.Router) {
	admin.Get("/admin/stats", h.HandleGetStats)
	admin.Get("/admin/customers", h.HandleGetCustomers)
}

// HandleGetStats returns the store overview.
func (h *AdminHandler) HandleGetStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		log.Printf("Error computing store stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute store stats",
			"error":   err.Error(),
		})
	}
	return c.JSON(stats)
}

// HandleGetCustomers returns the customer reference rows.
func (h *AdminHandler) HandleGetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.Customers()
	if err != nil {
		log.Printf("Error getting customers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve customers",
			"error":   err.Error(),
		})
	}
	return c.JSON(customers)
}
