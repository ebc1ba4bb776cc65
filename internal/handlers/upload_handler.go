package handlers

import (
	"log"

	"atelier/pkg/uploader"

	"github.com/gofiber/fiber/v2"
)

// UploadHandler relays product images to the media host. One request per
// upload, stateless, no retry; a slow or failed relay just errors out and the
// caller may try again.
type UploadHandler struct {
	client *uploader.Client
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(client *uploader.Client) *UploadHandler {
	return &UploadHandler{
		client: client,
	}
}

// RegisterRoutes registers the upload route with the Fiber app.
func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/upload", h.HandleUpload)
}

// HandleUpload accepts a single multipart image file and responds with the
// public URL assigned by the media host.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "An image file is required",
			"error":   err.Error(),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not read uploaded file",
			"error":   err.Error(),
		})
	}
	defer file.Close()

	url, err := h.client.Upload(fileHeader.Filename, file)
	if err != nil {
		log.Printf("Error relaying upload to media host: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"imageUrl": url,
	})
}
