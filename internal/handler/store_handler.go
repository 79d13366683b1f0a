package handler

import (
	"go-dealership-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StoreHandler struct {
	storeService service.StoreService
}

func NewStoreHandler(storeService service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// GetStores lists all stores; every authenticated role may read them.
// GET /api/v1/stores
func (h *StoreHandler) GetStores(c *fiber.Ctx) error {
	stores, err := h.storeService.List()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(stores)
}

// CreateStore creates a dealership branch (admin only).
// POST /api/v1/stores
func (h *StoreHandler) CreateStore(c *fiber.Ctx) error {
	var req service.CreateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	store, err := h.storeService.Create(actor(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Store created", "data": store})
}

// DeleteStore removes a store (admin only). Vehicles are not cascaded.
// DELETE /api/v1/stores/:id
func (h *StoreHandler) DeleteStore(c *fiber.Ctx) error {
	storeID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid store ID"})
	}

	if err := h.storeService.Delete(actor(c), storeID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Store deleted"})
}
