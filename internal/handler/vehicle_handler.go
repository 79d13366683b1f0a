package handler

import (
	"encoding/csv"
	"fmt"
	"strings"

	"go-dealership-api/internal/model"
	"go-dealership-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	service service.VehicleService
}

func NewVehicleHandler(s service.VehicleService) *VehicleHandler {
	return &VehicleHandler{service: s}
}

// GetVehicles returns the vehicle set visible to the caller.
// GET /api/v1/vehicles
func (h *VehicleHandler) GetVehicles(c *fiber.Ctx) error {
	vehicles, err := h.service.List(actor(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(vehicles)
}

// CreateVehicle creates a vehicle with ownership fields forced by role.
// POST /api/v1/vehicles
func (h *VehicleHandler) CreateVehicle(c *fiber.Ctx) error {
	var req service.CreateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	// New vehicles cannot carry mileage. Checked here at the presentation
	// boundary only; the store itself does not enforce it.
	if req.Condition == model.ConditionNew && req.Mileage != 0 {
		return c.Status(400).JSON(fiber.Map{"error": "New vehicles must have zero mileage"})
	}

	vehicle, err := h.service.Create(actor(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Vehicle created", "data": vehicle})
}

// UpdateVehicle applies the allow-listed field set. A store change appends
// one transfer audit event.
// PUT /api/v1/vehicles/:id
func (h *VehicleHandler) UpdateVehicle(c *fiber.Ctx) error {
	vehicleID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	var req service.UpdateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	vehicle, err := h.service.Update(actor(c), vehicleID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Vehicle updated", "data": vehicle})
}

// SellVehicle marks a vehicle sold and stamps the sale date.
// POST /api/v1/vehicles/:id/sell
func (h *VehicleHandler) SellVehicle(c *fiber.Ctx) error {
	vehicleID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	vehicle, err := h.service.Sell(actor(c), vehicleID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Vehicle sold", "data": vehicle})
}

// DeleteVehicle removes a vehicle the caller may write.
// DELETE /api/v1/vehicles/:id
func (h *VehicleHandler) DeleteVehicle(c *fiber.Ctx) error {
	vehicleID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	if err := h.service.Delete(actor(c), vehicleID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Vehicle deleted"})
}

// ExportVehicles streams the caller's in-stock vehicles as CSV.
// GET /api/v1/vehicles/export
func (h *VehicleHandler) ExportVehicles(c *fiber.Ctx) error {
	vehicles, err := h.service.List(actor(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Comma = ';'
	w.Write([]string{"store", "type", "brand", "condition", "mileage", "chassis", "year", "purchase", "costs", "sale", "profit"})
	for _, v := range vehicles {
		if v.Status != model.StatusInStock {
			continue
		}
		w.Write([]string{
			v.StoreName,
			string(v.Type),
			v.Brand,
			string(v.Condition),
			fmt.Sprintf("%d", v.Mileage),
			v.Chassis,
			fmt.Sprintf("%d", v.Year),
			fmt.Sprintf("%.2f", v.PurchasePrice),
			fmt.Sprintf("%.2f", v.ExtraCosts),
			fmt.Sprintf("%.2f", v.SalePrice),
			fmt.Sprintf("%.2f", v.Profit()),
		})
	}
	w.Flush()

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="inventory.csv"`)
	return c.SendString(sb.String())
}

// GetTransfers returns the transfer audit trail, optionally filtered by
// vehicle or store.
// GET /api/v1/transfers?vehicle_id=&store_id=
func (h *VehicleHandler) GetTransfers(c *fiber.Ctx) error {
	var vehicleID, storeID *uuid.UUID

	if raw := c.Query("vehicle_id"); raw != "" {
		id, err := parseUUID(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid vehicle ID"})
		}
		vehicleID = &id
	}
	if raw := c.Query("store_id"); raw != "" {
		id, err := parseUUID(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid store ID"})
		}
		storeID = &id
	}

	events, err := h.service.ListTransfers(vehicleID, storeID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(events)
}
