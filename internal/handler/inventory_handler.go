package handler

import (
	"fmt"
	"strconv"

	"go-kitchen-inventory/internal/model"
	"go-kitchen-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var req model.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	id, err := h.service.CreateProduct(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"id": id, "message": "Produkt erfolgreich erstellt"})
}

func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req model.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.UpdateProduct(id, &req); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Produkt erfolgreich aktualisiert"})
}

func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Produkt erfolgreich gelöscht"})
}

func (h *InventoryHandler) BatchOperation(c *fiber.Ctx) error {
	var req model.BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	count, err := h.service.BatchOperation(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": fmt.Sprintf("%d Produkte aktualisiert", count)})
}

func (h *InventoryHandler) CheckDuplicate(c *fiber.Ctx) error {
	var req model.DuplicateCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	duplicates, err := h.service.CheckDuplicate(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"found":      len(duplicates) > 0,
		"duplicates": duplicates,
	})
}
