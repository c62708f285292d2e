package handler

import (
	"fmt"

	"go-kitchen-inventory/internal/model"
	"go-kitchen-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ShoppingHandler struct {
	service service.ShoppingService
}

func NewShoppingHandler(s service.ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{service: s}
}

func (h *ShoppingHandler) GetItems(c *fiber.Ctx) error {
	items, err := h.service.GetItems()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *ShoppingHandler) AddItem(c *fiber.Ctx) error {
	var req model.ShoppingItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.AddItem(&req); err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Item added to shopping list"})
}

func (h *ShoppingHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var req model.ShoppingItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.UpdateItem(id, &req); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Item updated"})
}

func (h *ShoppingHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	if err := h.service.DeleteItem(id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Item deleted"})
}

func (h *ShoppingHandler) ClearChecked(c *fiber.Ctx) error {
	if err := h.service.ClearChecked(); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Checked items cleared"})
}

func (h *ShoppingHandler) Generate(c *fiber.Ctx) error {
	count, err := h.service.Generate()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("%d items added to shopping list", count),
		"count":   count,
	})
}
