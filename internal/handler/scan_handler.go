package handler

import (
	"errors"
	"strconv"

	"go-kitchen-inventory/internal/model"
	"go-kitchen-inventory/internal/repository"
	"go-kitchen-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ScanHandler struct {
	service     service.ScanService
	historyRepo repository.BarcodeHistoryRepository
}

func NewScanHandler(s service.ScanService, hRepo repository.BarcodeHistoryRepository) *ScanHandler {
	return &ScanHandler{service: s, historyRepo: hRepo}
}

// Scan proxies a barcode to the external product database. The response
// shapes mirror the upstream outcome: not-found is a regular 404 payload,
// timeout and transport failures are distinct gateway errors.
func (h *ScanHandler) Scan(c *fiber.Ctx) error {
	result, err := h.service.Scan(c.Context(), c.Params("ean"))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidEAN):
			return c.Status(400).JSON(fiber.Map{"error": "Invalid EAN format"})
		case errors.Is(err, model.ErrUpstreamNotFound):
			return c.Status(404).JSON(fiber.Map{"found": false, "message": "Produkt nicht in der Datenbank gefunden"})
		case errors.Is(err, model.ErrUpstreamTimeout):
			return c.Status(504).JSON(fiber.Map{"found": false, "error": "API-Anfrage hat zu lange gedauert"})
		case errors.Is(err, model.ErrUpstreamUnavailable):
			return c.Status(502).JSON(fiber.Map{"found": false, "error": "Fehler bei der Verbindung zur externen API"})
		default:
			return c.Status(500).JSON(fiber.Map{"found": false, "error": "Ein unerwarteter Fehler ist aufgetreten"})
		}
	}
	return c.JSON(result)
}

func (h *ScanHandler) GetBarcodeHistory(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	entries, err := h.historyRepo.FindRecent(limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}
