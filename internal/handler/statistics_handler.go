package handler

import (
	"go-kitchen-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StatisticsHandler struct {
	service service.StatisticsService
}

func NewStatisticsHandler(s service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{service: s}
}

func (h *StatisticsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.service.GetStatistics()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

func (h *StatisticsHandler) GetAdvancedStatistics(c *fiber.Ctx) error {
	stats, err := h.service.GetAdvancedStatistics()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
