package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/linkedin-studio/internal/service"
)

type AnalyticsHandler struct {
	s service.AnalyticsService
}

func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{s: service}
}

func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.s.Overview(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(overview)
}

func (h *AnalyticsHandler) Pillars(c *fiber.Ctx) error {
	allocation, err := h.s.PillarAllocation(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(allocation)
}
