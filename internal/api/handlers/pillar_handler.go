package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/linkedin-studio/internal/service"
	"github.com/maheshrc27/linkedin-studio/internal/transfer"
)

type PillarHandler struct {
	s service.PillarService
}

func NewPillarHandler(service service.PillarService) *PillarHandler {
	return &PillarHandler{s: service}
}

func (h *PillarHandler) CreatePillar(c *fiber.Ctx) error {
	var in transfer.PillarInput
	if err := bind(c, &in); err != nil {
		return errorResponse(c, err)
	}

	pillar, err := h.s.Create(c.Context(), GetUserID(c), &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(pillar)
}

func (h *PillarHandler) ListPillars(c *fiber.Ctx) error {
	pillars, err := h.s.List(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(pillars)
}

func (h *PillarHandler) GetPillar(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	pillar, err := h.s.Get(c.Context(), GetUserID(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(pillar)
}

func (h *PillarHandler) UpdatePillar(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}
	var in transfer.PillarInput
	if err := bind(c, &in); err != nil {
		return errorResponse(c, err)
	}

	pillar, err := h.s.Update(c.Context(), GetUserID(c), id, &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(pillar)
}

func (h *PillarHandler) RemovePillar(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	if err := h.s.Remove(c.Context(), GetUserID(c), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
