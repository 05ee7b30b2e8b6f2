package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/linkedin-studio/internal/service"
	"github.com/maheshrc27/linkedin-studio/internal/transfer"
)

type BusinessHandler struct {
	ls service.LeadService
	es service.EventService
}

func NewBusinessHandler(ls service.LeadService, es service.EventService) *BusinessHandler {
	return &BusinessHandler{
		ls: ls,
		es: es,
	}
}

func (h *BusinessHandler) CreateLead(c *fiber.Ctx) error {
	var in transfer.LeadInput
	if err := bind(c, &in); err != nil {
		return errorResponse(c, err)
	}

	lead, err := h.ls.Create(c.Context(), GetUserID(c), &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lead)
}

func (h *BusinessHandler) ListLeads(c *fiber.Ctx) error {
	leads, err := h.ls.List(c.Context(), GetUserID(c), c.Query("status"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(leads)
}

func (h *BusinessHandler) GetLead(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	lead, err := h.ls.Get(c.Context(), GetUserID(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(lead)
}

func (h *BusinessHandler) UpdateLead(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}
	var in transfer.LeadInput
	if err := bind(c, &in); err != nil {
		return errorResponse(c, err)
	}

	lead, err := h.ls.Update(c.Context(), GetUserID(c), id, &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(lead)
}

func (h *BusinessHandler) RemoveLead(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	if err := h.ls.Remove(c.Context(), GetUserID(c), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BusinessHandler) CreateEvent(c *fiber.Ctx) error {
	var in transfer.EventInput
	if err := bind(c, &in); err != nil {
		return errorResponse(c, err)
	}

	event, err := h.es.Create(c.Context(), GetUserID(c), &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (h *BusinessHandler) ListEvents(c *fiber.Ctx) error {
	events, err := h.es.List(c.Context(), GetUserID(c), c.QueryBool("upcoming", false))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(events)
}

func (h *BusinessHandler) GetEvent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	event, err := h.es.Get(c.Context(), GetUserID(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(event)
}

func (h *BusinessHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}
	var in transfer.EventInput
	if err := bind(c, &in); err != nil {
		return errorResponse(c, err)
	}

	event, err := h.es.Update(c.Context(), GetUserID(c), id, &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(event)
}

func (h *BusinessHandler) RemoveEvent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	if err := h.es.Remove(c.Context(), GetUserID(c), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
