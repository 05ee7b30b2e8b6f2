package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/linkedin-studio/internal/service"
	"github.com/maheshrc27/linkedin-studio/internal/transfer"
)

type EngagementHandler struct {
	cs service.CommentService
	ts service.TemplateService
}

func NewEngagementHandler(cs service.CommentService, ts service.TemplateService) *EngagementHandler {
	return &EngagementHandler{
		cs: cs,
		ts: ts,
	}
}

func (h *EngagementHandler) CreateComment(c *fiber.Ctx) error {
	var in transfer.CommentInput
	if err := bind(c, &in); err != nil {
		return errorResponse(c, err)
	}

	comment, err := h.cs.Create(c.Context(), GetUserID(c), &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *EngagementHandler) ListComments(c *fiber.Ctx) error {
	comments, err := h.cs.List(c.Context(), GetUserID(c), int64(c.QueryInt("post_id", 0)))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(comments)
}

func (h *EngagementHandler) GetComment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	comment, err := h.cs.Get(c.Context(), GetUserID(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(comment)
}

func (h *EngagementHandler) UpdateComment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}
	var in transfer.CommentInput
	if err := bind(c, &in); err != nil {
		return errorResponse(c, err)
	}

	comment, err := h.cs.Update(c.Context(), GetUserID(c), id, &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(comment)
}

func (h *EngagementHandler) RemoveComment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	if err := h.cs.Remove(c.Context(), GetUserID(c), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *EngagementHandler) CreateTemplate(c *fiber.Ctx) error {
	var in transfer.TemplateInput
	if err := bind(c, &in); err != nil {
		return errorResponse(c, err)
	}

	template, err := h.ts.Create(c.Context(), GetUserID(c), &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(template)
}

func (h *EngagementHandler) ListTemplates(c *fiber.Ctx) error {
	templates, err := h.ts.List(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(templates)
}

func (h *EngagementHandler) GetTemplate(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	template, err := h.ts.Get(c.Context(), GetUserID(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(template)
}

func (h *EngagementHandler) UpdateTemplate(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}
	var in transfer.TemplateInput
	if err := bind(c, &in); err != nil {
		return errorResponse(c, err)
	}

	template, err := h.ts.Update(c.Context(), GetUserID(c), id, &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(template)
}

func (h *EngagementHandler) RemoveTemplate(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	if err := h.ts.Remove(c.Context(), GetUserID(c), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
