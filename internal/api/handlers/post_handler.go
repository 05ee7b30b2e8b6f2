package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/linkedin-studio/internal/repository"
	"github.com/maheshrc27/linkedin-studio/internal/service"
	"github.com/maheshrc27/linkedin-studio/internal/transfer"
)

type PostHandler struct {
	s  service.PostService
	ms service.MediaService
}

func NewPostHandler(s service.PostService, ms service.MediaService) *PostHandler {
	return &PostHandler{
		s:  s,
		ms: ms,
	}
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	var in transfer.PostInput
	if err := bind(c, &in); err != nil {
		return errorResponse(c, err)
	}

	post, err := h.s.Create(c.Context(), GetUserID(c), &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	filter := repository.PostFilter{
		Status:   c.Query("status"),
		PillarID: int64(c.QueryInt("pillar_id", 0)),
	}

	posts, err := h.s.List(c.Context(), GetUserID(c), filter)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(posts)
}

func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	post, err := h.s.Get(c.Context(), GetUserID(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}
	var in transfer.PostInput
	if err := bind(c, &in); err != nil {
		return errorResponse(c, err)
	}

	post, err := h.s.Update(c.Context(), GetUserID(c), id, &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) SchedulePost(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}
	var in transfer.ScheduleInput
	if err := bind(c, &in); err != nil {
		return errorResponse(c, err)
	}

	post, err := h.s.Schedule(c.Context(), GetUserID(c), id, &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) PublishPost(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	post, err := h.s.PublishNow(c.Context(), GetUserID(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) UpdateMetrics(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}
	var in transfer.MetricsInput
	if err := bind(c, &in); err != nil {
		return errorResponse(c, err)
	}

	post, err := h.s.UpdateMetrics(c.Context(), GetUserID(c), id, &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) RemovePost(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	if err := h.s.Remove(c.Context(), GetUserID(c), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PostHandler) UploadMedia(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return errorResponse(c, &service.ValidationError{Field: "file", Message: "is required"})
	}

	asset, err := h.ms.Upload(c.Context(), GetUserID(c), file)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(asset)
}

func (h *PostHandler) ListMedia(c *fiber.Ctx) error {
	assets, err := h.ms.List(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(assets)
}

func (h *PostHandler) RemoveMedia(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	if err := h.ms.Remove(c.Context(), GetUserID(c), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
