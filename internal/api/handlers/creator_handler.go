package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/linkedin-studio/internal/service"
	"github.com/maheshrc27/linkedin-studio/internal/transfer"
)

type CreatorHandler struct {
	s service.CreatorService
}

func NewCreatorHandler(service service.CreatorService) *CreatorHandler {
	return &CreatorHandler{s: service}
}

func (h *CreatorHandler) CreateProject(c *fiber.Ctx) error {
	var in transfer.ProjectInput
	if err := bind(c, &in); err != nil {
		return errorResponse(c, err)
	}

	project, err := h.s.CreateProject(c.Context(), GetUserID(c), &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func (h *CreatorHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.s.ListProjects(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(projects)
}

func (h *CreatorHandler) GetProject(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	project, err := h.s.GetProject(c.Context(), GetUserID(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(project)
}

func (h *CreatorHandler) UpdateProject(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}
	var in transfer.ProjectInput
	if err := bind(c, &in); err != nil {
		return errorResponse(c, err)
	}

	project, err := h.s.UpdateProject(c.Context(), GetUserID(c), id, &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(project)
}

func (h *CreatorHandler) RemoveProject(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	if err := h.s.RemoveProject(c.Context(), GetUserID(c), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CreatorHandler) CreateSession(c *fiber.Ctx) error {
	projectID, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}
	var in transfer.SessionInput
	if err := bind(c, &in); err != nil {
		return errorResponse(c, err)
	}

	session, err := h.s.CreateSession(c.Context(), GetUserID(c), projectID, &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *CreatorHandler) ListSessions(c *fiber.Ctx) error {
	projectID, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	sessions, err := h.s.ListSessions(c.Context(), GetUserID(c), projectID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(sessions)
}

func (h *CreatorHandler) GetSession(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	session, err := h.s.GetSession(c.Context(), GetUserID(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(session)
}

func (h *CreatorHandler) RemoveSession(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	if err := h.s.RemoveSession(c.Context(), GetUserID(c), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CreatorHandler) Generate(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}
	var in transfer.GenerateInput
	if len(c.Body()) > 0 {
		if err := bind(c, &in); err != nil {
			return errorResponse(c, err)
		}
	}

	versions, err := h.s.Generate(c.Context(), GetUserID(c), id, &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"versions": versions,
	})
}

func (h *CreatorHandler) UpdateVersion(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}
	var in transfer.VersionInput
	if err := bind(c, &in); err != nil {
		return errorResponse(c, err)
	}

	version, err := h.s.UpdateVersion(c.Context(), GetUserID(c), id, &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(version)
}

func (h *CreatorHandler) SelectVersion(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	version, err := h.s.SelectVersion(c.Context(), GetUserID(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(version)
}

func (h *CreatorHandler) ConvertVersion(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}
	var in transfer.ConvertInput
	if len(c.Body()) > 0 {
		if err := bind(c, &in); err != nil {
			return errorResponse(c, err)
		}
	}

	post, err := h.s.ConvertVersion(c.Context(), GetUserID(c), id, &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *CreatorHandler) GenerateAssets(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}
	var in transfer.AssetInput
	if err := bind(c, &in); err != nil {
		return errorResponse(c, err)
	}

	assets, err := h.s.GenerateAssets(c.Context(), GetUserID(c), id, &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"assets": assets,
	})
}

func (h *CreatorHandler) RemoveAsset(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	if err := h.s.RemoveAsset(c.Context(), GetUserID(c), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
