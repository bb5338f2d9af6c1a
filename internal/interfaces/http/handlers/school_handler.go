package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/application/usecases"
)

// SchoolHandler lida com o cadastro de escolas
type SchoolHandler struct {
	schoolUseCase *usecases.SchoolUseCase
}

func NewSchoolHandler(schoolUseCase *usecases.SchoolUseCase) *SchoolHandler {
	return &SchoolHandler{schoolUseCase: schoolUseCase}
}

type schoolRequest struct {
	Name string `json:"name" form:"name"`
}

// GetSchools lista as escolas ativas
func (h *SchoolHandler) GetSchools(c *fiber.Ctx) error {
	schools, err := h.schoolUseCase.GetSchools(c.UserContext(), false)
	if err != nil {
		return respondError(c, err, "Error fetching schools")
	}
	return c.JSON(fiber.Map{"data": schools})
}

// GetAllSchools lista as escolas; include_deleted=true inclui as removidas
func (h *SchoolHandler) GetAllSchools(c *fiber.Ctx) error {
	includeDeleted := c.QueryBool("include_deleted", false)

	schools, err := h.schoolUseCase.GetSchools(c.UserContext(), includeDeleted)
	if err != nil {
		return respondError(c, err, "Error fetching schools")
	}
	return c.JSON(fiber.Map{"data": schools})
}

func (h *SchoolHandler) CreateSchool(c *fiber.Ctx) error {
	var req schoolRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	school, err := h.schoolUseCase.Create(c.UserContext(), req.Name)
	if err != nil {
		return respondError(c, err, "Error creating school")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": school})
}

func (h *SchoolHandler) RenameSchool(c *fiber.Ctx) error {
	id, ok := schoolID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid school id"})
	}

	var req schoolRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	school, err := h.schoolUseCase.Rename(c.UserContext(), id, req.Name)
	if err != nil {
		return respondError(c, err, "Error renaming school")
	}
	return c.JSON(fiber.Map{"data": school})
}

// DeleteSchool remove a escola logicamente; respostas antigas mantêm o nome
func (h *SchoolHandler) DeleteSchool(c *fiber.Ctx) error {
	id, ok := schoolID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid school id"})
	}

	if err := h.schoolUseCase.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Error deleting school")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func schoolID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
