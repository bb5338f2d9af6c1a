package handlers

import (
	"errors"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/application/usecases"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/entities"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/infrastructure/metrics"
)

// SurveyHandler lida com o formulário público e a consulta administrativa de respostas
type SurveyHandler struct {
	surveyUseCase *usecases.SurveyUseCase
	schoolUseCase *usecases.SchoolUseCase
	metrics       *metrics.Metrics
}

// NewSurveyHandler cria uma nova instância de SurveyHandler
func NewSurveyHandler(surveyUseCase *usecases.SurveyUseCase, schoolUseCase *usecases.SchoolUseCase, m *metrics.Metrics) *SurveyHandler {
	return &SurveyHandler{
		surveyUseCase: surveyUseCase,
		schoolUseCase: schoolUseCase,
		metrics:       m,
	}
}

type option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// GetFormOptions retorna as opções do formulário público
// @Summary Opções do formulário
// @Tags form
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /form/options [get]
func (h *SurveyHandler) GetFormOptions(c *fiber.Ctx) error {
	schools, err := h.schoolUseCase.GetSchools(c.UserContext(), false)
	if err != nil {
		return respondError(c, err, "Error loading form options")
	}

	types := make([]option, 0, len(entities.TransactionTypes))
	for _, t := range entities.TransactionTypes {
		types = append(types, option{Value: string(t), Label: t.Label()})
	}
	ratings := make([]option, 0, len(entities.SatisfactionRatings))
	for _, r := range entities.SatisfactionRatings {
		ratings = append(ratings, option{Value: string(r), Label: r.Label()})
	}

	return c.JSON(fiber.Map{
		"transaction_types":    types,
		"satisfaction_ratings": ratings,
		"schools":              schools,
	})
}

// Submit recebe uma resposta do formulário público (JSON ou form-urlencoded)
// @Summary Envia uma resposta
// @Tags surveys
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /surveys [post]
func (h *SurveyHandler) Submit(c *fiber.Ctx) error {
	var input usecases.SubmissionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	survey, err := h.surveyUseCase.Submit(c.UserContext(), input)
	if err != nil {
		var verr *usecases.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":  "The given data was invalid.",
				"errors": verr.Fields,
				"input":  input,
			})
		}
		// a causa já foi registrada no caso de uso
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": usecases.ErrSubmissionFailed.Error(),
			"input": input,
		})
	}

	h.metrics.ObserveSubmission(string(survey.SatisfactionRating))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Thank you for your feedback!",
		"data":    survey,
	})
}

// ValidateStep valida uma etapa do formulário sem gravar nada
func (h *SurveyHandler) ValidateStep(c *fiber.Ctx) error {
	step, err := strconv.Atoi(c.Params("step"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid step",
		})
	}

	var input usecases.SubmissionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.surveyUseCase.ValidateStep(c.UserContext(), step, input); err != nil {
		return respondError(c, err, "Error validating form step")
	}
	return c.JSON(fiber.Map{"valid": true})
}

// GetSurveys retorna a lista paginada de respostas com filtros
// @Summary Lista respostas
// @Tags surveys
// @Produce json
// @Param page query int false "Página atual" default(1)
// @Param limit query int false "Itens por página" default(20)
// @Param view query string false "legacy para o formato antigo"
// @Router /admin/surveys [get]
func (h *SurveyHandler) GetSurveys(c *fiber.Ctx) error {
	page, limit := paginationFromQuery(c)
	f := filterFromQuery(c)

	surveys, total, err := h.surveyUseCase.List(c.UserContext(), f, page, limit)
	if err != nil {
		return respondError(c, err, "Error fetching surveys")
	}

	var data interface{} = surveys
	if c.Query("view") == "legacy" {
		legacy := make([]entities.LegacySurveyView, 0, len(surveys))
		for _, s := range surveys {
			legacy = append(legacy, s.LegacyView())
		}
		data = legacy
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return c.JSON(fiber.Map{
		"data": data,
		"meta": fiber.Map{
			"page":          page,
			"limit":         limit,
			"total":         total,
			"total_pages":   totalPages,
			"has_next_page": page < totalPages,
		},
		"filters": f.Params(),
	})
}

// GetSurvey retorna uma resposta pelo id
func (h *SurveyHandler) GetSurvey(c *fiber.Ctx) error {
	survey, err := h.surveyUseCase.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Error fetching survey")
	}
	return c.JSON(fiber.Map{"data": survey})
}

// UpdateStatus altera apenas o status de uma resposta
func (h *SurveyHandler) UpdateStatus(c *fiber.Ctx) error {
	var body struct {
		Status string `json:"status" form:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	survey, err := h.surveyUseCase.UpdateStatus(c.UserContext(), c.Params("id"), body.Status)
	if err != nil {
		return respondError(c, err, "Error updating survey status")
	}
	return c.JSON(fiber.Map{"data": survey})
}
