package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/application/usecases"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/filters"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/repositories"
)

// filterKeys são os parâmetros de filtro aceitos pelos endpoints de lista, dashboard e exportação
var filterKeys = []string{
	"satisfaction_rating",
	"school",
	"school_id",
	"transaction_type",
	"date_range",
	"start_date",
	"end_date",
	"search",
}

// filterFromQuery extrai o filtro da query string
func filterFromQuery(c *fiber.Ctx) filters.Filter {
	params := make(map[string]string, len(filterKeys))
	for _, key := range filterKeys {
		params[key] = c.Query(key, "")
	}
	return filters.FromParams(params)
}

// paginationFromQuery lê page e limit, corrigindo valores inválidos
func paginationFromQuery(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}
	return page, limit
}

// respondError traduz erros de caso de uso para respostas HTTP.
// Erros inesperados são registrados e respondidos com uma mensagem genérica.
func respondError(c *fiber.Ctx, err error, message string) error {
	var verr *usecases.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "The given data was invalid.",
			"errors": verr.Fields,
		})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found"})
	}

	slog.Error(message, "error", err, "method", c.Method(), "path", c.Path())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}
