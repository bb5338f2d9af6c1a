package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/application/usecases"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/infrastructure/export"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/infrastructure/metrics"
)

// ExportHandler entrega o relatório XLSX das respostas filtradas
type ExportHandler struct {
	exportUseCase *usecases.ExportUseCase
	metrics       *metrics.Metrics
}

func NewExportHandler(exportUseCase *usecases.ExportUseCase, m *metrics.Metrics) *ExportHandler {
	return &ExportHandler{
		exportUseCase: exportUseCase,
		metrics:       m,
	}
}

// Export gera a planilha (variant=grouped|flat) com os mesmos filtros da lista
// @Summary Exporta respostas em XLSX
// @Tags surveys
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param variant query string false "grouped ou flat" default(grouped)
// @Router /admin/surveys/export [get]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	variant := export.ParseVariant(c.Query("variant"))

	file, err := h.exportUseCase.Export(c.UserContext(), filterFromQuery(c), variant)
	if err != nil {
		return respondError(c, err, "Error exporting surveys")
	}

	h.metrics.ObserveExport(string(variant))

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Set("X-Export-Rows", strconv.Itoa(file.Rows))
	return c.Send(file.Data)
}
