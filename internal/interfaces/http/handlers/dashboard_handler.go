package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/application/usecases"
)

// DashboardHandler lida com requisições relacionadas ao dashboard
type DashboardHandler struct {
	dashboardUseCase usecases.DashboardUseCase
}

// NewDashboardHandler cria uma nova instância de DashboardHandler
func NewDashboardHandler(dashboardUseCase usecases.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

// GetDashboard retorna o dashboard de satisfação para os filtros informados
// @Summary Retorna dados consolidados para o dashboard
// @Description Resumo, comparação entre períodos, tendências, distribuições e respostas recentes
// @Tags dashboard
// @Produce json
// @Param satisfaction_rating query string false "dissatisfied, neutral ou satisfied"
// @Param school query string false "Nome da escola ou other"
// @Param transaction_type query string false "Tipo de atendimento"
// @Param date_range query string false "today, this_week, this_month, this_year, last_30_days"
// @Param start_date query string false "Data inicial (formato: 2006-01-02)"
// @Param end_date query string false "Data final (formato: 2006-01-02)"
// @Param search query string false "Busca textual"
// @Success 200 {object} map[string]interface{} "Dados consolidados do dashboard"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /admin/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	startTime := time.Now()

	result, err := h.dashboardUseCase.GetDashboard(c.UserContext(), filterFromQuery(c))
	if err != nil {
		return respondError(c, err, "Error loading dashboard")
	}

	return c.JSON(fiber.Map{
		"data": result,
		"performance": fiber.Map{
			"execution_time_ms": time.Since(startTime).Milliseconds(),
		},
	})
}
