package usecases

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/application/analytics"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/config"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/entities"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/filters"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/repositories"
)

// DashboardUseCase define a interface para o dashboard de satisfação
type DashboardUseCase interface {
	GetDashboard(ctx context.Context, f filters.Filter) (entities.DashboardResult, error)
}

type dashboardUseCase struct {
	surveyRepo repositories.SurveyRepository
	engine     *filters.Engine
	cfg        config.DashboardConfig
}

// NewDashboardUseCase cria o caso de uso do dashboard
func NewDashboardUseCase(surveyRepo repositories.SurveyRepository, engine *filters.Engine, cfg config.DashboardConfig) DashboardUseCase {
	return &dashboardUseCase{
		surveyRepo: surveyRepo,
		engine:     engine,
		cfg:        cfg,
	}
}

// GetDashboard monta todas as métricas do dashboard para o filtro informado.
// As leituras são independentes e rodam em paralelo; o cálculo é feito em memória.
func (uc *dashboardUseCase) GetDashboard(ctx context.Context, f filters.Filter) (entities.DashboardResult, error) {
	result := entities.DashboardResult{Filters: f.Params()}

	criteria := uc.engine.Resolve(f, filters.PolicyTransactionOrSubmission)
	currentWindow, previousWindow := uc.engine.Periods(f)
	today := uc.engine.Today()

	trendCriteria := criteria.TrendScope()
	trendStart := analytics.TrendWindowStart(today, uc.cfg.TrendDays, uc.cfg.TrendMonths)
	trendCriteria.From = &trendStart
	trendCriteria.To = &today

	var (
		records       []entities.SurveyResponse
		trendRecords  []entities.SurveyResponse
		currentTally  entities.RatingTally
		previousTally entities.RatingTally
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = uc.surveyRepo.Find(gctx, criteria, filters.NewestFirst, 0)
		if err != nil {
			return fmt.Errorf("erro ao buscar respostas filtradas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		currentTally, err = uc.surveyRepo.Tally(gctx, uc.engine.PeriodCriteria(f, currentWindow))
		if err != nil {
			return fmt.Errorf("erro ao contar período atual: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		previousTally, err = uc.surveyRepo.Tally(gctx, uc.engine.PeriodCriteria(f, previousWindow))
		if err != nil {
			return fmt.Errorf("erro ao contar período anterior: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		trendRecords, err = uc.surveyRepo.Find(gctx, trendCriteria, filters.OldestFirst, 0)
		if err != nil {
			return fmt.Errorf("erro ao buscar série temporal: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return result, err
	}

	result.Summary = analytics.Summarize(analytics.Tally(records))
	result.Comparison = analytics.Compare(
		analytics.PeriodStats(currentTally, formatDay(currentWindow.Start), formatDay(currentWindow.End)),
		analytics.PeriodStats(previousTally, formatDay(previousWindow.Start), formatDay(previousWindow.End)),
	)
	result.DailyTrend = analytics.DailyTrend(trendRecords, today, uc.cfg.TrendDays)
	result.MonthlyTrend = analytics.MonthlyTrend(trendRecords, today, uc.cfg.TrendMonths)
	result.BySchool = analytics.DistributionBySchool(records)
	result.ByTransactionType = analytics.DistributionByTransactionType(records)
	result.TopSchools = analytics.Top(result.BySchool, uc.cfg.TopLimit)
	result.Recent = analytics.Recent(records, uc.cfg.RecentLimit, uc.engine.Now())

	return result, nil
}

func formatDay(t time.Time) string {
	return t.Format("2006-01-02")
}
