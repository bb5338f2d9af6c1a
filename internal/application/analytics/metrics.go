// Package analytics computes the dashboard aggregates over an already
// filtered set of survey responses.
package analytics

import (
	"math"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/entities"
)

// Round1 rounds to one decimal place, halves away from zero.
// Use Percent for ratios of counts; a float quotient can land just below an exact half.
func Round1(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return math.Round(value*10) / 10
}

// Percent = num/den*100 rounded half up to one decimal, computed in tenths
// with integer division. Negative ratios round away from zero.
func Percent(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	if den < 0 {
		num, den = -num, -den
	}
	if num < 0 {
		return -Percent(-num, den)
	}
	tenths := (num*2000/den + 1) / 2
	return float64(tenths) / 10
}

// SatisfactionRate = satisfied/total*100, 0 when total is 0.
func SatisfactionRate(satisfied, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return Percent(satisfied, total)
}

// PercentChange = (current-previous)/previous*100, 0 when previous is 0.
func PercentChange(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	return Percent(current-previous, previous)
}

// RateChange is the plain difference of two rates, 0 when the previous rate is 0.
func RateChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return Round1(current - previous)
}

// Tally conta as respostas por avaliação
func Tally(records []entities.SurveyResponse) entities.RatingTally {
	var tally entities.RatingTally
	for _, r := range records {
		tally.Add(r.SatisfactionRating, 1)
	}
	return tally
}

// Summarize monta as métricas escalares do dashboard
func Summarize(tally entities.RatingTally) entities.DashboardSummary {
	return entities.DashboardSummary{
		Total:            tally.Total,
		Satisfied:        tally.Satisfied,
		Neutral:          tally.Neutral,
		Dissatisfied:     tally.Dissatisfied,
		SatisfactionRate: SatisfactionRate(tally.Satisfied, tally.Total),
	}
}

// PeriodStats converte uma contagem em métricas de período
func PeriodStats(tally entities.RatingTally, from, to string) entities.PeriodStats {
	return entities.PeriodStats{
		From:             from,
		To:               to,
		Total:            tally.Total,
		Satisfied:        tally.Satisfied,
		Dissatisfied:     tally.Dissatisfied,
		SatisfactionRate: SatisfactionRate(tally.Satisfied, tally.Total),
	}
}

// Compare calcula a variação entre o período atual e o anterior
func Compare(current, previous entities.PeriodStats) entities.PeriodComparison {
	return entities.PeriodComparison{
		Current:      current,
		Previous:     previous,
		TotalChange:  PercentChange(current.Total, previous.Total),
		RateChange:   RateChange(current.SatisfactionRate, previous.SatisfactionRate),
		IsIncreasing: current.Total > previous.Total,
	}
}
