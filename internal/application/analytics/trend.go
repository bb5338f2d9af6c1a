package analytics

import (
	"time"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/entities"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/utils"
)

const (
	DefaultTrendDays   = 30
	DefaultTrendMonths = 6
)

// TrendWindowStart retorna a primeira data coberta pelas séries diária e mensal,
// para que ambas sejam alimentadas por uma única consulta
func TrendWindowStart(today time.Time, days, months int) time.Time {
	if days <= 0 {
		days = DefaultTrendDays
	}
	if months <= 0 {
		months = DefaultTrendMonths
	}
	dayStart := today.AddDate(0, 0, -(days - 1))
	monthStart := firstOfMonth(today).AddDate(0, -(months - 1), 0)
	if monthStart.Before(dayStart) {
		return monthStart
	}
	return dayStart
}

// DailyTrend buckets records by transaction_date into the last `days` calendar
// days ending at today, oldest first. Records outside the window are ignored.
func DailyTrend(records []entities.SurveyResponse, today time.Time, days int) []entities.DailyBucket {
	if days <= 0 {
		days = DefaultTrendDays
	}
	today = utils.CalendarDate(today, time.UTC)
	dates := utils.GenerateDateRange(today.AddDate(0, 0, -(days-1)), today)

	buckets := make([]entities.DailyBucket, len(dates))
	index := make(map[string]int, len(dates))
	for i, date := range dates {
		buckets[i] = entities.DailyBucket{Date: date}
		index[date] = i
	}

	for _, r := range records {
		i, ok := index[r.TransactionDate.Format("2006-01-02")]
		if !ok {
			continue
		}
		buckets[i].Total++
		switch r.SatisfactionRating {
		case entities.RatingSatisfied:
			buckets[i].Satisfied++
		case entities.RatingDissatisfied:
			buckets[i].Dissatisfied++
		}
	}

	return buckets
}

// MonthlyTrend buckets records by transaction month into the last `months`
// months ending at today's month, oldest first.
func MonthlyTrend(records []entities.SurveyResponse, today time.Time, months int) []entities.MonthlyBucket {
	if months <= 0 {
		months = DefaultTrendMonths
	}
	current := firstOfMonth(utils.CalendarDate(today, time.UTC))

	buckets := make([]entities.MonthlyBucket, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		month := current.AddDate(0, -(months - 1 - i), 0)
		key := month.Format("2006-01")
		buckets[i] = entities.MonthlyBucket{Month: key, Label: month.Format("Jan 2006")}
		index[key] = i
	}

	for _, r := range records {
		i, ok := index[r.TransactionDate.Format("2006-01")]
		if !ok {
			continue
		}
		buckets[i].Total++
		switch r.SatisfactionRating {
		case entities.RatingSatisfied:
			buckets[i].Satisfied++
		case entities.RatingDissatisfied:
			buckets[i].Dissatisfied++
		}
	}

	for i := range buckets {
		buckets[i].SatisfactionRate = SatisfactionRate(buckets[i].Satisfied, buckets[i].Total)
	}
	return buckets
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
