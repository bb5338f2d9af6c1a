package entities

// DashboardResult é a resposta consolidada do dashboard de satisfação
type DashboardResult struct {
	Summary           DashboardSummary  `json:"summary"`
	Comparison        PeriodComparison  `json:"comparison"`
	DailyTrend        []DailyBucket     `json:"daily_trend"`
	MonthlyTrend      []MonthlyBucket   `json:"monthly_trend"`
	BySchool          []CategoryCount   `json:"by_school"`
	ByTransactionType []CategoryCount   `json:"by_transaction_type"`
	TopSchools        []CategoryCount   `json:"top_schools"`
	Recent            []RecentItem      `json:"recent"`
	Filters           map[string]string `json:"filters"`
}

// DashboardSummary contém as métricas escalares do conjunto filtrado
type DashboardSummary struct {
	Total            int64   `json:"total"`
	Satisfied        int64   `json:"satisfied"`
	Neutral          int64   `json:"neutral"`
	Dissatisfied     int64   `json:"dissatisfied"`
	SatisfactionRate float64 `json:"satisfaction_rate"`
}

// PeriodStats são as métricas de uma janela de comparação
type PeriodStats struct {
	From             string  `json:"from"`
	To               string  `json:"to"`
	Total            int64   `json:"total"`
	Satisfied        int64   `json:"satisfied"`
	Dissatisfied     int64   `json:"dissatisfied"`
	SatisfactionRate float64 `json:"satisfaction_rate"`
}

// PeriodComparison compara o período atual com o anterior
type PeriodComparison struct {
	Current      PeriodStats `json:"current"`
	Previous     PeriodStats `json:"previous"`
	TotalChange  float64     `json:"total_change"`
	RateChange   float64     `json:"rate_change"`
	IsIncreasing bool        `json:"is_increasing"`
}

// DailyBucket é um ponto da série diária
type DailyBucket struct {
	Date         string `json:"date"`
	Satisfied    int64  `json:"satisfied"`
	Dissatisfied int64  `json:"dissatisfied"`
	Total        int64  `json:"total"`
}

// MonthlyBucket é um ponto da série mensal
type MonthlyBucket struct {
	Month            string  `json:"month"`
	Label            string  `json:"label"`
	Satisfied        int64   `json:"satisfied"`
	Dissatisfied     int64   `json:"dissatisfied"`
	Total            int64   `json:"total"`
	SatisfactionRate float64 `json:"satisfaction_rate"`
}

// CategoryCount agrupa respostas por escola ou tipo de transação
type CategoryCount struct {
	Name         string `json:"name"`
	Total        int64  `json:"total"`
	Satisfied    int64  `json:"satisfied"`
	Dissatisfied int64  `json:"dissatisfied"`
}

// RecentItem é a projeção de exibição de uma resposta recente
type RecentItem struct {
	ID                 string `json:"id"`
	ClientName         string `json:"client_name"`
	TransactionDate    string `json:"transaction_date"`
	SubmittedAgo       string `json:"submitted_ago"`
	School             string `json:"school"`
	TransactionType    string `json:"transaction_type"`
	SatisfactionRating string `json:"satisfaction_rating"`
	Reason             string `json:"reason"`
}

// RatingTally conta respostas por avaliação
type RatingTally struct {
	Total        int64 `json:"total"`
	Satisfied    int64 `json:"satisfied"`
	Neutral      int64 `json:"neutral"`
	Dissatisfied int64 `json:"dissatisfied"`
}

// Add soma n respostas com a avaliação informada
func (t *RatingTally) Add(rating SatisfactionRating, n int64) {
	t.Total += n
	switch rating {
	case RatingSatisfied:
		t.Satisfied += n
	case RatingNeutral:
		t.Neutral += n
	case RatingDissatisfied:
		t.Dissatisfied += n
	}
}
