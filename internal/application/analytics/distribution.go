package analytics

import (
	"sort"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/entities"
)

// OtherSchoolGroup is the group name for responses with a free-text school.
const OtherSchoolGroup = "Other"

// DistributionBySchool agrupa por escola na ordem em que aparecem
func DistributionBySchool(records []entities.SurveyResponse) []entities.CategoryCount {
	return distribution(records, func(r entities.SurveyResponse) string {
		if name := r.SchoolName(); name != "" {
			return name
		}
		return OtherSchoolGroup
	})
}

// DistributionByTransactionType agrupa pelo rótulo do tipo de transação
func DistributionByTransactionType(records []entities.SurveyResponse) []entities.CategoryCount {
	return distribution(records, func(r entities.SurveyResponse) string {
		return r.TransactionType.Label()
	})
}

func distribution(records []entities.SurveyResponse, key func(entities.SurveyResponse) string) []entities.CategoryCount {
	groups := make([]entities.CategoryCount, 0)
	index := make(map[string]int)

	for _, r := range records {
		name := key(r)
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, entities.CategoryCount{Name: name})
		}
		groups[i].Total++
		switch r.SatisfactionRating {
		case entities.RatingSatisfied:
			groups[i].Satisfied++
		case entities.RatingDissatisfied:
			groups[i].Dissatisfied++
		}
	}
	return groups
}

// Top ordena por total (estável) e trunca em n, sem alterar a entrada
func Top(groups []entities.CategoryCount, n int) []entities.CategoryCount {
	sorted := make([]entities.CategoryCount, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Total > sorted[j].Total
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
