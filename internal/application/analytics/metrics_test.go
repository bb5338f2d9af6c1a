package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/entities"
)

func TestSatisfactionRate(t *testing.T) {
	assert.Equal(t, 0.0, SatisfactionRate(0, 0))
	assert.Equal(t, 66.7, SatisfactionRate(2, 3))
	assert.Equal(t, 33.3, SatisfactionRate(1, 3))
	assert.Equal(t, 100.0, SatisfactionRate(4, 4))
	assert.Equal(t, 12.5, SatisfactionRate(1, 8))
}

func TestSatisfactionRateRoundsExactHalvesUp(t *testing.T) {
	tests := []struct {
		satisfied, total int64
		want             float64
	}{
		{23, 80, 28.8},
		{41, 80, 51.3},
		{1, 16, 6.3},
		{3, 16, 18.8},
		{1, 400, 0.3},
		{199, 400, 49.8},
		{1, 2000, 0.1},
		{1, 3, 33.3},
		{2, 3, 66.7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SatisfactionRate(tt.satisfied, tt.total), "%d/%d", tt.satisfied, tt.total)
	}
}

func TestSatisfactionRateMatchesHalfUpForAllCounts(t *testing.T) {
	for total := int64(1); total <= 400; total++ {
		for satisfied := int64(0); satisfied <= total; satisfied++ {
			// meio décimo exato: 1000*s/t termina em .5
			if (satisfied*2000)%total != 0 || (satisfied*2000/total)%2 != 1 {
				continue
			}
			want := float64((satisfied*1000/total)+1) / 10
			require.Equal(t, want, SatisfactionRate(satisfied, total), "%d/%d", satisfied, total)
		}
	}
}

func TestRound1HalvesAwayFromZero(t *testing.T) {
	assert.Equal(t, 0.3, Round1(0.25))
	assert.Equal(t, -0.3, Round1(-0.25))
	assert.Equal(t, 0.0, Round1(0))
}

func TestPercentChange(t *testing.T) {
	assert.Equal(t, 0.0, PercentChange(10, 0))
	assert.Equal(t, 50.0, PercentChange(3, 2))
	assert.Equal(t, -50.0, PercentChange(1, 2))
	assert.Equal(t, 28.8, PercentChange(103, 80))
	assert.Equal(t, -28.8, PercentChange(57, 80))
	assert.Equal(t, 0.1, PercentChange(2001, 2000))
	assert.Equal(t, -0.1, PercentChange(1999, 2000))
}

func TestCompare(t *testing.T) {
	current := PeriodStats(entities.RatingTally{Total: 3, Satisfied: 2, Dissatisfied: 1}, "2024-05-01", "2024-05-31")
	previous := PeriodStats(entities.RatingTally{Total: 2, Satisfied: 1, Dissatisfied: 1}, "2024-04-01", "2024-04-30")

	cmp := Compare(current, previous)
	assert.Equal(t, 50.0, cmp.TotalChange)
	assert.Equal(t, 16.7, cmp.RateChange)
	assert.True(t, cmp.IsIncreasing)

	empty := PeriodStats(entities.RatingTally{}, "2024-04-01", "2024-04-30")
	cmp = Compare(current, empty)
	assert.Equal(t, 0.0, cmp.TotalChange)
	assert.Equal(t, 0.0, cmp.RateChange)
	assert.True(t, cmp.IsIncreasing)

	cmp = Compare(empty, current)
	assert.False(t, cmp.IsIncreasing)
	assert.Equal(t, -100.0, cmp.TotalChange)
}

func TestTallyAndSummarize(t *testing.T) {
	records := []entities.SurveyResponse{
		{SatisfactionRating: entities.RatingSatisfied},
		{SatisfactionRating: entities.RatingSatisfied},
		{SatisfactionRating: entities.RatingNeutral},
		{SatisfactionRating: entities.RatingDissatisfied},
	}

	summary := Summarize(Tally(records))
	assert.Equal(t, entities.DashboardSummary{
		Total:            4,
		Satisfied:        2,
		Neutral:          1,
		Dissatisfied:     1,
		SatisfactionRate: 50,
	}, summary)

	assert.Equal(t, entities.DashboardSummary{}, Summarize(Tally(nil)))
}
