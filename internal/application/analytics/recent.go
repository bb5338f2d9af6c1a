package analytics

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/entities"
)

const DefaultRecentLimit = 5

// Recent projects the first k records (already newest first) for display.
func Recent(records []entities.SurveyResponse, k int, now time.Time) []entities.RecentItem {
	if k <= 0 {
		k = DefaultRecentLimit
	}
	if len(records) > k {
		records = records[:k]
	}

	items := make([]entities.RecentItem, 0, len(records))
	for _, r := range records {
		items = append(items, entities.RecentItem{
			ID:                 r.ID,
			ClientName:         r.FullName(),
			TransactionDate:    r.TransactionDate.Format("Jan 2, 2006"),
			SubmittedAgo:       humanize.RelTime(r.CreatedAt, now, "ago", "from now"),
			School:             r.SchoolDisplayName(),
			TransactionType:    r.TransactionTypeDisplay(),
			SatisfactionRating: r.SatisfactionRating.Label(),
			Reason:             r.Reason,
		})
	}
	return items
}
