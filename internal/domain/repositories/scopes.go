package repositories

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/filters"
)

const storeDateLayout = "2006-01-02"

// searchColumns mirrors filters.SearchColumns.
var searchColumns = []string{
	"first_name",
	"middle_name",
	"last_name",
	"first_name || ' ' || last_name",
	"first_name || ' ' || middle_name || ' ' || last_name",
	"email",
	"reason",
	"other_school_specify",
}

// criteriaScope traduz os critérios resolvidos em cláusulas WHERE.
// transaction_date é comparada com strings de data (>= início, < dia seguinte ao fim)
// para funcionar igual em colunas date do Postgres e texto do SQLite.
func criteriaScope(c filters.Criteria) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if c.SatisfactionRating != "" {
			db = db.Where("satisfaction_rating = ?", c.SatisfactionRating)
		}
		if c.OtherSchool {
			db = db.Where("school_id IS NULL AND other_school_specify IS NOT NULL AND TRIM(other_school_specify) <> ''")
		}
		if c.SchoolName != "" {
			db = db.Where("school_id IN (SELECT id FROM schools WHERE name = ?)", c.SchoolName)
		}
		if c.SchoolID > 0 {
			db = db.Where("school_id = ?", c.SchoolID)
		}
		if c.TransactionType != "" {
			db = db.Where("transaction_type = ?", c.TransactionType)
		}

		if c.Preset != nil {
			start := c.Preset.Start.Format(storeDateLayout)
			endExclusive := c.Preset.End.AddDate(0, 0, 1).Format(storeDateLayout)
			if c.Policy == filters.PolicyTransactionOrSubmission {
				loc := c.Location
				if loc == nil {
					loc = time.UTC
				}
				db = db.Where(
					"((transaction_date >= ? AND transaction_date < ?) OR (created_at >= ? AND created_at < ?))",
					start, endExclusive, c.Preset.SubmittedFrom(loc), c.Preset.SubmittedBefore(loc),
				)
			} else {
				db = db.Where("transaction_date >= ? AND transaction_date < ?", start, endExclusive)
			}
		}
		if c.From != nil {
			db = db.Where("transaction_date >= ?", c.From.Format(storeDateLayout))
		}
		if c.To != nil {
			db = db.Where("transaction_date < ?", c.To.AddDate(0, 0, 1).Format(storeDateLayout))
		}

		if c.Search != "" {
			pattern := "%" + escapeLike(c.Search) + "%"
			clauses := make([]string, 0, len(searchColumns)+1)
			args := make([]interface{}, 0, len(searchColumns)+1)
			for _, column := range searchColumns {
				clauses = append(clauses, "LOWER("+column+") LIKE ? ESCAPE '\\'")
				args = append(args, pattern)
			}
			clauses = append(clauses, "school_id IN (SELECT id FROM schools WHERE LOWER(name) LIKE ? ESCAPE '\\')")
			args = append(args, pattern)
			db = db.Where("("+strings.Join(clauses, " OR ")+")", args...)
		}

		return db
	}
}

func orderScope(order filters.Order) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if order == filters.OldestFirst {
			return db.Order("created_at ASC").Order("id ASC")
		}
		return db.Order("created_at DESC").Order("id DESC")
	}
}

// preloadSchool carrega a escola inclusive quando excluída logicamente
func preloadSchool(db *gorm.DB) *gorm.DB {
	return db.Preload("School", func(tx *gorm.DB) *gorm.DB {
		return tx.Unscoped()
	})
}

func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}
