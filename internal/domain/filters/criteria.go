package filters

import (
	"strings"
	"time"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/entities"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/utils"
)

// Criteria é o filtro resolvido: datas concretas, busca normalizada e política de data.
// Matches é o predicado em memória; o repositório traduz os mesmos campos para SQL.
type Criteria struct {
	SatisfactionRating string
	SchoolName         string
	OtherSchool        bool
	SchoolID           uint
	TransactionType    string

	Preset *Window
	Policy DatePolicy
	From   *time.Time
	To     *time.Time

	// Search is lower-cased and trimmed.
	Search string

	Location *time.Location
}

// TrendScope keeps only the school and transaction type constraints; trend
// buckets re-apply those and nothing else.
func (c Criteria) TrendScope() Criteria {
	return Criteria{
		SchoolName:      c.SchoolName,
		OtherSchool:     c.OtherSchool,
		SchoolID:        c.SchoolID,
		TransactionType: c.TransactionType,
		Policy:          PolicyTransactionDate,
		Location:        c.Location,
	}
}

// Matches applies the criteria to a single response. The response's School
// relation must be loaded for school name and search matching.
func (c Criteria) Matches(r entities.SurveyResponse) bool {
	if c.SatisfactionRating != "" && string(r.SatisfactionRating) != c.SatisfactionRating {
		return false
	}
	if c.OtherSchool && !r.IsOtherSchool() {
		return false
	}
	if c.SchoolName != "" && (r.School == nil || r.School.Name != c.SchoolName) {
		return false
	}
	if c.SchoolID > 0 && (r.SchoolID == nil || *r.SchoolID != c.SchoolID) {
		return false
	}
	if c.TransactionType != "" && string(r.TransactionType) != c.TransactionType {
		return false
	}

	txDate := utils.CalendarDate(r.TransactionDate, time.UTC)
	if c.Preset != nil && !c.presetMatches(txDate, r.CreatedAt) {
		return false
	}
	if c.From != nil && txDate.Before(*c.From) {
		return false
	}
	if c.To != nil && txDate.After(*c.To) {
		return false
	}

	if c.Search != "" && !c.searchMatches(r) {
		return false
	}
	return true
}

func (c Criteria) presetMatches(txDate, createdAt time.Time) bool {
	if c.Preset.Contains(txDate) {
		return true
	}
	if c.Policy != PolicyTransactionOrSubmission {
		return false
	}
	loc := c.location()
	return !createdAt.Before(c.Preset.SubmittedFrom(loc)) && createdAt.Before(c.Preset.SubmittedBefore(loc))
}

// SearchColumns returns the searchable values in the same order the store query uses.
func SearchColumns(r entities.SurveyResponse) []string {
	values := []string{
		r.FirstName,
		r.MiddleName,
		r.LastName,
		r.FirstName + " " + r.LastName,
		r.FirstName + " " + r.MiddleName + " " + r.LastName,
		r.Email,
		r.Reason,
		r.OtherSchoolSpecify,
	}
	if r.School != nil {
		values = append(values, r.School.Name)
	}
	return values
}

func (c Criteria) searchMatches(r entities.SurveyResponse) bool {
	for _, value := range SearchColumns(r) {
		if strings.Contains(strings.ToLower(value), c.Search) {
			return true
		}
	}
	return false
}

func (c Criteria) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// Apply filters and keeps the input order.
func (c Criteria) Apply(records []entities.SurveyResponse) []entities.SurveyResponse {
	out := make([]entities.SurveyResponse, 0, len(records))
	for _, r := range records {
		if c.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
