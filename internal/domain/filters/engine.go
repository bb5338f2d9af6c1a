package filters

import (
	"strings"
	"time"

	"github.com/jinzhu/now"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/utils"
)

// DatePolicy define como um preset de período é comparado com a resposta
type DatePolicy int

const (
	// PolicyTransactionOrSubmission matches when transaction_date or the
	// submission day falls inside the preset window. Used by the list and dashboard.
	PolicyTransactionOrSubmission DatePolicy = iota
	// PolicyTransactionDate matches on transaction_date only. Used by the export.
	PolicyTransactionDate
)

func (p DatePolicy) String() string {
	if p == PolicyTransactionDate {
		return "transaction_date"
	}
	return "transaction_or_submission"
}

// Order é a ordenação do conjunto filtrado
type Order int

const (
	NewestFirst Order = iota
	OldestFirst
)

// Window is an inclusive range of calendar dates, each stored as 00:00 UTC.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the calendar date falls inside the window.
func (w Window) Contains(date time.Time) bool {
	return !date.Before(w.Start) && !date.After(w.End)
}

// Days returns the number of calendar days in the window.
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// SubmittedFrom retorna o primeiro instante da janela no fuso loc
func (w Window) SubmittedFrom(loc *time.Location) time.Time {
	return utils.StartOfDayIn(w.Start, loc).UTC()
}

// SubmittedBefore retorna o instante logo após o fim da janela no fuso loc
func (w Window) SubmittedBefore(loc *time.Location) time.Time {
	return utils.StartOfDayIn(w.End.AddDate(0, 0, 1), loc).UTC()
}

// Engine resolve filtros usando o fuso e o relógio injetados
type Engine struct {
	location *time.Location
	clock    func() time.Time
	calendar *now.Config
}

// NewEngine cria o motor de filtros. clock nil usa time.Now.
func NewEngine(location *time.Location, clock func() time.Time) *Engine {
	if location == nil {
		location = time.UTC
	}
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		location: location,
		clock:    clock,
		calendar: &now.Config{WeekStartDay: time.Monday, TimeLocation: location},
	}
}

// Location returns the configured timezone.
func (e *Engine) Location() *time.Location { return e.location }

// Now returns the current instant in the configured timezone.
func (e *Engine) Now() time.Time { return e.clock().In(e.location) }

// Today returns the current calendar date.
func (e *Engine) Today() time.Time { return utils.CalendarDate(e.Now(), e.location) }

// PresetWindow resolve um preset para datas concretas
func (e *Engine) PresetWindow(preset DateRangePreset) (Window, bool) {
	cal := e.calendar.With(e.Now())
	day := func(t time.Time) time.Time { return utils.CalendarDate(t, e.location) }

	switch preset {
	case PresetToday:
		return Window{Start: day(cal.BeginningOfDay()), End: day(cal.BeginningOfDay())}, true
	case PresetThisWeek:
		return Window{Start: day(cal.BeginningOfWeek()), End: day(cal.EndOfWeek())}, true
	case PresetThisMonth:
		return Window{Start: day(cal.BeginningOfMonth()), End: day(cal.EndOfMonth())}, true
	case PresetThisYear:
		return Window{Start: day(cal.BeginningOfYear()), End: day(cal.EndOfYear())}, true
	case PresetLast30Days:
		today := e.Today()
		return Window{Start: today.AddDate(0, 0, -29), End: today}, true
	}
	return Window{}, false
}

// Resolve converte o filtro em critérios concretos aplicando a política de data
func (e *Engine) Resolve(f Filter, policy DatePolicy) Criteria {
	c := Criteria{
		SatisfactionRating: f.SatisfactionRating,
		SchoolID:           f.SchoolID,
		TransactionType:    f.TransactionType,
		Search:             strings.ToLower(strings.TrimSpace(f.Search)),
		Policy:             policy,
		Location:           e.location,
	}

	if strings.EqualFold(f.School, OtherSchool) {
		c.OtherSchool = true
	} else {
		c.SchoolName = f.School
	}

	if window, ok := e.PresetWindow(f.DateRange); ok {
		c.Preset = &window
	}
	if f.StartDate != nil {
		from := utils.CalendarDate(*f.StartDate, time.UTC)
		c.From = &from
	}
	if f.EndDate != nil {
		to := utils.CalendarDate(*f.EndDate, time.UTC)
		c.To = &to
	}

	return c
}

// Periods returns the current comparison window and the one immediately before it.
// Month and year presets compare against the previous calendar month or year;
// other windows compare against the same number of days.
func (e *Engine) Periods(f Filter) (current, previous Window) {
	today := e.Today()

	switch {
	case f.DateRange != "":
		current, _ = e.PresetWindow(f.DateRange)
	case f.StartDate != nil && f.EndDate != nil:
		current = Window{Start: utils.CalendarDate(*f.StartDate, time.UTC), End: utils.CalendarDate(*f.EndDate, time.UTC)}
	case f.StartDate != nil:
		start := utils.CalendarDate(*f.StartDate, time.UTC)
		end := today
		if end.Before(start) {
			end = start
		}
		current = Window{Start: start, End: end}
	case f.EndDate != nil:
		end := utils.CalendarDate(*f.EndDate, time.UTC)
		current = Window{Start: time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC), End: end}
	default:
		current, _ = e.PresetWindow(PresetThisMonth)
	}

	if current.End.Before(current.Start) {
		current.Start, current.End = current.End, current.Start
	}

	prevEnd := current.Start.AddDate(0, 0, -1)
	switch {
	case f.DateRange == PresetThisYear:
		previous = Window{Start: time.Date(prevEnd.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), End: prevEnd}
	case f.DateRange == PresetThisMonth || f.DateRange == "" && f.StartDate == nil && f.EndDate == nil:
		previous = Window{Start: time.Date(prevEnd.Year(), prevEnd.Month(), 1, 0, 0, 0, 0, time.UTC), End: prevEnd}
	default:
		previous = Window{Start: prevEnd.AddDate(0, 0, -(current.Days() - 1)), End: prevEnd}
	}

	return current, previous
}

// PeriodCriteria resolve o filtro sem datas, limitado à janela informada em transaction_date
func (e *Engine) PeriodCriteria(f Filter, window Window) Criteria {
	c := e.Resolve(f.withoutDates(), PolicyTransactionDate)
	from, to := window.Start, window.End
	c.From = &from
	c.To = &to
	return c
}
