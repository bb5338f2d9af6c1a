// Package filters turns the dashboard/list/export query options into a
// resolved Criteria that can be matched in memory or translated into a
// store query.
package filters

import (
	"strconv"
	"strings"
	"time"
)

// DateRangePreset é um atalho de período resolvido na hora da consulta
type DateRangePreset string

const (
	PresetToday      DateRangePreset = "today"
	PresetThisWeek   DateRangePreset = "this_week"
	PresetThisMonth  DateRangePreset = "this_month"
	PresetThisYear   DateRangePreset = "this_year"
	PresetLast30Days DateRangePreset = "last_30_days"
)

// Presets lists the accepted date_range values.
var Presets = []DateRangePreset{PresetToday, PresetThisWeek, PresetThisMonth, PresetThisYear, PresetLast30Days}

// Valid reports whether p is a known preset.
func (p DateRangePreset) Valid() bool {
	for _, known := range Presets {
		if p == known {
			return true
		}
	}
	return false
}

// OtherSchool is the school filter sentinel for free-text schools.
const OtherSchool = "other"

const dateLayout = "2006-01-02"

// Filter contém as opções de filtro informadas pelo usuário.
// Campos vazios significam "sem restrição".
type Filter struct {
	SatisfactionRating string
	School             string
	SchoolID           uint
	TransactionType    string
	DateRange          DateRangePreset
	StartDate          *time.Time
	EndDate            *time.Time
	Search             string
}

// FromParams monta o filtro a partir dos parâmetros da query.
// "all" ou vazio desativa a opção; datas malformadas e presets desconhecidos são ignorados.
func FromParams(params map[string]string) Filter {
	f := Filter{
		SatisfactionRating: option(params["satisfaction_rating"]),
		School:             option(params["school"]),
		TransactionType:    option(params["transaction_type"]),
		Search:             strings.TrimSpace(params["search"]),
	}

	if raw := option(params["school_id"]); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id > 0 {
			f.SchoolID = uint(id)
		}
	}

	if preset := DateRangePreset(option(params["date_range"])); preset.Valid() {
		f.DateRange = preset
	}

	f.StartDate = parseDate(params["start_date"])
	f.EndDate = parseDate(params["end_date"])

	return f
}

// Params devolve o filtro no formato de query, omitindo opções vazias
func (f Filter) Params() map[string]string {
	params := make(map[string]string)
	set := func(key, value string) {
		if value != "" {
			params[key] = value
		}
	}
	set("satisfaction_rating", f.SatisfactionRating)
	set("school", f.School)
	if f.SchoolID > 0 {
		params["school_id"] = strconv.FormatUint(uint64(f.SchoolID), 10)
	}
	set("transaction_type", f.TransactionType)
	set("date_range", string(f.DateRange))
	if f.StartDate != nil {
		params["start_date"] = f.StartDate.Format(dateLayout)
	}
	if f.EndDate != nil {
		params["end_date"] = f.EndDate.Format(dateLayout)
	}
	set("search", f.Search)
	return params
}

// withoutDates retorna uma cópia sem nenhuma restrição de data
func (f Filter) withoutDates() Filter {
	f.DateRange = ""
	f.StartDate = nil
	f.EndDate = nil
	return f
}

func option(raw string) string {
	value := strings.TrimSpace(raw)
	if strings.EqualFold(value, "all") {
		return ""
	}
	return value
}

func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}
