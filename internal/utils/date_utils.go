package utils

import (
	"log/slog"
	"time"
)

// LoadLocation retorna o fuso horário configurado.
// Se o nome não puder ser carregado, usa UTC para manter os limites de data determinísticos.
func LoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("unknown timezone, falling back to UTC", "timezone", name, "error", err)
		return time.UTC
	}
	return location
}

// CalendarDate normaliza um instante para a data de calendário (00:00 UTC do mesmo dia)
// tal como vista no fuso loc. É o formato em que transaction_date é armazenada.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOfDayIn retorna o início do dia de calendário date no fuso loc
func StartOfDayIn(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// GenerateDateRange gera as datas "YYYY-MM-DD" de from até to (inclusive)
func GenerateDateRange(from, to time.Time) []string {
	if from.IsZero() || to.IsZero() || from.After(to) {
		return []string{}
	}

	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())

	var result []string
	for current := from; !current.After(to); current = current.AddDate(0, 0, 1) {
		result = append(result, current.Format("2006-01-02"))
	}
	return result
}
