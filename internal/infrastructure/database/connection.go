package database

import (
	"net/url"
	"strings"
)

// WithTimezone adiciona o fuso da sessão ao DSN do Postgres, em formato URL
// (postgres://...) ou chave=valor. Um TimeZone já presente é mantido.
func WithTimezone(dsn, timezone string) string {
	if timezone == "" {
		return dsn
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return dsn
		}
		q := u.Query()
		for key := range q {
			if strings.EqualFold(key, "timezone") {
				return dsn
			}
		}
		q.Set("timezone", timezone)
		u.RawQuery = q.Encode()
		return u.String()
	}

	for _, field := range strings.Fields(dsn) {
		if strings.HasPrefix(strings.ToLower(field), "timezone=") {
			return dsn
		}
	}
	return strings.TrimSpace(dsn + " TimeZone=" + timezone)
}
