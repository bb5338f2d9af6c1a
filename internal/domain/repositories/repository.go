package repositories

import "errors"

// ErrNotFound é retornado quando o registro solicitado não existe
var ErrNotFound = errors.New("record not found")

// normalizePage aplica os limites padrão de paginação
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}
	return page, limit
}
