package entities

import "time"

// Base contém campos de auditoria comuns às entidades persistidas
type Base struct {
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}
