package entities

import "gorm.io/gorm"

// School representa uma instituição de ensino superior (HEI).
// A exclusão é lógica: respostas antigas continuam apontando para o registro.
type School struct {
	ID   uint   `json:"id" gorm:"primaryKey;column:id"`
	Name string `json:"name" gorm:"column:name;size:255;not null;uniqueIndex"`
	Base
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"column:deleted_at;index"`
}

func (School) TableName() string { return "schools" }

// IsDeleted informa se a escola foi removida logicamente
func (s School) IsDeleted() bool {
	return s.DeletedAt.Valid
}
