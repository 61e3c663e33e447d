package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Program struct {
	ID              uuid.UUID                    `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string                       `gorm:"column:title;not null" json:"title"`
	PrimaryLanguage string                       `gorm:"column:primary_language;not null" json:"primary_language"`
	Languages       datatypes.JSONSlice[string]  `gorm:"column:languages;type:jsonb" json:"languages"`
	Status          string                       `gorm:"column:status;not null;default:draft;index" json:"status"`
	PublishedAt     *time.Time                   `gorm:"column:published_at" json:"published_at,omitempty"`
	Terms           []*Term                      `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProgramID;references:ID" json:"terms,omitempty"`
	CreatedAt       time.Time                    `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time                    `gorm:"not null" json:"updated_at"`
	DeletedAt       gorm.DeletedAt               `gorm:"index" json:"deleted_at,omitempty"`
}

func (Program) TableName() string { return "program" }

func (p *Program) HasLanguage(lang string) bool {
	for _, l := range p.Languages {
		if l == lang {
			return true
		}
	}
	return false
}
