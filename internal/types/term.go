package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Term is purely structural: it groups lessons under a program and has no
// lifecycle state of its own.
type Term struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ProgramID  uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_term_program_number" json:"program_id"`
	Program    *Program       `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProgramID;references:ID" json:"program,omitempty"`
	TermNumber int            `gorm:"column:term_number;not null;uniqueIndex:idx_term_program_number" json:"term_number"`
	Title      string         `gorm:"column:title" json:"title"`
	Lessons    []*Lesson      `gorm:"constraint:OnDelete:CASCADE;foreignKey:TermID;references:ID" json:"lessons,omitempty"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Term) TableName() string { return "term" }
