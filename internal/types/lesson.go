package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lesson lifecycle invariants:
//   - status=scheduled requires publish_at set (strictly future when written).
//   - status=published requires published_at set; published_at is stamped at
//     the publish event and never overwritten by idempotent re-runs.
type Lesson struct {
	ID              uuid.UUID                              `gorm:"type:uuid;primaryKey" json:"id"`
	TermID          uuid.UUID                              `gorm:"type:uuid;not null;index;uniqueIndex:idx_lesson_term_number" json:"term_id"`
	Term            *Term                                  `gorm:"constraint:OnDelete:CASCADE;foreignKey:TermID;references:ID" json:"term,omitempty"`
	LessonNumber    int                                    `gorm:"column:lesson_number;not null;uniqueIndex:idx_lesson_term_number" json:"lesson_number"`
	Title           string                                 `gorm:"column:title;not null" json:"title"`
	Kind            string                                 `gorm:"column:kind;not null" json:"kind"`
	DurationSeconds *int                                   `gorm:"column:duration_seconds" json:"duration_seconds,omitempty"`
	PrimaryLanguage string                                 `gorm:"column:primary_language;not null" json:"primary_language"`
	Languages       datatypes.JSONSlice[string]            `gorm:"column:languages;type:jsonb" json:"languages"`
	ContentURLs     datatypes.JSONType[map[string]string]  `gorm:"column:content_urls;type:jsonb" json:"content_urls"`
	SubtitleURLs    datatypes.JSONType[map[string]string]  `gorm:"column:subtitle_urls;type:jsonb" json:"subtitle_urls,omitempty"`
	Status          string                                 `gorm:"column:status;not null;default:draft;index:idx_lesson_status_publish_at" json:"status"`
	PublishAt       *time.Time                             `gorm:"column:publish_at;index:idx_lesson_status_publish_at" json:"publish_at,omitempty"`
	PublishedAt     *time.Time                             `gorm:"column:published_at" json:"published_at,omitempty"`
	CreatedAt       time.Time                              `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time                              `gorm:"not null" json:"updated_at"`
	DeletedAt       gorm.DeletedAt                         `gorm:"index" json:"deleted_at,omitempty"`
}

func (Lesson) TableName() string { return "lesson" }

func (l *Lesson) HasLanguage(lang string) bool {
	for _, lng := range l.Languages {
		if lng == lang {
			return true
		}
	}
	return false
}
