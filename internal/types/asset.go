package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Asset is a media variant owned by a program (posters) or a lesson
// (thumbnails). One asset per (owner, language, variant, kind).
type Asset struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_asset_owner_lang_variant_kind" json:"owner_id"`
	OwnerKind string         `gorm:"column:owner_kind;not null;uniqueIndex:idx_asset_owner_lang_variant_kind" json:"owner_kind"`
	Language  string         `gorm:"column:language;not null;uniqueIndex:idx_asset_owner_lang_variant_kind" json:"language"`
	Variant   string         `gorm:"column:variant;not null;uniqueIndex:idx_asset_owner_lang_variant_kind" json:"variant"`
	Kind      string         `gorm:"column:kind;not null;uniqueIndex:idx_asset_owner_lang_variant_kind" json:"kind"`
	URL       string         `gorm:"column:url;not null" json:"url"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Asset) TableName() string { return "asset" }
