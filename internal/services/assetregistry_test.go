package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/coursewave/coursewave-backend/internal/logger"
	"github.com/coursewave/coursewave-backend/internal/repos"
	"github.com/coursewave/coursewave-backend/internal/types"
)

var registryDBSeq atomic.Int64

func newRegistryDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:registry_test_%d?mode=memory&cache=shared", registryDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.Asset{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func addAsset(t *testing.T, db *gorm.DB, ownerID uuid.UUID, language, variant string) *types.Asset {
	t.Helper()
	asset := &types.Asset{
		OwnerID:   ownerID,
		OwnerKind: types.OwnerKindLesson,
		Language:  language,
		Variant:   variant,
		Kind:      types.AssetKindThumbnail,
		URL:       fmt.Sprintf("https://cdn.example.com/%s-%s.png", language, variant),
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("create asset: %v", err)
	}
	return asset
}

func TestHasRequiredVariants(t *testing.T) {
	db := newRegistryDB(t)
	log := logger.NewNop()
	registry := NewAssetRegistry(log, repos.NewAssetRepo(db, log))
	ownerID := uuid.New()

	// Nothing uploaded yet: both variants missing.
	check, err := registry.HasRequiredVariants(context.Background(), ownerID, types.OwnerKindLesson, "en")
	if err != nil {
		t.Fatalf("HasRequiredVariants: %v", err)
	}
	if check.Satisfied {
		t.Fatalf("empty registry should not satisfy")
	}
	if len(check.Missing) != 2 {
		t.Fatalf("missing: want=2 got=%v", check.Missing)
	}

	addAsset(t, db, ownerID, "en", types.VariantPortrait)
	check, err = registry.HasRequiredVariants(context.Background(), ownerID, types.OwnerKindLesson, "en")
	if err != nil {
		t.Fatalf("HasRequiredVariants: %v", err)
	}
	if check.Satisfied {
		t.Fatalf("portrait alone should not satisfy")
	}
	if len(check.Missing) != 1 || check.Missing[0] != types.VariantLandscape {
		t.Fatalf("missing: want=[landscape] got=%v", check.Missing)
	}

	addAsset(t, db, ownerID, "en", types.VariantLandscape)
	check, err = registry.HasRequiredVariants(context.Background(), ownerID, types.OwnerKindLesson, "en")
	if err != nil {
		t.Fatalf("HasRequiredVariants: %v", err)
	}
	if !check.Satisfied {
		t.Fatalf("both variants present, missing=%v", check.Missing)
	}
}

func TestHasRequiredVariantsIsPerLanguage(t *testing.T) {
	db := newRegistryDB(t)
	log := logger.NewNop()
	registry := NewAssetRegistry(log, repos.NewAssetRepo(db, log))
	ownerID := uuid.New()

	addAsset(t, db, ownerID, "en", types.VariantPortrait)
	addAsset(t, db, ownerID, "en", types.VariantLandscape)

	check, err := registry.HasRequiredVariants(context.Background(), ownerID, types.OwnerKindLesson, "es")
	if err != nil {
		t.Fatalf("HasRequiredVariants: %v", err)
	}
	if check.Satisfied {
		t.Fatalf("english assets must not satisfy a spanish check")
	}
}

func TestHasRequiredVariantsReflectsDeletes(t *testing.T) {
	db := newRegistryDB(t)
	log := logger.NewNop()
	assetRepo := repos.NewAssetRepo(db, log)
	registry := NewAssetRegistry(log, assetRepo)
	ownerID := uuid.New()

	addAsset(t, db, ownerID, "en", types.VariantPortrait)
	landscape := addAsset(t, db, ownerID, "en", types.VariantLandscape)

	check, err := registry.HasRequiredVariants(context.Background(), ownerID, types.OwnerKindLesson, "en")
	if err != nil {
		t.Fatalf("HasRequiredVariants: %v", err)
	}
	if !check.Satisfied {
		t.Fatalf("expected satisfied before delete")
	}

	if err := assetRepo.Delete(context.Background(), nil, landscape.ID); err != nil {
		t.Fatalf("delete asset: %v", err)
	}
	check, err = registry.HasRequiredVariants(context.Background(), ownerID, types.OwnerKindLesson, "en")
	if err != nil {
		t.Fatalf("HasRequiredVariants: %v", err)
	}
	if check.Satisfied {
		t.Fatalf("deleted variant must invalidate completeness")
	}
	if len(check.Missing) != 1 || check.Missing[0] != types.VariantLandscape {
		t.Fatalf("missing: want=[landscape] got=%v", check.Missing)
	}
}
