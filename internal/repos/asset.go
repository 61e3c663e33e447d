package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coursewave/coursewave-backend/internal/logger"
	"github.com/coursewave/coursewave-backend/internal/types"
)

type AssetRepo interface {
	Create(ctx context.Context, tx *gorm.DB, assets []*types.Asset) ([]*types.Asset, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Asset, error)
	ListByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, ownerKind string) ([]*types.Asset, error)
	ListByOwnerLanguage(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, ownerKind, language string) ([]*types.Asset, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, ownerKind string) error
}

type assetRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssetRepo(db *gorm.DB, baseLog *logger.Logger) AssetRepo {
	return &assetRepo{db: db, log: baseLog.With("repo", "AssetRepo")}
}

func (r *assetRepo) Create(ctx context.Context, tx *gorm.DB, assets []*types.Asset) ([]*types.Asset, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(assets) == 0 {
		return []*types.Asset{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *assetRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Asset, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var asset types.Asset
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepo) ListByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, ownerKind string) ([]*types.Asset, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Asset
	if ownerID == uuid.Nil {
		return out, nil
	}
	if err := transaction.WithContext(ctx).
		Where("owner_id = ? AND owner_kind = ?", ownerID, ownerKind).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *assetRepo) ListByOwnerLanguage(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, ownerKind, language string) ([]*types.Asset, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Asset
	if ownerID == uuid.Nil {
		return out, nil
	}
	if err := transaction.WithContext(ctx).
		Where("owner_id = ? AND owner_kind = ? AND language = ?", ownerID, ownerKind, language).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *assetRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Asset{}).Error
}

func (r *assetRepo) DeleteByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, ownerKind string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if ownerID == uuid.Nil {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("owner_id = ? AND owner_kind = ?", ownerID, ownerKind).
		Delete(&types.Asset{}).Error
}
