package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coursewave/coursewave-backend/internal/logger"
	"github.com/coursewave/coursewave-backend/internal/repos"
	"github.com/coursewave/coursewave-backend/internal/types"
)

type CreateAssetInput struct {
	OwnerID   uuid.UUID
	OwnerKind string
	Language  string
	Variant   string
	Kind      string
	URL       string
}

type AssetService interface {
	CreateAsset(ctx context.Context, in CreateAssetInput) (*types.Asset, error)
	ListAssets(ctx context.Context, ownerID uuid.UUID, ownerKind string) ([]*types.Asset, error)
	DeleteAsset(ctx context.Context, id uuid.UUID) error
}

type assetService struct {
	db       *gorm.DB
	log      *logger.Logger
	programs repos.ProgramRepo
	lessons  repos.LessonRepo
	assets   repos.AssetRepo
}

func NewAssetService(db *gorm.DB, log *logger.Logger, programs repos.ProgramRepo, lessons repos.LessonRepo, assets repos.AssetRepo) AssetService {
	return &assetService{
		db:       db,
		log:      log.With("service", "AssetService"),
		programs: programs,
		lessons:  lessons,
		assets:   assets,
	}
}

var validVariants = map[string]bool{
	types.VariantPortrait:  true,
	types.VariantLandscape: true,
	types.VariantSquare:    true,
	types.VariantBanner:    true,
}

func (s *assetService) validateInput(ctx context.Context, in CreateAssetInput) error {
	if in.URL == "" {
		return fmt.Errorf("url is required")
	}
	if in.Language == "" {
		return fmt.Errorf("language is required")
	}
	if !validVariants[in.Variant] {
		return fmt.Errorf("unknown variant %q", in.Variant)
	}
	switch in.OwnerKind {
	case types.OwnerKindProgram:
		if in.Kind != types.AssetKindPoster {
			return fmt.Errorf("program assets must be posters")
		}
		program, err := s.programs.GetByID(ctx, nil, in.OwnerID)
		if err != nil {
			return err
		}
		if program == nil {
			return fmt.Errorf("program %s not found", in.OwnerID)
		}
	case types.OwnerKindLesson:
		if in.Kind != types.AssetKindThumbnail {
			return fmt.Errorf("lesson assets must be thumbnails")
		}
		lesson, err := s.lessons.GetByID(ctx, nil, in.OwnerID)
		if err != nil {
			return err
		}
		if lesson == nil {
			return fmt.Errorf("lesson %s not found", in.OwnerID)
		}
	default:
		return fmt.Errorf("unknown owner kind %q", in.OwnerKind)
	}
	return nil
}

func (s *assetService) CreateAsset(ctx context.Context, in CreateAssetInput) (*types.Asset, error) {
	if err := s.validateInput(ctx, in); err != nil {
		return nil, err
	}
	asset := &types.Asset{
		OwnerID:   in.OwnerID,
		OwnerKind: in.OwnerKind,
		Language:  in.Language,
		Variant:   in.Variant,
		Kind:      in.Kind,
		URL:       in.URL,
	}
	created, err := s.assets.Create(ctx, nil, []*types.Asset{asset})
	if err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}
	return created[0], nil
}

func (s *assetService) ListAssets(ctx context.Context, ownerID uuid.UUID, ownerKind string) ([]*types.Asset, error) {
	return s.assets.ListByOwner(ctx, nil, ownerID, ownerKind)
}

func (s *assetService) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	return s.assets.Delete(ctx, nil, id)
}
