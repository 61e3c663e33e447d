package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/coursewave/coursewave-backend/internal/logger"
	"github.com/coursewave/coursewave-backend/internal/publish"
	"github.com/coursewave/coursewave-backend/internal/repos"
)

// assetRegistry backs the publish precondition with live asset rows. No
// caching here on purpose: completeness must reflect the registry at the
// moment of each publish attempt.
type assetRegistry struct {
	log    *logger.Logger
	assets repos.AssetRepo
}

func NewAssetRegistry(baseLog *logger.Logger, assets repos.AssetRepo) publish.AssetRegistry {
	return &assetRegistry{
		log:    baseLog.With("service", "AssetRegistry"),
		assets: assets,
	}
}

func (r *assetRegistry) HasRequiredVariants(ctx context.Context, ownerID uuid.UUID, ownerKind, language string) (publish.VariantCheck, error) {
	existing, err := r.assets.ListByOwnerLanguage(ctx, nil, ownerID, ownerKind, language)
	if err != nil {
		return publish.VariantCheck{}, err
	}
	present := map[string]bool{}
	for _, a := range existing {
		present[a.Variant] = true
	}
	check := publish.VariantCheck{Satisfied: true}
	for _, variant := range publish.RequiredVariants {
		if !present[variant] {
			check.Satisfied = false
			check.Missing = append(check.Missing, variant)
		}
	}
	return check, nil
}
