package publish

import (
	"context"

	"github.com/google/uuid"

	"github.com/coursewave/coursewave-backend/internal/types"
)

// RequiredVariants are the visual variants an owner must have for its primary
// language before it may publish.
var RequiredVariants = []string{types.VariantPortrait, types.VariantLandscape}

type VariantCheck struct {
	Satisfied bool
	Missing   []string
}

// AssetRegistry answers the publish precondition. Implementations must check
// live state: completeness is re-evaluated at every publish attempt because
// assets can be deleted between scheduling and due time.
type AssetRegistry interface {
	HasRequiredVariants(ctx context.Context, ownerID uuid.UUID, ownerKind, language string) (VariantCheck, error)
}
