package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/coursewave/coursewave-backend/internal/logger"
	"github.com/coursewave/coursewave-backend/internal/repos"
	"github.com/coursewave/coursewave-backend/internal/types"
)

type ProgramService interface {
	CreateProgram(ctx context.Context, title, primaryLanguage string, languages []string) (*types.Program, error)
	GetProgram(ctx context.Context, id uuid.UUID) (*types.Program, error)
	ListPrograms(ctx context.Context) ([]*types.Program, error)
	UpdateProgram(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*types.Program, error)
	ArchiveProgram(ctx context.Context, id uuid.UUID) (*types.Program, error)
	DeleteProgram(ctx context.Context, id uuid.UUID) error
}

type programService struct {
	db       *gorm.DB
	log      *logger.Logger
	programs repos.ProgramRepo
	terms    repos.TermRepo
	lessons  repos.LessonRepo
	assets   repos.AssetRepo
}

func NewProgramService(db *gorm.DB, log *logger.Logger, programs repos.ProgramRepo, terms repos.TermRepo, lessons repos.LessonRepo, assets repos.AssetRepo) ProgramService {
	return &programService{
		db:       db,
		log:      log.With("service", "ProgramService"),
		programs: programs,
		terms:    terms,
		lessons:  lessons,
		assets:   assets,
	}
}

func validateLanguages(primary string, languages []string) error {
	if primary == "" {
		return fmt.Errorf("primary language is required")
	}
	for _, l := range languages {
		if l == primary {
			return nil
		}
	}
	return fmt.Errorf("primary language %q must be in the available language set", primary)
}

func (s *programService) CreateProgram(ctx context.Context, title, primaryLanguage string, languages []string) (*types.Program, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if err := validateLanguages(primaryLanguage, languages); err != nil {
		return nil, err
	}
	program := &types.Program{
		Title:           title,
		PrimaryLanguage: primaryLanguage,
		Languages:       datatypes.NewJSONSlice(languages),
		Status:          types.StatusDraft,
	}
	created, err := s.programs.Create(ctx, nil, []*types.Program{program})
	if err != nil {
		return nil, fmt.Errorf("failed to create program: %w", err)
	}
	return created[0], nil
}

func (s *programService) GetProgram(ctx context.Context, id uuid.UUID) (*types.Program, error) {
	return s.programs.GetByID(ctx, nil, id)
}

func (s *programService) ListPrograms(ctx context.Context) ([]*types.Program, error) {
	return s.programs.List(ctx, nil)
}

// UpdateProgram touches descriptive fields only. Status is owned by the
// publication policy and never updated here.
func (s *programService) UpdateProgram(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*types.Program, error) {
	program, err := s.programs.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, nil
	}
	for _, forbidden := range []string{"status", "published_at", "id"} {
		delete(updates, forbidden)
	}
	if len(updates) == 0 {
		return program, nil
	}
	if err := s.programs.UpdateFields(ctx, nil, id, updates); err != nil {
		return nil, fmt.Errorf("failed to update program: %w", err)
	}
	return s.programs.GetByID(ctx, nil, id)
}

// ArchiveProgram is the explicit admin action that revokes a published
// program; the scheduler never does this.
func (s *programService) ArchiveProgram(ctx context.Context, id uuid.UUID) (*types.Program, error) {
	program, err := s.programs.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, nil
	}
	applied, err := s.programs.ConditionalUpdateStatus(ctx, nil, id,
		[]string{types.StatusDraft, types.StatusPublished},
		map[string]interface{}{"status": types.StatusArchived, "published_at": nil})
	if err != nil {
		return nil, fmt.Errorf("failed to archive program: %w", err)
	}
	if !applied {
		s.log.Debug("Archive program was a no-op", "program_id", id)
	}
	return s.programs.GetByID(ctx, nil, id)
}

func (s *programService) DeleteProgram(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		terms, err := s.terms.ListByProgramIDs(ctx, tx, []uuid.UUID{id})
		if err != nil {
			return fmt.Errorf("failed to list terms: %w", err)
		}
		termIDs := make([]uuid.UUID, 0, len(terms))
		for _, t := range terms {
			termIDs = append(termIDs, t.ID)
		}
		lessons, err := s.lessons.ListByTermIDs(ctx, tx, termIDs)
		if err != nil {
			return fmt.Errorf("failed to list lessons: %w", err)
		}
		for _, lesson := range lessons {
			if err := s.assets.DeleteByOwner(ctx, tx, lesson.ID, types.OwnerKindLesson); err != nil {
				return fmt.Errorf("failed to delete lesson assets: %w", err)
			}
			if err := s.lessons.Delete(ctx, tx, lesson.ID); err != nil {
				return fmt.Errorf("failed to delete lesson: %w", err)
			}
		}
		for _, termID := range termIDs {
			if err := s.terms.Delete(ctx, tx, termID); err != nil {
				return fmt.Errorf("failed to delete term: %w", err)
			}
		}
		if err := s.assets.DeleteByOwner(ctx, tx, id, types.OwnerKindProgram); err != nil {
			return fmt.Errorf("failed to delete program assets: %w", err)
		}
		if err := s.programs.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("failed to delete program: %w", err)
		}
		return nil
	})
}
