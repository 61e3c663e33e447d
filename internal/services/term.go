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

type TermService interface {
	CreateTerm(ctx context.Context, programID uuid.UUID, termNumber int, title string) (*types.Term, error)
	GetTerm(ctx context.Context, id uuid.UUID) (*types.Term, error)
	ListTermsForProgram(ctx context.Context, programID uuid.UUID) ([]*types.Term, error)
	UpdateTerm(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*types.Term, error)
	DeleteTerm(ctx context.Context, id uuid.UUID) error
}

type termService struct {
	db       *gorm.DB
	log      *logger.Logger
	programs repos.ProgramRepo
	terms    repos.TermRepo
	lessons  repos.LessonRepo
	assets   repos.AssetRepo
}

func NewTermService(db *gorm.DB, log *logger.Logger, programs repos.ProgramRepo, terms repos.TermRepo, lessons repos.LessonRepo, assets repos.AssetRepo) TermService {
	return &termService{
		db:       db,
		log:      log.With("service", "TermService"),
		programs: programs,
		terms:    terms,
		lessons:  lessons,
		assets:   assets,
	}
}

func (s *termService) CreateTerm(ctx context.Context, programID uuid.UUID, termNumber int, title string) (*types.Term, error) {
	if termNumber < 1 {
		return nil, fmt.Errorf("term number must be positive")
	}
	program, err := s.programs.GetByID(ctx, nil, programID)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, fmt.Errorf("program %s not found", programID)
	}
	term := &types.Term{
		ProgramID:  programID,
		TermNumber: termNumber,
		Title:      title,
	}
	created, err := s.terms.Create(ctx, nil, []*types.Term{term})
	if err != nil {
		return nil, fmt.Errorf("failed to create term: %w", err)
	}
	return created[0], nil
}

func (s *termService) GetTerm(ctx context.Context, id uuid.UUID) (*types.Term, error) {
	return s.terms.GetByID(ctx, nil, id)
}

func (s *termService) ListTermsForProgram(ctx context.Context, programID uuid.UUID) ([]*types.Term, error) {
	return s.terms.ListByProgramIDs(ctx, nil, []uuid.UUID{programID})
}

func (s *termService) UpdateTerm(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*types.Term, error) {
	term, err := s.terms.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if term == nil {
		return nil, nil
	}
	for _, forbidden := range []string{"id", "program_id"} {
		delete(updates, forbidden)
	}
	if len(updates) == 0 {
		return term, nil
	}
	if err := s.terms.UpdateFields(ctx, nil, id, updates); err != nil {
		return nil, fmt.Errorf("failed to update term: %w", err)
	}
	return s.terms.GetByID(ctx, nil, id)
}

func (s *termService) DeleteTerm(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lessons, err := s.lessons.ListByTermIDs(ctx, tx, []uuid.UUID{id})
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
		if err := s.terms.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("failed to delete term: %w", err)
		}
		return nil
	})
}
