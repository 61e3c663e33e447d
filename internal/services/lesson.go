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

type CreateLessonInput struct {
	TermID          uuid.UUID
	LessonNumber    int
	Title           string
	Kind            string
	DurationSeconds *int
	PrimaryLanguage string
	Languages       []string
	ContentURLs     map[string]string
	SubtitleURLs    map[string]string
}

type LessonService interface {
	CreateLesson(ctx context.Context, in CreateLessonInput) (*types.Lesson, error)
	GetLesson(ctx context.Context, id uuid.UUID) (*types.Lesson, error)
	ListLessonsForTerm(ctx context.Context, termID uuid.UUID) ([]*types.Lesson, error)
	UpdateLesson(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*types.Lesson, error)
	RestoreToDraft(ctx context.Context, id uuid.UUID) (*types.Lesson, error)
	DeleteLesson(ctx context.Context, id uuid.UUID) error
}

type lessonService struct {
	db      *gorm.DB
	log     *logger.Logger
	terms   repos.TermRepo
	lessons repos.LessonRepo
	assets  repos.AssetRepo
}

func NewLessonService(db *gorm.DB, log *logger.Logger, terms repos.TermRepo, lessons repos.LessonRepo, assets repos.AssetRepo) LessonService {
	return &lessonService{
		db:      db,
		log:     log.With("service", "LessonService"),
		terms:   terms,
		lessons: lessons,
		assets:  assets,
	}
}

func validateLessonInput(in CreateLessonInput) error {
	if in.Title == "" {
		return fmt.Errorf("title is required")
	}
	if in.LessonNumber < 1 {
		return fmt.Errorf("lesson number must be positive")
	}
	switch in.Kind {
	case types.LessonKindVideo:
		if in.DurationSeconds == nil || *in.DurationSeconds <= 0 {
			return fmt.Errorf("video lessons require a positive duration")
		}
	case types.LessonKindArticle:
		if in.DurationSeconds != nil {
			return fmt.Errorf("article lessons must not carry a duration")
		}
	default:
		return fmt.Errorf("unknown lesson kind %q", in.Kind)
	}
	if err := validateLanguages(in.PrimaryLanguage, in.Languages); err != nil {
		return err
	}
	if in.ContentURLs[in.PrimaryLanguage] == "" {
		return fmt.Errorf("content URL for primary language %q is required", in.PrimaryLanguage)
	}
	return nil
}

func (s *lessonService) CreateLesson(ctx context.Context, in CreateLessonInput) (*types.Lesson, error) {
	if err := validateLessonInput(in); err != nil {
		return nil, err
	}
	term, err := s.terms.GetByID(ctx, nil, in.TermID)
	if err != nil {
		return nil, err
	}
	if term == nil {
		return nil, fmt.Errorf("term %s not found", in.TermID)
	}
	lesson := &types.Lesson{
		TermID:          in.TermID,
		LessonNumber:    in.LessonNumber,
		Title:           in.Title,
		Kind:            in.Kind,
		DurationSeconds: in.DurationSeconds,
		PrimaryLanguage: in.PrimaryLanguage,
		Languages:       datatypes.NewJSONSlice(in.Languages),
		ContentURLs:     datatypes.NewJSONType(in.ContentURLs),
		SubtitleURLs:    datatypes.NewJSONType(in.SubtitleURLs),
		Status:          types.StatusDraft,
	}
	created, err := s.lessons.Create(ctx, nil, []*types.Lesson{lesson})
	if err != nil {
		return nil, fmt.Errorf("failed to create lesson: %w", err)
	}
	return created[0], nil
}

func (s *lessonService) GetLesson(ctx context.Context, id uuid.UUID) (*types.Lesson, error) {
	return s.lessons.GetByID(ctx, nil, id)
}

func (s *lessonService) ListLessonsForTerm(ctx context.Context, termID uuid.UUID) ([]*types.Lesson, error) {
	return s.lessons.ListByTermIDs(ctx, nil, []uuid.UUID{termID})
}

// UpdateLesson touches descriptive fields only; lifecycle fields belong to
// the publish orchestrator.
func (s *lessonService) UpdateLesson(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*types.Lesson, error) {
	lesson, err := s.lessons.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if lesson == nil {
		return nil, nil
	}
	for _, forbidden := range []string{"status", "publish_at", "published_at", "id", "term_id"} {
		delete(updates, forbidden)
	}
	if len(updates) == 0 {
		return lesson, nil
	}
	if err := s.lessons.UpdateFields(ctx, nil, id, updates); err != nil {
		return nil, fmt.Errorf("failed to update lesson: %w", err)
	}
	return s.lessons.GetByID(ctx, nil, id)
}

// RestoreToDraft is the explicit admin action that re-opens an archived
// lesson. It is the only path out of archived.
func (s *lessonService) RestoreToDraft(ctx context.Context, id uuid.UUID) (*types.Lesson, error) {
	lesson, err := s.lessons.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if lesson == nil {
		return nil, nil
	}
	applied, err := s.lessons.ConditionalUpdateStatus(ctx, nil, id,
		[]string{types.StatusArchived},
		map[string]interface{}{"status": types.StatusDraft, "publish_at": nil, "published_at": nil})
	if err != nil {
		return nil, fmt.Errorf("failed to restore lesson: %w", err)
	}
	if !applied {
		return nil, fmt.Errorf("lesson %s is not archived", id)
	}
	return s.lessons.GetByID(ctx, nil, id)
}

func (s *lessonService) DeleteLesson(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.assets.DeleteByOwner(ctx, tx, id, types.OwnerKindLesson); err != nil {
			return fmt.Errorf("failed to delete lesson assets: %w", err)
		}
		if err := s.lessons.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("failed to delete lesson: %w", err)
		}
		return nil
	})
}
