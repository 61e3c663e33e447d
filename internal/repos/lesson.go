package repos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coursewave/coursewave-backend/internal/logger"
	"github.com/coursewave/coursewave-backend/internal/types"
)

// LessonRepo is the lesson half of the content-store contract. Every
// status-changing write goes through one of the Conditional* methods: a single
// UPDATE guarded on the expected prior state, so concurrent writers resolve by
// rows-affected instead of read-check-write races.
type LessonRepo interface {
	Create(ctx context.Context, tx *gorm.DB, lessons []*types.Lesson) ([]*types.Lesson, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Lesson, error)
	ListByTermIDs(ctx context.Context, tx *gorm.DB, termIDs []uuid.UUID) ([]*types.Lesson, error)
	ListPublishedByTermIDs(ctx context.Context, tx *gorm.DB, termIDs []uuid.UUID) ([]*types.Lesson, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error
	ConditionalUpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, expected []string, updates map[string]interface{}) (bool, error)
	ConditionalPublishDue(ctx context.Context, tx *gorm.DB, id uuid.UUID, now time.Time, updates map[string]interface{}) (bool, error)
	FindDue(ctx context.Context, tx *gorm.DB, now time.Time) ([]*types.Lesson, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type lessonRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLessonRepo(db *gorm.DB, baseLog *logger.Logger) LessonRepo {
	return &lessonRepo{db: db, log: baseLog.With("repo", "LessonRepo")}
}

func (r *lessonRepo) Create(ctx context.Context, tx *gorm.DB, lessons []*types.Lesson) ([]*types.Lesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(lessons) == 0 {
		return []*types.Lesson{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *lessonRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Lesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var lesson types.Lesson
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&lesson).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *lessonRepo) ListByTermIDs(ctx context.Context, tx *gorm.DB, termIDs []uuid.UUID) ([]*types.Lesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Lesson
	if len(termIDs) == 0 {
		return out, nil
	}
	if err := transaction.WithContext(ctx).
		Where("term_id IN ?", termIDs).
		Order("lesson_number ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *lessonRepo) ListPublishedByTermIDs(ctx context.Context, tx *gorm.DB, termIDs []uuid.UUID) ([]*types.Lesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Lesson
	if len(termIDs) == 0 {
		return out, nil
	}
	if err := transaction.WithContext(ctx).
		Where("term_id IN ? AND status = ?", termIDs, types.StatusPublished).
		Order("lesson_number ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *lessonRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return nil
	}
	if updates == nil {
		updates = map[string]interface{}{}
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now()
	}
	return transaction.WithContext(ctx).
		Model(&types.Lesson{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// ConditionalUpdateStatus applies updates only while the lesson's status is
// one of expected. Returns false when the guard does not match, which callers
// interpret as a concurrent-modification conflict.
func (r *lessonRepo) ConditionalUpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, expected []string, updates map[string]interface{}) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil || len(expected) == 0 {
		return false, nil
	}
	if updates == nil {
		updates = map[string]interface{}{}
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now()
	}
	res := transaction.WithContext(ctx).
		Model(&types.Lesson{}).
		Where("id = ? AND status IN ?", id, expected).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ConditionalPublishDue is the due-transition guard: status must still be
// scheduled and the publish_at deadline must have passed, checked in the same
// statement that flips the status. Repeated scheduler runs on an already
// published lesson match zero rows and come back as a no-op.
func (r *lessonRepo) ConditionalPublishDue(ctx context.Context, tx *gorm.DB, id uuid.UUID, now time.Time, updates map[string]interface{}) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return false, nil
	}
	if updates == nil {
		updates = map[string]interface{}{}
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = now
	}
	res := transaction.WithContext(ctx).
		Model(&types.Lesson{}).
		Where("id = ? AND status = ? AND publish_at IS NOT NULL AND publish_at <= ?", id, types.StatusScheduled, now).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *lessonRepo) FindDue(ctx context.Context, tx *gorm.DB, now time.Time) ([]*types.Lesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Lesson
	if err := transaction.WithContext(ctx).
		Where("status = ? AND publish_at IS NOT NULL AND publish_at <= ?", types.StatusScheduled, now).
		Order("publish_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *lessonRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Lesson{}).Error
}
