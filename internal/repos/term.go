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

type TermRepo interface {
	Create(ctx context.Context, tx *gorm.DB, terms []*types.Term) ([]*types.Term, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Term, error)
	ListByProgramIDs(ctx context.Context, tx *gorm.DB, programIDs []uuid.UUID) ([]*types.Term, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type termRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTermRepo(db *gorm.DB, baseLog *logger.Logger) TermRepo {
	return &termRepo{db: db, log: baseLog.With("repo", "TermRepo")}
}

func (r *termRepo) Create(ctx context.Context, tx *gorm.DB, terms []*types.Term) ([]*types.Term, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(terms) == 0 {
		return []*types.Term{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&terms).Error; err != nil {
		return nil, err
	}
	return terms, nil
}

func (r *termRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Term, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var term types.Term
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&term).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &term, nil
}

func (r *termRepo) ListByProgramIDs(ctx context.Context, tx *gorm.DB, programIDs []uuid.UUID) ([]*types.Term, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Term
	if len(programIDs) == 0 {
		return out, nil
	}
	if err := transaction.WithContext(ctx).
		Where("program_id IN ?", programIDs).
		Order("term_number ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *termRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error {
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
		Model(&types.Term{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *termRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Term{}).Error
}
