package publish

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coursewave/coursewave-backend/internal/logger"
	"github.com/coursewave/coursewave-backend/internal/repos"
	"github.com/coursewave/coursewave-backend/internal/types"
)

// Orchestrator executes policy decisions against storage. Every status change
// is a single conditional write keyed on the expected prior status; no step
// holds a lock across round-trips. The lesson→program cascade is a second,
// independent conditional write: if it fails the lesson stays published and
// the failure is reported for operator retry.
type Orchestrator struct {
	db       *gorm.DB
	log      *logger.Logger
	lessons  repos.LessonRepo
	terms    repos.TermRepo
	programs repos.ProgramRepo
	assets   AssetRegistry
	now      func() time.Time
}

func NewOrchestrator(db *gorm.DB, baseLog *logger.Logger, lessons repos.LessonRepo, terms repos.TermRepo, programs repos.ProgramRepo, assets AssetRegistry) *Orchestrator {
	return &Orchestrator{
		db:       db,
		log:      baseLog.With("component", "PublishOrchestrator"),
		lessons:  lessons,
		terms:    terms,
		programs: programs,
		assets:   assets,
		now:      time.Now,
	}
}

func (o *Orchestrator) updatesFor(dec Decision) map[string]interface{} {
	updates := map[string]interface{}{
		"status":     dec.NewStatus,
		"updated_at": o.now(),
	}
	if dec.PublishAt != nil {
		updates["publish_at"] = *dec.PublishAt
	}
	if dec.ClearPublishAt {
		updates["publish_at"] = nil
	}
	if dec.PublishedAt != nil {
		updates["published_at"] = *dec.PublishedAt
	}
	if dec.ClearPublishedAt {
		updates["published_at"] = nil
	}
	return updates
}

// PublishNow transitions a draft or scheduled lesson to published and
// cascades into the parent program.
func (o *Orchestrator) PublishNow(ctx context.Context, lessonID uuid.UUID) (Outcome, error) {
	lesson, err := o.lessons.GetByID(ctx, nil, lessonID)
	if err != nil {
		return Outcome{}, err
	}
	check := VariantCheck{}
	if lesson != nil {
		check, err = o.assets.HasRequiredVariants(ctx, lesson.ID, types.OwnerKindLesson, lesson.PrimaryLanguage)
		if err != nil {
			return Outcome{}, err
		}
	}
	dec := DecidePublishNow(lesson, check, o.now())
	switch dec.Kind {
	case DecideReject:
		return rejectionOutcome(dec.Reason), nil
	case DecideNoOp:
		return Outcome{Code: OutcomeNoOp}, nil
	}
	applied, err := o.lessons.ConditionalUpdateStatus(ctx, nil, lessonID, dec.ExpectedStatuses, o.updatesFor(dec))
	if err != nil {
		return Outcome{}, err
	}
	if !applied {
		return Outcome{Code: OutcomeConflict, Reason: ErrConflict}, nil
	}
	out := Outcome{Code: OutcomePublished}
	if dec.CascadeProgram {
		out.CascadeErr = o.cascadeProgram(ctx, lesson)
	}
	return out, nil
}

// Schedule sets a strictly-future due time on a draft or scheduled lesson.
func (o *Orchestrator) Schedule(ctx context.Context, lessonID uuid.UUID, dueTime time.Time) (Outcome, error) {
	lesson, err := o.lessons.GetByID(ctx, nil, lessonID)
	if err != nil {
		return Outcome{}, err
	}
	dec := DecideSchedule(lesson, dueTime, o.now())
	switch dec.Kind {
	case DecideReject:
		return rejectionOutcome(dec.Reason), nil
	case DecideNoOp:
		return Outcome{Code: OutcomeNoOp}, nil
	}
	applied, err := o.lessons.ConditionalUpdateStatus(ctx, nil, lessonID, dec.ExpectedStatuses, o.updatesFor(dec))
	if err != nil {
		return Outcome{}, err
	}
	if !applied {
		return Outcome{Code: OutcomeConflict, Reason: ErrConflict}, nil
	}
	return Outcome{Code: OutcomeScheduled}, nil
}

// Archive transitions a lesson to archived from any non-archived state.
func (o *Orchestrator) Archive(ctx context.Context, lessonID uuid.UUID) (Outcome, error) {
	lesson, err := o.lessons.GetByID(ctx, nil, lessonID)
	if err != nil {
		return Outcome{}, err
	}
	dec := DecideArchive(lesson)
	switch dec.Kind {
	case DecideReject:
		return rejectionOutcome(dec.Reason), nil
	case DecideNoOp:
		return Outcome{Code: OutcomeNoOp}, nil
	}
	applied, err := o.lessons.ConditionalUpdateStatus(ctx, nil, lessonID, dec.ExpectedStatuses, o.updatesFor(dec))
	if err != nil {
		return Outcome{}, err
	}
	if !applied {
		return Outcome{Code: OutcomeConflict, Reason: ErrConflict}, nil
	}
	return Outcome{Code: OutcomeArchived}, nil
}

// CancelSchedule moves a scheduled lesson back to draft. Losing the race
// against a concurrent due transition yields Conflict and the lesson stays
// published; that race is documented, not prevented.
func (o *Orchestrator) CancelSchedule(ctx context.Context, lessonID uuid.UUID) (Outcome, error) {
	lesson, err := o.lessons.GetByID(ctx, nil, lessonID)
	if err != nil {
		return Outcome{}, err
	}
	dec := DecideCancelSchedule(lesson)
	switch dec.Kind {
	case DecideReject:
		return rejectionOutcome(dec.Reason), nil
	case DecideNoOp:
		return Outcome{Code: OutcomeNoOp}, nil
	}
	applied, err := o.lessons.ConditionalUpdateStatus(ctx, nil, lessonID, dec.ExpectedStatuses, o.updatesFor(dec))
	if err != nil {
		return Outcome{}, err
	}
	if !applied {
		return Outcome{Code: OutcomeConflict, Reason: ErrConflict}, nil
	}
	return Outcome{Code: OutcomeCanceled}, nil
}

// EnsureProgramPublished is idempotent: already published or archived
// programs are a no-op, and a lost guard race means another writer published
// the program first, which is the same result.
func (o *Orchestrator) EnsureProgramPublished(ctx context.Context, programID uuid.UUID) (Outcome, error) {
	program, err := o.programs.GetByID(ctx, nil, programID)
	if err != nil {
		return Outcome{}, err
	}
	dec := DecideProgramCascade(program, o.now())
	switch dec.Kind {
	case DecideReject:
		return rejectionOutcome(dec.Reason), nil
	case DecideNoOp:
		return Outcome{Code: OutcomeNoOp}, nil
	}
	applied, err := o.programs.ConditionalUpdateStatus(ctx, nil, programID, dec.ExpectedStatuses, o.updatesFor(dec))
	if err != nil {
		return Outcome{}, err
	}
	if !applied {
		return Outcome{Code: OutcomeNoOp}, nil
	}
	return Outcome{Code: OutcomePublished}, nil
}

// ProcessDue publishes a single due lesson on behalf of the scheduler. The
// read-check-write window is closed by the storage guard: the status flip
// only applies while status=scheduled and publish_at <= now, so concurrent
// runs produce exactly one publish and the rest resolve to no-ops.
func (o *Orchestrator) ProcessDue(ctx context.Context, lessonID uuid.UUID, now time.Time) (Outcome, error) {
	lesson, err := o.lessons.GetByID(ctx, nil, lessonID)
	if err != nil {
		return Outcome{}, err
	}
	check := VariantCheck{}
	if lesson != nil && lesson.Status == types.StatusScheduled {
		check, err = o.assets.HasRequiredVariants(ctx, lesson.ID, types.OwnerKindLesson, lesson.PrimaryLanguage)
		if err != nil {
			return Outcome{}, err
		}
	}
	dec := DecideDueTransition(lesson, check, now)
	switch dec.Kind {
	case DecideReject:
		return rejectionOutcome(dec.Reason), nil
	case DecideNoOp:
		return Outcome{Code: OutcomeNoOp}, nil
	}
	applied, err := o.lessons.ConditionalPublishDue(ctx, nil, lessonID, now, o.updatesFor(dec))
	if err != nil {
		return Outcome{}, err
	}
	if !applied {
		return Outcome{Code: OutcomeNoOp}, nil
	}
	out := Outcome{Code: OutcomePublished}
	if dec.CascadeProgram {
		out.CascadeErr = o.cascadeProgram(ctx, lesson)
	}
	return out, nil
}

func (o *Orchestrator) cascadeProgram(ctx context.Context, lesson *types.Lesson) error {
	term, err := o.terms.GetByID(ctx, nil, lesson.TermID)
	if err != nil {
		o.log.Error("Cascade term lookup failed", "lesson_id", lesson.ID, "term_id", lesson.TermID, "error", err)
		return &CascadeFailureError{Err: err}
	}
	if term == nil {
		o.log.Error("Cascade term missing", "lesson_id", lesson.ID, "term_id", lesson.TermID)
		return &CascadeFailureError{Err: ErrNotFound}
	}
	out, err := o.EnsureProgramPublished(ctx, term.ProgramID)
	if err != nil {
		o.log.Error("Cascade program publish failed", "lesson_id", lesson.ID, "program_id", term.ProgramID, "error", err)
		return &CascadeFailureError{ProgramID: term.ProgramID, Err: err}
	}
	if out.Code == OutcomeNotFound || out.Code == OutcomeRejected {
		o.log.Error("Cascade program publish rejected", "lesson_id", lesson.ID, "program_id", term.ProgramID, "reason", out.Reason)
		return &CascadeFailureError{ProgramID: term.ProgramID, Err: out.Reason}
	}
	return nil
}
