package publish

import (
	"time"

	"github.com/coursewave/coursewave-backend/internal/types"
)

// Publication policy: pure decision logic over entity snapshots. Nothing in
// this file touches storage or the clock; callers pass both state and now in.

type DecisionKind int

const (
	DecideReject DecisionKind = iota
	DecideNoOp
	DecideApply
)

// Decision says whether a requested transition is legal and, when it is, what
// the conditional write must look like: the new field values plus the guard
// (ExpectedStatuses) the write is conditioned on.
type Decision struct {
	Kind             DecisionKind
	Reason           error
	NewStatus        string
	PublishAt        *time.Time
	PublishedAt      *time.Time
	ClearPublishAt   bool
	ClearPublishedAt bool
	ExpectedStatuses []string
	CascadeProgram   bool
}

func reject(reason error) Decision {
	return Decision{Kind: DecideReject, Reason: reason}
}

func noOp() Decision {
	return Decision{Kind: DecideNoOp}
}

// DecidePublishNow validates an immediate admin publish. Asset completeness
// is evaluated against the check taken at this attempt, never a cached one.
func DecidePublishNow(lesson *types.Lesson, check VariantCheck, now time.Time) Decision {
	if lesson == nil {
		return reject(ErrNotFound)
	}
	switch lesson.Status {
	case types.StatusPublished:
		return noOp()
	case types.StatusArchived:
		return reject(ErrLessonArchived)
	}
	if !check.Satisfied {
		return reject(&AssetsIncompleteError{Missing: check.Missing})
	}
	publishedAt := now
	return Decision{
		Kind:             DecideApply,
		NewStatus:        types.StatusPublished,
		PublishedAt:      &publishedAt,
		ClearPublishAt:   true,
		ExpectedStatuses: []string{types.StatusDraft, types.StatusScheduled},
		CascadeProgram:   true,
	}
}

// DecideSchedule validates scheduling for a future due time. Rescheduling an
// already scheduled lesson just moves its due time.
func DecideSchedule(lesson *types.Lesson, dueTime, now time.Time) Decision {
	if lesson == nil {
		return reject(ErrNotFound)
	}
	switch lesson.Status {
	case types.StatusArchived:
		return reject(ErrLessonArchived)
	case types.StatusPublished:
		return reject(ErrAlreadyPublished)
	}
	if !dueTime.After(now) {
		return reject(ErrInvalidSchedule)
	}
	due := dueTime
	return Decision{
		Kind:             DecideApply,
		NewStatus:        types.StatusScheduled,
		PublishAt:        &due,
		ClearPublishedAt: true,
		ExpectedStatuses: []string{types.StatusDraft, types.StatusScheduled},
	}
}

// DecideArchive is always permitted; archived is terminal until an admin
// explicitly moves the lesson back to draft.
func DecideArchive(lesson *types.Lesson) Decision {
	if lesson == nil {
		return reject(ErrNotFound)
	}
	if lesson.Status == types.StatusArchived {
		return noOp()
	}
	return Decision{
		Kind:             DecideApply,
		NewStatus:        types.StatusArchived,
		ClearPublishAt:   true,
		ClearPublishedAt: true,
		ExpectedStatuses: []string{types.StatusDraft, types.StatusScheduled, types.StatusPublished},
	}
}

// DecideCancelSchedule moves a scheduled lesson back to draft. It races the
// scheduler with no defined winner: if the due transition commits first the
// cancel observes a guard mismatch and the lesson stays published.
func DecideCancelSchedule(lesson *types.Lesson) Decision {
	if lesson == nil {
		return reject(ErrNotFound)
	}
	switch lesson.Status {
	case types.StatusDraft:
		return noOp()
	case types.StatusScheduled:
		return Decision{
			Kind:             DecideApply,
			NewStatus:        types.StatusDraft,
			ClearPublishAt:   true,
			ExpectedStatuses: []string{types.StatusScheduled},
		}
	}
	return reject(ErrNotScheduled)
}

// DecideProgramCascade publishes a draft program because one of its lessons
// published. Already published or archived programs are a no-op, never an
// error, and the scheduler never revokes a program's published status.
func DecideProgramCascade(program *types.Program, now time.Time) Decision {
	if program == nil {
		return reject(ErrNotFound)
	}
	if program.Status != types.StatusDraft {
		return noOp()
	}
	publishedAt := now
	if program.PublishedAt != nil {
		publishedAt = *program.PublishedAt
	}
	return Decision{
		Kind:             DecideApply,
		NewStatus:        types.StatusPublished,
		PublishedAt:      &publishedAt,
		ExpectedStatuses: []string{types.StatusDraft},
	}
}

// DecideDueTransition is the scheduler-path variant of DecidePublishNow: the
// source state must be exactly scheduled with a due time at or before now.
// A lesson raced into another state resolves to no-op, not an error.
func DecideDueTransition(lesson *types.Lesson, check VariantCheck, now time.Time) Decision {
	if lesson == nil {
		return noOp()
	}
	if lesson.Status != types.StatusScheduled {
		return noOp()
	}
	if lesson.PublishAt == nil || lesson.PublishAt.After(now) {
		return noOp()
	}
	if !check.Satisfied {
		return reject(&AssetsIncompleteError{Missing: check.Missing})
	}
	publishedAt := now
	return Decision{
		Kind:             DecideApply,
		NewStatus:        types.StatusPublished,
		PublishedAt:      &publishedAt,
		ClearPublishAt:   true,
		ExpectedStatuses: []string{types.StatusScheduled},
		CascadeProgram:   true,
	}
}
