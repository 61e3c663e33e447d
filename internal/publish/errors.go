package publish

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound         = errors.New("entity not found")
	ErrInvalidSchedule  = errors.New("publish time must be strictly in the future")
	ErrConflict         = errors.New("concurrent modification detected")
	ErrLessonArchived   = errors.New("archived lesson must be moved back to draft first")
	ErrAlreadyPublished = errors.New("lesson is already published")
	ErrNotScheduled     = errors.New("lesson is not scheduled")
)

// AssetsIncompleteError reports which visual variants are missing for the
// lesson's primary language. The lesson stays in its prior state; remediation
// is uploading the variants and retrying.
type AssetsIncompleteError struct {
	Missing []string
}

func (e *AssetsIncompleteError) Error() string {
	return fmt.Sprintf("required asset variants missing: %s", strings.Join(e.Missing, ", "))
}

// CascadeFailureError means the lesson's own publish succeeded but the
// parent-program cascade write did not. The lesson stays published; the
// cascade is left for operator retry via the run report.
type CascadeFailureError struct {
	ProgramID uuid.UUID
	Err       error
}

func (e *CascadeFailureError) Error() string {
	return fmt.Sprintf("program %s cascade failed: %v", e.ProgramID, e.Err)
}

func (e *CascadeFailureError) Unwrap() error { return e.Err }
