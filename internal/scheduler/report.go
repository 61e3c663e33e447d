package scheduler

import (
	"time"

	"github.com/google/uuid"
)

type ItemError struct {
	LessonID uuid.UUID `json:"lesson_id"`
	Reason   string    `json:"reason"`
}

// RunReport is the per-tick summary for operational monitoring. Skipped
// counts no-ops and lost guard races, which are expected under concurrency.
// CascadeFailures list lessons that published while their parent program
// write failed; those need operator attention since the next due scan will
// not revisit already-published lessons.
type RunReport struct {
	Timestamp       time.Time   `json:"timestamp"`
	Found           int         `json:"found"`
	Published       int         `json:"published"`
	Skipped         int         `json:"skipped"`
	Errors          []ItemError `json:"errors"`
	CascadeFailures []ItemError `json:"cascade_failures"`
}
