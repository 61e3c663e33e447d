package publish

import "errors"

type OutcomeCode string

const (
	OutcomePublished OutcomeCode = "published"
	OutcomeScheduled OutcomeCode = "scheduled"
	OutcomeArchived  OutcomeCode = "archived"
	OutcomeCanceled  OutcomeCode = "canceled"
	OutcomeNoOp      OutcomeCode = "noop"
	OutcomeConflict  OutcomeCode = "conflict"
	OutcomeRejected  OutcomeCode = "rejected"
	OutcomeNotFound  OutcomeCode = "not_found"
)

// Outcome is what every orchestrator operation reports back. Reason is set
// for rejections and conflicts. CascadeErr is set when the lesson's own write
// applied but the parent-program cascade failed afterwards.
type Outcome struct {
	Code            OutcomeCode `json:"code"`
	Reason          error       `json:"-"`
	MissingVariants []string    `json:"missing_variants,omitempty"`
	CascadeErr      error       `json:"-"`
}

func (o Outcome) Applied() bool {
	switch o.Code {
	case OutcomePublished, OutcomeScheduled, OutcomeArchived, OutcomeCanceled:
		return true
	}
	return false
}

func rejectionOutcome(reason error) Outcome {
	if errors.Is(reason, ErrNotFound) {
		return Outcome{Code: OutcomeNotFound, Reason: reason}
	}
	var incomplete *AssetsIncompleteError
	if errors.As(reason, &incomplete) {
		return Outcome{Code: OutcomeRejected, Reason: reason, MissingVariants: incomplete.Missing}
	}
	return Outcome{Code: OutcomeRejected, Reason: reason}
}
