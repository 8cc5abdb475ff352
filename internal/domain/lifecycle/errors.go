package lifecycle

import "errors"

// Shared error vocabulary for the lifecycle engines. All of these are local,
// recoverable errors returned to the caller; none should crash the process.
var (
	// ErrInvalidTransition signals an illegal state change attempt (wrong role
	// for the current status, or a status the machine does not accept).
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrAlreadyFinalized signals a mutation attempt on a terminal state.
	ErrAlreadyFinalized = errors.New("already finalized")

	// ErrReasonRequired signals a rejection without the mandatory reason.
	ErrReasonRequired = errors.New("rejection reason required")

	// ErrDuplicatePayment signals that the milestone already has a completed
	// payment record. Must never be silently ignored.
	ErrDuplicatePayment = errors.New("duplicate payment")

	// ErrAmountMismatch signals a payment amount that differs from the
	// computed milestone amount.
	ErrAmountMismatch = errors.New("payment amount mismatch")

	// ErrMilestoneNotDue signals a payment attempt on a LOCKED milestone.
	ErrMilestoneNotDue = errors.New("milestone not due")

	// ErrNotInProgress signals a step-ordering violation: only the single
	// in_progress step of a phase may be completed.
	ErrNotInProgress = errors.New("step not in progress")

	// ErrUnknownStep signals a step id that does not exist in the phase.
	ErrUnknownStep = errors.New("unknown step")

	// ErrUnknownPhase signals a phase with no step template.
	ErrUnknownPhase = errors.New("unknown phase")
)
