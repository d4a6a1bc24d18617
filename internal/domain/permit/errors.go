package permit

import "errors"

// Permit rejection reasons are surfaced verbatim to the requester; a rejected
// request is never persisted.
var (
	ErrBelowMinimumDuration   = errors.New("permit duration is below the policy minimum")
	ErrExceedsMaximumDuration = errors.New("permit duration exceeds the policy maximum")
	ErrMonthlyQuotaExceeded   = errors.New("monthly permit quota exceeded")

	ErrPermitNotFound     = errors.New("leave permit request not found")
	ErrAdjustmentNotFound = errors.New("attendance adjustment request not found")
	ErrAlreadyProcessed   = errors.New("request has already been approved or rejected")
)
