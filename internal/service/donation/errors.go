package donation

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDonationID     = errors.New("invalid donation id")
	ErrInvalidActorID        = errors.New("invalid actor id")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrIllegalTransition     = errors.New("illegal transition")

	ErrDonationNotFound  = errors.New("donation not found")
	ErrRequesterNotFound = errors.New("requester not found")
	ErrCourierNotFound   = errors.New("courier not found")
	ErrIneligibleCourier = errors.New("ineligible courier")
	ErrNoDropPoints      = errors.New("no drop points configured")

	// ErrConflictOrNotFound means the conditional write matched zero
	// rows. Wrong id and lost race are indistinguishable here on
	// purpose; callers may refetch state and decide whether the desired
	// outcome already happened, but must not resubmit blindly.
	ErrConflictOrNotFound = errors.New("conflict or not found")
)
