package service

import "errors"

var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrFeeNotFound        = errors.New("fee not found")
	ErrDiscountNotFound   = errors.New("discount not found")

	// ErrAlreadySettled rejects payment against a fee whose status is paid.
	ErrAlreadySettled = errors.New("fee already settled")

	// ErrInvalidAmount rejects non-positive payments and overpayment.
	ErrInvalidAmount = errors.New("invalid payment amount")

	// ErrDuplicateCycle is the mapped unique-violation on
	// (enrollment, cycle key). The scheduler treats it as "already
	// exists, skip"; it is never surfaced to callers as a failure.
	ErrDuplicateCycle = errors.New("charge already exists for this cycle")
)

// ValidationError carries a short caller-facing message for malformed
// discount input (amount, kind, scope, month range).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func newValidationError(msg string) error { return &ValidationError{Msg: msg} }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
