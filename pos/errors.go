package pos

import "errors"

// ValidationError reports a precondition the user must fix before the
// operation can run: a duplicate category name, an empty cart at checkout.
// Everything else that merely references an unknown id is a silent no-op.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// IsValidation reports whether err is a user-facing validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
