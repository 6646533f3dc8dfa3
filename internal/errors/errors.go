package errors

// ValidationError rejects a booking request at the boundary. When it is
// returned no side effects have been performed.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// DependencyError wraps a failure of an external collaborator (ledger
// append or message dispatch). Steps completed before the failure are not
// rolled back and steps after it are not attempted.
type DependencyError struct {
	Step string
	Err  error
}

func (e *DependencyError) Error() string {
	return e.Step + ": " + e.Err.Error()
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError with the given reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}
