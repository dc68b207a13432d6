package domain

// ValidationError marks a request the caller can fix: a bad special-order
// date, an unknown status value, an illegal transition. Handlers map it to
// a 400; everything else stays an infrastructure fault.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}
