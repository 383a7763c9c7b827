package domain

// ValidationError marks a user-correctable input problem. Handlers render
// the message inline instead of treating it as a server failure.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}
