package services

// ValidationError rejects a submission before it reaches the store. The
// message is safe to show to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
