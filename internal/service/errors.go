package service

import "errors"

// ValidationError marks a request that is well-formed JSON but violates a
// business rule; handlers map it to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
