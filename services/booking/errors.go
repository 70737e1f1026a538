package booking

import "fmt"

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSessionError(msg string) error {
	return &BookingError{
		Code:    "sessionError",
		Message: msg,
	}
}

func NewValidationError(msg string) error {
	return &BookingError{
		Code:    "validationError",
		Message: msg,
	}
}
