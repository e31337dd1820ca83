package errors

import stdErrors "errors"

// As, Is, New and Join forward to the standard library so callers importing this
// package under the name errors keep the usual helpers.

func As(err error, target any) bool {
	return stdErrors.As(err, target)
}

func Is(err, target error) bool {
	return stdErrors.Is(err, target)
}

func New(text string) error {
	return stdErrors.New(text)
}

func Join(errs ...error) error {
	return stdErrors.Join(errs...)
}
