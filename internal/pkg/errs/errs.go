package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Thin wrapper so the rest of the codebase never imports the errors library
// directly.

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches a sentinel to err so callers can match it with errors.Is
// while keeping the original cause and stack.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
