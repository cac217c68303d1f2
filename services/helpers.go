package services

import "fmt"

// The wrappers below tie a narrow sentinel to its error kind, so both
// errors.Is(err, ErrValidationFailed) and errors.Is(err, ErrTeamNameRequired)
// hold on the result.

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidationFailed, err)
}

func unknownReferenceError(err error) error {
	return fmt.Errorf("%w: %w", ErrUnknownReference, err)
}

func transitionError(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidTransition, err)
}
