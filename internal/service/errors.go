package service

import (
	"errors"
)

// Domain errors, translated at the HTTP boundary into the response envelope.
var (
	ErrNotFound            = errors.New("not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrWrongPassword       = errors.New("wrong password")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrDuplicateViewing    = errors.New("viewing already registered")
	ErrAlreadyMarked       = errors.New("episode already marked as watched")
	ErrWrongContentType    = errors.New("episodes can only be marked on series")
	ErrRatingNotFound      = errors.New("rating not found")
	ErrReviewNotFound      = errors.New("review not found")
	ErrEpisodeNotFound     = errors.New("episode not found")
	ErrUpstreamUnavailable = errors.New("metadata catalog unavailable")
)

// ValidationError marks malformed or out-of-range input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
