package services

import "errors"

// Kind classifies a rejected submission.
type Kind string

const (
	KindInvalidInput     Kind = "invalid_input"
	KindPasswordMismatch Kind = "password_mismatch"
	KindEmailTaken       Kind = "email_taken"
)

// ValidationError is a user-input rejection. It is reported to the caller and never retried.
type ValidationError struct {
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches any ValidationError of the same kind, so callers can compare against the sentinels below.
func (e *ValidationError) Is(target error) bool {
	var other *ValidationError
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

var (
	ErrInvalidInput     = &ValidationError{Kind: KindInvalidInput, Message: "Invalid submission"}
	ErrPasswordMismatch = &ValidationError{Kind: KindPasswordMismatch, Message: "Passwords do not match"}
	ErrEmailTaken       = &ValidationError{Kind: KindEmailTaken, Message: "Email already in use"}
)

func invalidInput(message string) error {
	return &ValidationError{Kind: KindInvalidInput, Message: message}
}
