package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, match with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrValidation       = errors.New("validation failed")
	ErrUpstreamStorage  = errors.New("upstream storage error")
	ErrUnsupportedMedia = errors.New("unsupported media")
)

type (
	// NotFoundError names the missing resource ("folder", "file").
	NotFoundError struct {
		Resource string
	}

	// ValidationError is a user input failure recovered by re-rendering the form.
	ValidationError struct {
		Field   string
		Message string
	}

	// UnsupportedMediaError rejects an upload before any storage interaction.
	UnsupportedMediaError struct {
		Reason   string
		TooLarge bool
	}
)

func NotFound(resource string) error { return &NotFoundError{Resource: resource} }

func Invalid(field, message string) error { return &ValidationError{Field: field, Message: message} }

func (e *NotFoundError) Error() string {
	if e.Resource == "" {
		return "Resource not found"
	}
	return strings.ToUpper(e.Resource[:1]) + e.Resource[1:] + " not found"
}

func (e *ValidationError) Error() string       { return e.Message }
func (e *UnsupportedMediaError) Error() string { return e.Reason }

func (e *NotFoundError) Is(target error) bool         { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool       { return target == ErrValidation }
func (e *UnsupportedMediaError) Is(target error) bool { return target == ErrUnsupportedMedia }

// StorageError wraps a blob store failure so it matches ErrUpstreamStorage.
func StorageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUpstreamStorage, err)
}
