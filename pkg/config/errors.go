package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound indicates configuration file was not found
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidYAML indicates YAML parsing failed
	ErrInvalidYAML = errors.New("invalid YAML syntax")

	// ErrValidationFailed indicates configuration validation failed
	ErrValidationFailed = errors.New("configuration validation failed")

	// ErrMissingRequiredField indicates a required field is missing
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidValue indicates a field has an invalid value
	ErrInvalidValue = errors.New("invalid field value")
)

// LoadError wraps file loading errors with the file name for context.
type LoadError struct {
	File string
	Err  error
}

// NewLoadError creates a LoadError.
func NewLoadError(file string, err error) *LoadError {
	return &LoadError{File: file, Err: err}
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// FieldError describes one invalid configuration field.
type FieldError struct {
	Path    string // e.g. "platform_rate_limits.instagram.create_post"
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}
