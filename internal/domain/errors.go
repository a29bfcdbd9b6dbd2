package domain

import "errors"

var (
	// ErrInvalidState is returned when a selection is attempted against an
	// empty template collection.
	ErrInvalidState = errors.New("invalid state")

	// ErrIndexOutOfRange is returned by TemplateStore.At for positions
	// outside [0, Len()).
	ErrIndexOutOfRange = errors.New("template index out of range")

	// ErrMalformedTemplate is returned when a template has an unterminated
	// placeholder.
	ErrMalformedTemplate = errors.New("malformed template")

	// ErrUnknownLogLevel is returned for an unsupported log level.
	ErrUnknownLogLevel = errors.New("unknown log level")

	// ErrUnknownFormat is returned for an unsupported output format.
	ErrUnknownFormat = errors.New("unknown output format")
)
