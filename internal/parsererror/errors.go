// Package parsererror defines the error types returned by message parsing.
package parsererror

import "fmt"

// InputError reports unusable input, such as an empty message.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid message input: %s", e.Reason)
}

// ProcessingError wraps an unexpected failure inside the parsing pipeline.
type ProcessingError struct {
	Stage string
	Err   error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("message parsing failed at %s: %v", e.Stage, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// ExtractionError reports a field that could not be extracted when it was
// required to be present.
type ExtractionError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ExtractionError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("failed to extract %s from '%s': %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("failed to extract %s: %s", e.Field, e.Reason)
}

// NewInputError builds an InputError with the given reason.
func NewInputError(reason string) *InputError {
	return &InputError{Reason: reason}
}

// NewProcessingError wraps err with the pipeline stage it occurred in.
func NewProcessingError(stage string, err error) *ProcessingError {
	return &ProcessingError{Stage: stage, Err: err}
}
