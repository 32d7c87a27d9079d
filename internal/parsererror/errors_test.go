package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputError(t *testing.T) {
	err := NewInputError("empty message content")
	assert.Equal(t, "invalid message input: empty message content", err.Error())

	var inputErr *InputError
	assert.True(t, errors.As(error(err), &inputErr))
}

func TestProcessingError(t *testing.T) {
	cause := errors.New("tokenizer failed")
	err := NewProcessingError("analysis", cause)

	assert.Equal(t, "message parsing failed at analysis: tokenizer failed", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestExtractionError(t *testing.T) {
	withValue := &ExtractionError{Field: "amount", Value: "X6072", Reason: "masked account number"}
	assert.Equal(t, "failed to extract amount from 'X6072': masked account number", withValue.Error())

	withoutValue := &ExtractionError{Field: "date", Reason: "no recognizable format"}
	assert.Equal(t, "failed to extract date: no recognizable format", withoutValue.Error())
}
