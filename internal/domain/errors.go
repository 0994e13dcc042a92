package domain

import "errors"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// ToolUnavailableErr represents a call to a tool that is disabled, hidden or
// unknown at dispatch time.
type ToolUnavailableErr struct {
	domainErr
}

// NewToolUnavailableErr creates a new ToolUnavailableErr with the given message.
func NewToolUnavailableErr(message string) *ToolUnavailableErr {
	return &ToolUnavailableErr{
		domainErr: domainErr{message: message},
	}
}

// ToolExhaustedErr represents a repeated call to a one-time tool already used
// in the current turn.
type ToolExhaustedErr struct {
	domainErr
}

// NewToolExhaustedErr creates a new ToolExhaustedErr with the given message.
func NewToolExhaustedErr(message string) *ToolExhaustedErr {
	return &ToolExhaustedErr{
		domainErr: domainErr{message: message},
	}
}

// ExecutionErr represents a tool execution that started and failed.
type ExecutionErr struct {
	domainErr
}

// NewExecutionErr creates a new ExecutionErr with the given message.
func NewExecutionErr(message string) *ExecutionErr {
	return &ExecutionErr{
		domainErr: domainErr{message: message},
	}
}

// ErrStreamClosed is returned by ChunkStream.Emit after the consumer closed
// the stream.
var ErrStreamClosed = errors.New("chunk stream closed")
