package optparse

import "fmt"

// ErrorType represents hard error categories for registry and query
// operations. Soft parse diagnostics are not errors; they go to the
// warning writer (see Parser.Parse).
type ErrorType string

const (
	ErrorTypeDuplicateOption ErrorType = "duplicate_option"
	ErrorTypeUnknownOption   ErrorType = "unknown_option"
	ErrorTypeNotParsed       ErrorType = "not_parsed"
)

// OptError is the error type returned by registration and query calls.
// Callers discriminate with errors.As and the Type field.
type OptError struct {
	Type    ErrorType
	Message string
	Name    string // option name involved, when applicable
}

func (e *OptError) Error() string {
	return e.Message
}

func newDuplicateOptionError(name string) *OptError {
	return &OptError{
		Type:    ErrorTypeDuplicateOption,
		Message: fmt.Sprintf("duplicate option %s", name),
		Name:    name,
	}
}

func newUnknownOptionError(name string) *OptError {
	return &OptError{
		Type:    ErrorTypeUnknownOption,
		Message: fmt.Sprintf("no option with name '%s'", name),
		Name:    name,
	}
}

func newNotParsedError() *OptError {
	return &OptError{
		Type:    ErrorTypeNotParsed,
		Message: "options not parsed",
	}
}
