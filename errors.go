package jproperties

import "strings"

// ErrorCode defines string error
type ErrorCode string

// Error returns the error message.
func (e ErrorCode) Error() string {
	return string(e)
}

const (
	// ErrNonexistent indicates that the requested key is absent.
	ErrNonexistent = ErrorCode("nonexistent key")
	// ErrIncorrectType indicates that the value exists but cannot be
	// coerced to the requested type.
	ErrIncorrectType = ErrorCode("incorrect type")
)

// NonexistentError is returned when a key is not present in the properties.
type NonexistentError struct {
	Key string
}

func (e NonexistentError) Error() string {
	return "Key not found in properties: " + e.Key
}

func (e NonexistentError) Unwrap() error {
	return ErrNonexistent
}

// IncorrectTypeError is returned when a value cannot be coerced to the
// requested type. Cause holds the underlying parse error when one exists.
type IncorrectTypeError struct {
	Key      string
	Value    string
	TypeName string
	Cause    error
}

func (e IncorrectTypeError) Error() string {
	sb := new(strings.Builder)
	sb.WriteString("Value for key ")
	sb.WriteString(e.Key)
	sb.WriteString(" (")
	sb.WriteString(e.Value)
	sb.WriteString(") cannot be parsed as type ")
	sb.WriteString(e.TypeName)
	return sb.String()
}

func (e IncorrectTypeError) Unwrap() error {
	return e.Cause
}

// Is matches the ErrIncorrectType sentinel so that callers can branch with
// errors.Is without losing the underlying cause from the Unwrap chain.
func (e IncorrectTypeError) Is(target error) bool {
	return target == ErrIncorrectType
}

func notFound(key string) error {
	return NonexistentError{Key: key}
}

func incorrectType(cause error, key, value, typeName string) error {
	return IncorrectTypeError{
		Key:      key,
		Value:    value,
		TypeName: typeName,
		Cause:    cause,
	}
}
