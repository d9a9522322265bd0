package errors

import (
	"fmt"
)

// DuplicateComponentError reports an attempt to register a second component
// specification under an already-taken name.
type DuplicateComponentError struct {
	Name string
}

// NewDuplicateComponentError constructs a DuplicateComponentError.
func NewDuplicateComponentError(name string) error {
	return &DuplicateComponentError{Name: name}
}

func (e *DuplicateComponentError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("component %q is already registered", e.Name)
}

// DuplicateAttributeError reports a modifier whose name collides with an
// explicitly declared attribute on the same component.
type DuplicateAttributeError struct {
	Component string
	Attribute string
}

// NewDuplicateAttributeError constructs a DuplicateAttributeError.
func NewDuplicateAttributeError(component, attribute string) error {
	return &DuplicateAttributeError{Component: component, Attribute: attribute}
}

func (e *DuplicateAttributeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("component %q: modifier %q collides with a declared attribute", e.Component, e.Attribute)
}

// InvalidModifierValueError reports a caller-supplied attribute value outside
// the declared allowed set.
type InvalidModifierValueError struct {
	Component string
	Attribute string
	Value     string
	Allowed   []string
}

// NewInvalidModifierValueError constructs an InvalidModifierValueError.
func NewInvalidModifierValueError(component, attribute, value string, allowed []string) error {
	return &InvalidModifierValueError{Component: component, Attribute: attribute, Value: value, Allowed: allowed}
}

func (e *InvalidModifierValueError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("component %q: attribute %q has invalid value %q (allowed: %v)", e.Component, e.Attribute, e.Value, e.Allowed)
}

// MissingAttributeError reports a required attribute absent from a render call.
type MissingAttributeError struct {
	Component string
	Attribute string
}

// NewMissingAttributeError constructs a MissingAttributeError.
func NewMissingAttributeError(component, attribute string) error {
	return &MissingAttributeError{Component: component, Attribute: attribute}
}

func (e *MissingAttributeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("component %q: required attribute %q was not supplied", e.Component, e.Attribute)
}

// ParseError represents a YAML definition parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures specification or definition validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
