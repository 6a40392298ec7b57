package domain

import "fmt"

// UnboundFieldError is returned when an operation reads a field the subject's
// type never defines, such as describing a bare Animal.
type UnboundFieldError struct {
	Type  string
	Field string
}

func (e *UnboundFieldError) Error() string {
	return fmt.Sprintf("%s has no field %q", e.Type, e.Field)
}

// CapabilityMismatchError is returned when a subject lacks a required capability.
type CapabilityMismatchError struct {
	Type       string
	Capability string
}

func (e *CapabilityMismatchError) Error() string {
	return fmt.Sprintf("%s does not implement %s", e.Type, e.Capability)
}
