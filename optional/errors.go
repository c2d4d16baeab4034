// © 2026 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package optional

const (
	CodeNoValue = "T0001"
)

// AccessError is the error type reported for invalid accesses to container
// values. Errors are matched by identity so the exported Err values in this
// package can be used with errors.Is.
type AccessError struct {
	code    string
	message string
}

func (e *AccessError) Error() string {
	return e.code + ": " + e.message
}

func (e *AccessError) Code() string {
	return e.code
}

func (e *AccessError) Message() string {
	return e.message
}

// ErrNoValue is returned when a checked accessor is called on an empty
// container.
var ErrNoValue = &AccessError{code: CodeNoValue, message: "no value present"}
