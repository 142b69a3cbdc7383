package eui64

import (
	"errors"
	"fmt"
)

// Kinds of errors returned by parsing and conversion. Errors returned by this
// package wrap exactly one of these, and can be checked using errors.Is.
var (
	// Parse errors.
	ErrInvalidLength    = errors.New("invalid length")
	ErrInvalidCharacter = errors.New("contains invalid characters")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrOverflow         = errors.New("field value is too large")

	// Conversion errors.
	ErrInvalidExtensionIdentifier = errors.New("invalid extension identifier")
	ErrInvalidInterfaceIdentifier = errors.New("invalid interface identifier")
	ErrNotUnicastLinkLocal        = errors.New("not a unicast link-local address")
)

// Address forms reported in ParseError.Type.
const (
	typeEUI48 = "EUI-48"
	typeEUI64 = "EUI-64"
	typeIPv6  = "IPv6"
)

// A ParseError records a failure to parse an address from its textual or
// binary form.
type ParseError struct {
	// Type is the address form which was expected: "EUI-48", "EUI-64", or
	// "IPv6".
	Type string

	// Input is the original input.
	Input string

	// Err wraps one of the parse error kinds.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("eui64: invalid %s address %q: %v", e.Type, e.Input, e.Err)
}

// Unwrap returns the underlying error kind.
func (e *ParseError) Unwrap() error { return e.Err }

// A ConvertError records a failure to convert between address forms.
type ConvertError struct {
	// Value is the EUI64 or LinkLocal which could not be converted.
	Value fmt.Stringer

	// Err wraps one of the conversion error kinds.
	Err error
}

// Error implements error.
func (e *ConvertError) Error() string {
	return fmt.Sprintf("eui64: cannot convert %s: %v", e.Value, e.Err)
}

// Unwrap returns the underlying error kind.
func (e *ConvertError) Unwrap() error { return e.Err }
