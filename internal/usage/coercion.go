package usage

import (
	"fmt"
	"strings"
)

// BadBool is returned when a token is not one of the accepted boolean spellings.
func BadBool(token string) *Error {
	return &Error{
		Kind:    ErrBadBool,
		Message: fmt.Sprintf("'%s' is not a boolean (use true/false, yes/no, y/n, 1/0, on/off)", token),
	}
}

// BadEnum is returned when a token names no member of an enumeration.
func BadEnum(token, typeName string, valid []string) *Error {
	return &Error{
		Kind:    ErrBadEnum,
		Message: fmt.Sprintf("'%s' is not a valid %s. Valid values: %s", token, typeName, strings.Join(valid, ", ")),
	}
}

// BadNumber is returned when a token does not parse as the required numeric type.
func BadNumber(token, typeName string, err error) *Error {
	return &Error{
		Kind:    ErrBadNumber,
		Message: fmt.Sprintf("'%s' is not a valid %s: %v", token, typeName, err),
	}
}

// NoConstructor is returned when no registered constructor of typeName
// accepts the given number of arguments.
func NoConstructor(typeName string, count int, token string) *Error {
	return &Error{
		Kind:    ErrNoConstructor,
		Message: fmt.Sprintf("no matching constructor for %s taking %d argument(s) from '%s'", typeName, count, token),
	}
}

// ArityMismatch is returned when the number of argument tokens does not match
// the number of parameters.
func ArityMismatch(expected, received int) *Error {
	return &Error{
		Kind: ErrArityMismatch,
		Message: fmt.Sprintf(
			"expected %d argument(s), received %d. Separate arguments with spaces or commas and group composite values in parentheses, e.g. (1 2 3)",
			expected, received),
	}
}
