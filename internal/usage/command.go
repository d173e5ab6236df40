package usage

import "fmt"

// Command builds the error a registered command returns to report a
// user-facing failure. The interpreter renders it as a warning.
func Command(msg string) *Error {
	return &Error{Kind: ErrCommand, Message: msg}
}

// Commandf is Command with formatting.
func Commandf(format string, args ...any) *Error {
	return &Error{Kind: ErrCommand, Message: fmt.Sprintf(format, args...)}
}

// NullObject is returned when a command needs an object and got nothing.
func NullObject(what string) *Error {
	return Commandf("%s is null", what)
}
