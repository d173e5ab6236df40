package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrUnknownCommand

	// Coercion failures: a token could not be converted to the required type.
	ErrBadBool
	ErrBadEnum
	ErrBadNumber
	ErrNoConstructor
	ErrArityMismatch

	// ErrCommand is a user-facing failure signalled by a registered command.
	ErrCommand
)

// Exit codes (script mode):
//
//	Exit 1: command and lookup errors
//	  - Unknown errors
//	  - Unknown command
//	  - Command failures
//
//	Exit 2: user input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Any coercion failure
var exitCodes = map[ErrorKind]int{
	ErrUnknown:         1,
	ErrInvalidFlag:     2,
	ErrMissingArgument: 2,
	ErrUnknownCommand:  1,
	ErrBadBool:         2,
	ErrBadEnum:         2,
	ErrBadNumber:       2,
	ErrNoConstructor:   2,
	ErrArityMismatch:   2,
	ErrCommand:         1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // explicit override, computed from Kind if zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// IsCoercion reports whether the kind is one of the coercion sub-kinds.
func (k ErrorKind) IsCoercion() bool {
	switch k {
	case ErrBadBool, ErrBadEnum, ErrBadNumber, ErrNoConstructor, ErrArityMismatch:
		return true
	}
	return false
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var ue *Error
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// IsCoercion reports whether err carries a coercion failure.
func IsCoercion(err error) bool {
	ue, ok := As(err)
	return ok && ue.Kind.IsCoercion()
}

// IsCommand reports whether err carries a user-facing command failure.
func IsCommand(err error) bool {
	ue, ok := As(err)
	return ok && ue.Kind == ErrCommand
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
