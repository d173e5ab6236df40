package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is reported once every command source has declined the input.
func UnknownCommand(input string, suggestions ...string) *Error {
	msg := fmt.Sprintf("undefined command '%s'. Type 'help' to list commands.", input)
	if len(suggestions) > 0 {
		msg += "\n\nDid you mean one of these?\n\t" + strings.Join(suggestions, "\n\t")
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}
