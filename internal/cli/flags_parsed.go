package cli

import (
	"strconv"
	"strings"

	"github.com/footprint-tools/cmdcon/internal/usage"
)

// ParsedFlags provides typed access to command-line flags. Flags are stored
// in canonical long form: "--name" for switches, "--name=value" otherwise.
type ParsedFlags struct {
	raw []string
}

// NewParsedFlags creates a ParsedFlags from a slice of flag strings.
func NewParsedFlags(flags []string) *ParsedFlags {
	return &ParsedFlags{raw: flags}
}

// Parse splits args into flags and positional commands. Short aliases are
// expanded, and value flags accept both --flag=value and --flag value.
// Everything after "--" is positional.
func Parse(args []string) (*ParsedFlags, []string, error) {
	var raw, commands []string

	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			commands = append(commands, args[i+1:]...)
			break
		}
		if len(a) < 2 || a[0] != '-' {
			commands = append(commands, a)
			continue
		}

		name, value, hasValue := strings.Cut(a, "=")
		d, ok := LookupFlag(name)
		if !ok {
			return nil, nil, usage.InvalidFlag(name)
		}

		if d.Value == "" {
			if hasValue {
				return nil, nil, usage.InvalidFlag(a)
			}
			raw = append(raw, d.Name)
			continue
		}

		if !hasValue {
			if i+1 >= len(args) {
				return nil, nil, usage.MissingArgument(d.Name + " <" + d.Value + ">")
			}
			i++
			value = args[i]
		}
		raw = append(raw, d.Name+"="+value)
	}

	return NewParsedFlags(raw), commands, nil
}

// Raw returns the underlying flag strings.
func (f *ParsedFlags) Raw() []string {
	return f.raw
}

// Has returns true if the flag is present (for boolean flags).
func (f *ParsedFlags) Has(name string) bool {
	for _, flag := range f.raw {
		if flag == name {
			return true
		}
	}
	return false
}

// String returns the last value of a flag, or defaultVal if not present.
func (f *ParsedFlags) String(name, defaultVal string) string {
	values := f.Strings(name)
	if len(values) == 0 {
		return defaultVal
	}
	return values[len(values)-1]
}

// Strings returns every value given for a repeatable flag, in order.
func (f *ParsedFlags) Strings(name string) []string {
	prefix := name + "="
	var values []string
	for _, flag := range f.raw {
		if v, ok := strings.CutPrefix(flag, prefix); ok {
			values = append(values, v)
		}
	}
	return values
}

// Int returns the integer value of a flag, or defaultVal if not present or invalid.
func (f *ParsedFlags) Int(name string, defaultVal int) int {
	str := f.String(name, "")
	if str == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}
	return n
}
