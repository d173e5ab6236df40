// Package config implements the "cmdcon config" subcommand.
package config

import (
	"github.com/footprint-tools/cmdcon/internal/cli"
	"github.com/footprint-tools/cmdcon/internal/usage"
)

// Run dispatches "config <list|get|set|unset> ...".
func Run(args []string, flags *cli.ParsedFlags) error {
	return run(args, flags, DefaultDeps())
}

func run(args []string, flags *cli.ParsedFlags, deps Deps) error {
	if len(args) == 0 {
		return list(args, flags, deps)
	}

	verb, rest := args[0], args[1:]
	switch verb {
	case "list":
		return list(rest, flags, deps)
	case "get":
		return get(rest, flags, deps)
	case "set":
		return set(rest, flags, deps)
	case "unset":
		return unset(rest, flags, deps)
	}
	return usage.Commandf("unknown config action '%s'. Use list, get, set or unset", verb)
}
