// Package actions holds the one-shot subcommands of the cmdcon binary.
package actions

import "github.com/footprint-tools/cmdcon/internal/cli"

func ShowVersion(args []string, flags *cli.ParsedFlags) error {
	return showVersion(args, flags, defaultDeps())
}

func showVersion(_ []string, _ *cli.ParsedFlags, deps actionDependencies) error {
	_, _ = deps.Printf("cmdcon version %v\n", deps.Version())
	return nil
}
