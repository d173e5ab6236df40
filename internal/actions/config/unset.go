package config

import (
	"github.com/footprint-tools/cmdcon/internal/cli"
	"github.com/footprint-tools/cmdcon/internal/domain"
	"github.com/footprint-tools/cmdcon/internal/log"
	"github.com/footprint-tools/cmdcon/internal/usage"
)

func unset(args []string, _ *cli.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]
	if !domain.IsValidConfigKey(key) {
		return invalidKey(key)
	}

	if err := deps.Provider.Unset(key); err != nil {
		return err
	}

	log.Info("config: unset %s", key)

	value, _ := deps.Provider.Get(key)
	_, _ = deps.Printf("unset %s (now %q)\n", key, value)
	return nil
}
