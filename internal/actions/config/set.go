package config

import (
	"github.com/footprint-tools/cmdcon/internal/cli"
	"github.com/footprint-tools/cmdcon/internal/domain"
	"github.com/footprint-tools/cmdcon/internal/log"
	"github.com/footprint-tools/cmdcon/internal/usage"
)

func set(args []string, _ *cli.ParsedFlags, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("key value")
	}

	key := args[0]
	if !domain.IsValidConfigKey(key) {
		return invalidKey(key)
	}

	old, _ := deps.Provider.Get(key)
	value := args[1]

	if err := deps.Provider.Set(key, value); err != nil {
		return err
	}

	log.Info("config: set %s=%s", key, value)

	action := "updated"
	if old == value {
		action = "unchanged"
	}
	_, _ = deps.Printf("%s %s=%s\n", action, key, value)
	return nil
}
