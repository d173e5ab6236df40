package config

import (
	"github.com/footprint-tools/cmdcon/internal/cli"
	"github.com/footprint-tools/cmdcon/internal/domain"
	"github.com/footprint-tools/cmdcon/internal/usage"
)

func get(args []string, _ *cli.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]
	if !domain.IsValidConfigKey(key) {
		return invalidKey(key)
	}

	value, _ := deps.Provider.Get(key)
	_, _ = deps.Println(value)
	return nil
}

func invalidKey(key string) error {
	return usage.Commandf("unknown config key '%s'. Run 'cmdcon config list' to see keys", key)
}
