package config

import (
	"github.com/footprint-tools/cmdcon/internal/cli"
	"github.com/footprint-tools/cmdcon/internal/domain"
)

func list(_ []string, _ *cli.ParsedFlags, deps Deps) error {
	configMap, err := deps.Provider.GetAll()
	if err != nil {
		return err
	}

	for _, key := range domain.VisibleConfigKeys() {
		value, exists := configMap[key.Name]
		if !exists || (key.HideIfEmpty && value == "") {
			continue
		}
		_, _ = deps.Printf("%s=%s\n", key.Name, value)
	}

	return nil
}
