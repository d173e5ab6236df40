// Package catalogs holds the item sets the console ships with.
package catalogs

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/cmdcon/internal/domain"
	"github.com/footprint-tools/cmdcon/internal/items"
	"github.com/footprint-tools/cmdcon/internal/log"
	"github.com/footprint-tools/cmdcon/internal/registry"
	"github.com/footprint-tools/cmdcon/internal/usage"
)

const configGroup = "config"

// Config registers a text item per visible config key under config/, plus
// "config list" and "config reset <key>".
func Config(cat *registry.Catalog, p domain.ConfigProvider, logger domain.Logger) {
	logger = log.Component(logger, "config")

	for _, key := range domain.VisibleConfigKeys() {
		name := key.Name
		it := items.NewText(
			func() string {
				v, _ := p.Get(name)
				return v
			},
			func(v string) bool {
				if err := p.Set(name, v); err != nil {
					logger.Warn("set %s: %v", name, err)
					return false
				}
				logger.Info("set %s=%s", name, v)
				return true
			},
		)
		cat.Add(configGroup+"/"+name, it.WithHeader(key.Section).WithTooltip(key.Description))
	}

	cat.Add(configGroup+"/list", items.MustCommand(func() (string, error) {
		values, err := p.GetAll()
		if err != nil {
			return "", err
		}
		var b strings.Builder
		for _, key := range domain.VisibleConfigKeys() {
			v, ok := values[key.Name]
			if !ok || (key.HideIfEmpty && v == "") {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%s=%s", key.Name, v)
		}
		return b.String(), nil
	}).WithTooltip("Show every config value"))

	cat.Add(configGroup+"/reset", items.MustCommand(func(key string) error {
		if !domain.IsValidConfigKey(key) {
			return usage.Commandf("unknown config key '%s'", key)
		}
		if err := p.Unset(key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
		logger.Info("reset %s", key)
		return nil
	}).WithTooltip("Restore a key to its default"))
}
