package catalogs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdcon/internal/config"
	"github.com/footprint-tools/cmdcon/internal/dispatchers"
	"github.com/footprint-tools/cmdcon/internal/domain"
	"github.com/footprint-tools/cmdcon/internal/registry"
)

func newConfigInterpreter(t *testing.T) (*dispatchers.Interpreter, *registry.Registry, *config.MapProvider, *recorder) {
	t.Helper()

	out := &recorder{}
	in := dispatchers.New(dispatchers.Options{Output: out})
	reg := registry.New(nil)
	in.AddRegistry("config", reg)

	p := config.NewMapProvider(map[string]string{"hint_limit": "20"})
	Config(reg.NewCatalog("config"), p, nil)
	return in, reg, p, out
}

func TestConfig_RegistersVisibleKeys(t *testing.T) {
	_, reg, _, _ := newConfigInterpreter(t)

	for _, key := range domain.VisibleConfigKeys() {
		it := reg.Find("config/" + key.Name)
		require.NotNil(t, it, key.Name)
		require.Equal(t, key.Section, it.Header)
		require.Equal(t, key.Description, it.Tooltip)
	}
	require.NotNil(t, reg.Find("config/list"))
	require.NotNil(t, reg.Find("config/reset"))
}

func TestConfig_GetSetReset(t *testing.T) {
	in, _, p, out := newConfigInterpreter(t)

	got, ok := in.Run("config hint_limit")
	require.True(t, ok)
	require.Equal(t, "20", got)

	got, ok = in.Run("config theme ocean-dark")
	require.True(t, ok)
	require.Equal(t, "ocean-dark", got)
	v, _ := p.Get("theme")
	require.Equal(t, "ocean-dark", v)

	_, ok = in.Run("config reset theme")
	require.True(t, ok)
	v, _ = p.Get("theme")
	require.Equal(t, "default", v)

	_, ok = in.Run("config reset nope")
	require.False(t, ok)
	require.Contains(t, out.warns[len(out.warns)-1], "unknown config key 'nope'")
}

func TestConfig_List(t *testing.T) {
	in, _, _, _ := newConfigInterpreter(t)

	got, ok := in.Run("config list")
	require.True(t, ok)

	list, isString := got.(string)
	require.True(t, isString)
	require.Contains(t, list, "hint_limit=20\n")
	require.Contains(t, list, "theme=default")
	require.NotContains(t, list, "color_success")
}

type rejectingProvider struct {
	*config.MapProvider
}

func (rejectingProvider) Set(key, value string) error {
	return errors.New("read-only")
}

func TestConfig_RejectedSet(t *testing.T) {
	out := &recorder{}
	in := dispatchers.New(dispatchers.Options{Output: out})
	reg := registry.New(nil)
	in.AddRegistry("config", reg)
	Config(reg.NewCatalog("config"), rejectingProvider{config.NewMapProvider(nil)}, nil)

	_, ok := in.Run("config theme mono")
	require.False(t, ok)
	require.Contains(t, out.warns[len(out.warns)-1], "value rejected by config/theme")
}
