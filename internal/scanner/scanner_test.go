package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdcon/internal/items"
	"github.com/footprint-tools/cmdcon/internal/registry"
)

type settings struct {
	Volume  int     `cmd:"audio/volume" step:"5" help:"Master volume" header:"Audio"`
	Muted   bool    `cmd:"audio/muted" key:"ctrl+m"`
	Gain    float32 `cmd:"audio/gain" step:"0.5"`
	Level   uint8   `cmd:"level"`
	Motd    string  `cmd:"motd" multiline:"true"`
	Mode    int     `cmd:"mode" options:"low, medium, high"`
	Reset   func()  `cmd:"reset"`
	Ignored string
	Skipped int `cmd:"-"`
}

func newSettings(resets *int) *settings {
	return &settings{
		Volume: 50,
		Level:  254,
		Reset:  func() { *resets++ },
	}
}

func TestFields(t *testing.T) {
	var n int
	fields, err := Fields(newSettings(&n))
	require.NoError(t, err)

	var paths []string
	for _, f := range fields {
		paths = append(paths, f.Path)
	}
	require.Equal(t, []string{"audio/volume", "audio/muted", "audio/gain", "level", "motd", "mode", "reset"}, paths)
	require.Equal(t, []string{"low", "medium", "high"}, fields[5].Options)
	require.True(t, fields[4].Multiline)
}

func TestFields_Rejects(t *testing.T) {
	_, err := Fields(settings{})
	require.Error(t, err)

	_, err = Fields((*settings)(nil))
	require.Error(t, err)

	type hidden struct {
		value int `cmd:"value"`
	}
	_, err = Fields(&hidden{})
	require.ErrorContains(t, err, "unexported")
}

func TestScan(t *testing.T) {
	var resets int
	s := newSettings(&resets)

	reg := registry.New(nil)
	cat := reg.NewCatalog("settings")

	added, err := Scan(cat, "settings/", s)
	require.NoError(t, err)
	require.Len(t, added, 7)

	volume := reg.Find("settings/audio/volume")
	require.NotNil(t, volume)
	require.Equal(t, items.KindNumber, volume.Kind())
	require.Equal(t, "Master volume", volume.Tooltip)
	require.Equal(t, "Audio", volume.Header)
	require.Equal(t, cat.ID, volume.Owner)

	num := volume.Action.(*items.Number)
	num.Step(1)
	require.Equal(t, 55, s.Volume)
	require.True(t, num.Set("0x10"))
	require.Equal(t, 16, s.Volume)
	require.False(t, num.Set("loud"))

	muted := reg.Find("settings/audio/muted")
	require.Equal(t, items.KindToggle, muted.Kind())
	require.Equal(t, "ctrl+m", muted.Key.String())
	muted.Action.(*items.Toggle).Set(true)
	require.True(t, s.Muted)

	gain := reg.Find("settings/audio/gain").Action.(*items.Number)
	gain.Step(-1)
	require.Equal(t, float32(-0.5), s.Gain)

	level := reg.Find("settings/level").Action.(*items.Number)
	level.Step(1)
	level.Step(1)
	require.Equal(t, uint8(255), s.Level, "stepping past the type's range is ignored")
	require.False(t, level.Set("256"))

	motd := reg.Find("settings/motd")
	require.True(t, motd.Action.(*items.Text).Multiline)
	require.True(t, motd.Action.(*items.Text).Set("hello"))
	require.Equal(t, "hello", s.Motd)

	mode := reg.Find("settings/mode").Action.(*items.Choice)
	mode.Set(2)
	require.Equal(t, 2, s.Mode)
	cur, ok := mode.Current()
	require.True(t, ok)
	require.Equal(t, "high", cur)

	reset := reg.Find("settings/reset").Action.(*items.Command)
	_, err = reset.Call(nil)
	require.NoError(t, err)
	require.Equal(t, 1, resets)

	require.Nil(t, reg.Find("settings/ignored"))
	require.Equal(t, 7, cat.RemoveAll())
	require.Nil(t, reg.FindGroup("settings"))
}

func TestScan_NothingRegisteredOnError(t *testing.T) {
	type bad struct {
		Name string   `cmd:"name"`
		Tags []string `cmd:"tags"`
	}

	reg := registry.New(nil)
	_, err := Scan(reg.NewCatalog("bad"), "", &bad{})
	require.ErrorContains(t, err, "unsupported field type")
	require.Nil(t, reg.Find("name"))
}

func TestScan_BadTags(t *testing.T) {
	reg := registry.New(nil)

	type badKey struct {
		On bool `cmd:"on" key:"hyper+x"`
	}
	_, err := Scan(reg.NewCatalog("k"), "", &badKey{})
	require.Error(t, err)

	type badOptions struct {
		Mode string `cmd:"mode" options:"a,b"`
	}
	_, err = Scan(reg.NewCatalog("o"), "", &badOptions{})
	require.ErrorContains(t, err, "options need an int field")

	type nilFunc struct {
		Run func() `cmd:"run"`
	}
	_, err = Scan(reg.NewCatalog("f"), "", &nilFunc{})
	require.ErrorContains(t, err, "nil")
}
