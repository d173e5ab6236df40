package catalogs

import (
	"fmt"
	"math"
	"strings"

	"github.com/footprint-tools/cmdcon/internal/items"
	"github.com/footprint-tools/cmdcon/internal/parser"
	"github.com/footprint-tools/cmdcon/internal/registry"
	"github.com/footprint-tools/cmdcon/internal/scanner"
	"github.com/footprint-tools/cmdcon/internal/usage"
)

// Vec is a 2D vector, built from text as "(x y)".
type Vec struct {
	X, Y float64
}

func (v Vec) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

var difficulties = []Difficulty{Easy, Normal, Hard}

// Player is returned by "player spawn" and becomes the scope.
type Player struct {
	Name string
	HP   int
	Pos  Vec
}

func (p *Player) String() string {
	return fmt.Sprintf("%s hp=%d at %s", p.Name, p.HP, p.Pos)
}

func (p *Player) Heal(n int) int {
	p.HP = min(p.HP+n, 100)
	return p.HP
}

func (p *Player) Hurt(n int) (int, error) {
	if n < 0 {
		return p.HP, fmt.Errorf("damage must not be negative, got %d", n)
	}
	p.HP = max(p.HP-n, 0)
	return p.HP, nil
}

func (p *Player) MoveTo(to Vec) Vec {
	p.Pos = to
	return p.Pos
}

// Settings is registered by the tag scanner under settings/.
type Settings struct {
	Sensitivity float64       `cmd:"sensitivity" step:"0.25" help:"Mouse sensitivity" header:"Input"`
	InvertY     bool          `cmd:"invert_y" help:"Invert vertical look" header:"Input"`
	FOV         uint8         `cmd:"fov" step:"5" help:"Field of view in degrees" header:"Video"`
	Shadows     int           `cmd:"shadows" options:"off,low,high" header:"Video"`
	Motd        string        `cmd:"motd" multiline:"true" help:"Message of the day"`
	Save        func() string `cmd:"save" help:"Pretend to save settings" key:"ctrl+s"`
}

// DemoState is everything the demo catalog's items read and write.
type DemoState struct {
	Running    bool
	Fullscreen bool
	Volume     int
	Quality    int
	Difficulty Difficulty
	Nickname   string
	Player     *Player
	Settings   Settings
	Saves      int
}

func newDemoState() *DemoState {
	d := &DemoState{
		Volume:   50,
		Quality:  1,
		Nickname: "player",
		Settings: Settings{
			Sensitivity: 1,
			FOV:         90,
			Shadows:     1,
		},
	}
	d.Settings.Save = func() string {
		d.Saves++
		return fmt.Sprintf("settings saved (%d)", d.Saves)
	}
	return d
}

// RegisterDemoTypes teaches types the demo's enumeration and Vec constructor.
func RegisterDemoTypes(types *parser.Types) {
	parser.RegisterEnum(types, difficulties...)
	types.MustRegisterConstructor(func(x, y float64) Vec { return Vec{x, y} })
	types.MustRegisterConstructor(func(x float64) Vec { return Vec{x, x} })
}

// Demo registers a sample game console through cat and returns the state it
// drives. types must have been passed to RegisterDemoTypes.
func Demo(cat *registry.Catalog) (*DemoState, error) {
	d := newDemoState()

	cat.Add("game/start", items.NewButton(func() { d.Running = true }).
		WithTooltip("Start the game"))
	cat.Add("game/stop", items.NewButton(func() { d.Running = false }).
		WithTooltip("Stop the game"))
	cat.Add("game/reset", items.NewButton(func() { d.reset() }).
		WithTooltip("Restore every game value").WithKey("ctrl+r"))
	cat.Add("game/fullscreen", items.BoolToggle(&d.Fullscreen).
		WithHeader("Display").WithKey("alt+enter"))
	cat.Add("game/volume", d.volume().
		WithHeader("Audio").WithTooltip("Master volume, 0 to 100"))
	cat.Add("game/quality", items.IndexChoice(&d.Quality, "low", "medium", "high").
		WithHeader("Display"))
	cat.Add("game/difficulty", items.MustCommand(func(v Difficulty) Difficulty {
		d.Difficulty = v
		return v
	}).WithGetter(func() any { return d.Difficulty }))

	cat.Add("player/name", items.StringText(&d.Nickname).
		WithTooltip("Name used by player spawn"))
	cat.Add("player/spawn", items.MustCommand(func() *Player {
		d.Player = &Player{Name: d.Nickname, HP: 100}
		return d.Player
	}).WithTooltip("Create a player and make it the scope"))
	cat.Add("player/teleport", items.MustCommand(func(to Vec) (Vec, error) {
		if d.Player == nil {
			return Vec{}, usage.NullObject("player")
		}
		return d.Player.MoveTo(to), nil
	}))

	cat.Add("vec/add", items.MustCommand(func(a, b Vec) Vec { return a.Add(b) }))
	cat.Add("vec/len", items.MustCommand(func(v Vec) float64 { return v.Len() }))

	cat.Add("say hello", items.MustCommand(func(name string) string {
		return "hello, " + name
	}))
	cat.Add("echo", items.MustCommand(func(text string) string { return text }))

	cat.Add("ask", items.MustCommand(func() *items.Item {
		return d.difficultyPrompt()
	}).WithTooltip("Prompt for a difficulty"))

	if _, err := scanner.Scan(cat, "settings", &d.Settings); err != nil {
		cat.RemoveAll()
		return nil, err
	}
	return d, nil
}

func (d *DemoState) reset() {
	fresh := newDemoState()
	fresh.Saves = d.Saves
	fresh.Settings.Save = d.Settings.Save
	*d = *fresh
}

// volume clamps writes to 0..100.
func (d *DemoState) volume() *items.Item {
	inner := items.IntNumber(&d.Volume, 5).Action.(*items.Number)
	clamp := func() { d.Volume = min(max(d.Volume, 0), 100) }

	return items.NewNumber(
		inner.Get,
		func(s string) bool {
			if !inner.Set(s) {
				return false
			}
			clamp()
			return true
		},
		func(dir int) {
			inner.Step(dir)
			clamp()
		},
	)
}

// difficultyPrompt is an unregistered choice returned by "ask"; the
// interpreter locks it until the next line picks an option.
func (d *DemoState) difficultyPrompt() *items.Item {
	names := make([]string, len(difficulties))
	for i, v := range difficulties {
		names[i] = v.String()
	}

	it := items.NewChoice(
		names,
		func() int { return int(d.Difficulty) },
		func(i int) { d.Difficulty = difficulties[i] },
	)
	it.Name = "difficulty"
	it.Tooltip = "pick one of " + strings.Join(names, ", ")
	return it
}
