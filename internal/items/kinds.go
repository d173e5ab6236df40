package items

import (
	"strconv"

	"github.com/footprint-tools/cmdcon/internal/parser"
)

// Button runs an action and has no value.
type Button struct {
	Invoke func()
}

// Toggle is a boolean value. Either closure may be nil.
type Toggle struct {
	Get func() bool
	Set func(bool)
}

// Text is a string value. Set reports whether the value was accepted.
type Text struct {
	Get       func() string
	Set       func(string) bool
	Multiline bool
}

// Number is a numeric value exchanged as text. Step nudges the value by one
// step in the given direction (+1 or -1).
type Number struct {
	Get  func() string
	Set  func(string) bool
	Step func(direction int)
}

// Choice selects one of a fixed list of options by index.
type Choice struct {
	Options []string
	Get     func() int
	Set     func(int)
}

func (*Button) Kind() Kind  { return KindButton }
func (*Toggle) Kind() Kind  { return KindToggle }
func (*Text) Kind() Kind    { return KindText }
func (*Number) Kind() Kind  { return KindNumber }
func (*Choice) Kind() Kind  { return KindChoice }
func (*Command) Kind() Kind { return KindCommand }

func (*Button) action()  {}
func (*Toggle) action()  {}
func (*Text) action()    {}
func (*Number) action()  {}
func (*Choice) action()  {}
func (*Command) action() {}

// Current returns the name of the selected option.
func (c *Choice) Current() (string, bool) {
	if c.Get == nil {
		return "", false
	}
	i := c.Get()
	if i < 0 || i >= len(c.Options) {
		return "", false
	}
	return c.Options[i], true
}

// NewButton creates a button item.
func NewButton(invoke func()) *Item {
	return newItem(&Button{Invoke: invoke})
}

// NewToggle creates a toggle item from accessor closures.
func NewToggle(get func() bool, set func(bool)) *Item {
	return newItem(&Toggle{Get: get, Set: set})
}

// NewText creates a text item from accessor closures.
func NewText(get func() string, set func(string) bool) *Item {
	return newItem(&Text{Get: get, Set: set})
}

// NewNumber creates a number item from accessor closures.
func NewNumber(get func() string, set func(string) bool, step func(int)) *Item {
	return newItem(&Number{Get: get, Set: set, Step: step})
}

// NewChoice creates a choice item over options.
func NewChoice(options []string, get func() int, set func(int)) *Item {
	return newItem(&Choice{Options: options, Get: get, Set: set})
}

// BoolToggle binds a toggle to a bool variable.
func BoolToggle(p *bool) *Item {
	return NewToggle(
		func() bool { return *p },
		func(v bool) { *p = v },
	)
}

// StringText binds a text item to a string variable.
func StringText(p *string) *Item {
	return NewText(
		func() string { return *p },
		func(v string) bool { *p = v; return true },
	)
}

// IntNumber binds a number item to an int variable.
func IntNumber(p *int, step int) *Item {
	return NewNumber(
		func() string { return strconv.Itoa(*p) },
		func(s string) bool {
			n, err := parser.ParseInt(s, strconv.IntSize)
			if err != nil {
				return false
			}
			*p = int(n)
			return true
		},
		func(dir int) { *p += dir * step },
	)
}

// FloatNumber binds a number item to a float64 variable.
func FloatNumber(p *float64, step float64) *Item {
	return NewNumber(
		func() string { return strconv.FormatFloat(*p, 'g', -1, 64) },
		func(s string) bool {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return false
			}
			*p = f
			return true
		},
		func(dir int) { *p += float64(dir) * step },
	)
}

// IndexChoice binds a choice item to an int index variable.
func IndexChoice(p *int, options ...string) *Item {
	return NewChoice(
		options,
		func() int { return *p },
		func(i int) { *p = i },
	)
}
