// Package items defines the entries that can be registered in a command
// registry: buttons, toggles, text fields, numbers, choices and typed commands.
//
// An Item carries the metadata shared by every entry and exactly one Action,
// which is one of *Button, *Toggle, *Text, *Number, *Choice or *Command. The
// set is closed: code that runs or describes items switches over the Action's
// concrete type.
package items

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies the variant of an item's Action.
type Kind int

const (
	KindButton Kind = iota
	KindToggle
	KindText
	KindNumber
	KindChoice
	KindCommand
)

func (k Kind) String() string {
	switch k {
	case KindButton:
		return "Button"
	case KindToggle:
		return "Toggle"
	case KindText:
		return "Text"
	case KindNumber:
		return "Number"
	case KindChoice:
		return "Choice"
	case KindCommand:
		return "Command"
	default:
		return "Unknown"
	}
}

// Action is the variant part of an Item.
type Action interface {
	Kind() Kind
	action()
}

// Item is one registered, invocable/readable/writable entry.
type Item struct {
	// Name and Path are assigned by the registry on insertion.
	Name string
	Path string

	// Header is a display grouping label; it is not part of the path.
	Header  string
	Tooltip string
	Key     *KeyBinding

	// Owner is the ID of the catalog that registered the item, or uuid.Nil.
	// Only used to scope bulk removal.
	Owner uuid.UUID

	// OnRemove runs once when the item is evicted or removed.
	OnRemove func()

	Action Action
}

// Kind returns the variant of the item's action.
func (it *Item) Kind() Kind {
	return it.Action.Kind()
}

// AcceptsArgs reports whether the item takes argument text after its name.
func (it *Item) AcceptsArgs() bool {
	switch a := it.Action.(type) {
	case *Button:
		return false
	case *Command:
		return len(a.Params()) > 0
	default:
		return true
	}
}

// WithTooltip sets the tooltip and returns the item.
func (it *Item) WithTooltip(tooltip string) *Item {
	it.Tooltip = tooltip
	return it
}

// WithHeader sets the display header and returns the item.
func (it *Item) WithHeader(header string) *Item {
	it.Header = header
	return it
}

// WithKey binds a key and returns the item. It panics on a malformed binding,
// which is a programming error in registration code.
func (it *Item) WithKey(binding string) *Item {
	kb, err := ParseKeyBinding(binding)
	if err != nil {
		panic(err)
	}
	it.Key = &kb
	return it
}

// Describe returns a one-line summary of the item's kind and current value.
func (it *Item) Describe() string {
	switch a := it.Action.(type) {
	case *Button:
		return "Button"
	case *Toggle:
		if a.Get == nil {
			return "Toggle"
		}
		if a.Get() {
			return "Toggle (on)"
		}
		return "Toggle (off)"
	case *Text:
		if a.Get == nil {
			return "Text"
		}
		return fmt.Sprintf("Text = %q", a.Get())
	case *Number:
		if a.Get == nil {
			return "Number"
		}
		return "Number = " + a.Get()
	case *Choice:
		desc := "Choice [" + strings.Join(a.Options, "|") + "]"
		if a.Get != nil {
			if name, ok := a.Current(); ok {
				desc += " = " + name
			}
		}
		return desc
	case *Command:
		if sig := a.Signature(); sig != "" {
			return "Command " + sig
		}
		return "Command"
	}
	return "Unknown"
}

// String implements fmt.Stringer.
func (it *Item) String() string {
	name := it.Path
	if name == "" {
		name = it.Name
	}
	return name + ": " + it.Describe()
}

func newItem(a Action) *Item {
	return &Item{Action: a}
}
