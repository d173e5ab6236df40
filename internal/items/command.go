package items

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/footprint-tools/cmdcon/internal/parser"
)

var errorType = reflect.TypeFor[error]()

// Command wraps a host function with typed parameters. Arguments are bound
// from text by the coercion engine before Call.
type Command struct {
	fn      reflect.Value
	params  []reflect.Type
	results resultShape

	// Getter, when set, is what a zero-argument invocation returns instead of
	// calling the function. Used for parameterized setters that can also be read.
	Getter func() any
}

type resultShape int

const (
	resultNone     resultShape = iota // ()
	resultValue                       // T
	resultErr                         // error
	resultValueErr                    // (T, error)
)

// NewCommand creates a command item from fn, which must be a non-variadic
// function returning nothing, T, error or (T, error).
func NewCommand(fn any) (*Item, error) {
	cmd, err := bindCommand(fn)
	if err != nil {
		return nil, err
	}
	return newItem(cmd), nil
}

// MustCommand is NewCommand that panics on a malformed fn.
func MustCommand(fn any) *Item {
	it, err := NewCommand(fn)
	if err != nil {
		panic(err)
	}
	return it
}

// WithGetter attaches a zero-argument reader to a command item.
func (it *Item) WithGetter(get func() any) *Item {
	if cmd, ok := it.Action.(*Command); ok {
		cmd.Getter = get
	}
	return it
}

func bindCommand(fn any) (*Command, error) {
	if fn == nil {
		return nil, fmt.Errorf("command handler must be a function")
	}
	fv := reflect.ValueOf(fn)
	ft := fv.Type()
	if ft.Kind() != reflect.Func {
		return nil, fmt.Errorf("command handler must be a function, got %v", ft)
	}
	if ft.IsVariadic() {
		return nil, fmt.Errorf("command handler %v must not be variadic", ft)
	}

	cmd := &Command{fn: fv}
	switch ft.NumOut() {
	case 0:
		cmd.results = resultNone
	case 1:
		if ft.Out(0) == errorType {
			cmd.results = resultErr
		} else {
			cmd.results = resultValue
		}
	case 2:
		if ft.Out(1) != errorType {
			return nil, fmt.Errorf("second return value of %v must be error", ft)
		}
		cmd.results = resultValueErr
	default:
		return nil, fmt.Errorf("command handler %v returns too many values", ft)
	}

	for i := range ft.NumIn() {
		cmd.params = append(cmd.params, ft.In(i))
	}
	return cmd, nil
}

// Params returns the parameter types in declaration order.
func (c *Command) Params() []reflect.Type {
	return c.params
}

// Call invokes the function with already-coerced arguments.
func (c *Command) Call(args []reflect.Value) (any, error) {
	out := c.fn.Call(args)

	switch c.results {
	case resultValue:
		return valueOf(out[0]), nil
	case resultErr:
		if !out[0].IsNil() {
			return nil, out[0].Interface().(error)
		}
	case resultValueErr:
		if !out[1].IsNil() {
			return nil, out[1].Interface().(error)
		}
		return valueOf(out[0]), nil
	}
	return nil, nil
}

// Signature renders the parameter list, e.g. "<float64> <float64>".
func (c *Command) Signature() string {
	parts := make([]string, len(c.params))
	for i, p := range c.params {
		parts[i] = "<" + parser.TypeName(p) + ">"
	}
	return strings.Join(parts, " ")
}

// valueOf unwraps v, mapping nil pointers and interfaces to a plain nil.
func valueOf(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return nil
		}
	}
	return v.Interface()
}
