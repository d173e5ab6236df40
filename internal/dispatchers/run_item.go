package dispatchers

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/footprint-tools/cmdcon/internal/items"
	"github.com/footprint-tools/cmdcon/internal/parser"
	"github.com/footprint-tools/cmdcon/internal/usage"
)

// RunItem runs it against the unconsumed input of ctx and stores any result
// in ctx.Result. Panics from host closures are returned as errors.
func RunItem(ctx *Context, it *items.Item) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(it, r)
		}
	}()

	args := strings.TrimSpace(ctx.Rest())

	switch a := it.Action.(type) {
	case *items.Button:
		if args != "" {
			return usage.ArityMismatch(0, len(parser.Tokenize(args)))
		}
		if a.Invoke != nil {
			a.Invoke()
		}
		return nil

	case *items.Toggle:
		return runToggle(ctx, it, a, args)

	case *items.Text:
		if args == "" {
			if a.Get == nil {
				return usage.Commandf("%s has no readable value", displayName(it))
			}
			ctx.Result = a.Get()
			return nil
		}
		if a.Set == nil {
			return usage.Commandf("%s is read-only", displayName(it))
		}
		if !a.Set(args) {
			return usage.Commandf("value rejected by %s: %q", displayName(it), args)
		}
		if a.Get != nil {
			ctx.Result = a.Get()
		}
		return nil

	case *items.Number:
		return runNumber(ctx, it, a, args)

	case *items.Choice:
		return runChoice(ctx, it, a, args)

	case *items.Command:
		if args == "" && a.Getter != nil {
			v := a.Getter()
			if err, ok := v.(error); ok {
				return err
			}
			ctx.Result = v
			return nil
		}
		values, err := ctx.Types.CoerceAll(ctx.Rest(), a.Params(), ctx.lookup())
		if err != nil {
			return err
		}
		result, err := a.Call(values)
		if err != nil {
			return err
		}
		ctx.Result = result
		return nil
	}

	return fmt.Errorf("unsupported item kind %T", it.Action)
}

func runToggle(ctx *Context, it *items.Item, a *items.Toggle, args string) error {
	if a.Set == nil {
		return usage.Commandf("%s is read-only", displayName(it))
	}

	if args == "" {
		if a.Get == nil {
			return usage.Commandf("%s needs a value (on/off)", displayName(it))
		}
		a.Set(!a.Get())
	} else {
		if n := len(parser.Tokenize(args)); n != 1 {
			return usage.ArityMismatch(1, n)
		}
		v, err := parser.ParseBool(args)
		if err != nil {
			return err
		}
		a.Set(v)
	}

	if a.Get != nil {
		ctx.Result = a.Get()
	}
	return nil
}

func runNumber(ctx *Context, it *items.Item, a *items.Number, args string) error {
	switch args {
	case "":
		if a.Get == nil {
			return usage.Commandf("%s has no readable value", displayName(it))
		}
		ctx.Result = a.Get()
		return nil
	case "+", "++", "-", "--":
		if a.Step == nil {
			return usage.Commandf("%s cannot be stepped", displayName(it))
		}
		dir := 1
		if args[0] == '-' {
			dir = -1
		}
		a.Step(dir)
	default:
		if a.Set == nil {
			return usage.Commandf("%s is read-only", displayName(it))
		}
		if !a.Set(args) {
			return usage.Commandf("'%s' is not a valid value for %s", args, displayName(it))
		}
	}

	if a.Get != nil {
		ctx.Result = a.Get()
	}
	return nil
}

func runChoice(ctx *Context, it *items.Item, a *items.Choice, args string) error {
	if args == "" {
		name, ok := a.Current()
		if !ok {
			return usage.Commandf("%s has no selection", displayName(it))
		}
		ctx.Result = name
		return nil
	}
	if a.Set == nil {
		return usage.Commandf("%s is read-only", displayName(it))
	}

	idx := -1
	for i, opt := range a.Options {
		if strings.EqualFold(opt, args) {
			idx = i
			break
		}
	}
	if idx < 0 {
		if n, err := strconv.Atoi(args); err == nil && n >= 0 && n < len(a.Options) {
			idx = n
		}
	}
	if idx < 0 {
		return usage.Commandf("unknown option '%s' for %s. Options: %s", args, displayName(it), strings.Join(a.Options, ", "))
	}

	a.Set(idx)
	if name, ok := a.Current(); ok {
		ctx.Result = name
	}
	return nil
}

// recovered turns a panic value into an error. A panic carrying a command
// error anywhere in its chain is reported as that error.
func recovered(it *items.Item, r any) error {
	if err, ok := r.(error); ok {
		if ue, ok := usage.As(err); ok {
			return ue
		}
		return usage.Commandf("%s failed: %v", displayName(it), err)
	}
	return usage.Commandf("%s failed: %v", displayName(it), r)
}

func displayName(it *items.Item) string {
	if it.Path != "" {
		return it.Path
	}
	if it.Name != "" {
		return it.Name
	}
	return it.Kind().String()
}

func (c *Context) lookup() parser.Lookup {
	if c.Stored == nil {
		return nil
	}
	return c.Stored.Lookup
}

// isComplex reports whether v is an object-like value that becomes the
// scope when returned from a command.
func isComplex(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(*items.Item); ok {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Pointer, reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Interface:
		return true
	}
	return false
}
