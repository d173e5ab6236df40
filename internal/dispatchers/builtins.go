package dispatchers

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/cmdcon/internal/items"
	"github.com/footprint-tools/cmdcon/internal/parser"
	"github.com/footprint-tools/cmdcon/internal/usage"
)

const defaultHistoryCount = 20

func registerBuiltins(in *Interpreter) {
	reg := in.builtins.Registry()
	stored := in.stored

	add := func(path, tooltip string, it *items.Item) {
		reg.Add(path, it.WithTooltip(tooltip))
	}

	add("help", "List commands, optionally under a path",
		items.MustCommand(func(path string) error {
			return in.help(path)
		}).WithGetter(func() any {
			return in.help("")
		}))

	add("store", "Store the last result as $name",
		items.MustCommand(func(ref objectName) error {
			name := ref.name()
			if name == "" {
				return usage.MissingArgument("name")
			}
			last := stored.LastResult()
			if last == nil {
				return usage.NullObject("last result")
			}
			stored.Set(name, last)
			in.out.Info(fmt.Sprintf("stored $%s = %s", name, FormatValue(last)))
			return nil
		}).WithGetter(missingName))

	add("retrieve", "Return the object stored as $name",
		items.MustCommand(func(ref objectName) (any, error) {
			name := ref.name()
			v, ok := stored.Get(name)
			if !ok {
				return nil, usage.Commandf("nothing stored as '$%s'", name)
			}
			return v, nil
		}).WithGetter(missingName))

	add("stored", "List stored objects",
		items.MustCommand(func() {
			names := stored.Names()
			if len(names) == 0 {
				in.out.Info("no stored objects")
				return
			}
			for _, name := range names {
				v, _ := stored.Get(name)
				in.out.Info(fmt.Sprintf("$%-16s %s", name, FormatValue(v)))
			}
		}))

	add("destroy", "Remove the object stored as $name",
		items.MustCommand(func(ref objectName) error {
			name := ref.name()
			if !stored.Delete(name) {
				return usage.Commandf("nothing stored as '$%s'", name)
			}
			in.out.Info("destroyed $" + name)
			return nil
		}).WithGetter(missingName))

	add("clear stored", "Remove every stored object",
		items.MustCommand(func() {
			stored.Clear()
			in.out.Info("stored objects cleared")
		}))

	add("scope", "Show the scope, or set it to an object",
		items.MustCommand(func(obj any) {
			stored.SetScope(obj)
			in.out.Info("scope: " + FormatValue(obj))
		}).WithGetter(func() any {
			in.out.Info("scope: " + FormatValue(stored.Scope()))
			return nil
		}))

	add("rescope", "Swap back to the previous scope",
		items.MustCommand(func() {
			stored.Rescope()
			in.out.Info("scope: " + FormatValue(stored.Scope()))
		}))

	add("inspect", "List fields and methods of the scope",
		items.MustCommand(func() error {
			scope := stored.Scope()
			if scope == nil {
				return usage.NullObject("scope")
			}
			in.out.Info(FormatValue(scope))
			for _, m := range Members(scope) {
				in.out.Info("  " + m.Signature())
			}
			return nil
		}))

	add("call", "Read, set or invoke a member of the scope: call <member> [args]",
		items.MustCommand(func(input string) (any, error) {
			return CallMember(in.types, stored.Scope(), input, stored.Lookup)
		}))

	add("history", "Show recent command lines",
		items.MustCommand(func(n int) error {
			return in.showHistory(n)
		}).WithGetter(func() any {
			return in.showHistory(defaultHistoryCount)
		}))

	add("cancel", "Release the locked command",
		items.NewButton(func() {
			if !in.Cancel() {
				in.out.Info("nothing to cancel")
			}
		}))
}

func missingName() any {
	return usage.MissingArgument("name")
}

func (in *Interpreter) showHistory(n int) error {
	if in.history == nil {
		return usage.Command("history is not available")
	}
	if n <= 0 {
		return usage.Commandf("history count must be positive, got %d", n)
	}
	entries, err := in.history.Recent(n)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	for _, e := range entries {
		in.out.Info(fmt.Sprintf("%4d  %s", e.ID, e.Line))
	}
	return nil
}

// objectName is a stored-object name argument. Its own type keeps "$x" from
// being replaced by the string stored under x.
type objectName string

func (n objectName) name() string {
	s := strings.TrimSpace(string(n))
	if parser.IsReference(s) {
		s = s[1:]
	}
	return s
}
