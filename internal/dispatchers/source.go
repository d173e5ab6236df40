package dispatchers

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/cmdcon/internal/items"
	"github.com/footprint-tools/cmdcon/internal/registry"
)

// CommandSource is anything the interpreter can offer a line to.
type CommandSource interface {
	// Enabled reports whether the source takes part in runs and hints.
	Enabled() bool

	// TryRun runs the command the input names. ran is false when the source
	// has nothing matching; err is a handled failure of a matched command.
	TryRun(ctx *Context) (ran bool, err error)

	// FillHints adds completions for ctx.Input.
	FillHints(ctx *HintContext)

	// HelpLines appends one line per command to lines.
	HelpLines(lines *[]string)
}

// Validator is implemented by sources that can go away. Invalid sources are
// dropped by the interpreter.
type Validator interface {
	Valid() bool
}

// KeyFinder is implemented by sources whose items carry key bindings.
type KeyFinder interface {
	FindKey(event string) *items.Item
}

// PathLister is implemented by sources that can enumerate their item paths,
// used for "did you mean" suggestions.
type PathLister interface {
	Paths() []string
}

// RegistrySource exposes a registry to the interpreter.
type RegistrySource struct {
	Name string

	reg      *registry.Registry
	disabled bool
	valid    func() bool

	helpVersion uint64
	helpLines   []string
	helpCached  bool
}

// NewRegistrySource wraps reg as a command source.
func NewRegistrySource(name string, reg *registry.Registry) *RegistrySource {
	return &RegistrySource{Name: name, reg: reg}
}

// Registry returns the wrapped registry.
func (s *RegistrySource) Registry() *registry.Registry { return s.reg }

func (s *RegistrySource) Enabled() bool { return !s.disabled }

// SetEnabled turns the source on or off.
func (s *RegistrySource) SetEnabled(enabled bool) { s.disabled = !enabled }

// SetValidity installs the check Valid delegates to.
func (s *RegistrySource) SetValidity(valid func() bool) { s.valid = valid }

func (s *RegistrySource) Valid() bool {
	return s.valid == nil || s.valid()
}

// TryRun resolves ctx.Input from ctx.Index against the registry root.
func (s *RegistrySource) TryRun(ctx *Context) (bool, error) {
	it, end := resolve(s.reg.Root(), ctx.Input, ctx.Index)
	if it == nil {
		return false, nil
	}
	ctx.Index = end
	return true, RunItem(ctx, it)
}

// FillHints adds completions for the registry root.
func (s *RegistrySource) FillHints(ctx *HintContext) {
	fillGroupHints(ctx, s.reg.Root(), ctx.Index)
}

// HelpLines appends "path <signature>  tooltip" for every item. The rendered
// lines are cached until the registry changes.
func (s *RegistrySource) HelpLines(lines *[]string) {
	if !s.helpCached || s.helpVersion != s.reg.Version() {
		s.helpLines = s.helpLines[:0]
		header := ""
		s.reg.Root().Walk(func(it *items.Item) {
			if it.Header != "" && it.Header != header {
				header = it.Header
				s.helpLines = append(s.helpLines, "["+header+"]")
			}
			s.helpLines = append(s.helpLines, helpLine(it))
		})
		s.helpVersion = s.reg.Version()
		s.helpCached = true
	}
	*lines = append(*lines, s.helpLines...)
}

// FindKey returns the first item bound to the key event, or nil.
func (s *RegistrySource) FindKey(event string) *items.Item {
	var found *items.Item
	s.reg.Root().Walk(func(it *items.Item) {
		if found == nil && it.Key != nil && it.Key.Matches(event) {
			found = it
		}
	})
	return found
}

// Paths returns every item path in the registry.
func (s *RegistrySource) Paths() []string {
	var paths []string
	s.reg.Root().Walk(func(it *items.Item) {
		paths = append(paths, it.Path)
	})
	return paths
}

func helpLine(it *items.Item) string {
	usage := it.Path
	if cmd, ok := it.Action.(*items.Command); ok {
		if sig := cmd.Signature(); sig != "" {
			usage += " " + sig
		}
	}
	tooltip := it.Tooltip
	if tooltip == "" {
		tooltip = it.Describe()
	}
	if it.Key != nil {
		tooltip += fmt.Sprintf(" (%s)", it.Key)
	}
	return fmt.Sprintf("%-32s %s", usage, tooltip)
}

// resolve walks g from index and returns the item the input names together
// with the offset where its arguments begin. Child groups are tried before
// items; names compare case-insensitively.
func resolve(g *registry.Group, input string, index int) (*items.Item, int) {
	start := skipSpace(input, index)
	if start >= len(input) {
		return nil, 0
	}

	end := wordEnd(input, start)
	if end < 0 {
		end = len(input)
	}
	word := input[start:end]
	if word == "" {
		return nil, 0
	}

	if end < len(input) {
		for _, child := range g.Children() {
			if strings.EqualFold(child.Name(), word) {
				if it, at := resolve(child, input, end+1); it != nil {
					return it, at
				}
			}
		}
	}

	for _, it := range g.Items() {
		if strings.EqualFold(it.Name, word) {
			return it, end
		}
	}

	return backtrack(g, input, start)
}

// backtrack finds multi-word item names. Candidates are the input from start
// up to each word boundary, scanned from the end of the input toward start,
// so the longest matching name wins.
func backtrack(g *registry.Group, input string, start int) (*items.Item, int) {
	all := g.Items()
	multi := all[:0:0]
	for _, it := range all {
		if strings.ContainsAny(it.Name, " \t") {
			multi = append(multi, it)
		}
	}
	if len(multi) == 0 {
		return nil, 0
	}

	for pos := len(input); pos > start; pos-- {
		if pos < len(input) && input[pos] != ' ' && input[pos] != '\t' {
			continue
		}
		candidate := strings.TrimRight(input[start:pos], " \t")
		if len(candidate) != pos-start {
			// Runs of spaces are visited once, at their first character.
			continue
		}
		for _, it := range multi {
			if strings.EqualFold(it.Name, candidate) {
				return it, pos
			}
		}
	}
	return nil, 0
}
