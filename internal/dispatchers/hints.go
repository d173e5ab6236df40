package dispatchers

import (
	"reflect"
	"strings"

	"github.com/footprint-tools/cmdcon/internal/items"
	"github.com/footprint-tools/cmdcon/internal/parser"
	"github.com/footprint-tools/cmdcon/internal/registry"
)

// fillGroupHints mirrors resolve: it walks g from index and offers every
// child group or item whose name extends the word under the cursor.
func fillGroupHints(ctx *HintContext, g *registry.Group, index int) {
	input := ctx.Input
	start := skipSpace(input, index)
	end := wordEnd(input, start)

	if end < 0 {
		// The cursor is inside the current word (possibly empty).
		word := input[start:]
		for _, child := range g.Children() {
			if hasPrefixFold(child.Name(), word) {
				ctx.Add(child.Name()[len(word):]+"/", "Group", -len(word))
			}
		}
		for _, it := range g.Items() {
			if hasPrefixFold(it.Name, word) {
				ctx.Add(completion(it, len(word)), tooltip(it), -len(word))
			}
		}
		return
	}

	word := input[start:end]
	for _, child := range g.Children() {
		if strings.EqualFold(child.Name(), word) {
			fillGroupHints(ctx, child, end+1)
		}
	}

	if input[end] == '/' {
		return
	}

	for _, it := range g.Items() {
		if strings.EqualFold(it.Name, word) {
			fillArgHints(ctx, it, end)
		}
	}

	// Multi-word names: the typed text may be a prefix of the name, or the
	// name followed by arguments. Lengths are compared before slicing.
	typed := input[start:]
	for _, it := range g.Items() {
		if !strings.ContainsAny(it.Name, " \t") {
			continue
		}
		switch {
		case len(it.Name) > len(typed) && hasPrefixFold(it.Name, typed):
			ctx.Add(completion(it, len(typed)), tooltip(it), -len(typed))
		case len(it.Name) < len(typed) && hasPrefixFold(typed, it.Name) && isSpace(typed[len(it.Name)]):
			fillArgHints(ctx, it, start+len(it.Name))
		}
	}
}

// fillArgHints offers values for the argument under the cursor of an item
// whose name ends at argStart.
func fillArgHints(ctx *HintContext, it *items.Item, argStart int) {
	if !it.AcceptsArgs() || argStart > len(ctx.Input) {
		return
	}

	args := ctx.Input[argStart:]
	argIndex, word := currentArg(args)

	var candidates []string
	switch a := it.Action.(type) {
	case *items.Toggle:
		if argIndex == 0 {
			candidates = []string{"on", "off"}
		}
	case *items.Choice:
		if argIndex == 0 {
			candidates = a.Options
		}
	case *items.Command:
		params := a.Params()
		if argIndex < len(params) {
			candidates = valueNames(ctx.Types, params[argIndex])
		}
	}

	for _, c := range candidates {
		if len(c) > len(word) && hasPrefixFold(c, word) {
			ctx.Add(c[len(word):], it.Path, -len(word))
		}
	}
}

// currentArg returns the zero-based index of the argument under the cursor
// and the part of it typed so far.
func currentArg(args string) (int, string) {
	if args == "" {
		return 0, ""
	}
	fields := strings.FieldsFunc(args, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	last := args[len(args)-1]
	if last == ' ' || last == '\t' || last == ',' {
		return len(fields), ""
	}
	if len(fields) == 0 {
		return 0, ""
	}
	return len(fields) - 1, fields[len(fields)-1]
}

func valueNames(types *parser.Types, rt reflect.Type) []string {
	if types != nil && types.IsEnum(rt) {
		return types.EnumNames(rt)
	}
	if rt.Kind() == reflect.Bool {
		return []string{"true", "false"}
	}
	return nil
}

func completion(it *items.Item, typed int) string {
	text := it.Name[typed:]
	if it.AcceptsArgs() {
		text += " "
	}
	return text
}

func tooltip(it *items.Item) string {
	if it.Tooltip != "" {
		return it.Describe() + " - " + it.Tooltip
	}
	return it.Describe()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
