package dispatchers

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/footprint-tools/cmdcon/internal/domain"
	"github.com/footprint-tools/cmdcon/internal/items"
	"github.com/footprint-tools/cmdcon/internal/log"
	"github.com/footprint-tools/cmdcon/internal/parser"
	"github.com/footprint-tools/cmdcon/internal/registry"
	"github.com/footprint-tools/cmdcon/internal/usage"
)

const (
	DefaultHintLimit = 100

	defaultSuggestionsCount = 3
)

// RunListener is told about every line passed to Run. handled is true when
// some command matched, even if it then failed.
type RunListener func(input string, handled bool)

// ErrorListener is told about every failure reported to the output sink.
type ErrorListener func(err error)

// Options configures an Interpreter. Zero fields get defaults.
type Options struct {
	Output    Output
	Logger    domain.Logger
	Types     *parser.Types
	Stored    *StoredObjects
	History   domain.HistoryStore
	HintLimit int
}

// Interpreter runs lines of input against its command sources.
//
// Run resolves a line in this order: the locked item, if any, takes the
// whole line; a leading '/' selects the built-in group; otherwise each
// enabled source is offered the line in registration order. Lines no source
// claims fall back to "help" and "$name" retrieval before being reported as
// undefined.
type Interpreter struct {
	types     *parser.Types
	stored    *StoredObjects
	out       Output
	logger    domain.Logger
	history   domain.HistoryStore
	hintLimit int

	builtins  *RegistrySource
	sources   []CommandSource
	locked    *items.Item
	listeners []RunListener
	onError   []ErrorListener
}

// New creates an interpreter with the built-in group registered.
func New(opts Options) *Interpreter {
	in := &Interpreter{
		types:     opts.Types,
		stored:    opts.Stored,
		out:       opts.Output,
		logger:    log.Component(opts.Logger, "interpreter"),
		history:   opts.History,
		hintLimit: opts.HintLimit,
	}
	if in.types == nil {
		in.types = parser.NewTypes()
	}
	if in.stored == nil {
		in.stored = NewStoredObjects()
	}
	if in.out == nil {
		in.out = nopOutput{}
	}
	if in.hintLimit <= 0 {
		in.hintLimit = DefaultHintLimit
	}

	in.builtins = NewRegistrySource("builtins", registry.New(opts.Logger))
	registerBuiltins(in)
	return in
}

func (in *Interpreter) Types() *parser.Types   { return in.types }
func (in *Interpreter) Stored() *StoredObjects { return in.stored }

// Builtins returns the registry answering '/'-prefixed lines.
func (in *Interpreter) Builtins() *registry.Registry { return in.builtins.Registry() }

// Locked returns the item currently taking all input, or nil.
func (in *Interpreter) Locked() *items.Item { return in.locked }

// SetOutput replaces the feedback sink.
func (in *Interpreter) SetOutput(out Output) {
	if out == nil {
		out = nopOutput{}
	}
	in.out = out
}

// AddSource appends a command source.
func (in *Interpreter) AddSource(src CommandSource) {
	in.sources = append(in.sources, src)
}

// AddRegistry appends reg as a command source.
func (in *Interpreter) AddRegistry(name string, reg *registry.Registry) *RegistrySource {
	src := NewRegistrySource(name, reg)
	in.AddSource(src)
	return src
}

// RemoveSource detaches src and reports whether it was attached.
func (in *Interpreter) RemoveSource(src CommandSource) bool {
	i := slices.Index(in.sources, src)
	if i < 0 {
		return false
	}
	in.sources = slices.Delete(in.sources, i, i+1)
	return true
}

// OnRun registers a listener called after every Run.
func (in *Interpreter) OnRun(l RunListener) {
	in.listeners = append(in.listeners, l)
}

// OnError registers a listener called with every reported failure.
func (in *Interpreter) OnError(l ErrorListener) {
	in.onError = append(in.onError, l)
}

// Run interprets one line. It returns the command's result and whether a
// command matched and completed without error. Failures are reported to the
// output sink, never returned.
func (in *Interpreter) Run(input string) (any, bool) {
	ctx := in.newContext(input)

	handled, err := in.dispatch(ctx)
	ok := handled && err == nil
	if err != nil {
		in.report(err)
	}
	if ok {
		in.accept(ctx)
	}

	for _, l := range in.listeners {
		l(input, handled)
	}
	in.logger.Debug("run %q handled=%t ok=%t", input, handled, ok)

	if !ok {
		return nil, false
	}
	return ctx.Result, true
}

func (in *Interpreter) dispatch(ctx *Context) (bool, error) {
	trimmed := strings.TrimSpace(ctx.Input)

	if in.locked != nil {
		if strings.EqualFold(trimmed, "/cancel") {
			in.Cancel()
			return true, nil
		}
		it := in.locked
		in.locked = nil
		if err := RunItem(ctx, it); err != nil {
			in.locked = it
			return true, fmt.Errorf("locked %s: %w", strings.ToLower(it.Kind().String()), err)
		}
		return true, nil
	}

	if trimmed == "" {
		return false, nil
	}

	if lead := skipSpace(ctx.Input, 0); ctx.Input[lead] == '/' {
		ctx.Index = lead + 1
		if ran, err := in.builtins.TryRun(ctx); ran {
			return true, err
		}
		return false, in.noMatch(trimmed)
	}

	in.pruneSources()
	for _, src := range in.sources {
		if !src.Enabled() {
			continue
		}
		ctx.Index = 0
		if ran, err := src.TryRun(ctx); ran {
			return true, err
		}
	}

	switch {
	case trimmed == "help" || trimmed == "-help":
		return true, in.help("")
	case parser.IsReference(trimmed) && !strings.ContainsAny(trimmed, " \t"):
		v, ok := in.stored.Get(trimmed[1:])
		if !ok {
			return true, usage.Commandf("nothing stored as '%s'", trimmed)
		}
		ctx.Result = v
		return true, nil
	}

	return false, in.noMatch(trimmed)
}

// accept applies a successful run's result: it becomes the last result,
// object-like values become the scope, and an item that takes input is
// locked.
func (in *Interpreter) accept(ctx *Context) {
	r := ctx.Result
	if r == nil {
		return
	}
	in.stored.SetLastResult(r)

	if it, ok := r.(*items.Item); ok {
		if it.AcceptsArgs() {
			in.locked = it
			in.out.Info(fmt.Sprintf("%s: %s (/cancel to abort)", displayName(it), prompt(it)))
		}
		return
	}

	if isComplex(r) {
		in.stored.SetScope(r)
	}
	in.out.Info(FormatValue(r))
}

// Cancel releases the locked item and reports whether one was locked.
func (in *Interpreter) Cancel() bool {
	if in.locked == nil {
		return false
	}
	in.out.Info("cancelled " + displayName(in.locked))
	in.locked = nil
	return true
}

// RunKey runs the item bound to a key event such as "ctrl+k" as if its path
// had been typed with no arguments.
func (in *Interpreter) RunKey(event string) (any, bool) {
	it := in.FindKey(event)
	if it == nil {
		return nil, false
	}

	ctx := in.newContext("")
	if err := RunItem(ctx, it); err != nil {
		in.report(err)
		return nil, false
	}
	in.accept(ctx)
	in.logger.Debug("key %s ran %s", event, it.Path)
	return ctx.Result, true
}

// FindKey returns the item bound to event, built-ins first, or nil.
func (in *Interpreter) FindKey(event string) *items.Item {
	in.pruneSources()
	if it := in.builtins.FindKey(event); it != nil {
		return it
	}
	for _, src := range in.sources {
		kf, ok := src.(KeyFinder)
		if !ok || !src.Enabled() {
			continue
		}
		if it := kf.FindKey(event); it != nil {
			return it
		}
	}
	return nil
}

// FillHints returns completions for partial, shortest first, capped at the
// hint limit.
func (in *Interpreter) FillHints(partial string) []Hint {
	hc := &HintContext{Input: partial, Types: in.types}

	switch lead := skipSpace(partial, 0); {
	case in.locked != nil:
		fillArgHints(hc, in.locked, 0)
	case lead < len(partial) && partial[lead] == '/':
		hc.Index = lead + 1
		in.builtins.FillHints(hc)
	default:
		in.pruneSources()
		for _, src := range in.sources {
			if src.Enabled() {
				hc.Index = 0
				src.FillHints(hc)
			}
		}
	}

	hints := hc.Hints()
	slices.SortStableFunc(hints, func(a, b Hint) int { return len(a.Text) - len(b.Text) })
	if len(hints) > in.hintLimit {
		hints = hints[:in.hintLimit]
	}
	return hints
}

// HelpLines returns the help listing: built-ins prefixed with '/', then
// every enabled source.
func (in *Interpreter) HelpLines() []string {
	var builtin []string
	in.builtins.HelpLines(&builtin)

	lines := make([]string, 0, len(builtin))
	for _, l := range builtin {
		if !strings.HasPrefix(l, "[") {
			l = "/" + l
		}
		lines = append(lines, l)
	}

	in.pruneSources()
	for _, src := range in.sources {
		if src.Enabled() {
			src.HelpLines(&lines)
		}
	}
	return lines
}

func (in *Interpreter) help(filter string) error {
	filter = strings.TrimSpace(filter)
	lines := in.HelpLines()

	if filter != "" {
		lines = slices.DeleteFunc(lines, func(l string) bool {
			return !hasPrefixFold(strings.TrimPrefix(l, "/"), strings.TrimPrefix(filter, "/"))
		})
		if len(lines) == 0 {
			return usage.Commandf("no commands under '%s'", filter)
		}
	}

	for _, l := range lines {
		in.out.Info(l)
	}
	return nil
}

func (in *Interpreter) noMatch(input string) error {
	in.pruneSources()
	fields := strings.Fields(strings.TrimPrefix(input, "/"))

	var candidates []string
	candidates = append(candidates, in.builtins.Paths()...)
	for _, src := range in.sources {
		if pl, ok := src.(PathLister); ok && src.Enabled() {
			candidates = append(candidates, pl.Paths()...)
		}
	}

	// "game strat" is tried as the path "game/strat" before its first word.
	var suggestions []string
	for n := min(len(fields), 2); n >= 1; n-- {
		for _, s := range FindSimilarCommands(strings.Join(fields[:n], "/"), candidates, defaultSuggestionsCount) {
			if !slices.Contains(suggestions, s) {
				suggestions = append(suggestions, s)
			}
		}
	}
	if len(suggestions) > defaultSuggestionsCount {
		suggestions = suggestions[:defaultSuggestionsCount]
	}
	return usage.UnknownCommand(input, suggestions...)
}

// pruneSources drops sources that report themselves invalid.
func (in *Interpreter) pruneSources() {
	in.sources = slices.DeleteFunc(in.sources, func(src CommandSource) bool {
		v, ok := src.(Validator)
		if ok && !v.Valid() {
			in.logger.Debug("dropping invalid source %T", src)
			return true
		}
		return false
	})
}

func (in *Interpreter) report(err error) {
	in.logger.Debug("failure: %v", err)
	in.out.Warn(err.Error())
	for _, l := range in.onError {
		l(err)
	}
}

func (in *Interpreter) newContext(input string) *Context {
	return &Context{
		Input:  input,
		Out:    in.out,
		Stored: in.stored,
		Types:  in.types,
	}
}

func prompt(it *items.Item) string {
	if it.Tooltip != "" {
		return it.Tooltip
	}
	return "enter a value for " + strings.ToLower(it.Kind().String())
}

// FormatValue renders a result for the output sink.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
		return fmt.Sprintf("%s %+v", parser.TypeName(rv.Type()), rv.Elem().Interface())
	}
	if rv.Kind() == reflect.Struct {
		return fmt.Sprintf("%s %+v", parser.TypeName(rv.Type()), v)
	}
	return fmt.Sprint(v)
}

type nopOutput struct{}

func (nopOutput) Info(...any) {}
func (nopOutput) Warn(...any) {}
