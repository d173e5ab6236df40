// Package scanner turns tagged struct fields into registry items.
//
// A field is registered when it carries a cmd tag naming its path relative
// to the scan prefix:
//
//	type Settings struct {
//		Volume int    `cmd:"audio/volume" step:"5" help:"Master volume"`
//		Muted  bool   `cmd:"audio/muted" key:"ctrl+m"`
//		Motd   string `cmd:"motd" multiline:"true"`
//		Mode   int    `cmd:"mode" options:"low,medium,high"`
//		Reset  func() `cmd:"reset"`
//	}
//
// bool fields become toggles, strings text, numbers number items, ints with
// options choices, and func fields commands. Other tags: help (tooltip),
// header, key (binding) and step (number increment, default 1).
package scanner

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/footprint-tools/cmdcon/internal/items"
	"github.com/footprint-tools/cmdcon/internal/parser"
	"github.com/footprint-tools/cmdcon/internal/registry"
)

// Field describes one tagged field.
type Field struct {
	Name      string
	Path      string
	Help      string
	Header    string
	Key       string
	Step      string
	Options   []string
	Multiline bool

	value reflect.Value
}

// Fields lists the tagged fields of the struct obj points to.
func Fields(obj any) ([]Field, error) {
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("scanner: expected non-nil pointer to struct, got %T", obj)
	}
	v = v.Elem()
	t := v.Type()

	var fields []Field
	for i := range t.NumField() {
		sf := t.Field(i)
		path := sf.Tag.Get("cmd")
		if path == "" || path == "-" {
			continue
		}
		if !sf.IsExported() {
			return nil, fmt.Errorf("scanner: field %s is tagged but unexported", sf.Name)
		}

		f := Field{
			Name:      sf.Name,
			Path:      path,
			Help:      sf.Tag.Get("help"),
			Header:    sf.Tag.Get("header"),
			Key:       sf.Tag.Get("key"),
			Step:      sf.Tag.Get("step"),
			Multiline: sf.Tag.Get("multiline") == "true",
			value:     v.Field(i),
		}
		if opts := sf.Tag.Get("options"); opts != "" {
			for _, o := range strings.Split(opts, ",") {
				f.Options = append(f.Options, strings.TrimSpace(o))
			}
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// Item builds the item for f.
func (f Field) Item() (*items.Item, error) {
	it, err := f.build()
	if err != nil {
		return nil, fmt.Errorf("scanner: field %s: %w", f.Name, err)
	}

	it.Tooltip = f.Help
	it.Header = f.Header
	if f.Key != "" {
		kb, err := items.ParseKeyBinding(f.Key)
		if err != nil {
			return nil, fmt.Errorf("scanner: field %s: %w", f.Name, err)
		}
		it.Key = &kb
	}
	return it, nil
}

func (f Field) build() (*items.Item, error) {
	v := f.value

	switch k := v.Kind(); {
	case len(f.Options) > 0:
		if !isInt(k) {
			return nil, fmt.Errorf("options need an int field, got %s", v.Type())
		}
		return items.NewChoice(
			f.Options,
			func() int { return int(v.Int()) },
			func(i int) { v.SetInt(int64(i)) },
		), nil

	case k == reflect.Bool:
		return items.NewToggle(v.Bool, v.SetBool), nil

	case k == reflect.String:
		it := items.NewText(
			v.String,
			func(s string) bool { v.SetString(s); return true },
		)
		it.Action.(*items.Text).Multiline = f.Multiline
		return it, nil

	case isInt(k), isUint(k), k == reflect.Float32 || k == reflect.Float64:
		return f.number()

	case k == reflect.Func:
		if v.IsNil() {
			return nil, fmt.Errorf("func field is nil")
		}
		return items.NewCommand(v.Interface())
	}

	return nil, fmt.Errorf("unsupported field type %s", v.Type())
}

// number binds a numeric field of any width, rejecting values that
// overflow it.
func (f Field) number() (*items.Item, error) {
	v := f.value
	k := v.Kind()
	bits := v.Type().Bits()

	step := f.Step
	if step == "" {
		step = "1"
	}
	stepValue, err := strconv.ParseFloat(step, 64)
	if err != nil {
		return nil, fmt.Errorf("bad step %q", step)
	}

	get := func() string {
		switch {
		case isInt(k):
			return strconv.FormatInt(v.Int(), 10)
		case isUint(k):
			return strconv.FormatUint(v.Uint(), 10)
		}
		return strconv.FormatFloat(v.Float(), 'g', -1, bits)
	}

	set := func(s string) bool {
		switch {
		case isInt(k):
			n, err := parser.ParseInt(s, bits)
			if err != nil {
				return false
			}
			v.SetInt(n)
		case isUint(k):
			n, err := parser.ParseUint(s, bits)
			if err != nil {
				return false
			}
			v.SetUint(n)
		default:
			x, err := strconv.ParseFloat(s, bits)
			if err != nil {
				return false
			}
			v.SetFloat(x)
		}
		return true
	}

	nudge := func(dir int) {
		switch {
		case isInt(k):
			next := v.Int() + int64(dir)*int64(stepValue)
			if !v.OverflowInt(next) {
				v.SetInt(next)
			}
		case isUint(k):
			cur := int64(v.Uint()) + int64(dir)*int64(stepValue)
			if cur >= 0 && !v.OverflowUint(uint64(cur)) {
				v.SetUint(uint64(cur))
			}
		default:
			v.SetFloat(v.Float() + float64(dir)*stepValue)
		}
	}

	return items.NewNumber(get, set, nudge), nil
}

// Scan registers every tagged field of obj through cat under prefix and
// returns the registered items. Nothing is registered if any field fails.
func Scan(cat *registry.Catalog, prefix string, obj any) ([]*items.Item, error) {
	fields, err := Fields(obj)
	if err != nil {
		return nil, err
	}

	built := make([]*items.Item, len(fields))
	for i, f := range fields {
		if built[i], err = f.Item(); err != nil {
			return nil, err
		}
	}

	added := make([]*items.Item, 0, len(fields))
	for i, f := range fields {
		if it := cat.Add(join(prefix, f.Path), built[i]); it != nil {
			added = append(added, it)
		}
	}
	return added, nil
}

func join(prefix, path string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return path
	}
	return prefix + "/" + path
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
