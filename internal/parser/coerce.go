package parser

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/footprint-tools/cmdcon/internal/usage"
)

// ParseBool accepts true/yes/y/1/on and false/no/n/0/off, case-insensitively.
func ParseBool(token string) (bool, error) {
	switch strings.ToLower(token) {
	case "true", "yes", "y", "1", "on":
		return true, nil
	case "false", "no", "n", "0", "off":
		return false, nil
	}
	return false, usage.BadBool(token)
}

// Coerce converts token into a value of type target.
//
// Resolution order: $name stored references, strings, null for nullable
// types, booleans, enumerations, numbers, slices, and finally registered
// constructors of composite types.
func (t *Types) Coerce(token string, target reflect.Type, lookup Lookup) (reflect.Value, error) {
	if v, ok := resolveStored(token, target, lookup); ok {
		return v, nil
	}

	switch {
	case target.Kind() == reflect.String:
		return reflect.ValueOf(token).Convert(target), nil

	case token == "null" && isNullable(target):
		return reflect.Zero(target), nil

	case target.Kind() == reflect.Interface && target.NumMethod() == 0:
		return reflect.ValueOf(token), nil

	case target.Kind() == reflect.Bool:
		b, err := ParseBool(token)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(b).Convert(target), nil

	case t.IsEnum(target):
		def := t.enums[target]
		for i, name := range def.names {
			if strings.EqualFold(name, token) {
				return def.values[i], nil
			}
		}
		return reflect.Value{}, usage.BadEnum(token, TypeName(target), def.names)

	case isNumeric(target):
		return parseNumber(token, target)

	case target.Kind() == reflect.Slice && target.Elem().Kind() != reflect.Uint8:
		return t.coerceSlice(token, target, lookup)
	}

	return t.construct(token, target, lookup)
}

// CoerceAll binds an argument string to a parameter list.
//
// A lone string parameter takes the whole left-trimmed input verbatim, and a
// lone composite parameter is constructed from all tokens. Otherwise the
// token count must equal the parameter count.
func (t *Types) CoerceAll(input string, targets []reflect.Type, lookup Lookup) ([]reflect.Value, error) {
	if len(targets) == 1 {
		target := targets[0]
		tail := strings.TrimLeft(input, " \t")

		if target.Kind() == reflect.String && tail != "" {
			v, err := t.Coerce(tail, target, lookup)
			if err != nil {
				return nil, err
			}
			return []reflect.Value{v}, nil
		}

		if !t.IsPrimitive(target) && len(Tokenize(tail)) > 1 {
			v, err := t.Coerce(strings.TrimSpace(tail), target, lookup)
			if err != nil {
				return nil, err
			}
			return []reflect.Value{v}, nil
		}
	}

	tokens := Tokenize(input)
	if len(tokens) != len(targets) {
		return nil, usage.ArityMismatch(len(targets), len(tokens))
	}

	values := make([]reflect.Value, len(targets))
	for i, target := range targets {
		v, err := t.Coerce(tokens[i], target, lookup)
		if err != nil {
			if len(targets) == 1 {
				return nil, err
			}
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		values[i] = v
	}
	return values, nil
}

func resolveStored(token string, target reflect.Type, lookup Lookup) (reflect.Value, bool) {
	if lookup == nil || !IsReference(token) {
		return reflect.Value{}, false
	}

	obj, ok := lookup(token[1:])
	if !ok {
		return reflect.Value{}, false
	}

	if obj == nil {
		if isNullable(target) {
			return reflect.Zero(target), true
		}
		return reflect.Value{}, false
	}

	v := reflect.ValueOf(obj)
	if !v.Type().AssignableTo(target) {
		return reflect.Value{}, false
	}
	out := reflect.New(target).Elem()
	out.Set(v)
	return out, true
}

func parseNumber(token string, target reflect.Type) (reflect.Value, error) {
	out := reflect.New(target).Elem()
	bits := target.Bits()

	if target == durationType {
		if d, err := time.ParseDuration(token); err == nil {
			out.SetInt(int64(d))
			return out, nil
		}
	}

	switch {
	case isInteger(target):
		n, err := ParseInt(token, bits)
		if err != nil {
			return reflect.Value{}, usage.BadNumber(token, TypeName(target), numError(err))
		}
		out.SetInt(n)
	case isUnsigned(target):
		n, err := ParseUint(token, bits)
		if err != nil {
			return reflect.Value{}, usage.BadNumber(token, TypeName(target), numError(err))
		}
		out.SetUint(n)
	default:
		f, err := strconv.ParseFloat(token, bits)
		if err != nil {
			return reflect.Value{}, usage.BadNumber(token, TypeName(target), numError(err))
		}
		out.SetFloat(f)
	}
	return out, nil
}

// ParseInt parses a decimal integer of the given bit size. A 0x prefix
// after the optional sign selects hexadecimal; leading zeros stay decimal.
func ParseInt(s string, bits int) (int64, error) {
	sign, digits := "", s
	if s != "" && (s[0] == '-' || s[0] == '+') {
		sign, digits = s[:1], s[1:]
	}
	if hex, ok := hexDigits(digits); ok {
		return strconv.ParseInt(sign+hex, 16, bits)
	}
	return strconv.ParseInt(s, 10, bits)
}

// ParseUint is ParseInt for unsigned integers.
func ParseUint(s string, bits int) (uint64, error) {
	if hex, ok := hexDigits(s); ok {
		return strconv.ParseUint(hex, 16, bits)
	}
	return strconv.ParseUint(s, 10, bits)
}

func hexDigits(s string) (string, bool) {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:], true
	}
	return "", false
}

// numError strips the strconv function prefix from a parse failure.
func numError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}

func (t *Types) coerceSlice(token string, target reflect.Type, lookup Lookup) (reflect.Value, error) {
	parts := Tokenize(token)
	out := reflect.MakeSlice(target, 0, len(parts))
	for i, part := range parts {
		v, err := t.Coerce(part, target.Elem(), lookup)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("element %d: %w", i+1, err)
		}
		out = reflect.Append(out, v)
	}
	return out, nil
}

// construct builds a composite value from the re-tokenized token using the
// first registered constructor whose parameters all coerce.
func (t *Types) construct(token string, target reflect.Type, lookup Lookup) (reflect.Value, error) {
	parts := Tokenize(token)

	ctors := t.constructors[target]
	addr := false
	if len(ctors) == 0 && target.Kind() == reflect.Pointer {
		ctors = t.constructors[target.Elem()]
		addr = true
	}

	for _, c := range ctors {
		if len(c.params) != len(parts) {
			continue
		}
		args, ok := t.coerceParams(parts, c.params, lookup)
		if !ok {
			continue
		}
		v, err := c.call(args)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("construct %s: %w", TypeName(target), err)
		}
		if addr {
			p := reflect.New(target.Elem())
			p.Elem().Set(v)
			return p, nil
		}
		return v, nil
	}

	// "(x)" unwraps to "x"; a token that did not change cannot make progress.
	if len(parts) == 1 && parts[0] != token {
		return t.Coerce(parts[0], target, lookup)
	}

	return reflect.Value{}, usage.NoConstructor(TypeName(target), len(parts), token)
}

func (t *Types) coerceParams(parts []string, params []reflect.Type, lookup Lookup) ([]reflect.Value, bool) {
	args := make([]reflect.Value, len(params))
	for i, p := range params {
		v, err := t.Coerce(parts[i], p, lookup)
		if err != nil {
			return nil, false
		}
		args[i] = v
	}
	return args, true
}
