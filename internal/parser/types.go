package parser

import (
	"fmt"
	"reflect"
	"time"
)

var (
	errorInterface = reflect.TypeFor[error]()
	durationType   = reflect.TypeFor[time.Duration]()
)

// Lookup resolves a stored-object name. ok is false when nothing is stored
// under name.
type Lookup func(name string) (value any, ok bool)

type enumDef struct {
	names  []string
	values []reflect.Value
}

type constructor struct {
	fn      reflect.Value
	params  []reflect.Type
	withErr bool
}

func (c constructor) call(args []reflect.Value) (reflect.Value, error) {
	out := c.fn.Call(args)
	if c.withErr && !out[1].IsNil() {
		return reflect.Value{}, out[1].Interface().(error)
	}
	return out[0], nil
}

// Types holds the enumerations and constructors the coercion engine knows
// about. The zero value is not usable; call NewTypes.
type Types struct {
	enums        map[reflect.Type]*enumDef
	constructors map[reflect.Type][]constructor
}

// NewTypes creates an empty type table.
func NewTypes() *Types {
	return &Types{
		enums:        make(map[reflect.Type]*enumDef),
		constructors: make(map[reflect.Type][]constructor),
	}
}

// RegisterEnum declares T as an enumeration whose members are values. Each
// member is addressed by its fmt.Sprint form, compared case-insensitively.
func RegisterEnum[T any](t *Types, values ...T) {
	def := &enumDef{}
	for _, v := range values {
		def.names = append(def.names, fmt.Sprint(v))
		def.values = append(def.values, reflect.ValueOf(v))
	}
	t.enums[reflect.TypeFor[T]()] = def
}

// RegisterConstructor adds fn as a way to build its first return type from
// arguments. fn must have the shape func(A, B, ...) T or
// func(A, B, ...) (T, error). Constructors are tried in registration order.
func (t *Types) RegisterConstructor(fn any) error {
	if fn == nil {
		return fmt.Errorf("constructor must be a function")
	}
	fv := reflect.ValueOf(fn)
	ft := fv.Type()
	if ft.Kind() != reflect.Func {
		return fmt.Errorf("constructor must be a function, got %v", ft)
	}
	if ft.IsVariadic() {
		return fmt.Errorf("constructor %v must not be variadic", ft)
	}

	c := constructor{fn: fv}
	switch ft.NumOut() {
	case 1:
	case 2:
		if !ft.Out(1).Implements(errorInterface) {
			return fmt.Errorf("second return value of %v must be error", ft)
		}
		c.withErr = true
	default:
		return fmt.Errorf("constructor %v must return T or (T, error)", ft)
	}

	for i := range ft.NumIn() {
		c.params = append(c.params, ft.In(i))
	}

	out := ft.Out(0)
	t.constructors[out] = append(t.constructors[out], c)
	return nil
}

// MustRegisterConstructor is RegisterConstructor that panics on a malformed fn.
func (t *Types) MustRegisterConstructor(fn any) {
	if err := t.RegisterConstructor(fn); err != nil {
		panic(err)
	}
}

// IsEnum reports whether rt was registered with RegisterEnum.
func (t *Types) IsEnum(rt reflect.Type) bool {
	_, ok := t.enums[rt]
	return ok
}

// EnumNames returns the member names of a registered enumeration.
func (t *Types) EnumNames(rt reflect.Type) []string {
	if def, ok := t.enums[rt]; ok {
		return def.names
	}
	return nil
}

// IsPrimitive reports whether rt is "primitive-like": a string, bool,
// registered enumeration or number. Member-call overload resolution prefers
// candidates with more primitive parameters.
func (t *Types) IsPrimitive(rt reflect.Type) bool {
	if t.IsEnum(rt) {
		return true
	}
	switch rt.Kind() {
	case reflect.String, reflect.Bool:
		return true
	}
	return isNumeric(rt)
}

// TypeName returns a short display name for rt.
func TypeName(rt reflect.Type) string {
	if rt == nil {
		return "nil"
	}
	if rt.Name() != "" {
		return rt.Name()
	}
	return rt.String()
}

func isNumeric(rt reflect.Type) bool {
	return isInteger(rt) || isUnsigned(rt) || isFloat(rt)
}

func isInteger(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isNullable(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
