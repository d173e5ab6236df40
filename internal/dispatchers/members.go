package dispatchers

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/footprint-tools/cmdcon/internal/parser"
	"github.com/footprint-tools/cmdcon/internal/usage"
)

// Member is an exported field or method of the scope object.
type Member struct {
	Name   string
	Field  bool
	Params []reflect.Type
	Type   reflect.Type // field type, or the first result of a method

	value reflect.Value // field value or bound method
}

// Signature renders the member for listings.
func (m Member) Signature() string {
	if m.Field {
		return fmt.Sprintf("%s %s", m.Name, parser.TypeName(m.Type))
	}
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = parser.TypeName(p)
	}
	sig := fmt.Sprintf("%s(%s)", m.Name, strings.Join(params, ", "))
	if m.Type != nil {
		sig += " " + parser.TypeName(m.Type)
	}
	return sig
}

// Members lists the exported fields and methods of obj, fields first.
func Members(obj any) []Member {
	if obj == nil {
		return nil
	}
	v := reflect.ValueOf(obj)

	var out []Member

	sv := v
	for sv.Kind() == reflect.Pointer && !sv.IsNil() {
		sv = sv.Elem()
	}
	if sv.Kind() == reflect.Struct {
		st := sv.Type()
		for i := range st.NumField() {
			f := st.Field(i)
			if !f.IsExported() {
				continue
			}
			out = append(out, Member{
				Name:  f.Name,
				Field: true,
				Type:  f.Type,
				value: sv.Field(i),
			})
		}
	}

	vt := v.Type()
	for i := range vt.NumMethod() {
		m := vt.Method(i)
		mt := m.Type
		var params []reflect.Type
		for j := 1; j < mt.NumIn(); j++ {
			params = append(params, mt.In(j))
		}
		var result reflect.Type
		if mt.NumOut() > 0 && mt.Out(0) != errorType {
			result = mt.Out(0)
		}
		out = append(out, Member{
			Name:   m.Name,
			Params: params,
			Type:   result,
			value:  v.Method(i),
		})
	}
	return out
}

var errorType = reflect.TypeFor[error]()

// CallMember reads, writes or invokes the scope member named by the first
// token of input. Remaining text is the value to assign or the method
// arguments. Among same-named candidates whose arguments all coerce, the one
// with the most primitive parameters wins.
func CallMember(types *parser.Types, obj any, input string, lookup parser.Lookup) (any, error) {
	if obj == nil {
		return nil, usage.NullObject("scope")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return nil, usage.MissingArgument("member name")
	}
	name, rest := input, ""
	if i := strings.IndexAny(input, " \t"); i >= 0 {
		name, rest = input[:i], strings.TrimSpace(input[i+1:])
	}

	var candidates []Member
	for _, m := range Members(obj) {
		if strings.EqualFold(m.Name, name) {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return nil, usage.Commandf("%s has no member '%s'", parser.TypeName(reflect.TypeOf(obj)), name)
	}

	type bound struct {
		member     Member
		args       []reflect.Value
		primitives int
	}
	var matches []bound
	var firstErr error

	for _, m := range candidates {
		params := m.Params
		if m.Field {
			if rest == "" {
				return m.value.Interface(), nil
			}
			params = []reflect.Type{m.Type}
		}
		args, err := types.CoerceAll(rest, params, lookup)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		n := 0
		for _, p := range params {
			if types.IsPrimitive(p) {
				n++
			}
		}
		matches = append(matches, bound{member: m, args: args, primitives: n})
	}

	if len(matches) == 0 {
		return nil, firstErr
	}
	slices.SortStableFunc(matches, func(a, b bound) int { return b.primitives - a.primitives })

	best := matches[0]
	if best.member.Field {
		if !best.member.value.CanSet() {
			return nil, usage.Commandf("field %s is not settable; scope must be a pointer", best.member.Name)
		}
		best.member.value.Set(best.args[0])
		return best.member.value.Interface(), nil
	}

	out := best.member.value.Call(best.args)
	var result any
	for _, o := range out {
		if o.Type() == errorType {
			if !o.IsNil() {
				return nil, o.Interface().(error)
			}
			continue
		}
		if result == nil {
			result = o.Interface()
		}
	}
	return result, nil
}
