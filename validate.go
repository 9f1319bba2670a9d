package restval

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// anonymousName labels the schema root and positionally addressed members,
// which carry no parameter name of their own.
const anonymousName = "[root or array member]"

// Value is one validation input: a JSON-compatible value plus a presence
// flag, so a key that was never supplied can be told apart from an explicit
// null.
type Value struct {
	v       any
	present bool
}

// Of wraps a present value.
func Of(v any) Value { return Value{v: v, present: true} }

// Absent is the Value of a key that was not supplied at all.
func Absent() Value { return Value{} }

// Check validates a present value against s. See Validate.
func Check(v any, s Schema) *ErrorRecord { return Validate(Of(v), s) }

// Validate walks v against s and returns the first violation found, or nil
// when v conforms. Validation is fail-fast: once any node reports a record
// the walk stops and siblings are not examined. Validate is a pure function
// of its inputs; schemas are read-only, so concurrent calls need no
// coordination.
func Validate(v Value, s Schema) *ErrorRecord {
	m := s.schemaMeta()
	if !v.present {
		if m.Required {
			return errMissing(displayName(m))
		}
		// Omission of an optional position short-circuits every deeper
		// check, including nested required properties.
		return nil
	}
	switch sc := s.(type) {
	case Enum:
		return validateEnum(v.v, sc)
	case Overload:
		return validateOverload(v.v, sc)
	case Primitive:
		return validatePrimitive(v.v, sc)
	case Array:
		return validateArray(v.v, sc)
	case Tuple:
		return validateTuple(v.v, sc)
	case Object:
		return validateObject(v.v, sc)
	default:
		panic(fmt.Sprintf("restval: unknown schema variant %T", s))
	}
}

func displayName(m Meta) string {
	if m.Name == "" {
		return anonymousName
	}
	return m.Name
}

// validateEnum checks literal membership. Enums are leaves: a member value is
// valid with no further recursion, whatever its class.
func validateEnum(v any, sc Enum) *ErrorRecord {
	for _, allowed := range sc.Values {
		if literalEqual(v, allowed) {
			return nil
		}
	}
	return errInvalidValue(displayName(sc.Meta), formatLiteral(v), jsonText(sc.Values))
}

// validateOverload tries each alternative in order; the first match wins. A
// type or value mismatch merely rules the alternative out, but any other
// category (a missing required property inside an object alternative, an
// unexpected key) indicates a structural problem worth surfacing directly,
// so it bubbles immediately instead of being treated as a failed match.
func validateOverload(v any, sc Overload) *ErrorRecord {
	for _, alt := range sc.Alternatives {
		rec := Validate(Of(v), alt)
		if rec == nil {
			return nil
		}
		if rec.Name != NameWrongType && rec.Name != NameInvalidValue {
			return rec
		}
	}
	return errWrongType(displayName(sc.Meta), string(Classify(v)), overloadLabel(sc))
}

func validatePrimitive(v any, sc Primitive) *ErrorRecord {
	actual := Classify(v)
	if sc.Type == AnyPrimitive {
		if actual == TypeArray || actual == TypeObject {
			return errWrongType(displayName(sc.Meta), string(actual), "primitive")
		}
		return nil
	}
	want := primitiveTypeName(sc.Type)
	if actual != want {
		return errWrongType(displayName(sc.Meta), string(actual), string(want))
	}
	return nil
}

func validateArray(v any, sc Array) *ErrorRecord {
	actual := Classify(v)
	if actual != TypeArray {
		return errWrongType(displayName(sc.Meta), string(actual), "array")
	}
	for _, elem := range v.([]any) {
		if rec := Validate(Of(elem), sc.Elem); rec != nil {
			return rec
		}
	}
	return nil
}

// validateTuple treats the value as an array with per-position schemas. The
// array may be longer than the declared positions; a shorter array is a
// missing parameter at the first absent index.
func validateTuple(v any, sc Tuple) *ErrorRecord {
	actual := Classify(v)
	if actual != TypeArray {
		return errWrongType(displayName(sc.Meta), string(actual), "tuple")
	}
	arr := v.([]any)
	for i, item := range sc.Items {
		if i >= len(arr) {
			return errMissing(fmt.Sprintf("%s tuple, index %d", displayName(sc.Meta), i))
		}
		if rec := Validate(Of(arr[i]), item); rec != nil {
			return rec
		}
	}
	return nil
}

// validateObject runs two passes. The first enforces presence of every
// declared required property; it runs before unknown-key detection, so a
// missing required property wins over an unexpected key elsewhere in the
// same object. The second pass walks the value's own keys, rejecting
// undeclared ones and recursing into declared ones. Go maps carry no
// insertion order, so the second pass visits keys in sorted order for
// deterministic results.
func validateObject(v any, sc Object) *ErrorRecord {
	actual := Classify(v)
	if actual != TypeObject {
		return errWrongType(displayName(sc.Meta), string(actual), "object")
	}
	obj := v.(map[string]any)

	declared := make(map[string]Schema, len(sc.Properties))
	for _, prop := range sc.Properties {
		pm := prop.schemaMeta()
		declared[pm.Name] = prop
		if pm.Required {
			if _, ok := obj[pm.Name]; !ok {
				return errMissing(displayName(pm))
			}
		}
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		prop, ok := declared[k]
		if !ok {
			return errUnexpected(k)
		}
		if rec := Validate(Of(obj[k]), prop); rec != nil {
			return rec
		}
	}
	return nil
}

func primitiveTypeName(t PrimitiveType) Type {
	switch t {
	case String:
		return TypeString
	case Number:
		return TypeNumber
	case Boolean:
		return TypeBoolean
	case Null:
		return TypeNull
	default:
		panic(fmt.Sprintf("restval: unknown primitive type %d", t))
	}
}

// typeLabel renders a schema's tag for overload descriptions; array and
// tuple alternatives include their nested element type(s) in parentheses.
func typeLabel(s Schema) string {
	switch sc := s.(type) {
	case Primitive:
		if sc.Type == AnyPrimitive {
			return "primitive"
		}
		return string(primitiveTypeName(sc.Type))
	case Object:
		return "object"
	case Array:
		return "array (" + typeLabel(sc.Elem) + ")"
	case Tuple:
		parts := make([]string, len(sc.Items))
		for i, item := range sc.Items {
			parts[i] = typeLabel(item)
		}
		return "tuple (" + strings.Join(parts, ", ") + ")"
	case Enum:
		return "enum " + jsonText(sc.Values)
	case Overload:
		return overloadLabel(sc)
	default:
		panic(fmt.Sprintf("restval: unknown schema variant %T", s))
	}
}

func overloadLabel(sc Overload) string {
	parts := make([]string, len(sc.Alternatives))
	for i, alt := range sc.Alternatives {
		parts[i] = typeLabel(alt)
	}
	return strings.Join(parts, ", ")
}

// literalEqual compares two primitive literals. Numbers compare numerically
// so an enum declared with untyped Go ints still matches decoded float64 or
// json.Number input.
func literalEqual(a, b any) bool {
	na, aok := numeric(a)
	nb, bok := numeric(b)
	if aok || bok {
		return aok && bok && na == nb
	}
	return a == b
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// formatLiteral renders a rejected value for the invalid-value message.
// Strings appear bare (the template supplies the surrounding quotes);
// everything else uses its JSON rendering.
func formatLiteral(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return jsonText(v)
}

func jsonText(v any) string {
	b, err := gojson.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
