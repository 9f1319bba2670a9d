package restval

import (
	"encoding/json"
	"fmt"
)

// Type is the runtime classification of a JSON-compatible value. The string
// values appear verbatim in error messages.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeNull    Type = "null"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// Classify reports the runtime class of v. It accepts exactly the shapes a
// JSON decoder produces (string, bool, float64, json.Number, nil, []any,
// map[string]any) plus the native numeric literals hand-built schemas and
// payloads use. Anything else violates the caller's contract of supplying
// JSON-compatible input, which is an internal invariant: Classify panics
// rather than guessing a class.
func Classify(v any) Type {
	switch v.(type) {
	case string:
		return TypeString
	case bool:
		return TypeBoolean
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		json.Number:
		return TypeNumber
	case nil:
		return TypeNull
	case []any:
		return TypeArray
	case map[string]any:
		return TypeObject
	default:
		panic(fmt.Sprintf("restval: value of type %T is not JSON-compatible", v))
	}
}
