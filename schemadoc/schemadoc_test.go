package schemadoc_test

import (
	"errors"
	"reflect"
	"testing"

	restval "github.com/mwestly/restval"
	"github.com/mwestly/restval/schemadoc"
)

const requestYAML = `
type: object
param: request
required: true
properties:
  - {type: number, param: id, required: true}
  - {type: enum, param: mode, values: [list, detail]}
  - type: tuple
    param: range
    items: [{type: number}, {type: number}]
  - type: oneof
    param: filter
    overloads:
      - {type: string}
      - {type: array, items: {type: string}}
`

func TestParseYAML_FullDocument(t *testing.T) {
	s, err := schemadoc.ParseYAML([]byte(requestYAML))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	want := restval.Object{
		Meta: restval.Req("request"),
		Properties: []restval.Schema{
			restval.Primitive{Meta: restval.Req("id"), Type: restval.Number},
			restval.Enum{Meta: restval.Opt("mode"), Values: []any{"list", "detail"}},
			restval.Tuple{Meta: restval.Opt("range"), Items: []restval.Schema{
				restval.Primitive{Type: restval.Number},
				restval.Primitive{Type: restval.Number},
			}},
			restval.Overload{Meta: restval.Opt("filter"), Alternatives: []restval.Schema{
				restval.Primitive{Type: restval.String},
				restval.Array{Elem: restval.Primitive{Type: restval.String}},
			}},
		},
	}
	if !reflect.DeepEqual(s, want) {
		t.Fatalf("schema mismatch:\n got  %#v\n want %#v", s, want)
	}
}

func TestParseYAML_SchemaValidatesPayloads(t *testing.T) {
	s, err := schemadoc.ParseYAML([]byte(requestYAML))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	ok := map[string]any{
		"id":     float64(7),
		"mode":   "list",
		"range":  []any{float64(0), float64(10)},
		"filter": []any{"a", "b"},
	}
	if rec := restval.Check(ok, s); rec != nil {
		t.Fatalf("expected payload to validate, got %v", rec)
	}
	if rec := restval.Check(map[string]any{"mode": "list"}, s); rec == nil {
		t.Fatalf("expected missing id to be rejected")
	}
}

func TestParseJSON_MatchesYAML(t *testing.T) {
	jsonDoc := []byte(`{
		"type": "object",
		"param": "request",
		"properties": [
			{"type": "boolean", "param": "flag", "required": true}
		]
	}`)
	s, err := schemadoc.ParseJSON(jsonDoc)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	want := restval.Object{
		Meta: restval.Opt("request"),
		Properties: []restval.Schema{
			restval.Primitive{Meta: restval.Req("flag"), Type: restval.Boolean},
		},
	}
	if !reflect.DeepEqual(s, want) {
		t.Fatalf("schema mismatch:\n got  %#v\n want %#v", s, want)
	}
}

func TestParse_DocumentErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"not a mapping", `[1, 2]`, schemadoc.ErrMalformedDocument},
		{"missing type", `{"param": "x"}`, schemadoc.ErrMalformedDocument},
		{"unknown type", `{"type": "uuid", "param": "x"}`, schemadoc.ErrUnknownType},
		{"empty enum", `{"type": "enum", "param": "x", "values": []}`, schemadoc.ErrMalformedDocument},
		{"non-primitive enum value", `{"type": "enum", "param": "x", "values": [["a"]]}`, schemadoc.ErrMalformedDocument},
		{"unnamed object property", `{"type": "object", "properties": [{"type": "string"}]}`, schemadoc.ErrMalformedDocument},
		{"tuple without items", `{"type": "tuple", "param": "x"}`, schemadoc.ErrMalformedDocument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schemadoc.ParseJSON([]byte(tc.doc))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestParseYAML_RejectsInvalidYAML(t *testing.T) {
	_, err := schemadoc.ParseYAML([]byte("type: [unclosed"))
	if !errors.Is(err, schemadoc.ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
}
