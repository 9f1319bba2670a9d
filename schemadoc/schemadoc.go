// Package schemadoc loads restval schemas from declarative documents. A
// document mirrors the literal configuration endpoint authors would write in
// code: a mapping with a "type" tag plus the attributes that variant needs.
//
//	type: object
//	param: request
//	properties:
//	  - {type: number, param: id, required: true}
//	  - {type: enum, param: mode, values: [list, detail]}
//	  - type: oneof
//	    param: filter
//	    overloads: [{type: string}, {type: array, items: {type: string}}]
//
// Documents are parsed once at startup; the resulting Schema is immutable and
// shared across requests.
package schemadoc

import (
	"errors"
	"fmt"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	restval "github.com/mwestly/restval"
)

// ErrMalformedDocument reports a document that could not be decoded or whose
// structure does not describe a schema node.
var ErrMalformedDocument = errors.New("schemadoc: malformed schema document")

// ErrUnknownType reports a node whose "type" tag names no schema variant.
var ErrUnknownType = errors.New("schemadoc: unknown schema type")

// ParseJSON decodes a JSON schema document into a Schema.
func ParseJSON(data []byte) (restval.Schema, error) {
	var doc any
	if err := gojson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return build(doc)
}

// ParseYAML decodes a YAML schema document into a Schema.
func ParseYAML(data []byte) (restval.Schema, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return build(normalizeYAML(doc))
}

func build(doc any) (restval.Schema, error) {
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: schema node must be a mapping, got %T", ErrMalformedDocument, doc)
	}
	meta := restval.Meta{}
	if p, ok := m["param"].(string); ok {
		meta.Name = p
	}
	if r, ok := m["required"].(bool); ok {
		meta.Required = r
	}
	tag, _ := m["type"].(string)
	switch tag {
	case "string":
		return restval.Primitive{Meta: meta, Type: restval.String}, nil
	case "number":
		return restval.Primitive{Meta: meta, Type: restval.Number}, nil
	case "boolean":
		return restval.Primitive{Meta: meta, Type: restval.Boolean}, nil
	case "null":
		return restval.Primitive{Meta: meta, Type: restval.Null}, nil
	case "primitive":
		return restval.Primitive{Meta: meta, Type: restval.AnyPrimitive}, nil
	case "object":
		return buildObject(meta, m)
	case "array":
		elem, err := build(m["items"])
		if err != nil {
			return nil, err
		}
		return restval.Array{Meta: meta, Elem: elem}, nil
	case "tuple":
		items, err := buildList(m["items"], "items")
		if err != nil {
			return nil, err
		}
		return restval.Tuple{Meta: meta, Items: items}, nil
	case "enum":
		return buildEnum(meta, m)
	case "oneof":
		alts, err := buildList(m["overloads"], "overloads")
		if err != nil {
			return nil, err
		}
		return restval.Overload{Meta: meta, Alternatives: alts}, nil
	case "":
		return nil, fmt.Errorf("%w: schema node has no type tag", ErrMalformedDocument)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, tag)
	}
}

func buildObject(meta restval.Meta, m map[string]any) (restval.Schema, error) {
	props, err := buildList(m["properties"], "properties")
	if err != nil {
		return nil, err
	}
	for _, p := range props {
		if restval.MetaOf(p).Name == "" {
			return nil, fmt.Errorf("%w: object property missing param name", ErrMalformedDocument)
		}
	}
	return restval.Object{Meta: meta, Properties: props}, nil
}

func buildEnum(meta restval.Meta, m map[string]any) (restval.Schema, error) {
	raw, ok := m["values"].([]any)
	if !ok || len(raw) == 0 {
		return nil, fmt.Errorf("%w: enum node needs a non-empty values list", ErrMalformedDocument)
	}
	for _, v := range raw {
		switch v.(type) {
		case string, bool, float64, int, int64, nil:
		default:
			return nil, fmt.Errorf("%w: enum value %v (%T) is not a primitive literal", ErrMalformedDocument, v, v)
		}
	}
	return restval.Enum{Meta: meta, Values: raw}, nil
}

func buildList(raw any, field string) ([]restval.Schema, error) {
	list, ok := raw.([]any)
	if !ok || len(list) == 0 {
		return nil, fmt.Errorf("%w: %s must be a non-empty list", ErrMalformedDocument, field)
	}
	out := make([]restval.Schema, 0, len(list))
	for _, item := range list {
		s, err := build(item)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// normalizeYAML rewrites yaml.v3 output into the string-keyed shape the JSON
// path produces. yaml.v3 already yields map[string]any for string keys; the
// recursive walk covers nested sequences and the map[any]any form older
// documents can still produce.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			out[ks] = normalizeYAML(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeYAML(val)
		}
		return out
	default:
		return v
	}
}
