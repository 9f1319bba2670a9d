package restval

// Package restval validates inbound request payloads against declarative
// schemas and reports violations as structured, endpoint-ready error records.
//
// It provides:
//
// - A schema algebra as a tagged union: primitives, objects, arrays, tuples,
//   enumerated value sets, and overloads (first-match alternatives)
// - A recursive validator with fail-fast semantics: the first violation found
//   anywhere in the value tree is returned as an ErrorRecord, never thrown
// - A stable error contract ({status, name, message}) whose message strings
//   are part of the wire format consumed by endpoint callers
//
// Design policy:
// - Keep the schema types and the validator in the root package; put schema
//   document loading under schemadoc/, endpoint glue under restlet/, and the
//   CLI under cmd/restval.
// - Validation is a pure function of (value, schema). Schemas are immutable
//   after construction and safe to share across concurrent requests.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	schema := restval.Object{
//		Meta: restval.Req("request"),
//		Properties: []restval.Schema{
//			restval.Primitive{Meta: restval.Req("id"), Type: restval.Number},
//			restval.Enum{Meta: restval.Opt("mode"), Values: []any{"list", "detail"}},
//		},
//	}
//	if rec := restval.Check(payload, schema); rec != nil {
//		// rec.Status, rec.Name, rec.Message are ready for the response.
//	}
