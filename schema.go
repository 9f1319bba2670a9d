package restval

// Meta carries the attributes every schema node shares: the parameter name
// used in error messages and the required flag. Both are zero for nodes
// addressed positionally (array elements, tuple positions, overload
// alternatives) and for an unnamed schema root; such nodes render as
// "[root or array member]" in messages.
type Meta struct {
	Name     string
	Required bool
}

// Req returns a Meta for a required named parameter.
func Req(name string) Meta { return Meta{Name: name, Required: true} }

// Opt returns a Meta for an optional named parameter.
func Opt(name string) Meta { return Meta{Name: name} }

// Schema is the tagged union of shape descriptions. The variants are the
// exported structs below; the unexported method seals the set so the
// validator's type switch is exhaustive. Schemas are constructed once as
// static configuration and never mutated by validation.
type Schema interface {
	schemaMeta() Meta
}

// PrimitiveType selects which primitive class a Primitive schema accepts.
type PrimitiveType int

const (
	String PrimitiveType = iota
	Number
	Boolean
	Null
	// AnyPrimitive accepts any of string/number/boolean/null but rejects
	// arrays and objects.
	AnyPrimitive
)

// Primitive expects a single primitive value.
type Primitive struct {
	Meta
	Type PrimitiveType
}

// Object expects a string-keyed object. Properties is the ordered list of
// declared children; each child's name and required flag live on its own
// Meta. Keys present in the value but not declared here are violations.
type Object struct {
	Meta
	Properties []Schema
}

// Array expects an array whose every element matches Elem. Elem is addressed
// positionally and normally carries an empty Meta.
type Array struct {
	Meta
	Elem Schema
}

// Tuple expects an array with one schema per fixed position. Elements beyond
// the declared length are ignored; a shorter array is a missing-parameter
// violation at the first absent index.
type Tuple struct {
	Meta
	Items []Schema
}

// Enum expects one of a closed set of literal values (strings, numbers,
// booleans, or nil). Enums are leaves; no recursion happens beneath them.
type Enum struct {
	Meta
	Values []any
}

// Overload expects a value matching at least one of the alternatives, tried
// in order. Alternatives are addressed positionally.
type Overload struct {
	Meta
	Alternatives []Schema
}

// MetaOf returns the name/required attributes of any schema node.
func MetaOf(s Schema) Meta { return s.schemaMeta() }

func (p Primitive) schemaMeta() Meta { return p.Meta }
func (o Object) schemaMeta() Meta    { return o.Meta }
func (a Array) schemaMeta() Meta     { return a.Meta }
func (t Tuple) schemaMeta() Meta     { return t.Meta }
func (e Enum) schemaMeta() Meta      { return e.Meta }
func (o Overload) schemaMeta() Meta  { return o.Meta }
