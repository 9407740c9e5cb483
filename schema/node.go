// Package schema defines the read-only introspection contract the coercer
// needs from a target type description, plus two concrete adapters: one
// backed by Go reflection and struct tags, and one backed by a real
// github.com/kaptinlin/jsonschema document. The core coercer depends only on
// the Node interface in this file, never on a specific schema library.
package schema

// Kind is the shape a Node exposes to the coercer.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindInteger
	KindBoolean
	KindNull
	KindArray
	KindObject
	KindMap
	KindUnion
	KindLiteral
	KindEnum
	KindOptional
	KindNullable
	KindAlias // recursive/self-referential node, resolved lazily via Inner
	KindAny
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindMap:
		return "map"
	case KindUnion:
		return "union"
	case KindLiteral:
		return "literal"
	case KindEnum:
		return "enum"
	case KindOptional:
		return "optional"
	case KindNullable:
		return "nullable"
	case KindAlias:
		return "alias"
	case KindAny:
		return "any"
	default:
		return "unknown"
	}
}

// Field describes one declared member of an object Node, in declaration
// order. Aliases are additional acceptable spellings of Name beyond the
// trimmed/case-insensitive tiers the object coercer always tries.
type Field struct {
	Name     string
	Node     Node
	Required bool
	Nullable bool
	Aliases  []string
}

// Discriminator names a field whose literal/enum value should be consulted
// before running the full two-phase union algorithm.
type Discriminator struct {
	PropertyName string
	// Mapping, when non-nil, maps a discriminator value to the union
	// option index it selects. When nil, the union coercer does not use
	// the discriminator at all and runs the two-phase algorithm as for an
	// undiscriminated union.
	Mapping map[string]int
}

// Node is the minimal read-only capability the core engine requires from a
// schema library, per the "Schema Introspection Adapter" component. Any
// library that can answer these questions can drive the coercer; the core
// never imports a specific schema package's concrete types.
type Node interface {
	// Kind reports the node's shape.
	Kind() Kind

	// Identity returns a stable pointer-ish identity usable as a
	// recursion-guard cache key. Two Node values describing the same
	// schema location must return the same Identity.
	Identity() string

	// Element returns the element schema of an array Node.
	Element() Node

	// MapKey and MapValue return the key/value schemas of a map Node.
	// MapKey is always string-shaped in practice but is exposed for
	// completeness.
	MapKey() Node
	MapValue() Node

	// Fields returns the declared, ordered fields of an object Node.
	Fields() []Field

	// OpenObject reports whether an object Node accepts (and silently
	// drops, at zero penalty) properties it did not declare. A strict
	// object penalizes extra keys instead.
	OpenObject() bool

	// Options returns the ordered member schemas of a union Node.
	Options() []Node

	// DiscriminatorSpec returns the union's discriminator, or nil if the
	// union has none.
	DiscriminatorSpec() *Discriminator

	// LiteralValue returns the single permitted value of a literal Node.
	LiteralValue() any

	// EnumValues returns the permitted values of an enum Node, alongside
	// any declared alias spellings per value (same index alignment).
	EnumValues() []any
	EnumAliases() [][]string

	// Inner returns the wrapped schema of an optional/nullable/alias
	// Node. For an alias Node this resolves the lazy self-reference.
	Inner() Node
}
