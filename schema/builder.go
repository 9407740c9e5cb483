package schema

import (
	"fmt"
	"sync"
)

// node is the concrete Node implementation used by every constructor in
// this file. It plays the role the teacher's Schema struct plays for full
// JSON Schema: one shape carrying every keyword a node might need, selected
// by kind. Unlike the teacher's Schema, this tree has no validation
// keywords (minLength, pattern, multipleOf, ...) because constraint
// validation is out of scope for a coercion engine; it only carries the
// shape information §6 requires.
type node struct {
	kind Kind
	id   string

	elem     Node
	mapKey   Node
	mapValue Node

	fields []Field
	open   bool

	options       []Node
	discriminator *Discriminator

	literal any

	enumValues  []any
	enumAliases [][]string

	inner Node

	// resolve backs an alias (recursive) node: it is called lazily so
	// self-referential schemas can be built without a chicken-and-egg
	// problem at construction time.
	resolve func() Node
	once    sync.Once
	cached  Node
}

var idSeq struct {
	mu sync.Mutex
	n  int
}

func nextID(prefix string) string {
	idSeq.mu.Lock()
	idSeq.n++
	n := idSeq.n
	idSeq.mu.Unlock()
	return fmt.Sprintf("%s#%d", prefix, n)
}

func (n *node) Kind() Kind        { return n.kind }
func (n *node) Identity() string  { return n.id }
func (n *node) Element() Node     { return n.elem }
func (n *node) MapKey() Node      { return n.mapKey }
func (n *node) MapValue() Node    { return n.mapValue }
func (n *node) Fields() []Field   { return n.fields }
func (n *node) OpenObject() bool  { return n.open }
func (n *node) Options() []Node   { return n.options }
func (n *node) LiteralValue() any { return n.literal }
func (n *node) EnumValues() []any { return n.enumValues }

func (n *node) EnumAliases() [][]string { return n.enumAliases }

func (n *node) DiscriminatorSpec() *Discriminator { return n.discriminator }

func (n *node) Inner() Node {
	if n.resolve != nil {
		n.once.Do(func() { n.cached = n.resolve() })
		return n.cached
	}
	return n.inner
}

// String builds a string-shaped leaf node.
func String() Node { return &node{kind: KindString, id: nextID("string")} }

// Number builds a floating-point-shaped leaf node.
func Number() Node { return &node{kind: KindNumber, id: nextID("number")} }

// Integer builds an integer-shaped leaf node.
func Integer() Node { return &node{kind: KindInteger, id: nextID("integer")} }

// Boolean builds a boolean-shaped leaf node.
func Boolean() Node { return &node{kind: KindBoolean, id: nextID("boolean")} }

// Null builds a null-shaped leaf node.
func Null() Node { return &node{kind: KindNull, id: nextID("null")} }

// Any builds a node that accepts any shape unmodified.
func Any() Node { return &node{kind: KindAny, id: nextID("any")} }

// Array builds an array node with the given element schema.
func Array(elem Node) Node {
	return &node{kind: KindArray, id: nextID("array"), elem: elem}
}

// ObjectOption configures Object beyond its field list.
type ObjectOption func(*node)

// Open marks an object schema as accepting (and silently dropping) keys it
// did not declare, at zero penalty. This is the package default; pass
// Strict to the contrary.
func Open(n *node) { n.open = true }

// Strict marks an object schema as penalizing undeclared input keys.
func Strict(n *node) { n.open = false }

// Object builds an object node from its declared fields. Objects are open
// (undeclared keys are dropped silently, ExtraKey penalty 0) unless Strict
// is passed — see the Open-objects Open Question in DESIGN.md.
func Object(fields []Field, opts ...ObjectOption) Node {
	n := &node{kind: KindObject, id: nextID("object"), fields: fields, open: true}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Map builds a map/record node with string-like keys and the given value
// schema.
func Map(value Node) Node {
	return &node{kind: KindMap, id: nextID("map"), mapKey: String(), mapValue: value}
}

// Union builds an undiscriminated union node from its ordered options.
func Union(options ...Node) Node {
	return &node{kind: KindUnion, id: nextID("union"), options: options}
}

// DiscriminatedUnion builds a union node that consults propertyName before
// running the two-phase try-cast/coerce algorithm. mapping, when non-nil,
// maps a discriminator value to the selected option's index.
func DiscriminatedUnion(propertyName string, mapping map[string]int, options ...Node) Node {
	return &node{
		kind:          KindUnion,
		id:            nextID("union"),
		options:       options,
		discriminator: &Discriminator{PropertyName: propertyName, Mapping: mapping},
	}
}

// Literal builds a node that only accepts a single exact value.
func Literal(value any) Node {
	return &node{kind: KindLiteral, id: nextID("literal"), literal: value}
}

// Enum builds a node accepting any of values. aliases, when provided, must
// align index-for-index with values and lists additional accepted
// spellings for that member.
func Enum(values []any, aliases ...[][]string) Node {
	n := &node{kind: KindEnum, id: nextID("enum"), enumValues: values}
	if len(aliases) > 0 {
		n.enumAliases = aliases[0]
	}
	return n
}

// Optional wraps inner so a missing field defaults to absent rather than
// failing as a missing required field.
func Optional(inner Node) Node {
	return &node{kind: KindOptional, id: nextID("optional"), inner: inner}
}

// Nullable wraps inner so an explicit Null value, or a missing field,
// resolves to null rather than failing or requiring a value.
func Nullable(inner Node) Node {
	return &node{kind: KindNullable, id: nextID("nullable"), inner: inner}
}

// Alias builds a self-referential node. resolve is called lazily (and at
// most once) on first descent, which is what lets a recursive schema be
// constructed without evaluating itself during construction.
func Alias(name string, resolve func() Node) Node {
	return &node{kind: KindAlias, id: "alias:" + name, resolve: resolve}
}
