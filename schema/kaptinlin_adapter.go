package schema

import (
	"fmt"
	"sort"

	kjsonschema "github.com/kaptinlin/jsonschema"
)

// CompileJSONSchema compiles a JSON Schema 2020-12 document with the real
// kaptinlin/jsonschema compiler and converts the result into a Node tree,
// so callers that already own JSON Schema documents (rather than Go
// structs) can drive the coercer directly.
func CompileJSONSchema(document []byte) (Node, error) {
	compiler := kjsonschema.NewCompiler()
	compiled, err := compiler.Compile(document)
	if err != nil {
		return nil, fmt.Errorf("compile json schema: %w", err)
	}
	return FromJSONSchema(compiled), nil
}

// FromJSONSchema converts an already-compiled *kjsonschema.Schema into a
// Node tree. The conversion is a shape projection: it reads the keywords
// the coercer needs (type, properties, items, enum, const, oneOf/anyOf,
// required) and ignores pure-validation keywords (minLength, pattern,
// multipleOf, ...), which are a non-goal for this engine.
//
// kaptinlin/jsonschema.SchemaMap is a plain Go map, so property order is
// not preserved by the underlying library; this adapter lists required
// properties first (in the schema's declared Required order) followed by
// the remaining optional properties sorted by name. Prefer FromType for
// Go-struct targets, which preserves true declaration order.
func FromJSONSchema(s *kjsonschema.Schema) Node {
	c := &kschemaConverter{seen: make(map[*kjsonschema.Schema]Node)}
	return c.convert(s)
}

type kschemaConverter struct {
	seen map[*kjsonschema.Schema]Node
}

func (c *kschemaConverter) convert(s *kjsonschema.Schema) Node {
	if s == nil {
		return Any()
	}
	if n, ok := c.seen[s]; ok {
		return n
	}

	if s.Ref != "" && s.ResolvedRef != nil {
		placeholder := Alias(s.Ref, nil)
		c.seen[s] = placeholder
		resolved := c.convert(s.ResolvedRef)
		if p, ok := placeholder.(*node); ok {
			p.resolve = func() Node { return resolved }
		}
		return placeholder
	}

	if s.Const != nil && s.Const.IsSet {
		n := Literal(s.Const.Value)
		c.seen[s] = n
		return n
	}
	if len(s.Enum) > 0 {
		n := Enum(s.Enum)
		c.seen[s] = n
		return n
	}

	if len(s.OneOf) > 0 {
		n := c.union(s.OneOf)
		c.seen[s] = n
		return n
	}
	if len(s.AnyOf) > 0 {
		n := c.union(s.AnyOf)
		c.seen[s] = n
		return n
	}

	kind := primaryType(s.Type)
	switch kind {
	case KindArray:
		var elem Node = Any()
		if s.Items != nil {
			elem = c.convert(s.Items)
		}
		n := Array(elem)
		c.seen[s] = n
		return n
	case KindObject:
		n := c.object(s)
		c.seen[s] = n
		return n
	case KindNull:
		n := Null()
		c.seen[s] = n
		return n
	case KindInteger:
		n := Integer()
		c.seen[s] = n
		return n
	case KindNumber:
		n := Number()
		c.seen[s] = n
		return n
	case KindBoolean:
		n := Boolean()
		c.seen[s] = n
		return n
	case KindString:
		n := String()
		c.seen[s] = n
		return n
	default:
		n := Any()
		c.seen[s] = n
		return n
	}
}

func (c *kschemaConverter) union(options []*kjsonschema.Schema) Node {
	nodes := make([]Node, 0, len(options))
	for _, o := range options {
		nodes = append(nodes, c.convert(o))
	}
	return Union(nodes...)
}

func (c *kschemaConverter) object(s *kjsonschema.Schema) Node {
	required := make(map[string]bool, len(s.Required))
	for _, r := range s.Required {
		required[r] = true
	}

	var props map[string]*kjsonschema.Schema
	if s.Properties != nil {
		props = map[string]*kjsonschema.Schema(*s.Properties)
	}

	ordered := make([]string, 0, len(props))
	for name := range props {
		if !required[name] {
			ordered = append(ordered, name)
		}
	}
	sort.Strings(ordered)
	ordered = append(append([]string{}, s.Required...), ordered...)

	fields := make([]Field, 0, len(ordered))
	for _, name := range ordered {
		propSchema, ok := props[name]
		if !ok {
			continue
		}
		fieldNode := c.convert(propSchema)
		fields = append(fields, Field{
			Name:     name,
			Node:     fieldNode,
			Required: required[name],
		})
	}

	open := true
	if s.AdditionalProperties != nil && s.AdditionalProperties.Boolean != nil && !*s.AdditionalProperties.Boolean {
		open = false
	}

	opts := []ObjectOption{}
	if !open {
		opts = append(opts, Strict)
	}
	return Object(fields, opts...)
}

// primaryType picks the shape used for coercion dispatch when a JSON
// Schema node names more than one `type`. Object and array take priority
// over scalar alternatives because they carry their own nested shape; among
// scalars the first declared type wins, matching the union coercer's
// declaration-order tie-break (§4.4.2.d of the coercion design).
func primaryType(t kjsonschema.SchemaType) Kind {
	if len(t) == 0 {
		return KindAny
	}
	for _, candidate := range t {
		switch candidate {
		case "object":
			return KindObject
		case "array":
			return KindArray
		}
	}
	switch t[0] {
	case "string":
		return KindString
	case "integer":
		return KindInteger
	case "number":
		return KindNumber
	case "boolean":
		return KindBoolean
	case "null":
		return KindNull
	default:
		return KindAny
	}
}
