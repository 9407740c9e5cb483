package schema

import (
	"reflect"
	"sync"
)

// FromType derives a Node tree from a Go type via reflection and the
// `jsonish` struct tag, the way the struct-tag generator this package
// borrows its tag grammar from derives a JSON Schema document from a Go
// struct. It is the façade's path for `ParseInto[T](input)` calls, where
// the caller already has a concrete destination type instead of a
// hand-built schema.Node tree.
//
// Struct types are memoized by reflect.Type so a recursive Go type (a
// struct with a field of its own pointer/slice type) produces a recursive
// Alias node instead of overflowing the stack.
func FromType(t reflect.Type) Node {
	b := &reflectBuilder{seen: make(map[reflect.Type]Node)}
	return b.build(t)
}

type reflectBuilder struct {
	mu   sync.Mutex
	seen map[reflect.Type]Node
}

func (b *reflectBuilder) build(t reflect.Type) Node {
	for t.Kind() == reflect.Ptr {
		inner := b.build(t.Elem())
		return Nullable(inner)
	}

	if n, ok := b.lookup(t); ok {
		return n
	}

	switch t.Kind() {
	case reflect.String:
		return Primitive(t, String())
	case reflect.Bool:
		return Primitive(t, Boolean())
	case reflect.Float32, reflect.Float64:
		return Primitive(t, Number())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Primitive(t, Integer())
	case reflect.Slice, reflect.Array:
		return Array(b.build(t.Elem()))
	case reflect.Map:
		return Map(b.build(t.Elem()))
	case reflect.Struct:
		return b.buildStruct(t)
	case reflect.Interface:
		return Any()
	default:
		return Any()
	}
}

// Primitive lets callers attach an enum/literal node in place of a bare
// scalar when a Go type carries PermittedValues (see EnumType below);
// ordinary scalar types just get the plain leaf back.
func Primitive(t reflect.Type, plain Node) Node {
	if ev, ok := reflect.New(t).Interface().(EnumType); ok {
		return Enum(ev.PermittedValues())
	}
	return plain
}

// EnumType lets a named Go type (typically a string- or int-based type)
// describe its own permitted values, so FromType can build an Enum node
// for it instead of a bare scalar.
type EnumType interface {
	PermittedValues() []any
}

func (b *reflectBuilder) lookup(t reflect.Type) (Node, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n, ok := b.seen[t]
	return n, ok
}

func (b *reflectBuilder) buildStruct(t reflect.Type) Node {
	placeholder := Alias(t.String(), nil)
	b.mu.Lock()
	b.seen[t] = placeholder
	b.mu.Unlock()

	fields := make([]Field, 0, t.NumField())
	discriminatorField := ""

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := parseFieldTag(sf.Tag.Get(tagName))
		if tag.Skip {
			continue
		}

		name := jsonFieldName(sf.Name, sf.Tag.Get("json"))
		var fieldNode Node
		if tag.hasLiteral {
			fieldNode = Literal(tag.Literal)
		} else {
			fieldNode = b.build(sf.Type)
		}

		required := tag.Required
		nullable := false
		if fn, ok := fieldNode.(*node); ok {
			switch fn.kind {
			case KindNullable:
				nullable = true
			case KindOptional:
				required = false
			}
		}
		if sf.Type.Kind() != reflect.Ptr && !tag.Required {
			required = false
			fieldNode = Optional(fieldNode)
		}

		if tag.Discriminator {
			discriminatorField = name
		}

		fields = append(fields, Field{
			Name:     name,
			Node:     fieldNode,
			Required: required,
			Nullable: nullable,
			Aliases:  tag.Aliases,
		})
	}

	obj := Object(fields).(*node)
	if discriminatorField != "" {
		obj.discriminator = &Discriminator{PropertyName: discriminatorField}
	}

	// Replace the placeholder's resolver so any field that captured it
	// while this struct was still being built now resolves to the real
	// object node, exactly once.
	alias := placeholder.(*node)
	alias.resolve = func() Node { return obj }

	b.mu.Lock()
	b.seen[t] = obj
	b.mu.Unlock()
	return obj
}
