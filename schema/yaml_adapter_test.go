package schema

import "testing"

func TestCompileYAMLSchemaMatchesJSONEquivalent(t *testing.T) {
	yamlDoc := []byte(`
type: object
required: [name]
properties:
  name:
    type: string
  age:
    type: integer
`)
	node, err := CompileYAMLSchema(yamlDoc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Kind() != KindObject {
		t.Fatalf("expected object kind, got %v", node.Kind())
	}
	fields := node.Fields()
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d: %+v", len(fields), fields)
	}
	var sawName, sawAge bool
	for _, f := range fields {
		switch f.Name {
		case "name":
			sawName = true
			if f.Node.Kind() != KindString || !f.Required {
				t.Fatalf("name field wrong: %+v", f)
			}
		case "age":
			sawAge = true
			if f.Node.Kind() != KindInteger || f.Required {
				t.Fatalf("age field wrong: %+v", f)
			}
		}
	}
	if !sawName || !sawAge {
		t.Fatalf("missing expected fields: %+v", fields)
	}
}

func TestCompileYAMLSchemaRejectsInvalidYAML(t *testing.T) {
	_, err := CompileYAMLSchema([]byte("not: [valid"))
	if err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}
