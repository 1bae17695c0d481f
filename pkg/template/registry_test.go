package template_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/veverse/contractgen/pkg/template"
)

func testSchema() template.Schema {
	return template.Schema{
		Values:     []string{"contract", "price"},
		Predicates: []string{"native"},
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	registry := template.NewRegistry()
	doc := template.MustParse("contract {{contract}} costs {{#if native}}{{price}}{{/if}}")

	if err := registry.Register("mint", doc, testSchema()); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := registry.Lookup("mint")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}

	if !registry.Has("mint") {
		t.Fatal("Has(mint) = false after registration")
	}
	if diff := cmp.Diff([]string{"mint"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_LookupUnknown(t *testing.T) {
	registry := template.NewRegistry()

	_, err := registry.Lookup("missing")
	if !errors.Is(err, template.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Fatalf("error %q does not name the template", err)
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	registry := template.NewRegistry()
	doc := template.MustParse("{{contract}}")

	if err := registry.Register("mint", doc, testSchema()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register("mint", doc, testSchema()); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestRegistry_UndeclaredKeysFailRegistration(t *testing.T) {
	registry := template.NewRegistry()

	undeclaredValue := template.MustParse("{{owner}}")
	if err := registry.Register("bad-value", undeclaredValue, testSchema()); err == nil {
		t.Fatal("expected undeclared placeholder to fail registration")
	} else if !strings.Contains(err.Error(), `"owner"`) {
		t.Fatalf("error %q does not name the placeholder", err)
	}

	undeclaredPredicate := template.MustParse("{{#if paused}}x{{/if}}")
	if err := registry.Register("bad-predicate", undeclaredPredicate, testSchema()); err == nil {
		t.Fatal("expected undeclared predicate to fail registration")
	} else if !strings.Contains(err.Error(), `"paused"`) {
		t.Fatalf("error %q does not name the predicate", err)
	}

	nested := template.MustParse("{{#if native}}{{owner}}{{/if}}")
	if err := registry.Register("bad-nested", nested, testSchema()); err == nil {
		t.Fatal("expected undeclared nested placeholder to fail registration")
	}

	if registry.Has("bad-value") || registry.Has("bad-predicate") || registry.Has("bad-nested") {
		t.Fatal("failed registrations must not be stored")
	}
}

func TestRegistry_SchemaFor(t *testing.T) {
	registry := template.NewRegistry()
	schema := testSchema()
	registry.MustRegister("mint", template.MustParse("{{price}}"), schema)

	got, err := registry.SchemaFor("mint")
	if err != nil {
		t.Fatalf("schema for: %v", err)
	}
	if diff := cmp.Diff(schema, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}

	if _, err := registry.SchemaFor("missing"); !errors.Is(err, template.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
