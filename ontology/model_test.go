package ontology

import (
	"errors"
	"testing"
)

func testClasses() []Class {
	return []Class{
		{Name: "ChemicalReaction", IRI: "https://cwrusdle.bitbucket.io/mds/ChemicalReaction", Parent: "PlannedProcess"},
		{Name: "PlannedProcess", IRI: "http://purl.obolibrary.org/obo/OBI_0000011", Parent: "Process"},
		{Name: "Process", IRI: "http://purl.obolibrary.org/obo/BFO_0000015"},
		{Name: "Component", IRI: "https://cwrusdle.bitbucket.io/mds/Component"},
	}
}

func testProperties() []Property {
	return []Property{
		{Label: "has input", IRI: "https://cwrusdle.bitbucket.io/mds/hasInput", Kind: ObjectProperty},
		{Label: "has text value", IRI: "https://cwrusdle.bitbucket.io/mds/hasTextValue", Kind: DatatypeProperty},
	}
}

func TestModelClassLookup(t *testing.T) {
	m := NewModel(testClasses(), testProperties())

	c, err := m.Class("ChemicalReaction")
	if err != nil {
		t.Fatalf("Class() error = %v", err)
	}
	if c.IRI != "https://cwrusdle.bitbucket.io/mds/ChemicalReaction" {
		t.Errorf("unexpected IRI %s", c.IRI)
	}

	_, err = m.Class("NoSuchClass")
	if !errors.Is(err, ErrClassNotFound) {
		t.Errorf("expected ErrClassNotFound, got %v", err)
	}

	if !m.HasClass("Component") {
		t.Error("expected HasClass(Component) = true")
	}
	if m.HasClass("Missing") {
		t.Error("expected HasClass(Missing) = false")
	}
	if m.ClassCount() != 4 {
		t.Errorf("expected 4 classes, got %d", m.ClassCount())
	}
}

func TestModelAncestors(t *testing.T) {
	m := NewModel(testClasses(), nil)

	chain := m.Ancestors("ChemicalReaction")
	if len(chain) != 2 {
		t.Fatalf("expected 2 ancestors, got %d", len(chain))
	}
	if chain[0].Name != "PlannedProcess" {
		t.Errorf("expected nearest ancestor PlannedProcess, got %s", chain[0].Name)
	}
	if chain[1].Name != "Process" {
		t.Errorf("expected root ancestor Process, got %s", chain[1].Name)
	}

	if chain := m.Ancestors("Process"); len(chain) != 0 {
		t.Errorf("root class should have no ancestors, got %d", len(chain))
	}
}

func TestModelAncestorsCycle(t *testing.T) {
	m := NewModel([]Class{
		{Name: "A", IRI: "urn:a", Parent: "B"},
		{Name: "B", IRI: "urn:b", Parent: "A"},
	}, nil)

	// A malformed hierarchy must not loop forever.
	chain := m.Ancestors("A")
	if len(chain) != 1 {
		t.Errorf("expected cycle cut after 1 ancestor, got %d", len(chain))
	}
}

func TestModelProperties(t *testing.T) {
	m := NewModel(testClasses(), testProperties())

	props := m.Properties()
	if len(props) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(props))
	}
	// Declaration order preserved.
	if props[0].Label != "has input" || props[1].Label != "has text value" {
		t.Errorf("unexpected property order: %v", props)
	}

	p, ok := m.Property("has input")
	if !ok {
		t.Fatal("expected property lookup to succeed")
	}
	if p.Kind != ObjectProperty {
		t.Errorf("expected object property, got %s", p.Kind)
	}
}

func TestLocalName(t *testing.T) {
	tests := []struct {
		iri  string
		want string
	}{
		{"https://cwrusdle.bitbucket.io/mds/ChemicalReaction", "ChemicalReaction"},
		{"http://purl.obolibrary.org/obo/BFO_0000015", "BFO_0000015"},
		{"http://www.w3.org/2002/07/owl#Class", "Class"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := LocalName(tt.iri); got != tt.want {
			t.Errorf("LocalName(%s) = %s, want %s", tt.iri, got, tt.want)
		}
	}
}
