// Package ontology holds the loaded ontology model and resolves the
// structural roles of reaction sub-objects to ontology classes.
//
// The model is immutable after load and safe for concurrent readers; the
// dataset orchestrator loads it once per run and shares it across every
// reaction conversion.
package ontology

import (
	"errors"
	"fmt"
	"strings"
)

// PropertyKind classifies the expected value of a property.
type PropertyKind int

const (
	// ObjectProperty expects a reference to another instance.
	ObjectProperty PropertyKind = iota
	// DatatypeProperty expects a literal value.
	DatatypeProperty
	// AnnotationProperty expects a literal annotation.
	AnnotationProperty
)

// String returns the string representation of PropertyKind.
func (k PropertyKind) String() string {
	switch k {
	case ObjectProperty:
		return "object"
	case DatatypeProperty:
		return "datatype"
	case AnnotationProperty:
		return "annotation"
	default:
		return "unknown"
	}
}

// Class is one ontology class as loaded from the ontology description.
type Class struct {
	// Name is the local name of the class (IRI fragment).
	Name string
	// IRI is the full class IRI.
	IRI string
	// Parent is the local name of the superclass, empty for roots.
	Parent string
}

// Property is one declared ontology property.
type Property struct {
	// Label is the human-readable property label.
	Label string
	// IRI is the full property IRI.
	IRI string
	// Kind classifies the expected value.
	Kind PropertyKind
}

// ErrClassNotFound is returned when a class lookup misses the model.
var ErrClassNotFound = errors.New("ontology class not found")

// Model is the immutable view of a loaded ontology: class set, property
// set, and class hierarchy. It must never be mutated after construction.
type Model struct {
	classes    map[string]Class
	properties map[string]Property
	propOrder  []string
}

// NewModel builds a Model from explicit class and property lists.
// Used by tests and by the OWL loader.
func NewModel(classes []Class, properties []Property) *Model {
	m := &Model{
		classes:    make(map[string]Class, len(classes)),
		properties: make(map[string]Property, len(properties)),
		propOrder:  make([]string, 0, len(properties)),
	}
	for _, c := range classes {
		m.classes[c.Name] = c
	}
	for _, p := range properties {
		if _, dup := m.properties[p.Label]; !dup {
			m.propOrder = append(m.propOrder, p.Label)
		}
		m.properties[p.Label] = p
	}
	return m
}

// Class returns the class with the given local name.
func (m *Model) Class(name string) (Class, error) {
	c, ok := m.classes[name]
	if !ok {
		return Class{}, fmt.Errorf("%w: %s", ErrClassNotFound, name)
	}
	return c, nil
}

// HasClass reports whether the model declares the class.
func (m *Model) HasClass(name string) bool {
	_, ok := m.classes[name]
	return ok
}

// Property returns the declared property with the given label.
func (m *Model) Property(label string) (Property, bool) {
	p, ok := m.properties[label]
	return p, ok
}

// Properties returns all declared properties in declaration order.
// MDS-Onto declares property domains loosely, so the property set is
// global rather than attached to individual classes.
func (m *Model) Properties() []Property {
	out := make([]Property, 0, len(m.propOrder))
	for _, label := range m.propOrder {
		out = append(out, m.properties[label])
	}
	return out
}

// Ancestors returns the superclass chain of a class, nearest first.
func (m *Model) Ancestors(name string) []Class {
	var chain []Class
	seen := map[string]bool{name: true}
	c, ok := m.classes[name]
	for ok && c.Parent != "" && !seen[c.Parent] {
		seen[c.Parent] = true
		c, ok = m.classes[c.Parent]
		if ok {
			chain = append(chain, c)
		}
	}
	return chain
}

// ClassCount returns the number of declared classes.
func (m *Model) ClassCount() int { return len(m.classes) }

// LocalName extracts the fragment or last path segment of an IRI.
func LocalName(iri string) string {
	if i := strings.LastIndexAny(iri, "#/"); i >= 0 && i < len(iri)-1 {
		return iri[i+1:]
	}
	return iri
}
