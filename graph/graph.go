// Package graph assembles minted instances and their relationships into
// one closed reaction graph and serializes it as a linked-data document.
package graph

import (
	"errors"
	"fmt"

	"github.com/cwru-sdle/rxnkg/ontology"
)

// ValueKind discriminates relationship object values.
type ValueKind int

const (
	// KindLiteral is a literal value (string, number, bool).
	KindLiteral ValueKind = iota
	// KindRef is a reference to an instance minted in the same graph.
	// Refs participate in the closure invariant.
	KindRef
	// KindIRI is an external IRI (ontology class, QUDT unit). External
	// IRIs are not subject to the closure check.
	KindIRI
)

// Value is the object of a relationship: a literal, an in-graph instance
// reference, or an external IRI.
type Value struct {
	Kind    ValueKind
	Literal any
	IRI     string
}

// LiteralValue wraps a literal.
func LiteralValue(v any) Value { return Value{Kind: KindLiteral, Literal: v} }

// RefValue wraps a reference to an in-graph instance.
func RefValue(iri string) Value { return Value{Kind: KindRef, IRI: iri} }

// IRIValue wraps an external IRI.
func IRIValue(iri string) Value { return Value{Kind: KindIRI, IRI: iri} }

// Prop is one asserted property of an instance, in assertion order.
type Prop struct {
	Predicate string
	Value     Value
}

// Instance is a minted, ontology-typed node.
type Instance struct {
	ID    string
	Class ontology.Class
	Props []Prop
}

// Set appends a property assertion to the instance.
func (i *Instance) Set(predicate string, v Value) {
	i.Props = append(i.Props, Prop{Predicate: predicate, Value: v})
}

// Triple is one directed, typed edge of the serialized graph.
type Triple struct {
	Subject   string
	Predicate string
	Object    Value
}

// Assembly errors.
var (
	ErrDuplicateInstance = errors.New("duplicate instance identifier")
	ErrUnknownSubject    = errors.New("relationship subject not in graph")
	ErrDanglingReference = errors.New("dangling instance reference")
)

// ReactionGraph is the closed set of instances and relationships for one
// reaction. Instances keep first-encountered order so serialization is
// deterministic.
type ReactionGraph struct {
	reactionID string
	root       string
	order      []*Instance
	byID       map[string]*Instance
}

// New creates an empty graph for one reaction.
func New(reactionID string) *ReactionGraph {
	return &ReactionGraph{
		reactionID: reactionID,
		byID:       make(map[string]*Instance),
	}
}

// ReactionID returns the reaction this graph describes.
func (g *ReactionGraph) ReactionID() string { return g.reactionID }

// SetRoot records the reaction's own root identifier.
func (g *ReactionGraph) SetRoot(iri string) { g.root = iri }

// Root returns the reaction root identifier.
func (g *ReactionGraph) Root() string { return g.root }

// Len returns the number of instances in the graph.
func (g *ReactionGraph) Len() int { return len(g.order) }

// Instances returns the instances in first-encountered order.
func (g *ReactionGraph) Instances() []*Instance { return g.order }

// Instance returns the instance with the given identifier.
func (g *ReactionGraph) Instance(id string) (*Instance, bool) {
	inst, ok := g.byID[id]
	return inst, ok
}

// Add places an instance into the graph. Identifiers must be pairwise
// distinct within one graph.
func (g *ReactionGraph) Add(inst *Instance) error {
	if _, exists := g.byID[inst.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateInstance, inst.ID)
	}
	g.byID[inst.ID] = inst
	g.order = append(g.order, inst)
	return nil
}

// Relate asserts a relationship from an existing instance.
func (g *ReactionGraph) Relate(subject, predicate string, v Value) error {
	inst, ok := g.byID[subject]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSubject, subject)
	}
	inst.Set(predicate, v)
	return nil
}

// Triples flattens the graph deterministically: for each instance in
// first-encountered order, its rdf:type triple followed by its properties
// in assertion order.
func (g *ReactionGraph) Triples() []Triple {
	var out []Triple
	for _, inst := range g.order {
		out = append(out, Triple{
			Subject:   inst.ID,
			Predicate: rdfTypeIRI,
			Object:    IRIValue(inst.Class.IRI),
		})
		for _, p := range inst.Props {
			out = append(out, Triple{Subject: inst.ID, Predicate: p.Predicate, Object: p.Value})
		}
	}
	return out
}

// Validate checks the closure invariant: every reference-valued
// relationship must target an instance present in this graph. Called
// before serialization; a violation is fatal for the reaction.
func (g *ReactionGraph) Validate() error {
	for _, inst := range g.order {
		for _, p := range inst.Props {
			if p.Value.Kind != KindRef {
				continue
			}
			if _, ok := g.byID[p.Value.IRI]; !ok {
				return fmt.Errorf("%w: %s -> %s", ErrDanglingReference, inst.ID, p.Value.IRI)
			}
		}
	}
	return nil
}
