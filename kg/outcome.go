// Package kg builds the ontology-typed knowledge graph for one reaction
// record: a post-order walk over the record's nested structure that mints
// instances, resolves their classes, and asserts the relationships
// mirroring the record's hierarchy.
package kg

import (
	"errors"
	"fmt"

	"github.com/cwru-sdle/rxnkg/graph"
)

// ErrMissingRootIdentification is fatal to a reaction: a record without
// its root identification cannot be processed at all.
var ErrMissingRootIdentification = errors.New("reaction record has no root identification")

// FieldError is a recovered per-field failure: the field was omitted from
// the graph and the walk continued.
type FieldError struct {
	// Path is the structural path of the affected sub-object.
	Path string
	// Err is the underlying failure.
	Err error
}

// Error implements error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error for errors.Is checks.
func (e FieldError) Unwrap() error { return e.Err }

// Outcome is the per-reaction processing result: either a completed graph
// or a captured fatal failure, plus any accumulated field-level errors.
type Outcome struct {
	// ReactionID is the full reaction identifier from the record.
	ReactionID string
	// Graph is the assembled reaction graph; nil when Err is set.
	Graph *graph.ReactionGraph
	// Err is the fatal-to-reaction failure, nil on success.
	Err error
	// FieldErrors are recovered field-level failures, in walk order.
	FieldErrors []FieldError
}

// Succeeded reports whether the reaction produced a graph.
func (o *Outcome) Succeeded() bool { return o.Err == nil && o.Graph != nil }

// failure builds a fatal outcome for a reaction.
func failure(reactionID string, err error) *Outcome {
	return &Outcome{ReactionID: reactionID, Err: err}
}
