package ontology

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnresolvedRole is returned when neither the exact role class nor the
// category fallback class exists in the loaded model.
var ErrUnresolvedRole = errors.New("no ontology class for role")

// Resolution is the outcome of resolving a structural role.
type Resolution struct {
	// Class is the resolved ontology class.
	Class Class
	// Properties is the declared property set available on instances.
	Properties []Property
	// Fallback reports that the generic category class was used because
	// the exact role had no class in the model.
	Fallback bool
}

// Resolver maps structural role tags to classes of one loaded Model.
// Resolution order: exact role match, then a class the model declares
// under the role's specific name (checked against the category's
// hierarchy), then the generic class of the structural category. A miss
// on all three is an error; the caller decides whether it is fatal
// (reaction root) or a per-field error.
type Resolver struct {
	model *Model
}

// NewResolver creates a Resolver over an immutable model.
func NewResolver(m *Model) *Resolver {
	return &Resolver{model: m}
}

// Model returns the underlying ontology model.
func (r *Resolver) Model() *Model { return r.model }

// Resolve returns the ontology class and property set for a role.
func (r *Resolver) Resolve(role Role) (Resolution, error) {
	if name, ok := roleClassMap[role]; ok {
		if cls, err := r.model.Class(name); err == nil {
			return Resolution{Class: cls, Properties: r.model.Properties()}, nil
		}
	}

	if cat, specific, ok := strings.Cut(string(role), "/"); ok {
		// The model may declare a class under the role's specific name
		// even when the static map has no entry for it. Prefer it over
		// the generic class, provided the superclass chain places it
		// inside the category.
		if specific != "" && r.model.HasClass(specific) && r.categoryAdmits(cat, specific) {
			cls, _ := r.model.Class(specific)
			return Resolution{Class: cls, Properties: r.model.Properties()}, nil
		}

		// Fallback to the generic class of the structural category.
		if name, ok := categoryFallback[cat]; ok {
			if cls, err := r.model.Class(name); err == nil {
				return Resolution{
					Class:      cls,
					Properties: r.model.Properties(),
					Fallback:   true,
				}, nil
			}
		}
	}

	return Resolution{}, fmt.Errorf("%w: %s", ErrUnresolvedRole, role)
}

// categoryAdmits reports whether a declared class may stand in for roles
// of a structural category: the class is the category's generic class,
// descends from it, or the generic class is absent from the model so no
// hierarchy constraint applies.
func (r *Resolver) categoryAdmits(cat, name string) bool {
	generic, ok := categoryFallback[cat]
	if !ok {
		return false
	}
	if name == generic || !r.model.HasClass(generic) {
		return true
	}
	for _, ancestor := range r.model.Ancestors(name) {
		if ancestor.Name == generic {
			return true
		}
	}
	return false
}
