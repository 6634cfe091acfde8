// Package chem defines the chemical normalization contract the converter
// calls for chemical-identifier fields. Canonicalization of structures is
// an external concern; this package holds only the narrow interface plus
// a basic syntactic implementation.
package chem

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Identifier kinds the normalizer understands.
const (
	KindSMILES   = "SMILES"
	KindCXSMILES = "CXSMILES"
	KindInChI    = "INCHI"
	KindInChIKey = "INCHI_KEY"
)

// ErrUnnormalizable is returned when a raw identifier cannot be
// canonicalized. Callers treat it as a field-level error: the field is
// dropped and the failure is recorded, never fatal to the reaction.
var ErrUnnormalizable = errors.New("identifier cannot be normalized")

// Normalizer canonicalizes one raw chemical structure identifier.
// Implementations must be safe for concurrent use and must bound their
// own latency; the converter treats every failure as field-level.
type Normalizer interface {
	Canonical(ctx context.Context, kind, raw string) (string, error)
}

var inchiKeyPattern = regexp.MustCompile(`^[A-Z]{14}-[A-Z]{10}-[A-Z]$`)

// BasicNormalizer performs syntactic canonicalization: whitespace
// stripping, InChI prefix checks, and InChIKey shape validation. It does
// not recompute structures; a toolkit-backed implementation can replace
// it behind the same interface.
type BasicNormalizer struct{}

// Canonical implements Normalizer.
func (BasicNormalizer) Canonical(_ context.Context, kind, raw string) (string, error) {
	v := strings.Join(strings.Fields(raw), "")
	if v == "" {
		return "", fmt.Errorf("%w: empty %s", ErrUnnormalizable, kind)
	}

	switch kind {
	case KindInChIKey:
		v = strings.ToUpper(v)
		if !inchiKeyPattern.MatchString(v) {
			return "", fmt.Errorf("%w: malformed InChIKey %q", ErrUnnormalizable, raw)
		}
		return v, nil
	case KindInChI:
		if !strings.HasPrefix(v, "InChI=") {
			return "", fmt.Errorf("%w: InChI missing prefix", ErrUnnormalizable)
		}
		return v, nil
	case KindSMILES, KindCXSMILES:
		return v, nil
	default:
		return "", fmt.Errorf("%w: unsupported kind %s", ErrUnnormalizable, kind)
	}
}

// IsStructural reports whether an identifier kind carries a chemical
// structure and should pass through normalization.
func IsStructural(kind string) bool {
	switch kind {
	case KindSMILES, KindCXSMILES, KindInChI, KindInChIKey:
		return true
	default:
		return false
	}
}
