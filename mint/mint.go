// Package mint constructs entity IRIs for minted instances. Minting is
// pure string assembly: deterministic for the same input, namespaced by
// dataset and reaction so identifiers never collide across graphs.
package mint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwru-sdle/rxnkg/vocabulary/mds"
)

// ErrEmptyNamespace is returned when a namespace component is missing.
// Malformed namespaces are construction-time errors, never silently
// substituted.
var ErrEmptyNamespace = errors.New("empty identifier namespace component")

// Minter mints instance IRIs inside one dataset/reaction namespace.
type Minter struct {
	prefix string
}

// New creates a Minter for one reaction of one dataset.
func New(datasetID, reactionID string) (*Minter, error) {
	if datasetID == "" {
		return nil, fmt.Errorf("%w: dataset id", ErrEmptyNamespace)
	}
	if reactionID == "" {
		return nil, fmt.Errorf("%w: reaction id", ErrEmptyNamespace)
	}
	return &Minter{
		prefix: mds.EntityNamespace + "dataset/" + escape(datasetID) + "/reaction/" + escape(reactionID) + "/",
	}, nil
}

// IRI mints the IRI for the instance at a structural path, e.g.
// "input/solvent_1/component/0". Path segments are escaped so the
// resulting IRI stays well formed for any record content.
func (m *Minter) IRI(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: structural path", ErrEmptyNamespace)
	}
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = escape(s)
	}
	return m.prefix + strings.Join(segments, "/"), nil
}

// Root mints the reaction root IRI.
func (m *Minter) Root() string {
	return m.prefix + "root"
}

// escape replaces characters that are unsafe inside an IRI path segment.
// Encoding is per UTF-8 byte so every escape is exactly two hex digits and
// distinct inputs never collapse to the same encoded form.
func escape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '-' || c == '_' || c == '.' || c == '~':
			b.WriteByte(c)
		default:
			b.WriteString(fmt.Sprintf("%%%02X", c))
		}
	}
	return b.String()
}
