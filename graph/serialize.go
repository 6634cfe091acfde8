package graph

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cwru-sdle/rxnkg/vocabulary/mds"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

const rdfTypeIRI = mds.RDFType

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "turtle", "ttl":
		return FormatTurtle, nil
	case "ntriples", "nt", "n-triples":
		return FormatNTriples, nil
	case "jsonld", "json-ld":
		return FormatJSONLD, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// Extension returns the file extension for a format, with leading dot.
func (f Format) Extension() string {
	switch f {
	case FormatNTriples:
		return ".nt"
	case FormatJSONLD:
		return ".jsonld"
	default:
		return ".ttl"
	}
}

// defaultPrefixes returns the namespace prefixes bound in every document.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":  mds.NamespaceRDF,
		"rdfs": mds.NamespaceRDFS,
		"owl":  mds.NamespaceOWL,
		"xsd":  mds.NamespaceXSD,
		"skos": mds.NamespaceSKOS,
		"prov": mds.NamespacePROV,
		"obo":  mds.NamespaceOBO,
		"cco":  mds.NamespaceCCO,
		"qudt": mds.NamespaceQUDT,
		"unit": mds.NamespaceUnit,
		"mds":  mds.Namespace,
	}
}

// Serialize renders a validated graph in the requested format. The same
// graph serialized twice in the same format is byte-identical: instances
// in first-encountered order, properties in assertion order, prefixes in
// sorted order.
func Serialize(g *ReactionGraph, format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return toTurtle(g), nil
	case FormatNTriples:
		return toNTriples(g), nil
	case FormatJSONLD:
		return toJSONLD(g), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func sortedPrefixes() []string {
	prefixes := defaultPrefixes()
	keys := make([]string, 0, len(prefixes))
	for k := range prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toTurtle(g *ReactionGraph) string {
	var sb strings.Builder
	prefixes := defaultPrefixes()

	for _, prefix := range sortedPrefixes() {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, prefixes[prefix]))
	}
	sb.WriteString("\n")

	for _, inst := range g.Instances() {
		sb.WriteString(fmt.Sprintf("<%s>\n", inst.ID))
		sb.WriteString(fmt.Sprintf("    a <%s>", inst.Class.IRI))
		for _, p := range inst.Props {
			sb.WriteString(" ;\n")
			sb.WriteString(fmt.Sprintf("    <%s> %s", p.Predicate, formatTurtleObject(p.Value)))
		}
		sb.WriteString(" .\n\n")
	}

	return sb.String()
}

func toNTriples(g *ReactionGraph) string {
	var sb strings.Builder
	for _, t := range g.Triples() {
		sb.WriteString(fmt.Sprintf("<%s> <%s> %s .\n",
			t.Subject, t.Predicate, formatNTriplesObject(t.Object)))
	}
	return sb.String()
}

func toJSONLD(g *ReactionGraph) string {
	var sb strings.Builder
	prefixes := defaultPrefixes()

	sb.WriteString("{\n")
	sb.WriteString("  \"@context\": {\n")
	keys := sortedPrefixes()
	for i, prefix := range keys {
		sb.WriteString(fmt.Sprintf("    %q: %q", prefix, prefixes[prefix]))
		if i < len(keys)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  },\n")
	sb.WriteString("  \"@graph\": [\n")

	instances := g.Instances()
	for i, inst := range instances {
		sb.WriteString("    {\n")
		sb.WriteString(fmt.Sprintf("      \"@id\": %q,\n", inst.ID))
		sb.WriteString(fmt.Sprintf("      \"@type\": %q", inst.Class.IRI))
		for _, p := range inst.Props {
			sb.WriteString(",\n")
			sb.WriteString(fmt.Sprintf("      %q: %s", p.Predicate, formatJSONLDObject(p.Value)))
		}
		sb.WriteString("\n    }")
		if i < len(instances)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("  ]\n")
	sb.WriteString("}\n")
	return sb.String()
}

func formatTurtleObject(v Value) string {
	switch v.Kind {
	case KindRef, KindIRI:
		return fmt.Sprintf("<%s>", v.IRI)
	default:
		return formatLiteral(v.Literal, false)
	}
}

func formatNTriplesObject(v Value) string {
	switch v.Kind {
	case KindRef, KindIRI:
		return fmt.Sprintf("<%s>", v.IRI)
	default:
		return formatLiteral(v.Literal, true)
	}
}

func formatJSONLDObject(v Value) string {
	switch v.Kind {
	case KindRef, KindIRI:
		return fmt.Sprintf("{\"@id\": %q}", v.IRI)
	default:
		switch lit := v.Literal.(type) {
		case string:
			return fmt.Sprintf("%q", lit)
		case int:
			return strconv.Itoa(lit)
		case int64:
			return strconv.FormatInt(lit, 10)
		case float64:
			return strconv.FormatFloat(lit, 'g', -1, 64)
		case bool:
			return strconv.FormatBool(lit)
		default:
			return fmt.Sprintf("%q", fmt.Sprintf("%v", lit))
		}
	}
}

// formatLiteral renders a typed literal. Turtle uses prefixed datatypes,
// N-Triples spells them out.
func formatLiteral(lit any, expand bool) string {
	datatype := func(local string) string {
		if expand {
			return fmt.Sprintf("^^<%s%s>", mds.NamespaceXSD, local)
		}
		return "^^xsd:" + local
	}

	switch v := lit.(type) {
	case string:
		if _, err := time.Parse(time.RFC3339, v); err == nil {
			return fmt.Sprintf("\"%s\"%s", v, datatype("dateTime"))
		}
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case int:
		return fmt.Sprintf("\"%d\"%s", v, datatype("integer"))
	case int64:
		return fmt.Sprintf("\"%d\"%s", v, datatype("integer"))
	case float64:
		return fmt.Sprintf("\"%s\"%s", strconv.FormatFloat(v, 'g', -1, 64), datatype("decimal"))
	case bool:
		return fmt.Sprintf("\"%t\"%s", v, datatype("boolean"))
	default:
		return fmt.Sprintf("\"%s\"", escapeString(fmt.Sprintf("%v", v)))
	}
}

// escapeString escapes special characters for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
