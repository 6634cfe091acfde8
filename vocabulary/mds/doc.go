// Package mds defines the MDS-Onto vocabulary used by the reaction
// knowledge graph converter: namespace prefixes, class IRIs, property
// IRIs, and the mapping from schema unit enumerations to QUDT unit IRIs.
//
// All identifiers here are constants; the package carries no behavior so
// that every other package can depend on it without import cycles.
package mds
