package ontology

import (
	"encoding/xml"
	"fmt"
	"os"
)

// XML namespace URIs used by OWL 2 RDF/XML serializations.
const (
	rdfNS  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	rdfsNS = "http://www.w3.org/2000/01/rdf-schema#"
	owlNS  = "http://www.w3.org/2002/07/owl#"
)

type rdfResource struct {
	Resource string `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# resource,attr"`
}

type owlClass struct {
	About      string        `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# about,attr"`
	Labels     []string      `xml:"http://www.w3.org/2000/01/rdf-schema# label"`
	SubClassOf []rdfResource `xml:"http://www.w3.org/2000/01/rdf-schema# subClassOf"`
}

type owlProperty struct {
	About  string   `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# about,attr"`
	Labels []string `xml:"http://www.w3.org/2000/01/rdf-schema# label"`
}

type owlDocument struct {
	XMLName              xml.Name      `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# RDF"`
	Classes              []owlClass    `xml:"http://www.w3.org/2002/07/owl# Class"`
	ObjectProperties     []owlProperty `xml:"http://www.w3.org/2002/07/owl# ObjectProperty"`
	DatatypeProperties   []owlProperty `xml:"http://www.w3.org/2002/07/owl# DatatypeProperty"`
	AnnotationProperties []owlProperty `xml:"http://www.w3.org/2002/07/owl# AnnotationProperty"`
}

// Load reads an OWL 2 ontology in RDF/XML form and builds the immutable
// Model view: named classes with their superclass, and labeled object,
// datatype, and annotation properties. Unlabeled properties are skipped
// because the converter addresses properties by label.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ontology %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a Model from RDF/XML bytes.
func Parse(data []byte) (*Model, error) {
	var doc owlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse ontology: %w", err)
	}

	classes := make([]Class, 0, len(doc.Classes))
	for _, c := range doc.Classes {
		if c.About == "" {
			continue // anonymous class expression
		}
		cls := Class{Name: LocalName(c.About), IRI: c.About}
		for _, sup := range c.SubClassOf {
			if sup.Resource != "" {
				cls.Parent = LocalName(sup.Resource)
				break
			}
		}
		classes = append(classes, cls)
	}

	properties := make([]Property, 0,
		len(doc.ObjectProperties)+len(doc.DatatypeProperties)+len(doc.AnnotationProperties))
	appendProps := func(src []owlProperty, kind PropertyKind) {
		for _, p := range src {
			if p.About == "" || len(p.Labels) == 0 {
				continue
			}
			properties = append(properties, Property{
				Label: p.Labels[0],
				IRI:   p.About,
				Kind:  kind,
			})
		}
	}
	appendProps(doc.ObjectProperties, ObjectProperty)
	appendProps(doc.DatatypeProperties, DatatypeProperty)
	appendProps(doc.AnnotationProperties, AnnotationProperty)

	if len(classes) == 0 {
		return nil, fmt.Errorf("parse ontology: no named classes declared")
	}

	return NewModel(classes, properties), nil
}
