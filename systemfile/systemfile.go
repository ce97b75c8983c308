// Package systemfile loads oriented-matroid systems from YAML documents.
//
// A document names the axiom-system kind, optionally fixes a ground
// set, and lists the elements either as ternary sign vectors or as
// positives/negatives/zeroes mappings:
//
//	kind: covector
//	ground_set: [0, 1, 2]
//	elements:
//	  - [1, 1, 1]
//	  - {positives: [0], negatives: [1]}
//	  - [0, 0, 0]
//
// When ground_set is omitted and the elements are sign vectors, the
// positions 0..n-1 become the labels.
package systemfile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fchapoton/oriented-matroids/matroid"
	"github.com/fchapoton/oriented-matroids/signedset"
)

var (
	// ErrNoElements indicates a document without an elements list.
	ErrNoElements = errors.New("document lists no elements")

	// ErrBadElement indicates an element that is neither a sign vector
	// nor a parts mapping.
	ErrBadElement = errors.New("element must be a sign vector or a parts mapping")
)

// Document is the YAML shape of a system file.
type Document struct {
	// Kind is the axiom system: covector, vector or circuit.
	Kind string `yaml:"kind"`

	// GroundSet fixes the ordered ground-set labels. Optional when
	// every element is a sign vector.
	GroundSet []any `yaml:"ground_set"`

	// Elements holds the raw element encodings.
	Elements []any `yaml:"elements"`
}

// Parse decodes a YAML document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding system document: %w", err)
	}
	return &doc, nil
}

// Load reads and decodes a system file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading system file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// System resolves the document into an oriented-matroid system.
func (d *Document) System() (matroid.System[any], error) {
	kind, err := matroid.ParseKind(d.Kind)
	if err != nil {
		return nil, err
	}
	if len(d.Elements) == 0 {
		return nil, ErrNoElements
	}
	labels := d.GroundSet
	if labels == nil {
		labels, err = positionalLabels(d.Elements)
		if err != nil {
			return nil, err
		}
	}
	data := make([]signedset.Encoding[any], len(d.Elements))
	for i, raw := range d.Elements {
		enc, err := encodingFor(raw)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		data[i] = enc
	}
	return matroid.New(kind, data, labels)
}

// encodingFor maps a raw YAML value onto an encoding variant.
func encodingFor(raw any) (signedset.Encoding[any], error) {
	switch v := raw.(type) {
	case []any:
		return signedset.Vector(v), nil
	case map[string]any:
		parts := make(signedset.Parts[any], len(v))
		for key, val := range v {
			labels, ok := val.([]any)
			if !ok {
				return nil, fmt.Errorf("%w: part %q is not a sequence", ErrBadElement, key)
			}
			parts[key] = labels
		}
		return parts, nil
	case map[any]any:
		parts := make(signedset.Parts[any], len(v))
		for key, val := range v {
			name, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: part key %v is not a string", ErrBadElement, key)
			}
			labels, ok := val.([]any)
			if !ok {
				return nil, fmt.Errorf("%w: part %q is not a sequence", ErrBadElement, name)
			}
			parts[name] = labels
		}
		return parts, nil
	}
	return nil, fmt.Errorf("%w: got %T", ErrBadElement, raw)
}

// positionalLabels synthesizes the labels 0..n-1 for documents whose
// elements are all sign vectors.
func positionalLabels(elements []any) ([]any, error) {
	first, ok := elements[0].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: a ground_set is required unless elements are sign vectors", ErrBadElement)
	}
	labels := make([]any, len(first))
	for i := range labels {
		labels[i] = i
	}
	return labels, nil
}
