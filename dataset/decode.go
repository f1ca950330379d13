package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads a dataset from a YAML or JSON document and validates it.
//
// Two document shapes are accepted:
//
//	- [0, 0]          # bare sequence of points
//	- [0, 1]
//
//	points:           # mapping with a points key
//	  - [0, 0]
//	  - [0, 1]
func Decode(r io.Reader) ([][]float64, error) {
	doc, err := decode(r)
	if err != nil {
		return nil, err
	}

	if err := Validate(doc.Points); err != nil {
		return nil, err
	}

	return doc.Points, nil
}

// DecodeLabeled reads a labelled dataset (mapping with points and labels keys)
// and validates it.
func DecodeLabeled(r io.Reader) (Labeled, error) {
	doc, err := decode(r)
	if err != nil {
		return Labeled{}, err
	}

	if err := doc.Validate(); err != nil {
		return Labeled{}, err
	}

	return doc, nil
}

// Load opens path and decodes it with Decode.
func Load(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	points, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return points, nil
}

// LoadLabeled opens path and decodes it with DecodeLabeled.
func LoadLabeled(path string) (Labeled, error) {
	f, err := os.Open(path)
	if err != nil {
		return Labeled{}, err
	}
	defer f.Close()

	l, err := DecodeLabeled(f)
	if err != nil {
		return Labeled{}, fmt.Errorf("load %s: %w", path, err)
	}

	return l, nil
}

func decode(r io.Reader) (Labeled, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return Labeled{}, fmt.Errorf("%w: empty document", ErrInvalidDataset)
		}
		return Labeled{}, fmt.Errorf("decode dataset: %w", err)
	}

	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	var doc Labeled
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&doc.Points); err != nil {
			return Labeled{}, fmt.Errorf("decode dataset: %w", err)
		}
	case yaml.MappingNode:
		if err := root.Decode(&doc); err != nil {
			return Labeled{}, fmt.Errorf("decode dataset: %w", err)
		}
	default:
		return Labeled{}, fmt.Errorf("%w: expected a sequence of points or a mapping", ErrInvalidDataset)
	}

	return doc, nil
}
