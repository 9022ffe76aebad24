package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// decodeYAML reads a YAML document. Unknown keys are rejected.
func decodeYAML(r io.Reader) (*description, error) {
	var d description
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return &d, nil
		}
		return nil, fmt.Errorf("%w: yaml: %w", ErrSyntax, err)
	}

	return &d, nil
}

// decodeJSON reads a JSON document. Unknown keys are rejected.
func decodeJSON(r io.Reader) (*description, error) {
	var d description
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: json: %w", ErrSyntax, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: json: trailing data after document", ErrSyntax)
	}

	return &d, nil
}
