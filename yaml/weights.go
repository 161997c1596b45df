// Package yaml loads deepresearch configuration from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/deepresearch"
	"gopkg.in/yaml.v3"
)

// LoadWeights reads a weight table from path. Keys missing from the file
// keep their DefaultWeights value.
func LoadWeights(path string) (deepresearch.Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return deepresearch.Weights{}, deepresearch.Errorf(deepresearch.EINVALID, "failed to read weights file: %v", err)
	}
	return ParseWeights(data)
}

// ParseWeights decodes a weight table. Unknown keys are rejected.
func ParseWeights(data []byte) (deepresearch.Weights, error) {
	w := deepresearch.DefaultWeights()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&w); err != nil && !errors.Is(err, io.EOF) {
		return deepresearch.Weights{}, deepresearch.Errorf(deepresearch.EINVALID, "invalid weights file: %v", err)
	}

	if err := w.Validate(); err != nil {
		return deepresearch.Weights{}, err
	}
	return w, nil
}
