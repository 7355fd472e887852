// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyInput is returned when there is nothing to decode.
var ErrEmptyInput = errors.New("input is empty")

// Reader handles strict deserialization of JSON or YAML from an io.Reader.
// Unknown fields are rejected in both formats.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a Reader for the given format.
// Table format is write-only and returns an error.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{format: format, input: input}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// NewFileReader opens filePath and detects the format from its extension.
// Close must be called to release the file handle.
func NewFileReader(filePath string) (*Reader, error) {
	format := FormatFromPath(filePath)
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	r, err := NewReader(format, file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return r, nil
}

// Deserialize decodes a single document into v, which must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil || r.input == nil {
		return fmt.Errorf("reader has no input")
	}

	switch r.format {
	case FormatJSON:
		dec := json.NewDecoder(r.input)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return ErrEmptyInput
			}
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
		if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to parse JSON: unexpected data after document")
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return fmt.Errorf("%w: document is null", ErrEmptyInput)
		}

		strict := json.NewDecoder(bytes.NewReader(raw))
		strict.DisallowUnknownFields()
		if err := strict.Decode(v); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
		return nil
	case FormatYAML:
		data, err := io.ReadAll(r.input)
		if err != nil {
			return fmt.Errorf("failed to read YAML: %w", err)
		}

		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
		if isNullDocument(&doc) {
			return ErrEmptyInput
		}

		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

// isNullDocument reports whether doc is empty or holds only a null scalar.
func isNullDocument(doc *yaml.Node) bool {
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return true
	}
	if doc.Kind == yaml.DocumentNode {
		doc = doc.Content[0]
	}
	return doc.Kind == yaml.ScalarNode && doc.ShortTag() == "!!null"
}

// Close releases the underlying input if it is closeable. It is idempotent.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// FromFile reads a JSON or YAML file into a new T.
func FromFile[T any](path string) (*T, error) {
	r, err := NewFileReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var v T
	if err := r.Deserialize(&v); err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return &v, nil
}
