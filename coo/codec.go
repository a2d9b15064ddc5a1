// SPDX-License-Identifier: MIT

package coo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names a file encoding.
type Format string

const (
	// FormatJSON is the JSON encoding.
	FormatJSON Format = "json"

	// FormatYAML is the YAML encoding.
	FormatYAML Format = "yaml"
)

// FormatFor maps a file name to its encoding by extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Decode reads one graph from r and validates it.
func Decode(r io.Reader, f Format) (*Graph, error) {
	var g Graph
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&g); err != nil {
			return nil, fmt.Errorf("coo: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&g); err != nil {
			return nil, fmt.Errorf("coo: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return &g, nil
}

// Encode writes g to w.
func Encode(w io.Writer, g *Graph, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(g); err != nil {
			return fmt.Errorf("coo: encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(g); err != nil {
			return fmt.Errorf("coo: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("coo: encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	return nil
}

// Load reads and validates a graph file (.json, .yaml or .yml).
func Load(path string) (*Graph, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("coo: %w", err)
	}
	defer file.Close()

	return Decode(file, f)
}
