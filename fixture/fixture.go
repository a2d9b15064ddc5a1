// SPDX-License-Identifier: MIT

package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/grblas/coo"
	"github.com/katalvlaran/grblas/shortestpath"
)

var (
	// ErrUnknownFormat indicates a file that is neither JSON nor YAML.
	ErrUnknownFormat = errors.New("fixture: unknown file format")

	// ErrMissingBlock indicates a block name absent from the file.
	ErrMissingBlock = errors.New("fixture: block not found")

	// ErrBadCase indicates a field that does not fit the requested shape.
	ErrBadCase = errors.New("fixture: malformed case")
)

// Case is one graph with its inputs and expected output.
type Case struct {
	Name     string    `json:"name,omitempty" yaml:"name,omitempty"`
	Size     int       `json:"size" yaml:"size"`
	I        []int     `json:"I" yaml:"I"`
	J        []int     `json:"J" yaml:"J"`
	V        []float64 `json:"V,omitempty" yaml:"V,omitempty"`
	Start    any       `json:"start,omitempty" yaml:"start,omitempty"`
	Expected any       `json:"expected" yaml:"expected"`
}

// Set maps block names to their cases.
type Set map[string][]Case

// Load reads a fixture file; the extension selects the decoder.
func Load(path string) (Set, error) {
	f, err := coo.FormatFor(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	defer file.Close()

	return Decode(file, f)
}

// Decode reads a fixture set from r.
func Decode(r io.Reader, f coo.Format) (Set, error) {
	var s Set
	switch f {
	case coo.FormatJSON:
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("fixture: decode json: %w", err)
		}
	case coo.FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("fixture: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	return s, nil
}

// Block returns the cases stored under name.
func (s Set) Block(name string) ([]Case, error) {
	cases, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingBlock, name)
	}

	return cases, nil
}

// Label names the case for subtests: Name when set, else its position.
func (c Case) Label(pos int) string {
	if c.Name != "" {
		return c.Name
	}

	return fmt.Sprintf("case_%d", pos)
}

// Graph returns the coordinate lists of the case.
func (c Case) Graph() *coo.Graph {
	return &coo.Graph{Size: c.Size, I: c.I, J: c.J, V: c.V}
}

// StartVertex reads "start" as one vertex.
func (c Case) StartVertex() (int, error) {
	v, err := toInt(c.Start)
	if err != nil {
		return 0, fmt.Errorf("start: %w", err)
	}

	return v, nil
}

// StartVertices reads "start" as a list of vertices.
func (c Case) StartVertices() ([]int, error) {
	out, err := toInts(c.Start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	return out, nil
}

// ExpectedInt reads "expected" as one integer.
func (c Case) ExpectedInt() (int, error) {
	v, err := toInt(c.Expected)
	if err != nil {
		return 0, fmt.Errorf("expected: %w", err)
	}

	return v, nil
}

// ExpectedInts reads "expected" as a list of integers.
func (c Case) ExpectedInts() ([]int, error) {
	out, err := toInts(c.Expected)
	if err != nil {
		return nil, fmt.Errorf("expected: %w", err)
	}

	return out, nil
}

// ExpectedIntRows reads "expected" as a list of integer lists.
func (c Case) ExpectedIntRows() ([][]int, error) {
	rows, ok := c.Expected.([]any)
	if !ok {
		return nil, fmt.Errorf("expected: %w: want list of lists, got %T", ErrBadCase, c.Expected)
	}
	out := make([][]int, len(rows))
	for k, row := range rows {
		r, err := toInts(row)
		if err != nil {
			return nil, fmt.Errorf("expected[%d]: %w", k, err)
		}
		out[k] = r
	}

	return out, nil
}

// ExpectedFloats reads "expected" as a list of floats.
func (c Case) ExpectedFloats() ([]float64, error) {
	out, err := toFloats(c.Expected)
	if err != nil {
		return nil, fmt.Errorf("expected: %w", err)
	}

	return out, nil
}

// ExpectedDistances reads "expected" as [[source, [d0, d1, ...]], ...].
func (c Case) ExpectedDistances() ([]shortestpath.Distances, error) {
	rows, ok := c.Expected.([]any)
	if !ok {
		return nil, fmt.Errorf("expected: %w: want list of pairs, got %T", ErrBadCase, c.Expected)
	}
	out := make([]shortestpath.Distances, len(rows))
	for k, row := range rows {
		pair, ok := row.([]any)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("expected[%d]: %w: want [source, dists]", k, ErrBadCase)
		}
		src, err := toInt(pair[0])
		if err != nil {
			return nil, fmt.Errorf("expected[%d] source: %w", k, err)
		}
		dist, err := toFloats(pair[1])
		if err != nil {
			return nil, fmt.Errorf("expected[%d] dists: %w", k, err)
		}
		out[k] = shortestpath.Distances{Source: src, Dist: dist}
	}

	return out, nil
}

func toInt(x any) (int, error) {
	switch v := x.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrBadCase, v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: want integer, got %T", ErrBadCase, x)
	}
}

func toFloat(x any) (float64, error) {
	switch v := x.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "inf", "+inf", "infinity":
			return math.Inf(1), nil
		case "-inf", "-infinity":
			return math.Inf(-1), nil
		}
		return 0, fmt.Errorf("%w: %q is not a number", ErrBadCase, v)
	default:
		return 0, fmt.Errorf("%w: want number, got %T", ErrBadCase, x)
	}
}

func toInts(x any) ([]int, error) {
	list, ok := x.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: want list, got %T", ErrBadCase, x)
	}
	out := make([]int, len(list))
	for k, e := range list {
		v, err := toInt(e)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", k, err)
		}
		out[k] = v
	}

	return out, nil
}

func toFloats(x any) ([]float64, error) {
	list, ok := x.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: want list, got %T", ErrBadCase, x)
	}
	out := make([]float64, len(list))
	for k, e := range list {
		v, err := toFloat(e)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", k, err)
		}
		out[k] = v
	}

	return out, nil
}
