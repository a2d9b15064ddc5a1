// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/json"
	"io"
	"math"

	"github.com/katalvlaran/grblas/shortestpath"
)

// jsonFloat encodes ±Inf as the strings "inf" and "-inf".
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	switch {
	case math.IsInf(float64(f), 1):
		return []byte(`"inf"`), nil
	case math.IsInf(float64(f), -1):
		return []byte(`"-inf"`), nil
	default:
		return json.Marshal(float64(f))
	}
}

type distancesOut struct {
	Source int         `json:"source"`
	Dist   []jsonFloat `json:"dist"`
}

func toJSONFloats(xs []float64) []jsonFloat {
	out := make([]jsonFloat, len(xs))
	for i, x := range xs {
		out[i] = jsonFloat(x)
	}

	return out
}

func toDistancesOut(ds []shortestpath.Distances) []distancesOut {
	out := make([]distancesOut, len(ds))
	for i, d := range ds {
		out[i] = distancesOut{Source: d.Source, Dist: toJSONFloats(d.Dist)}
	}

	return out
}

// writeJSON prints v as one line of JSON.
func writeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
