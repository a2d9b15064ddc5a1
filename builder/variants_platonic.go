// SPDX-License-Identifier: MIT
// Package: grblas/builder
//
// variants_platonic.go - canonical shells of the five Platonic solids.
//
// Determinism:
//   - Edge lists are fixed data, sorted by (U,V) with U < V within each group.
//   - They are part of the public contract: vertex labels never change.
//
// Triangle counts (used as fixtures): Tetrahedron 4, Octahedron 8,
// Icosahedron 20, Cube 0, Dodecahedron 0.

package builder

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// String provides a readable identifier for logs and errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// chord is an undirected shell edge between local indices U < V.
type chord struct {
	U, V int
}

// platonicVertexCounts maps each solid to its vertex count.
var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// platonicEdgeSets maps each solid to its shell edges.
var platonicEdgeSets = map[PlatonicName][]chord{
	// K4.
	Tetrahedron: {
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	},

	// Bottom face 0-1-2-3, top face 4-5-6-7, verticals i-(i+4).
	Cube: {
		{0, 1}, {1, 2}, {2, 3}, {0, 3},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
		{4, 5}, {4, 7}, {5, 6}, {6, 7},
	},

	// Poles 0 and 1, equator ring 2-4-3-5.
	Octahedron: {
		{0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 4}, {2, 5}, {3, 4}, {3, 5},
	},

	// Top pentagon 0..4, bottom pentagon 5..9, middle 10-cycle 10..19;
	// top spokes to even middle vertices, bottom spokes to odd ones.
	Dodecahedron: {
		{0, 1}, {0, 4}, {1, 2}, {2, 3}, {3, 4},
		{5, 6}, {5, 9}, {6, 7}, {7, 8}, {8, 9},
		{10, 11}, {10, 19}, {11, 12}, {12, 13}, {13, 14},
		{14, 15}, {15, 16}, {16, 17}, {17, 18}, {18, 19},
		{0, 10}, {1, 12}, {2, 14}, {3, 16}, {4, 18},
		{5, 11}, {6, 13}, {7, 15}, {8, 17}, {9, 19},
	},

	// Pole 0, top ring 1..5, bottom ring 6..10, pole 11; top i meets bottom
	// i and i+1 (mod 5).
	Icosahedron: {
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 5}, {2, 3}, {3, 4}, {4, 5},
		{1, 6}, {1, 7}, {2, 7}, {2, 8}, {3, 8},
		{3, 9}, {4, 9}, {4, 10}, {5, 6}, {5, 10},
		{6, 7}, {6, 10}, {7, 8}, {8, 9}, {9, 10},
		{6, 11}, {7, 11}, {8, 11}, {9, 11}, {10, 11},
	},
}
