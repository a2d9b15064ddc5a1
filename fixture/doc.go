// SPDX-License-Identifier: MIT

// Package fixture loads table-driven graph test cases from JSON or YAML.
//
// A fixture file maps block names to lists of cases:
//
//	{
//	  "test_bfs": [
//	    {"I": [0, 1], "J": [1, 2], "size": 3, "start": 0, "expected": [0, 1, 2]}
//	  ]
//	}
//
// "start" and "expected" are loosely typed in the file and read through
// typed accessors; "inf" (any case, optional sign) is accepted wherever a
// float is expected, since JSON has no infinity literal.
package fixture
