// SPDX-License-Identifier: MIT

// Package worksheet loads batches of problems from TOML, YAML or HCL files
// and runs each one through the matching engine.
//
// A worksheet has a name, shared defaults and a list of problems:
//
//	name = "week 3"
//
//	[defaults]
//	tolerance = 1e-8
//	max_iter  = 60
//	pivoting  = true
//
//	[[problem]]
//	name     = "cubic"
//	kind     = "bisection"
//	function = "x^3 - x - 2"
//	a        = 1
//	b        = 2
//
// The same worksheet in HCL uses labelled blocks and may reference the
// constants pi and e:
//
//	problem "sine area" {
//	  kind     = "quad"
//	  function = "sin(x)"
//	  a        = 0
//	  b        = pi
//	  rule     = "simpson13"
//	  n        = 8
//	}
//
// Matrices, vectors and point lists are written in the plain-text forms of
// package input, e.g. matrix = "2 1; 1 3" and points = "0,1; 1,3; 2,7".
//
// Decoding validates every problem up front. Run executes them in order,
// stops early when its context is cancelled and logs through the slog
// logger stored in the context.
package worksheet
