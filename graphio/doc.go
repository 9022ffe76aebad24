// Package graphio reads graph descriptions from files into core.Graph values
// with string node identifiers.
//
// Supported formats, chosen by file extension or WithFormat:
//
//   - HCL  (.hcl)          node, edge and arc blocks; weights may be expressions
//     over an optional locals block and a few numeric functions.
//   - YAML (.yaml, .yml)   document with undirected, nodes, edges, arcs, adjacency.
//   - JSON (.json)         same document shape as YAML.
//   - Text (anything else) one "FROM TO WEIGHT" edge per line.
//
// In every format an "edge" is mirrored when the graph is undirected, while an
// "arc" and every adjacency entry is inserted as a single directed arc.
// Negative weights are loaded as written; rejecting them is the engine's job.
//
// HCL example:
//
//	undirected = true
//
//	locals {
//	  road = 2
//	}
//
//	node "H" {}
//	edge "A" "B" { weight = local.road }
//	edge "A" "C" { weight = local.road + 3 }
//	arc  "C" "H" { weight = max(1, 4) }
//
// Text example:
//
//	# comments start with '#'
//	undirected
//	A B 2
//	A C 5
//	arc C H 4
//	Z
package graphio
