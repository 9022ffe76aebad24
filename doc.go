// Package shortpath computes single-source shortest routes over weighted
// graphs with non-negative arc weights.
//
// The module is organised in a few packages:
//
//	core/      generic weighted graph (directed or undirected) guarded by an RWMutex
//	dijkstra/  the engine: distance and predecessor tables, path reconstruction, batch runs
//	graphio/   graph descriptions in HCL, YAML, JSON and a plain adjacency list
//	builder/   seeded topology generators (path, cycle, grid, random) for tests and benchmarks
//	cmd/       the shortpath command
//
// Quick example, the eight-node road graph the command ships with:
//
//	A─B 2   A─C 5   A─D 1   B─C 3   B─E 4   C─F 6
//	D─E 7   E─F 8   E─G 2   F─G 3   G─H 1
//
// Shortest route from A to H: A → B → E → G → H, distance 9.
//
//	go install github.com/katalvlaran/shortpath/cmd/shortpath@latest
//	shortpath example --to H
package shortpath
