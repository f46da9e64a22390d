// Package lvlsym computes automorphism groups and canonical labelings of
// vertex-colored undirected graphs.
//
// The search is a partition-backtracking engine in the style of bliss:
// equitable color refinement, a depth-first search tree over
// individualized vertices, orbit pruning, failure recording, long prune and
// component recursion.
//
// Subpackages:
//
//	core/      - colored Graph, search flags, Permute, Cmp, Hash
//	perm/      - permutation helpers and cycle notation
//	partition/ - ordered partitions and color refinement
//	bignum/    - exact group orders
//	search/    - FindAutomorphisms, CanonicalForm, Stats
//	bfs/       - breadth-first traversal and connected components
//	builder/   - deterministic graph fixtures
//	format/    - DIMACS read/write, Graphviz output
//	catalog/   - persistent store of graphs up to isomorphism
//	metrics/   - Prometheus observer for searches
//	config/    - YAML run configuration
//	cmd/lvlsym - command line tool
//
// Quick start:
//
//	g := core.NewGraph(4)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//	_ = g.AddEdge(2, 3)
//	var stats search.Stats
//	_ = search.FindAutomorphisms(g, &stats)
//	fmt.Println(stats.GroupSize) // 2
package lvlsym
